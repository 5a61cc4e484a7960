package config_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Roma7-7-7/daily-kaenguru/internal/config"
	"github.com/Roma7-7-7/daily-kaenguru/internal/config/mocks"
)

func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func clearEnv(t *testing.T) {
	unsetenv(t, "DEV", "DATA_DIR", "DELIVERY_TIME", "TIMEZONE", "CONTENT_BASE_URL", "CONTENT_FILENAME",
		"CONTENT_FILE_LAYOUT", "FETCH_TIMEOUT", "SEND_RATE", "LEGACY_CHAT_IDS_FILE", "TELEGRAM_TOKEN", "TELEGRAM_TOKEN_PARAM")
}

func TestNewConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATA_DIR", "/var/lib/daily-kaenguru")

	conf, err := config.NewConfig()
	require.NoError(t, err)
	assert.Equal(t, &config.Config{
		DataDir:            "/var/lib/daily-kaenguru",
		DeliveryTime:       "09:30",
		ContentBaseURL:     "https://img.zeit.de/administratives/kaenguru-comics",
		ContentFilename:    "original",
		ContentFileLayout:  "kaenguru_2006-01-02.webp",
		FetchTimeout:       time.Minute,
		SendRate:           25,
		LegacyChatIDsFile:  "chat_ids.json",
		TelegramTokenParam: "/daily-kaenguru/prod/telegram-token",
	}, conf)

	loc, err := conf.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name:    "missing_data_dir",
			env:     map[string]string{},
			wantErr: assert.Error,
		},
		{
			name:    "valid_timezone",
			env:     map[string]string{"DATA_DIR": "data", "TIMEZONE": "Europe/Berlin"},
			wantErr: assert.NoError,
		},
		{
			name: "invalid_timezone",
			env:  map[string]string{"DATA_DIR": "data", "TIMEZONE": "Europe/Nowhere"},
			wantErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorContains(t, err, `load timezone "Europe/Nowhere": `)
			},
		},
		{
			name:    "invalid_fetch_timeout",
			env:     map[string]string{"DATA_DIR": "data", "FETCH_TIMEOUT": "0s"},
			wantErr: assert.Error,
		},
		{
			name:    "invalid_send_rate",
			env:     map[string]string{"DATA_DIR": "data", "SEND_RATE": "-1"},
			wantErr: assert.Error,
		},
		{
			name:    "malformed_duration",
			env:     map[string]string{"DATA_DIR": "data", "FETCH_TIMEOUT": "soon"},
			wantErr: assert.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.NewConfig()
			tt.wantErr(t, err)
		})
	}
}

type storeFactory func(context.Context) (config.ParameterStore, error)

func TestConfig_ResolveTelegramToken(t *testing.T) {
	const param = "/daily-kaenguru/prod/telegram-token"

	noStore := func(t *testing.T, _ *gomock.Controller) storeFactory {
		return func(context.Context) (config.ParameterStore, error) {
			t.Fatal("parameter store must not be used")
			return nil, nil
		}
	}
	ssmStore := func(setup func(store *mocks.MockParameterStore)) func(*testing.T, *gomock.Controller) storeFactory {
		return func(_ *testing.T, ctrl *gomock.Controller) storeFactory {
			store := mocks.NewMockParameterStore(ctrl)
			setup(store)
			return func(context.Context) (config.ParameterStore, error) {
				return store, nil
			}
		}
	}

	tests := []struct {
		name     string
		conf     config.Config
		newStore func(*testing.T, *gomock.Controller) storeFactory
		want     string
		wantErr  assert.ErrorAssertionFunc
	}{
		{
			name:     "env_token",
			conf:     config.Config{TelegramToken: "env-token", TelegramTokenParam: param},
			newStore: noStore,
			want:     "env-token",
			wantErr:  assert.NoError,
		},
		{
			name:     "dev_without_token",
			conf:     config.Config{Dev: true, TelegramTokenParam: param},
			newStore: noStore,
			wantErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorIs(t, err, config.ErrTelegramTokenRequired)
			},
		},
		{
			name: "ssm_token",
			conf: config.Config{TelegramTokenParam: param},
			newStore: ssmStore(func(store *mocks.MockParameterStore) {
				store.EXPECT().GetParameter(gomock.Any(), &ssm.GetParameterInput{
					Name:           aws.String(param),
					WithDecryption: aws.Bool(true),
				}).Return(&ssm.GetParameterOutput{Parameter: &types.Parameter{Value: aws.String("ssm-token")}}, nil)
			}),
			want:    "ssm-token",
			wantErr: assert.NoError,
		},
		{
			name: "ssm_error",
			conf: config.Config{TelegramTokenParam: param},
			newStore: ssmStore(func(store *mocks.MockParameterStore) {
				store.EXPECT().GetParameter(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)
			}),
			wantErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorIs(t, err, assert.AnError) && assert.ErrorContains(t, err, "get SSM token: ")
			},
		},
		{
			name: "ssm_empty_value",
			conf: config.Config{TelegramTokenParam: param},
			newStore: ssmStore(func(store *mocks.MockParameterStore) {
				store.EXPECT().GetParameter(gomock.Any(), gomock.Any()).Return(&ssm.GetParameterOutput{Parameter: &types.Parameter{}}, nil)
			}),
			wantErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorIs(t, err, config.ErrTelegramTokenRequired)
			},
		},
		{
			name: "store_init_error",
			conf: config.Config{TelegramTokenParam: param},
			newStore: func(*testing.T, *gomock.Controller) storeFactory {
				return func(context.Context) (config.ParameterStore, error) {
					return nil, assert.AnError
				}
			},
			wantErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorIs(t, err, assert.AnError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			got, err := tt.conf.ResolveTelegramToken(context.Background(), tt.newStore(t, ctrl))
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
