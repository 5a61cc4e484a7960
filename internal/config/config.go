package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/kelseyhightower/envconfig"
)

//go:generate mockgen -package mocks -destination mocks/ssm.go . ParameterStore

var ErrTelegramTokenRequired = errors.New("telegram token is required")

type (
	Config struct {
		Dev               bool          `envconfig:"DEV" default:"false"`
		DataDir           string        `envconfig:"DATA_DIR" required:"true"`
		DeliveryTime      string        `envconfig:"DELIVERY_TIME" default:"09:30"`
		Timezone          string        `envconfig:"TIMEZONE"`
		ContentBaseURL    string        `envconfig:"CONTENT_BASE_URL" default:"https://img.zeit.de/administratives/kaenguru-comics"`
		ContentFilename   string        `envconfig:"CONTENT_FILENAME" default:"original"`
		ContentFileLayout string        `envconfig:"CONTENT_FILE_LAYOUT" default:"kaenguru_2006-01-02.webp"`
		FetchTimeout      time.Duration `envconfig:"FETCH_TIMEOUT" default:"1m"`
		SendRate          float64       `envconfig:"SEND_RATE" default:"25"`
		LegacyChatIDsFile string        `envconfig:"LEGACY_CHAT_IDS_FILE" default:"chat_ids.json"`

		TelegramToken      string `envconfig:"TELEGRAM_TOKEN"`
		TelegramTokenParam string `envconfig:"TELEGRAM_TOKEN_PARAM" default:"/daily-kaenguru/prod/telegram-token"`
	}

	ParameterStore interface {
		GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
	}
)

func NewConfig() (*Config, error) {
	res := &Config{}

	if err := envconfig.Process("", res); err != nil {
		return nil, fmt.Errorf("envconfig process: %w", err)
	}

	if _, err := res.Location(); err != nil {
		return nil, err
	}
	if res.FetchTimeout <= 0 {
		return nil, fmt.Errorf("fetch timeout must be positive, got %s", res.FetchTimeout)
	}
	if res.SendRate <= 0 {
		return nil, fmt.Errorf("send rate must be positive, got %v", res.SendRate)
	}

	return res, nil
}

// Location returns the time zone delivery days are counted in. Empty means the host's local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// ResolveTelegramToken returns TELEGRAM_TOKEN if set. Outside of dev mode it falls back to SSM.
// newStore is called only when the parameter store is needed.
func (c *Config) ResolveTelegramToken(ctx context.Context, newStore func(ctx context.Context) (ParameterStore, error)) (string, error) {
	if c.TelegramToken != "" {
		return c.TelegramToken, nil
	}
	if c.Dev {
		return "", fmt.Errorf("%w: set TELEGRAM_TOKEN in dev mode", ErrTelegramTokenRequired)
	}

	store, err := newStore(ctx)
	if err != nil {
		return "", err
	}

	param, err := store.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(c.TelegramTokenParam),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("get SSM token: %w", err)
	}
	if param.Parameter == nil || aws.ToString(param.Parameter.Value) == "" {
		return "", fmt.Errorf("%w: SSM parameter %s is empty", ErrTelegramTokenRequired, c.TelegramTokenParam)
	}

	return aws.ToString(param.Parameter.Value), nil
}

func NewSSMStore(ctx context.Context) (ParameterStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return ssm.NewFromConfig(cfg), nil
}
