package service_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Roma7-7-7/daily-kaenguru/internal/dal"
	"github.com/Roma7-7-7/daily-kaenguru/internal/service"
	"github.com/Roma7-7-7/daily-kaenguru/internal/service/mocks"
	"github.com/Roma7-7-7/daily-kaenguru/pkg/clock"
)

var (
	testDate    = dal.Date{Year: 2026, Month: 10, Day: 19}
	testContent = []byte("kaenguru")
)

func TestContent_Get(t *testing.T) {
	c := clock.NewMock(time.Now())

	tests := []struct {
		name    string
		setup   func(origin *mocks.MockContentOrigin, cache *mocks.MockContentCache)
		want    []byte
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name: "cache_hit",
			setup: func(_ *mocks.MockContentOrigin, cache *mocks.MockContentCache) {
				cache.EXPECT().GetContent(testDate).Return(testContent, true, nil)
			},
			want:    testContent,
			wantErr: assert.NoError,
		},
		{
			name: "cache_miss",
			setup: func(origin *mocks.MockContentOrigin, cache *mocks.MockContentCache) {
				gomock.InOrder(
					cache.EXPECT().GetContent(testDate).Return(nil, false, nil),
					origin.EXPECT().Download(gomock.Any(), testDate).Return(testContent, nil),
					cache.EXPECT().PutContent(testDate, testContent).Return(nil),
				)
			},
			want:    testContent,
			wantErr: assert.NoError,
		},
		{
			name: "cache_read_error_treated_as_miss",
			setup: func(origin *mocks.MockContentOrigin, cache *mocks.MockContentCache) {
				cache.EXPECT().GetContent(testDate).Return(nil, false, assert.AnError)
				origin.EXPECT().Download(gomock.Any(), testDate).Return(testContent, nil)
				cache.EXPECT().PutContent(testDate, testContent).Return(nil)
			},
			want:    testContent,
			wantErr: assert.NoError,
		},
		{
			name: "download_error",
			setup: func(origin *mocks.MockContentOrigin, cache *mocks.MockContentCache) {
				cache.EXPECT().GetContent(testDate).Return(nil, false, nil)
				origin.EXPECT().Download(gomock.Any(), testDate).Return(nil, assert.AnError)
			},
			want: nil,
			wantErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorIs(t, err, service.ErrFetchHTTP) &&
					assert.ErrorIs(t, err, assert.AnError) &&
					assert.ErrorContains(t, err, "download content for 2026-10-19: ")
			},
		},
		{
			name: "cache_write_error_returns_content",
			setup: func(origin *mocks.MockContentOrigin, cache *mocks.MockContentCache) {
				cache.EXPECT().GetContent(testDate).Return(nil, false, nil)
				origin.EXPECT().Download(gomock.Any(), testDate).Return(testContent, nil)
				cache.EXPECT().PutContent(testDate, testContent).Return(assert.AnError)
			},
			want: testContent,
			wantErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorIs(t, err, service.ErrFetchIO) && assert.ErrorIs(t, err, assert.AnError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			origin := mocks.NewMockContentOrigin(ctrl)
			cache := mocks.NewMockContentCache(ctrl)
			tt.setup(origin, cache)

			got, err := service.NewContent(origin, cache, c, slog.New(slog.DiscardHandler)).Get(context.Background(), testDate)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContent_Today(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	// still the 18th in UTC
	c := clock.NewMock(time.Date(2026, 10, 19, 0, 30, 0, 0, loc))

	cache := mocks.NewMockContentCache(ctrl)
	cache.EXPECT().GetContent(testDate).Return(testContent, true, nil)

	got, err := service.NewContent(mocks.NewMockContentOrigin(ctrl), cache, c, slog.New(slog.DiscardHandler)).Today(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testContent, got)
}

func TestContent_Get_ConcurrentCallersDownloadOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache, err := dal.NewContentCache(t.TempDir(), "kaenguru_2006-01-02.webp")
	require.NoError(t, err)

	release := make(chan struct{})
	origin := mocks.NewMockContentOrigin(ctrl)
	origin.EXPECT().Download(gomock.Any(), testDate).DoAndReturn(func(context.Context, dal.Date) ([]byte, error) {
		<-release
		return testContent, nil
	}).Times(1)

	content := service.NewContent(origin, cache, clock.NewMock(time.Now()), slog.New(slog.DiscardHandler))

	const callers = 10
	results := make([][]byte, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Go(func() {
			results[i], errs[i] = content.Get(context.Background(), testDate)
		})
	}
	close(release)
	wg.Wait()

	for i := range callers {
		require.NoError(t, errs[i])
		assert.Equal(t, testContent, results[i])
	}

	cached, ok, err := cache.GetContent(testDate)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, testContent, cached)
}
