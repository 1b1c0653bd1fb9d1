package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"trending-board/domain/dto"
	"trending-board/domain/model"
	"trending-board/infrastructure/cache"
	"trending-board/usecase"
)

// Mock implementations

type MockTrendingRepo struct {
	mock.Mock
}

func (m *MockTrendingRepo) ListMostPopular(ctx context.Context, regionCode, categoryID string, maxResults int64) ([]model.TrendingVideo, error) {
	args := m.Called(ctx, regionCode, categoryID, maxResults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TrendingVideo), args.Error(1)
}

func (m *MockTrendingRepo) ListCategories(ctx context.Context, regionCode string) ([]model.VideoCategory, error) {
	args := m.Called(ctx, regionCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VideoCategory), args.Error(1)
}

func (m *MockTrendingRepo) ListChannelStats(ctx context.Context, channelIDs []string) (map[string]model.ChannelStats, error) {
	args := m.Called(ctx, channelIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]model.ChannelStats), args.Error(1)
}

func sampleVideos() []model.TrendingVideo {
	return []model.TrendingVideo{
		{
			ID: "vid-1", Title: "First", ChannelID: "ch-1", ChannelName: "Channel One",
			ViewCount: 12_345, LikeCount: 678, CommentCount: 90,
			Thumbnails: model.ThumbnailSet{Medium: &model.Thumbnail{URL: "https://img/1.jpg"}},
		},
		{
			ID: "vid-2", Title: "Second", ChannelID: "ch-2", ChannelName: "Channel Two",
			ViewCount: 150_000_000, LikeCount: 2_000_000, CommentCount: 55_000,
			Thumbnails: model.ThumbnailSet{Default: &model.Thumbnail{URL: "https://img/2.jpg"}},
		},
	}
}

func TestTrendingUseCase_ListTrending_ClampsMaxResults(t *testing.T) {
	for _, tc := range []struct {
		name      string
		requested int64
		expected  int64
	}{
		{"above_upper_bound", 100, 50},
		{"below_lower_bound", -5, 1},
		{"zero_uses_default", 0, 30},
		{"in_range_passthrough", 17, 17},
	} {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(MockTrendingRepo)
			repo.On("ListMostPopular", mock.Anything, "KR", "0", tc.expected).
				Return(sampleVideos(), nil).Once()
			repo.On("ListChannelStats", mock.Anything, mock.Anything).
				Return(map[string]model.ChannelStats{}, nil).Once()

			uc := usecase.NewTrendingUseCase(repo, cache.NewMemoryCache())
			resp, err := uc.ListTrending(context.Background(), &dto.TrendingListRequest{
				RegionCode: "KR", MaxResults: tc.requested,
			})

			assert.NoError(t, err)
			assert.NotNil(t, resp)
			repo.AssertExpectations(t)
		})
	}
}

func TestTrendingUseCase_ListTrending_PreservesRankingOrder(t *testing.T) {
	repo := new(MockTrendingRepo)
	repo.On("ListMostPopular", mock.Anything, "KR", "0", int64(30)).
		Return(sampleVideos(), nil).Once()
	repo.On("ListChannelStats", mock.Anything, []string{"ch-1", "ch-2"}).
		Return(map[string]model.ChannelStats{}, nil).Once()

	uc := usecase.NewTrendingUseCase(repo, cache.NewMemoryCache())
	resp, err := uc.ListTrending(context.Background(), &dto.TrendingListRequest{RegionCode: "KR"})

	assert.NoError(t, err)
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, 1, resp.Items[0].Rank)
	assert.Equal(t, "vid-1", resp.Items[0].Video.ID)
	assert.Equal(t, 2, resp.Items[1].Rank)
	assert.Equal(t, "vid-2", resp.Items[1].Video.ID)
	// Display formatting rides along with the raw record
	assert.Equal(t, "1.2만", resp.Items[0].Display.Views)
	assert.Equal(t, "1.5억", resp.Items[1].Display.Views)
	assert.Equal(t, "https://img/1.jpg", resp.Items[0].Display.Thumbnail)
	assert.Equal(t, "https://www.youtube.com/watch?v=vid-1", resp.Items[0].Display.WatchURL)
	repo.AssertExpectations(t)
}

func TestTrendingUseCase_ListTrending_CacheHitSkipsNetwork(t *testing.T) {
	repo := new(MockTrendingRepo)
	repo.On("ListMostPopular", mock.Anything, "KR", "0", int64(30)).
		Return(sampleVideos(), nil).Once()
	repo.On("ListChannelStats", mock.Anything, mock.Anything).
		Return(map[string]model.ChannelStats{}, nil).Once()

	uc := usecase.NewTrendingUseCase(repo, cache.NewMemoryCache())

	first, err := uc.ListTrending(context.Background(), &dto.TrendingListRequest{RegionCode: "KR"})
	assert.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := uc.ListTrending(context.Background(), &dto.TrendingListRequest{RegionCode: "KR"})
	assert.NoError(t, err)
	assert.True(t, second.Cached)

	// Byte-identical payloads within the TTL window
	firstJSON, _ := json.Marshal(first)
	secondJSON, _ := json.Marshal(second)
	assert.Equal(t, firstJSON, secondJSON)

	// Exactly one network round per operation
	repo.AssertNumberOfCalls(t, "ListMostPopular", 1)
	repo.AssertNumberOfCalls(t, "ListChannelStats", 1)
}

func TestTrendingUseCase_Refresh_ForcesNewFetch(t *testing.T) {
	repo := new(MockTrendingRepo)
	repo.On("ListMostPopular", mock.Anything, "KR", "0", int64(30)).
		Return(sampleVideos(), nil).Twice()
	repo.On("ListChannelStats", mock.Anything, mock.Anything).
		Return(map[string]model.ChannelStats{}, nil).Twice()

	uc := usecase.NewTrendingUseCase(repo, cache.NewMemoryCache())

	_, err := uc.ListTrending(context.Background(), &dto.TrendingListRequest{RegionCode: "KR"})
	assert.NoError(t, err)

	assert.NoError(t, uc.Refresh(context.Background()))

	resp, err := uc.ListTrending(context.Background(), &dto.TrendingListRequest{RegionCode: "KR"})
	assert.NoError(t, err)
	assert.False(t, resp.Cached)
	repo.AssertExpectations(t)
}

func TestTrendingUseCase_EnrichmentAttachesSubscribers(t *testing.T) {
	repo := new(MockTrendingRepo)
	repo.On("ListMostPopular", mock.Anything, "KR", "0", int64(30)).
		Return(sampleVideos(), nil).Once()
	repo.On("ListChannelStats", mock.Anything, []string{"ch-1", "ch-2"}).
		Return(map[string]model.ChannelStats{
			"ch-1": {ChannelID: "ch-1", SubscriberCount: 1_234_567},
			"ch-2": {ChannelID: "ch-2", SubscriberCount: 99, HiddenSubs: true},
		}, nil).Once()

	uc := usecase.NewTrendingUseCase(repo, cache.NewMemoryCache())
	resp, err := uc.ListTrending(context.Background(), &dto.TrendingListRequest{RegionCode: "KR"})

	assert.NoError(t, err)
	if assert.NotNil(t, resp.Items[0].Video.SubscriberCount) {
		assert.Equal(t, int64(1_234_567), *resp.Items[0].Video.SubscriberCount)
	}
	assert.Equal(t, "123.4만", resp.Items[0].Display.Subscribers)
	// Hidden subscriber counts stay absent
	assert.Nil(t, resp.Items[1].Video.SubscriberCount)
	assert.Empty(t, resp.Items[1].Display.Subscribers)
}

func TestTrendingUseCase_EnrichmentFailureDegradesSilently(t *testing.T) {
	repo := new(MockTrendingRepo)
	repo.On("ListMostPopular", mock.Anything, "KR", "0", int64(30)).
		Return(sampleVideos(), nil).Once()
	repo.On("ListChannelStats", mock.Anything, mock.Anything).
		Return(nil, assert.AnError).Once()

	uc := usecase.NewTrendingUseCase(repo, cache.NewMemoryCache())
	resp, err := uc.ListTrending(context.Background(), &dto.TrendingListRequest{RegionCode: "KR"})

	assert.NoError(t, err)
	for _, item := range resp.Items {
		assert.Nil(t, item.Video.SubscriberCount)
		assert.Empty(t, item.Display.Subscribers)
	}
	repo.AssertExpectations(t)
}

func TestTrendingUseCase_ListTrending_FetchErrorPropagates(t *testing.T) {
	repo := new(MockTrendingRepo)
	repo.On("ListMostPopular", mock.Anything, "KR", "0", int64(30)).
		Return(nil, assert.AnError).Once()

	uc := usecase.NewTrendingUseCase(repo, cache.NewMemoryCache())
	resp, err := uc.ListTrending(context.Background(), &dto.TrendingListRequest{RegionCode: "KR"})

	assert.Error(t, err)
	assert.Nil(t, resp)
	repo.AssertNotCalled(t, "ListChannelStats", mock.Anything, mock.Anything)
}

func TestTrendingUseCase_ListCategories_SyntheticHeadEntry(t *testing.T) {
	repo := new(MockTrendingRepo)
	repo.On("ListCategories", mock.Anything, "US").
		Return([]model.VideoCategory{
			{ID: "1", Title: "Film & Animation"},
			{ID: "10", Title: "Music"},
		}, nil).Once()

	uc := usecase.NewTrendingUseCase(repo, cache.NewMemoryCache())
	resp, err := uc.ListCategories(context.Background(), "US")

	assert.NoError(t, err)
	assert.Len(t, resp.Items, 3)
	assert.Equal(t, model.AllCategoriesID, resp.Items[0].ID)
	assert.Equal(t, "1", resp.Items[1].ID)
	repo.AssertExpectations(t)
}

func TestTrendingUseCase_ListCategories_FailureYieldsOnlySynthetic(t *testing.T) {
	repo := new(MockTrendingRepo)
	repo.On("ListCategories", mock.Anything, "XX").
		Return(nil, assert.AnError).Twice()

	uc := usecase.NewTrendingUseCase(repo, cache.NewMemoryCache())

	resp, err := uc.ListCategories(context.Background(), "XX")
	assert.NoError(t, err)
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, model.AllCategoriesID, resp.Items[0].ID)

	// Failures are not cached; the next interaction retries the lookup
	_, err = uc.ListCategories(context.Background(), "XX")
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestTrendingUseCase_ListCategories_SuccessIsCached(t *testing.T) {
	repo := new(MockTrendingRepo)
	repo.On("ListCategories", mock.Anything, "KR").
		Return([]model.VideoCategory{{ID: "10", Title: "Music"}}, nil).Once()

	uc := usecase.NewTrendingUseCase(repo, cache.NewMemoryCache())

	_, err := uc.ListCategories(context.Background(), "KR")
	assert.NoError(t, err)
	second, err := uc.ListCategories(context.Background(), "KR")
	assert.NoError(t, err)
	assert.Len(t, second.Items, 2)
	repo.AssertNumberOfCalls(t, "ListCategories", 1)
}

func TestTrendingUseCase_ListRegions(t *testing.T) {
	uc := usecase.NewTrendingUseCase(new(MockTrendingRepo), cache.NewMemoryCache())
	regions := uc.ListRegions()
	assert.NotEmpty(t, regions)
	assert.Equal(t, "KR", regions[0].Code)
}
