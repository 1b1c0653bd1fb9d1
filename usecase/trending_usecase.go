package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"trending-board/domain/dto"
	"trending-board/domain/model"
	"trending-board/domain/repository"
	"trending-board/infrastructure/logger"
)

// Default memoization windows; categories change rarely and get a longer one.
const (
	DefaultVideoTTL    = 300 * time.Second
	DefaultCategoryTTL = 3600 * time.Second
)

// ITrendingUseCase defines the trending dashboard operations.
type ITrendingUseCase interface {
	// ListTrending runs the aggregation pipeline for one parameter tuple:
	// fetch chart, enrich with subscriber counts, format for display.
	ListTrending(ctx context.Context, req *dto.TrendingListRequest) (*dto.TrendingVideoResponse, error)
	// ListCategories returns the category selector options for a region,
	// always headed by the synthetic "all" entry.
	ListCategories(ctx context.Context, regionCode string) (*dto.CategoryListResponse, error)
	// ListRegions returns the static region presets.
	ListRegions() []model.Region
	// Refresh clears every cached entry unconditionally.
	Refresh(ctx context.Context) error
}

// TrendingUseCase implements the sequential fetch/enrich/format pipeline.
type TrendingUseCase struct {
	trendingRepo repository.ITrending
	cache        repository.IDashboardCache
	videoTTL     time.Duration
	categoryTTL  time.Duration
}

// NewTrendingUseCase creates the use case with default TTLs.
func NewTrendingUseCase(trendingRepo repository.ITrending, cache repository.IDashboardCache) *TrendingUseCase {
	return &TrendingUseCase{
		trendingRepo: trendingRepo,
		cache:        cache,
		videoTTL:     DefaultVideoTTL,
		categoryTTL:  DefaultCategoryTTL,
	}
}

// WithTTL overrides the memoization windows (fluent).
func (u *TrendingUseCase) WithTTL(videoTTL, categoryTTL time.Duration) *TrendingUseCase {
	if videoTTL > 0 {
		u.videoTTL = videoTTL
	}
	if categoryTTL > 0 {
		u.categoryTTL = categoryTTL
	}
	return u
}

// ListTrending returns the trending chart for the requested parameter tuple.
// Results are memoized for the video TTL; a cache hit is byte-identical to
// the original render and makes no network calls.
func (u *TrendingUseCase) ListTrending(ctx context.Context, req *dto.TrendingListRequest) (*dto.TrendingVideoResponse, error) {
	if req == nil {
		req = &dto.TrendingListRequest{}
	}
	req.Normalize()
	categoryID := req.CategoryID
	if categoryID == "" {
		categoryID = model.AllCategoriesID
	}

	key := fmt.Sprintf("videos:%s:%s:%d", req.RegionCode, categoryID, req.MaxResults)
	if payload, ok := u.cache.Get(ctx, key); ok {
		var cached dto.TrendingVideoResponse
		if err := json.Unmarshal(payload, &cached); err == nil {
			cached.Cached = true
			return &cached, nil
		}
		logger.GetLogger().WithField("key", key).Warn("Discarding undecodable cache entry")
	}

	videos, err := u.trendingRepo.ListMostPopular(ctx, req.RegionCode, categoryID, req.MaxResults)
	if err != nil {
		return nil, err
	}

	u.enrichSubscribers(ctx, videos)

	response := &dto.TrendingVideoResponse{
		RegionCode: req.RegionCode,
		CategoryID: categoryID,
		Items:      make([]dto.TrendingVideoItem, 0, len(videos)),
	}
	for i, video := range videos {
		response.Items = append(response.Items, dto.TrendingVideoItem{
			Rank:    i + 1,
			Video:   video,
			Display: renderDisplay(video),
		})
	}

	if payload, err := json.Marshal(response); err == nil {
		u.cache.Set(ctx, key, payload, u.videoTTL)
	}
	return response, nil
}

// enrichSubscribers attaches subscriber counts where the channel lookup
// succeeded. Failure is a degraded-display condition, never an error: the
// records simply keep their counts absent.
func (u *TrendingUseCase) enrichSubscribers(ctx context.Context, videos []model.TrendingVideo) {
	if len(videos) == 0 {
		return
	}
	channelIDs := make([]string, 0, len(videos))
	for _, v := range videos {
		channelIDs = append(channelIDs, v.ChannelID)
	}

	stats, err := u.trendingRepo.ListChannelStats(ctx, channelIDs)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Channel enrichment failed; subscriber counts left absent")
		return
	}
	for i := range videos {
		if s, ok := stats[videos[i].ChannelID]; ok && !s.HiddenSubs {
			count := s.SubscriberCount
			videos[i].SubscriberCount = &count
		}
	}
}

func renderDisplay(video model.TrendingVideo) dto.VideoDisplay {
	display := dto.VideoDisplay{
		Views:    HumanizeCount(video.ViewCount),
		Likes:    HumanizeCount(video.LikeCount),
		Comments: HumanizeCount(video.CommentCount),
		WatchURL: WatchURL(video.ID),
	}
	if video.SubscriberCount != nil {
		display.Subscribers = HumanizeCount(*video.SubscriberCount)
	}
	thumb, err := SelectThumbnail(video.Thumbnails)
	if err != nil {
		logger.GetLogger().WithField("video_id", video.ID).Error("Video carries no thumbnail variant")
	}
	display.Thumbnail = thumb
	return display
}

// ListCategories returns the selector options for a region. A lookup failure
// is swallowed: the synthetic "all" entry alone is returned and the failure
// is not cached, so the next interaction retries.
func (u *TrendingUseCase) ListCategories(ctx context.Context, regionCode string) (*dto.CategoryListResponse, error) {
	if regionCode == "" {
		regionCode = "KR"
	}

	key := "categories:" + regionCode
	if payload, ok := u.cache.Get(ctx, key); ok {
		var cached dto.CategoryListResponse
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
	}

	response := &dto.CategoryListResponse{
		RegionCode: regionCode,
		Items:      []model.VideoCategory{model.AllCategories()},
	}

	categories, err := u.trendingRepo.ListCategories(ctx, regionCode)
	if err != nil {
		logger.GetLogger().WithField("error", err).WithField("region", regionCode).
			Warn("Category lookup failed; falling back to the all-categories entry")
		return response, nil
	}
	response.Items = append(response.Items, categories...)

	if payload, err := json.Marshal(response); err == nil {
		u.cache.Set(ctx, key, payload, u.categoryTTL)
	}
	return response, nil
}

// ListRegions returns the region selector presets.
func (u *TrendingUseCase) ListRegions() []model.Region {
	return model.RegionPresets()
}

// Refresh clears the whole cache, not just the current parameter tuple.
func (u *TrendingUseCase) Refresh(ctx context.Context) error {
	if err := u.cache.InvalidateAll(ctx); err != nil {
		return fmt.Errorf("failed to invalidate cache: %w", err)
	}
	logger.GetLogger().Info("Dashboard cache invalidated")
	return nil
}
