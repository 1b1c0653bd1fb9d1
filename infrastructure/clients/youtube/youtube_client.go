package youtube

import (
	"context"
	"fmt"
	"strings"
	"time"

	"trending-board/domain/model"
	"trending-board/domain/repository"
	"trending-board/infrastructure/logger"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// channelBatchSize is the maximum number of channel ids channels.list accepts
// in a single call.
const channelBatchSize = 50

const defaultCallTimeout = 15 * time.Second

// Client is a read-only YouTube Data API client authenticated by API key.
type Client struct {
	service     *youtube.Service
	callTimeout time.Duration
}

// NewTrendingClient creates a YouTube Data API client in API-key mode.
func NewTrendingClient(ctx context.Context, apiKey string, callTimeout time.Duration) (repository.ITrending, error) {
	if callTimeout <= 0 {
		callTimeout = defaultCallTimeout
	}
	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service with API key: %w", err)
	}
	return &Client{service: service, callTimeout: callTimeout}, nil
}

// ListMostPopular returns the trending chart for a region/category pair in
// the API's ranking order. No re-sorting, no retries.
func (c *Client) ListMostPopular(ctx context.Context, regionCode, categoryID string, maxResults int64) ([]model.TrendingVideo, error) {
	ctx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	call := c.service.Videos.List([]string{"snippet", "statistics"}).
		Chart("mostPopular").
		RegionCode(regionCode).
		MaxResults(maxResults).
		Context(ctx)
	if categoryID != "" && categoryID != model.AllCategoriesID {
		call = call.VideoCategoryId(categoryID)
	}

	response, err := call.Do()
	if err != nil {
		return nil, classify("videos.list", err)
	}

	videos := make([]model.TrendingVideo, 0, len(response.Items))
	for _, item := range response.Items {
		videos = append(videos, convertVideo(item))
	}
	return videos, nil
}

// ListCategories returns the assignable categories for a region.
func (c *Client) ListCategories(ctx context.Context, regionCode string) ([]model.VideoCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	response, err := c.service.VideoCategories.List([]string{"snippet"}).
		RegionCode(regionCode).
		Context(ctx).
		Do()
	if err != nil {
		return nil, classify("videoCategories.list", err)
	}

	categories := make([]model.VideoCategory, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Snippet == nil || !item.Snippet.Assignable {
			continue
		}
		if item.Id == "" || item.Snippet.Title == "" {
			continue
		}
		categories = append(categories, model.VideoCategory{ID: item.Id, Title: item.Snippet.Title})
	}
	return categories, nil
}

// ListChannelStats resolves subscriber counts for the given channels, batched
// at the API's 50-id limit. A failed batch is logged and skipped so the
// remaining batches still apply; missing channels are absent from the result.
func (c *Client) ListChannelStats(ctx context.Context, channelIDs []string) (map[string]model.ChannelStats, error) {
	stats := make(map[string]model.ChannelStats)
	ids := dedupe(channelIDs)
	if len(ids) == 0 {
		return stats, nil
	}

	for start := 0; start < len(ids); start += channelBatchSize {
		end := start + channelBatchSize
		if end > len(ids) {
			end = len(ids)
		}
		batch := ids[start:end]

		callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
		response, err := c.service.Channels.List([]string{"statistics"}).
			Id(strings.Join(batch, ",")).
			MaxResults(channelBatchSize).
			Context(callCtx).
			Do()
		cancel()
		if err != nil {
			logger.GetLogger().WithField("error", err).
				WithField("batch_size", len(batch)).
				Warn("channels.list batch failed; records in this batch stay unenriched")
			continue
		}
		for _, ch := range response.Items {
			if ch.Statistics == nil {
				continue
			}
			stats[ch.Id] = model.ChannelStats{
				ChannelID:       ch.Id,
				SubscriberCount: int64(ch.Statistics.SubscriberCount),
				HiddenSubs:      ch.Statistics.HiddenSubscriberCount,
			}
		}
	}
	return stats, nil
}

func convertVideo(video *youtube.Video) model.TrendingVideo {
	v := model.TrendingVideo{ID: video.Id}
	if video.Snippet != nil {
		v.Title = video.Snippet.Title
		v.ChannelID = video.Snippet.ChannelId
		v.ChannelName = video.Snippet.ChannelTitle
		if t, err := time.Parse(time.RFC3339, video.Snippet.PublishedAt); err == nil {
			v.PublishedAt = t
		}
		v.Thumbnails = convertThumbnails(video.Snippet.Thumbnails)
	}
	if video.Statistics != nil {
		v.ViewCount = int64(video.Statistics.ViewCount)
		v.LikeCount = int64(video.Statistics.LikeCount)
		v.CommentCount = int64(video.Statistics.CommentCount)
	}
	return v
}

func convertThumbnails(details *youtube.ThumbnailDetails) model.ThumbnailSet {
	var set model.ThumbnailSet
	if details == nil {
		return set
	}
	conv := func(t *youtube.Thumbnail) *model.Thumbnail {
		if t == nil || t.Url == "" {
			return nil
		}
		return &model.Thumbnail{URL: t.Url, Width: int(t.Width), Height: int(t.Height)}
	}
	set.Maxres = conv(details.Maxres)
	set.Standard = conv(details.Standard)
	set.High = conv(details.High)
	set.Medium = conv(details.Medium)
	set.Default = conv(details.Default)
	return set
}

// dedupe removes duplicate and empty ids while preserving first-seen order.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
