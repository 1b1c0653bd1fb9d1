package repository

import (
	"context"

	"trending-board/domain/model"
)

// ITrending defines the read-only calls made against the video platform API.
type ITrending interface {
	// ListMostPopular returns the trending chart for a region/category pair,
	// in the API's ranking order. maxResults must already be clamped by the
	// caller.
	ListMostPopular(ctx context.Context, regionCode, categoryID string, maxResults int64) ([]model.TrendingVideo, error)

	// ListCategories returns the assignable video categories for a region.
	ListCategories(ctx context.Context, regionCode string) ([]model.VideoCategory, error)

	// ListChannelStats resolves subscriber counts for the given channel ids,
	// batching as few calls as the API allows. Missing channels are simply
	// absent from the result map.
	ListChannelStats(ctx context.Context, channelIDs []string) (map[string]model.ChannelStats, error)
}
