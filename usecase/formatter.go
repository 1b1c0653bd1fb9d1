package usecase

import (
	"fmt"

	"trending-board/domain/apperrors"
	"trending-board/domain/model"

	"github.com/dustin/go-humanize"
)

// Magnitude unit boundaries for Korean-style count formatting.
const (
	manUnit = 10_000
	eokUnit = 100_000_000
)

// HumanizeCount renders a counter as a compact magnitude string: values from
// ten-thousand get a "만" suffix, values from hundred-million an "억" suffix,
// both truncated (not rounded) to one decimal place. Smaller values are
// comma-grouped.
func HumanizeCount(n int64) string {
	switch {
	case n >= eokUnit:
		tenths := n / (eokUnit / 10)
		return fmt.Sprintf("%d.%d억", tenths/10, tenths%10)
	case n >= manUnit:
		tenths := n / (manUnit / 10)
		return fmt.Sprintf("%d.%d만", tenths/10, tenths%10)
	default:
		return humanize.Comma(n)
	}
}

// thumbnailPriority is the variant preference order, highest resolution first.
func thumbnailPriority(set model.ThumbnailSet) []*model.Thumbnail {
	return []*model.Thumbnail{set.Maxres, set.Standard, set.High, set.Medium, set.Default}
}

// SelectThumbnail picks the first available variant in priority order. An
// empty variant set is an upstream contract violation and yields
// apperrors.ErrNoThumbnail.
func SelectThumbnail(set model.ThumbnailSet) (string, error) {
	for _, t := range thumbnailPriority(set) {
		if t != nil && t.URL != "" {
			return t.URL, nil
		}
	}
	return "", apperrors.ErrNoThumbnail
}

// WatchURL builds the public watch page URL for a video id.
func WatchURL(videoID string) string {
	if videoID == "" {
		return ""
	}
	return "https://www.youtube.com/watch?v=" + videoID
}
