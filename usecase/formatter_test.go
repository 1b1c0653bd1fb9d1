package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"trending-board/domain/apperrors"
	"trending-board/domain/model"
	"trending-board/usecase"
)

func TestHumanizeCount(t *testing.T) {
	cases := []struct {
		name string
		in   int64
		want string
	}{
		{"zero", 0, "0"},
		{"small", 999, "999"},
		{"comma_grouped", 9999, "9,999"},
		{"man_boundary", 10_000, "1.0만"},
		{"man_truncated", 12_345, "1.2만"},
		{"man_truncates_not_rounds", 19_999, "1.9만"},
		{"man_large", 99_999_999, "9999.9만"},
		{"eok_boundary", 100_000_000, "1.0억"},
		{"eok_truncated", 150_000_000, "1.5억"},
		{"eok_truncates_not_rounds", 199_999_999, "1.9억"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, usecase.HumanizeCount(tc.in))
		})
	}
}

func TestSelectThumbnail(t *testing.T) {
	t.Run("prefers_highest_resolution", func(t *testing.T) {
		set := model.ThumbnailSet{
			Maxres: &model.Thumbnail{URL: "https://img/maxres.jpg"},
			Medium: &model.Thumbnail{URL: "https://img/medium.jpg"},
		}
		url, err := usecase.SelectThumbnail(set)
		assert.NoError(t, err)
		assert.Equal(t, "https://img/maxres.jpg", url)
	})

	t.Run("falls_through_to_present_variant", func(t *testing.T) {
		set := model.ThumbnailSet{
			Medium:  &model.Thumbnail{URL: "https://img/medium.jpg"},
			Default: &model.Thumbnail{URL: "https://img/default.jpg"},
		}
		url, err := usecase.SelectThumbnail(set)
		assert.NoError(t, err)
		assert.Equal(t, "https://img/medium.jpg", url)
	})

	t.Run("skips_empty_urls", func(t *testing.T) {
		set := model.ThumbnailSet{
			Maxres:  &model.Thumbnail{},
			Default: &model.Thumbnail{URL: "https://img/default.jpg"},
		}
		url, err := usecase.SelectThumbnail(set)
		assert.NoError(t, err)
		assert.Equal(t, "https://img/default.jpg", url)
	})

	t.Run("empty_set_is_contract_violation", func(t *testing.T) {
		_, err := usecase.SelectThumbnail(model.ThumbnailSet{})
		assert.ErrorIs(t, err, apperrors.ErrNoThumbnail)
	})
}

func TestWatchURL(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", usecase.WatchURL("abc123"))
	assert.Equal(t, "", usecase.WatchURL(""))
}
