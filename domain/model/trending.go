package model

import "time"

// AllCategoriesID is the synthetic category id meaning "no category filter".
const AllCategoriesID = "0"

// Thumbnail represents a single thumbnail variant.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// ThumbnailSet holds the resolution variants the API may return for a video.
// Any subset of the variants can be absent.
type ThumbnailSet struct {
	Maxres   *Thumbnail `json:"maxres,omitempty"`
	Standard *Thumbnail `json:"standard,omitempty"`
	High     *Thumbnail `json:"high,omitempty"`
	Medium   *Thumbnail `json:"medium,omitempty"`
	Default  *Thumbnail `json:"default,omitempty"`
}

// TrendingVideo represents one entry of the trending chart. Immutable once
// constructed; it lives only for a single render cycle (plus cache TTL).
// SubscriberCount is nil when channel enrichment was unavailable.
type TrendingVideo struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	ChannelID       string       `json:"channel_id"`
	ChannelName     string       `json:"channel_name"`
	PublishedAt     time.Time    `json:"published_at"`
	ViewCount       int64        `json:"view_count"`
	LikeCount       int64        `json:"like_count"`
	CommentCount    int64        `json:"comment_count"`
	Thumbnails      ThumbnailSet `json:"thumbnails"`
	SubscriberCount *int64       `json:"subscriber_count,omitempty"`
}

// VideoCategory represents an assignable video category for a region.
type VideoCategory struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// AllCategories is the synthetic head entry prepended to every category list.
func AllCategories() VideoCategory {
	return VideoCategory{ID: AllCategoriesID, Title: "전체"}
}

// ChannelStats carries the statistics slice of a channel used for enrichment.
type ChannelStats struct {
	ChannelID       string `json:"channel_id"`
	SubscriberCount int64  `json:"subscriber_count"`
	HiddenSubs      bool   `json:"hidden_subs"`
}

// Region is a preset region selectable in the dashboard.
type Region struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// RegionPresets lists the regions offered by the region selector, in display
// order. Free-text region codes outside this list are still accepted.
func RegionPresets() []Region {
	return []Region{
		{Code: "KR", Name: "대한민국"},
		{Code: "US", Name: "미국"},
		{Code: "JP", Name: "일본"},
		{Code: "GB", Name: "영국"},
		{Code: "DE", Name: "독일"},
		{Code: "FR", Name: "프랑스"},
		{Code: "IN", Name: "인도"},
		{Code: "ID", Name: "인도네시아"},
		{Code: "VN", Name: "베트남"},
		{Code: "TW", Name: "대만"},
		{Code: "TH", Name: "태국"},
		{Code: "PH", Name: "필리핀"},
		{Code: "CA", Name: "캐나다"},
		{Code: "AU", Name: "호주"},
		{Code: "BR", Name: "브라질"},
		{Code: "RU", Name: "러시아"},
		{Code: "TR", Name: "튀르키예"},
		{Code: "UA", Name: "우크라이나"},
		{Code: "SA", Name: "사우디아라비아"},
		{Code: "AE", Name: "아랍에미리트"},
	}
}
