package dto

import "trending-board/domain/model"

// Result count bounds enforced on every trending fetch.
const (
	MinResults     = 1
	MaxResults     = 50
	DefaultResults = 30
)

// TrendingListRequest represents request parameters for the trending chart.
type TrendingListRequest struct {
	RegionCode string `json:"region_code,omitempty"`
	CategoryID string `json:"category_id,omitempty"`
	MaxResults int64  `json:"max_results,omitempty"`
}

// Normalize applies defaults and clamps MaxResults into [MinResults, MaxResults].
func (r *TrendingListRequest) Normalize() {
	if r.RegionCode == "" {
		r.RegionCode = "KR"
	}
	if r.MaxResults == 0 {
		r.MaxResults = DefaultResults
	}
	if r.MaxResults < MinResults {
		r.MaxResults = MinResults
	}
	if r.MaxResults > MaxResults {
		r.MaxResults = MaxResults
	}
}

// VideoDisplay carries the human-readable rendering of a video's counters.
// Subscribers is empty when enrichment data was unavailable.
type VideoDisplay struct {
	Views       string `json:"views"`
	Likes       string `json:"likes"`
	Comments    string `json:"comments"`
	Subscribers string `json:"subscribers,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	WatchURL    string `json:"watch_url"`
}

// TrendingVideoItem is one rendered chart entry: the raw record plus its
// display formatting. Rank mirrors the API's ranking order verbatim.
type TrendingVideoItem struct {
	Rank    int                 `json:"rank"`
	Video   model.TrendingVideo `json:"video"`
	Display VideoDisplay        `json:"display"`
}

// TrendingVideoResponse represents the trending chart for one parameter
// tuple. Cached is request metadata, excluded from the serialized payload so
// a cache hit stays byte-identical to the original render; handlers surface
// it out of band.
type TrendingVideoResponse struct {
	RegionCode string              `json:"region_code"`
	CategoryID string              `json:"category_id"`
	Items      []TrendingVideoItem `json:"items"`
	Cached     bool                `json:"-"`
}

// CategoryListResponse represents the category selector options for a region.
// Items always start with the synthetic "all" entry.
type CategoryListResponse struct {
	RegionCode string                `json:"region_code"`
	Items      []model.VideoCategory `json:"items"`
}
