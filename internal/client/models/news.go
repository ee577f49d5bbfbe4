package models

import (
	"time"

	"github.com/dmitrijs2005/newsdesk/internal/htmlx"
)

type Category struct {
	ID           int64  `json:"id"`
	CategoryName string `json:"category_name"`
	Slug         string `json:"slug"`
	Image        string `json:"image"`
}

type Tag struct {
	ID      int64  `json:"id"`
	TagName string `json:"tag_name"`
	Slug    string `json:"slug"`
}

// News is a categorized story. Like and Bookmark reflect the current
// user's state when the request carried a bearer token.
type News struct {
	ID            int64     `json:"id"`
	CategoryID    int64     `json:"category_id"`
	SubcategoryID int64     `json:"subcategory_id"`
	TagID         string    `json:"tag_id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Image         string    `json:"image"`
	Description   string    `json:"description"`
	Date          string    `json:"date"`
	PublishedDate string    `json:"published_date"`
	ContentType   string    `json:"content_type"`
	ContentValue  string    `json:"content_value"`
	IsHeadline    FlexInt   `json:"is_headline"`
	TotalLike     FlexInt   `json:"total_like"`
	Like          FlexInt   `json:"like"`
	TotalViews    FlexInt   `json:"total_views"`
	Bookmark      FlexInt   `json:"bookmark"`
	Category      *Category `json:"category,omitempty"`
	Tags          []Tag     `json:"tag,omitempty"`
}

// Excerpt is the plain-text preview of the story body, at most limit runes.
func (n News) Excerpt(limit int) string {
	return htmlx.Excerpt(n.Description, limit)
}

type BreakingNews struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Slug         string  `json:"slug"`
	Image        string  `json:"image"`
	Description  string  `json:"description"`
	ContentType  string  `json:"content_type"`
	ContentValue string  `json:"content_value"`
	TotalViews   FlexInt `json:"total_views"`
}

func (b BreakingNews) Excerpt(limit int) string {
	return htmlx.Excerpt(b.Description, limit)
}

// AdSpace is the advertising slot attached to listings and featured sections.
type AdSpace struct {
	ID                  int64  `json:"id"`
	AdSpace             string `json:"ad_space"`
	AdFeaturedSectionID int64  `json:"ad_featured_section_id"`
	AdImage             string `json:"ad_image"`
	WebAdImage          string `json:"web_ad_image"`
	AdURL               string `json:"ad_url"`
}

// FeaturedSection is a curated group of stories.
type FeaturedSection struct {
	ID               int64          `json:"id"`
	Title            string         `json:"title"`
	Slug             string         `json:"slug"`
	ShortDescription string         `json:"short_description"`
	NewsType         string         `json:"news_type"`
	FilterType       string         `json:"filter_type"`
	StyleWeb         string         `json:"style_web"`
	News             []News         `json:"news"`
	BreakingNews     []BreakingNews `json:"breaking_news"`
	AdSpaces         *AdSpace       `json:"ad_spaces,omitempty"`
}

// FeaturedSections bundles the sections with the listing-level ad slot.
type FeaturedSections struct {
	Sections []FeaturedSection
	AdSpace  *AdSpace
}

// Page is one page of a paginated listing. Total is the server-side count
// when the endpoint reports it, otherwise len(Items).
type Page[T any] struct {
	Items []T
	Total int
}

// Favorite is a story pinned by the user in the hosted favorites database.
// Favorites are independent from API bookmarks.
type Favorite struct {
	UserID    int64
	NewsID    int64
	Title     string
	Slug      string
	Image     string
	CreatedAt time.Time
}
