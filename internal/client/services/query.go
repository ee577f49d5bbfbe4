package services

import "github.com/dmitrijs2005/newsdesk/internal/client/client"

// Per-endpoint default page sizes.
const (
	NewsLimit             = 20
	BreakingNewsLimit     = 10
	CategoryLimit         = 20
	TagLimit              = 20
	FeaturedSectionsLimit = 10
	BookmarkLimit         = 10

	DefaultLanguageID = 1
)

// ListOptions overlays the listing defaults. Zero values keep them.
type ListOptions struct {
	Offset     int
	Limit      int
	LanguageID int
}

// NewsFilter narrows get_news. Empty fields are not sent.
type NewsFilter struct {
	CategorySlug string
	TagSlug      string
	Search       string
	Slug         string
	Headline     bool
}

func listingQuery(languageID, limit int, opts ListOptions) *client.Query {
	if opts.LanguageID > 0 {
		languageID = opts.LanguageID
	}
	if opts.Limit > 0 {
		limit = opts.Limit
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}
	return client.NewQuery().
		Set("language_id", languageID).
		Set("offset", offset).
		Set("limit", limit)
}

func (f NewsFilter) apply(q *client.Query) *client.Query {
	q.SetIf("category_slug", f.CategorySlug).
		SetIf("tag_slug", f.TagSlug).
		SetIf("search", f.Search).
		SetIf("slug", f.Slug)
	if f.Headline {
		q.Set("is_headline", 1)
	}
	return q
}
