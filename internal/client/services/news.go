package services

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/newsdesk/internal/client/client"
	"github.com/dmitrijs2005/newsdesk/internal/client/models"
)

const (
	pathNews             = "get_news"
	pathBreakingNews     = "get_breaking_news"
	pathCategories       = "get_category"
	pathTags             = "get_tag"
	pathFeaturedSections = "get_featured_sections"
	pathBookmarks        = "get_bookmark"
	pathSetNewsView      = "set_news_view"
	pathSetBreakingView  = "set_breaking_news_view"
	pathSetLikeDislike   = "set_like_dislike"
	pathSetBookmark      = "set_bookmark"

	errNewsNotFound = "news not found"
	pingLimit       = 1
)

// NewsService reads content and submits per-story user actions.
// It never touches the session.
type NewsService struct {
	exec       client.Executor
	languageID int
}

// NewNewsService uses languageID as the listing default; values below 1
// fall back to DefaultLanguageID.
func NewNewsService(exec client.Executor, languageID int) *NewsService {
	if languageID < 1 {
		languageID = DefaultLanguageID
	}
	return &NewsService{exec: exec, languageID: languageID}
}

func (s *NewsService) GetNews(ctx context.Context, f NewsFilter, opts ListOptions) client.Result[models.Page[models.News]] {
	q := f.apply(listingQuery(s.languageID, NewsLimit, opts))
	return decodePage[models.News](s.exec.Execute(ctx, client.Get(pathNews, q)))
}

func (s *NewsService) GetNewsByCategory(ctx context.Context, slug string, opts ListOptions) client.Result[models.Page[models.News]] {
	return s.GetNews(ctx, NewsFilter{CategorySlug: slug}, opts)
}

func (s *NewsService) GetNewsByTag(ctx context.Context, slug string, opts ListOptions) client.Result[models.Page[models.News]] {
	return s.GetNews(ctx, NewsFilter{TagSlug: slug}, opts)
}

func (s *NewsService) SearchNews(ctx context.Context, text string, opts ListOptions) client.Result[models.Page[models.News]] {
	return s.GetNews(ctx, NewsFilter{Search: text}, opts)
}

func (s *NewsService) GetHeadlines(ctx context.Context, opts ListOptions) client.Result[models.Page[models.News]] {
	return s.GetNews(ctx, NewsFilter{Headline: true}, opts)
}

// GetNewsBySlug returns the first story of a slug-filtered listing.
func (s *NewsService) GetNewsBySlug(ctx context.Context, slug string) client.Result[models.News] {
	page := s.GetNews(ctx, NewsFilter{Slug: slug}, ListOptions{Limit: 1})
	if !page.Success {
		return client.Fail[models.News](page)
	}
	if len(page.Data.Items) == 0 {
		return client.Result[models.News]{Error: errNewsNotFound, Kind: client.KindRemote, Status: page.Status, Payload: page.Payload}
	}
	return client.Result[models.News]{Success: true, Data: page.Data.Items[0], Message: page.Message, Status: page.Status, Payload: page.Payload}
}

// GetBreakingNews always sends slug (possibly empty) and is_headline=1;
// the endpoint requires both keys.
func (s *NewsService) GetBreakingNews(ctx context.Context, slug string, opts ListOptions) client.Result[models.Page[models.BreakingNews]] {
	q := listingQuery(s.languageID, BreakingNewsLimit, opts).
		Set("slug", slug).
		Set("is_headline", 1)
	return decodePage[models.BreakingNews](s.exec.Execute(ctx, client.Get(pathBreakingNews, q)))
}

func (s *NewsService) GetCategories(ctx context.Context, opts ListOptions) client.Result[models.Page[models.Category]] {
	q := listingQuery(s.languageID, CategoryLimit, opts)
	return decodePage[models.Category](s.exec.Execute(ctx, client.Get(pathCategories, q)))
}

func (s *NewsService) GetTags(ctx context.Context, opts ListOptions) client.Result[models.Page[models.Tag]] {
	q := listingQuery(s.languageID, TagLimit, opts)
	return decodePage[models.Tag](s.exec.Execute(ctx, client.Get(pathTags, q)))
}

// GetFeaturedSections decodes "data" as the section list and the
// "ad_spaces" sibling as the listing-level ad slot.
func (s *NewsService) GetFeaturedSections(ctx context.Context, opts ListOptions) client.Result[models.FeaturedSections] {
	q := listingQuery(s.languageID, FeaturedSectionsLimit, opts)
	raw := s.exec.Execute(ctx, client.Get(pathFeaturedSections, q))

	sections := client.DecodeData[[]models.FeaturedSection](raw)
	if !sections.Success {
		return client.Fail[models.FeaturedSections](sections)
	}
	out := models.FeaturedSections{Sections: sections.Data, AdSpace: adSpace(raw.Data)}
	return client.Result[models.FeaturedSections]{Success: true, Data: out, Message: raw.Message, Status: raw.Status, Payload: raw.Payload}
}

// SetNewsView counts a view. Callers usually ignore the result.
func (s *NewsService) SetNewsView(ctx context.Context, newsID int64) client.Result[struct{}] {
	body := map[string]any{"news_id": newsID}
	return client.Discard(s.exec.Execute(ctx, client.Post(pathSetNewsView, body)))
}

func (s *NewsService) SetBreakingNewsView(ctx context.Context, breakingNewsID int64) client.Result[struct{}] {
	body := map[string]any{"breaking_news_id": breakingNewsID}
	return client.Discard(s.exec.Execute(ctx, client.Post(pathSetBreakingView, body)))
}

// SetLike sends status 1 (like) or 0 (unlike). The caller derives the
// toggle from the state it last saw; nothing is tracked here.
func (s *NewsService) SetLike(ctx context.Context, newsID int64, like bool) client.Result[struct{}] {
	body := map[string]any{"news_id": newsID, "status": status(like)}
	return client.Discard(s.exec.Execute(ctx, client.Post(pathSetLikeDislike, body)))
}

// SetBookmark sends status 1 (bookmark) or 0 (remove). Repeated calls are
// sent as-is.
func (s *NewsService) SetBookmark(ctx context.Context, newsID int64, bookmark bool) client.Result[struct{}] {
	body := map[string]any{"news_id": newsID, "status": status(bookmark)}
	return client.Discard(s.exec.Execute(ctx, client.Post(pathSetBookmark, body)))
}

func (s *NewsService) GetBookmarks(ctx context.Context, opts ListOptions) client.Result[models.Page[models.News]] {
	q := listingQuery(s.languageID, BookmarkLimit, opts)
	return decodePage[models.News](s.exec.Execute(ctx, client.Get(pathBookmarks, q)))
}

// Ping reports whether the API answered at all. A remote-declared failure
// still means the server is reachable.
func (s *NewsService) Ping(ctx context.Context) error {
	q := listingQuery(s.languageID, pingLimit, ListOptions{})
	res := s.exec.Execute(ctx, client.Get(pathCategories, q))
	if res.Kind == client.KindTransport || res.Kind == client.KindInvalidRequest {
		return res.Err()
	}
	return nil
}

func status(on bool) int {
	if on {
		return 1
	}
	return 0
}

// decodePage reads "data" as a list and "total" as the server-side count.
// A missing or null list is an empty page.
func decodePage[T any](raw client.Result[*client.Payload]) client.Result[models.Page[T]] {
	if !raw.Success {
		return client.Fail[models.Page[T]](raw)
	}
	page := models.Page[T]{Items: []T{}}
	if raw.Data != nil && raw.Data.Envelope != nil && raw.Data.Envelope.HasData() {
		items := client.DecodeData[[]T](raw)
		if !items.Success {
			return client.Fail[models.Page[T]](items)
		}
		page.Items = items.Data
	} else if raw.Data == nil || raw.Data.Envelope == nil {
		return client.Result[models.Page[T]]{
			Error: "response is not a JSON envelope", Kind: client.KindRemote,
			Status: raw.Status, Payload: raw.Payload,
		}
	}

	page.Total = len(page.Items)
	if n, ok := raw.Data.Envelope.TotalCount(); ok {
		page.Total = n
	}
	return client.Result[models.Page[T]]{Success: true, Data: page, Message: raw.Message, Status: raw.Status, Payload: raw.Payload}
}

// adSpace tolerates the API sending an empty list instead of an object.
func adSpace(p *client.Payload) *models.AdSpace {
	if p == nil || p.Envelope == nil || len(p.Envelope.AdSpaces) == 0 {
		return nil
	}
	var ad models.AdSpace
	if err := json.Unmarshal(p.Envelope.AdSpaces, &ad); err != nil || ad.ID == 0 {
		return nil
	}
	return &ad
}
