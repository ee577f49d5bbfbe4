// Package content is the mock API's in-memory news catalog: stories,
// breaking news, categories, tags, featured sections and per-user likes
// and bookmarks.
package content

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/newsdesk/internal/client/models"
)

var ErrNotFound = errors.New("not found")

// Query selects stories. Empty string filters match everything.
type Query struct {
	LanguageID   int
	Offset       int
	Limit        int
	CategorySlug string
	TagSlug      string
	Search       string
	Slug         string
	Headline     bool
	// UserID, when set, fills the per-user Like and Bookmark flags.
	UserID int64
}

type story struct {
	models.News
	languageID int
	tagSlugs   []string
}

type section struct {
	models.FeaturedSection
	languageID int
	newsIDs    []int64
}

type Store struct {
	mu sync.RWMutex

	categories []models.Category
	tags       []models.Tag
	stories    []*story
	breaking   []models.BreakingNews
	sections   []section
	adSpace    *models.AdSpace

	likes         map[int64]map[int64]struct{}
	bookmarks     map[int64]map[int64]time.Time
	views         map[int64]int
	breakingViews map[int64]int
}

func NewStore() *Store {
	return &Store{
		likes:         make(map[int64]map[int64]struct{}),
		bookmarks:     make(map[int64]map[int64]time.Time),
		views:         make(map[int64]int),
		breakingViews: make(map[int64]int),
	}
}

func (s *Store) News(q Query) ([]models.News, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(q.Search))
	var matched []models.News
	for _, st := range s.stories {
		if st.languageID != q.LanguageID {
			continue
		}
		if q.Slug != "" && st.Slug != q.Slug {
			continue
		}
		if q.CategorySlug != "" && (st.Category == nil || st.Category.Slug != q.CategorySlug) {
			continue
		}
		if q.TagSlug != "" && !contains(st.tagSlugs, q.TagSlug) {
			continue
		}
		if q.Headline && !st.IsHeadline.Bool() {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(st.Title), search) &&
			!strings.Contains(strings.ToLower(st.Description), search) {
			continue
		}
		matched = append(matched, s.decorate(st, q.UserID))
	}
	return paginate(matched, q.Offset, q.Limit), len(matched)
}

// BreakingNews filters by slug when it is not empty.
func (s *Store) BreakingNews(slug string, offset, limit int) ([]models.BreakingNews, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []models.BreakingNews
	for _, b := range s.breaking {
		if slug != "" && b.Slug != slug {
			continue
		}
		b.TotalViews = models.FlexInt(s.breakingViews[b.ID])
		matched = append(matched, b)
	}
	return paginate(matched, offset, limit), len(matched)
}

func (s *Store) Categories(offset, limit int) ([]models.Category, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return paginate(s.categories, offset, limit), len(s.categories)
}

func (s *Store) Tags(offset, limit int) ([]models.Tag, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return paginate(s.tags, offset, limit), len(s.tags)
}

func (s *Store) FeaturedSections(languageID, offset, limit int, userID int64) ([]models.FeaturedSection, *models.AdSpace) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.FeaturedSection
	for _, sec := range s.sections {
		if sec.languageID != languageID {
			continue
		}
		fs := sec.FeaturedSection
		fs.News = make([]models.News, 0, len(sec.newsIDs))
		for _, id := range sec.newsIDs {
			if st := s.find(id); st != nil {
				fs.News = append(fs.News, s.decorate(st, userID))
			}
		}
		out = append(out, fs)
	}
	return paginate(out, offset, limit), s.adSpace
}

func (s *Store) AddNewsView(newsID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.find(newsID) == nil {
		return ErrNotFound
	}
	s.views[newsID]++
	return nil
}

func (s *Store) AddBreakingNewsView(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.breaking {
		if b.ID == id {
			s.breakingViews[id]++
			return nil
		}
	}
	return ErrNotFound
}

// SetLike is idempotent per (user, story) and returns the new like total.
func (s *Store) SetLike(userID, newsID int64, like bool) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.find(newsID) == nil {
		return 0, ErrNotFound
	}
	users := s.likes[newsID]
	if users == nil {
		users = make(map[int64]struct{})
		s.likes[newsID] = users
	}
	if like {
		users[userID] = struct{}{}
	} else {
		delete(users, userID)
	}
	return len(users), nil
}

// SetBookmark is idempotent per (user, story).
func (s *Store) SetBookmark(userID, newsID int64, bookmark bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.find(newsID) == nil {
		return ErrNotFound
	}
	marks := s.bookmarks[userID]
	if marks == nil {
		marks = make(map[int64]time.Time)
		s.bookmarks[userID] = marks
	}
	if bookmark {
		if _, ok := marks[newsID]; !ok {
			marks[newsID] = time.Now()
		}
	} else {
		delete(marks, newsID)
	}
	return nil
}

// Bookmarks lists the user's bookmarked stories, most recent first.
func (s *Store) Bookmarks(userID int64, offset, limit int) ([]models.News, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	marks := s.bookmarks[userID]
	ids := make([]int64, 0, len(marks))
	for id := range marks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		ti, tj := marks[ids[i]], marks[ids[j]]
		if ti.Equal(tj) {
			return ids[i] > ids[j]
		}
		return ti.After(tj)
	})

	out := make([]models.News, 0, len(ids))
	for _, id := range ids {
		if st := s.find(id); st != nil {
			out = append(out, s.decorate(st, userID))
		}
	}
	return paginate(out, offset, limit), len(out)
}

func (s *Store) find(id int64) *story {
	for _, st := range s.stories {
		if st.ID == id {
			return st
		}
	}
	return nil
}

func (s *Store) decorate(st *story, userID int64) models.News {
	n := st.News
	n.Tags = append([]models.Tag(nil), st.Tags...)
	n.TotalViews = models.FlexInt(s.views[st.ID])
	n.TotalLike = models.FlexInt(len(s.likes[st.ID]))
	n.Like, n.Bookmark = 0, 0
	if userID != 0 {
		if _, ok := s.likes[st.ID][userID]; ok {
			n.Like = 1
		}
		if _, ok := s.bookmarks[userID][st.ID]; ok {
			n.Bookmark = 1
		}
	}
	return n
}

func paginate[T any](items []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return append([]T(nil), items[offset:end]...)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
