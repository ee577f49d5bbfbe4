package content

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/newsdesk/internal/client/models"
)

const seedLanguageID = 1

// Seeded returns a store filled with a small fixed catalog in language 1.
func Seeded() *Store {
	s := NewStore()

	s.categories = []models.Category{
		{ID: 1, CategoryName: "World", Slug: "world", Image: "categories/world.jpg"},
		{ID: 2, CategoryName: "Technology", Slug: "technology", Image: "categories/technology.jpg"},
		{ID: 3, CategoryName: "Sports", Slug: "sports", Image: "categories/sports.jpg"},
	}
	s.tags = []models.Tag{
		{ID: 1, TagName: "Elections", Slug: "elections"},
		{ID: 2, TagName: "AI", Slug: "ai"},
		{ID: 3, TagName: "Football", Slug: "football"},
		{ID: 4, TagName: "Climate", Slug: "climate"},
	}

	type item struct {
		category int
		tags     []int
		title    string
		body     string
		headline bool
	}
	items := []item{
		{1, []int{1}, "Polls open in the capital", "<p>Voters queued <b>before dawn</b> as polls opened.</p>", true},
		{1, []int{4}, "Summit agrees on emissions targets", "<p>Delegates signed a <em>joint</em> statement.</p>", false},
		{2, []int{2}, "New model tops language benchmark", "<p>The lab released weights <a href=\"#\">today</a>.</p><script>track()</script>", true},
		{2, []int{2}, "Chipmakers expand capacity", "<p>Three new fabs were announced.</p>", false},
		{2, nil, "Browser update ships faster engine", "<div>Pages load up to 20% faster.</div>", false},
		{3, []int{3}, "Late goal settles the derby", "<p>A stoppage-time header decided it.</p>", true},
		{3, []int{3}, "Transfer window closes quietly", "<p>Few clubs made signings.</p>", false},
		{1, []int{1, 4}, "Candidates debate climate policy", "<p>The debate ran <i>two hours</i>.</p>", false},
	}

	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	for i, it := range items {
		id := int64(i + 1)
		cat := s.categories[it.category-1]
		st := &story{
			News: models.News{
				ID:            id,
				CategoryID:    cat.ID,
				Title:         it.title,
				Slug:          fmt.Sprintf("story-%d", id),
				Image:         fmt.Sprintf("news/%d.jpg", id),
				Description:   it.body,
				Date:          base.Add(time.Duration(i) * time.Hour).Format(time.DateTime),
				PublishedDate: base.Add(time.Duration(i) * time.Hour).Format(time.DateOnly),
				ContentType:   "standard_post",
				Category:      &cat,
			},
			languageID: seedLanguageID,
		}
		if it.headline {
			st.IsHeadline = 1
		}
		for _, tid := range it.tags {
			tag := s.tags[tid-1]
			st.Tags = append(st.Tags, tag)
			st.tagSlugs = append(st.tagSlugs, tag.Slug)
		}
		// newest first
		s.stories = append([]*story{st}, s.stories...)
	}

	s.breaking = []models.BreakingNews{
		{ID: 1, Title: "Storm warning issued for the coast", Slug: "storm-warning", Description: "<p>Residents are advised to stay indoors.</p>", ContentType: "standard_post"},
		{ID: 2, Title: "Markets halt trading briefly", Slug: "markets-halt", Description: "<p>Trading resumed after 15 minutes.</p>", ContentType: "standard_post"},
		{ID: 3, Title: "Rail strike called off", Slug: "rail-strike", Description: "<p>Unions accepted the new offer.</p>", ContentType: "standard_post"},
	}

	s.adSpace = &models.AdSpace{ID: 1, AdSpace: "featured_section", AdFeaturedSectionID: 1, AdImage: "ads/1.jpg", WebAdImage: "ads/1-web.jpg", AdURL: "https://example.com/ad"}

	s.sections = []section{
		{
			FeaturedSection: models.FeaturedSection{ID: 1, Title: "Top stories", Slug: "top-stories", ShortDescription: "What matters now", NewsType: "news", FilterType: "custom", StyleWeb: "style_1"},
			languageID:      seedLanguageID,
			newsIDs:         []int64{1, 3, 6},
		},
		{
			FeaturedSection: models.FeaturedSection{ID: 2, Title: "Tech watch", Slug: "tech-watch", NewsType: "news", FilterType: "custom", StyleWeb: "style_2"},
			languageID:      seedLanguageID,
			newsIDs:         []int64{3, 4, 5},
		},
	}
	return s
}
