package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/newsdesk/internal/client/client"
	"github.com/dmitrijs2005/newsdesk/internal/client/models"
	"github.com/dmitrijs2005/newsdesk/internal/client/services"
)

const detailExcerptLen = 600

// News lists the latest stories, optionally of one category.
func (a *App) News(ctx context.Context, args []string) error {
	switch len(args) {
	case 0:
		return a.printNewsPage(a.news.GetNews(ctx, services.NewsFilter{}, services.ListOptions{}))
	case 1:
		return a.printNewsPage(a.news.GetNewsByCategory(ctx, args[0], services.ListOptions{}))
	default:
		return usageError("news [category]")
	}
}

func (a *App) Tag(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("tag <slug>")
	}
	return a.printNewsPage(a.news.GetNewsByTag(ctx, args[0], services.ListOptions{}))
}

// Search runs a full-text search; the remaining words form the query.
func (a *App) Search(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("search <text>")
	}
	return a.printNewsPage(a.news.SearchNews(ctx, strings.Join(args, " "), services.ListOptions{}))
}

func (a *App) Headlines(ctx context.Context) error {
	return a.printNewsPage(a.news.GetHeadlines(ctx, services.ListOptions{}))
}

func (a *App) Bookmarks(ctx context.Context) error {
	return a.printNewsPage(a.news.GetBookmarks(ctx, services.ListOptions{}))
}

// Breaking lists breaking news. Opening a single item by slug counts as a
// view of it.
func (a *App) Breaking(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return usageError("breaking [slug]")
	}
	slug := ""
	if len(args) == 1 {
		slug = args[0]
	}

	res := a.news.GetBreakingNews(ctx, slug, services.ListOptions{})
	if err := res.Err(); err != nil {
		return err
	}
	items := res.Data.Items
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No breaking news")
		return nil
	}

	if slug != "" && len(items) == 1 {
		b := items[0]
		fmt.Fprintf(a.out, "%s\n\n%s\n", b.Title, b.Excerpt(detailExcerptLen))
		return a.news.SetBreakingNewsView(ctx, b.ID).Err()
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSLUG\tVIEWS")
	for _, b := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", b.ID, b.Title, b.Slug, b.TotalViews)
	}
	return tw.Flush()
}

func (a *App) Categories(ctx context.Context) error {
	res := a.news.GetCategories(ctx, services.ListOptions{})
	if err := res.Err(); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCATEGORY\tSLUG")
	for _, c := range res.Data.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", c.ID, c.CategoryName, c.Slug)
	}
	return tw.Flush()
}

func (a *App) Tags(ctx context.Context) error {
	res := a.news.GetTags(ctx, services.ListOptions{})
	if err := res.Err(); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTAG\tSLUG")
	for _, t := range res.Data.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", t.ID, t.TagName, t.Slug)
	}
	return tw.Flush()
}

func (a *App) Featured(ctx context.Context) error {
	res := a.news.GetFeaturedSections(ctx, services.ListOptions{})
	if err := res.Err(); err != nil {
		return err
	}

	for _, s := range res.Data.Sections {
		fmt.Fprintf(a.out, "== %s ==\n", s.Title)
		if s.ShortDescription != "" {
			fmt.Fprintln(a.out, s.ShortDescription)
		}
		for _, n := range s.News {
			a.remember(n)
			fmt.Fprintf(a.out, "  #%d %s\n", n.ID, n.Title)
		}
		for _, b := range s.BreakingNews {
			fmt.Fprintf(a.out, "  ! %s\n", b.Title)
		}
	}
	if ad := res.Data.AdSpace; ad != nil {
		fmt.Fprintf(a.out, "Ad: %s %s\n", ad.AdSpace, ad.AdURL)
	}
	return nil
}

// View shows a story and records the view. A numeric argument refers to a
// story from the latest listing, anything else is a slug.
func (a *App) View(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("view <id|slug>")
	}

	var n models.News
	if id, err := strconv.ParseInt(args[0], 10, 64); err == nil {
		cached, ok := a.recalled(id)
		if !ok {
			cached = models.News{ID: id, Title: fmt.Sprintf("story #%d", id)}
		}
		n = cached
	} else {
		res := a.news.GetNewsBySlug(ctx, args[0])
		if err := res.Err(); err != nil {
			return err
		}
		n = res.Data
		a.remember(n)
	}

	a.printStory(n)
	return a.news.SetNewsView(ctx, n.ID).Err()
}

func (a *App) Like(ctx context.Context, args []string) error {
	id, on, err := parseToggle(args, "like <id> <0|1>")
	if err != nil {
		return err
	}
	if err := a.news.SetLike(ctx, id, on).Err(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "OK")
	return nil
}

func (a *App) Bookmark(ctx context.Context, args []string) error {
	id, on, err := parseToggle(args, "bookmark <id> <0|1>")
	if err != nil {
		return err
	}
	if err := a.news.SetBookmark(ctx, id, on).Err(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "OK")
	return nil
}

func (a *App) printNewsPage(res client.Result[models.Page[models.News]]) error {
	if err := res.Err(); err != nil {
		return err
	}
	items := res.Data.Items
	if len(items) == 0 {
		fmt.Fprintln(a.out, "Nothing found")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tLIKES\tVIEWS\t")
	for _, n := range items {
		a.remember(n)
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%s\n",
			n.ID, n.Title, categoryName(n), n.TotalLike, n.TotalViews, flags(n))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%d of %d\n", len(items), res.Data.Total)
	return nil
}

func (a *App) printStory(n models.News) {
	fmt.Fprintln(a.out, n.Title)
	meta := []string{}
	if c := categoryName(n); c != "" {
		meta = append(meta, c)
	}
	if n.Date != "" {
		meta = append(meta, n.Date)
	}
	for _, t := range n.Tags {
		meta = append(meta, "#"+t.Slug)
	}
	if len(meta) > 0 {
		fmt.Fprintln(a.out, strings.Join(meta, " | "))
	}
	if body := n.Excerpt(detailExcerptLen); body != "" {
		fmt.Fprintf(a.out, "\n%s\n", body)
	}
	fmt.Fprintf(a.out, "\n%d likes, %d views %s\n", n.TotalLike, n.TotalViews, flags(n))
}

func (a *App) remember(n models.News) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.listed == nil {
		a.listed = make(map[int64]models.News)
	}
	a.listed[n.ID] = n
}

func (a *App) recalled(id int64) (models.News, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	n, ok := a.listed[id]
	return n, ok
}

func categoryName(n models.News) string {
	if n.Category == nil {
		return ""
	}
	return n.Category.CategoryName
}

func flags(n models.News) string {
	var f []string
	if n.IsHeadline.Bool() {
		f = append(f, "headline")
	}
	if n.Like.Bool() {
		f = append(f, "liked")
	}
	if n.Bookmark.Bool() {
		f = append(f, "bookmarked")
	}
	if len(f) == 0 {
		return ""
	}
	return "[" + strings.Join(f, ",") + "]"
}

func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func parseToggle(args []string, usage string) (int64, bool, error) {
	if len(args) != 2 {
		return 0, false, usageError(usage)
	}
	id, ok := parseID(args[0])
	if !ok {
		return 0, false, usageError(usage)
	}
	switch args[1] {
	case "1":
		return id, true, nil
	case "0":
		return id, false, nil
	default:
		return 0, false, usageError(usage)
	}
}
