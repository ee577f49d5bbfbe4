package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"
)

var errFavoritesDisabled = errors.New("favorites are disabled (no favorites DSN configured)")

const favUsage = "fav add <id> | fav rm <id> | fav ls [offset]"

// Favorites manages the hosted favorites list. "fav add" takes a story
// from the latest listing so the stored title and slug are known.
func (a *App) Favorites(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError(favUsage)
	}
	if a.favorites == nil {
		return errFavoritesDisabled
	}

	switch args[0] {
	case "add":
		if len(args) != 2 {
			return usageError(favUsage)
		}
		id, ok := parseID(args[1])
		if !ok {
			return usageError(favUsage)
		}
		n, ok := a.recalled(id)
		if !ok {
			return fmt.Errorf("story #%d is not in the latest listing", id)
		}
		if err := a.favorites.Add(ctx, n); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Added %q to favorites\n", n.Title)

	case "rm":
		if len(args) != 2 {
			return usageError(favUsage)
		}
		id, ok := parseID(args[1])
		if !ok {
			return usageError(favUsage)
		}
		if err := a.favorites.Remove(ctx, id); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Removed")

	case "ls":
		offset := 0
		if len(args) == 2 {
			v, err := strconv.Atoi(args[1])
			if err != nil || v < 0 {
				return usageError(favUsage)
			}
			offset = v
		} else if len(args) > 2 {
			return usageError(favUsage)
		}
		favs, err := a.favorites.List(ctx, offset)
		if err != nil {
			return err
		}
		if len(favs) == 0 {
			fmt.Fprintln(a.out, "No favorites")
			return nil
		}
		tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTITLE\tSLUG\tADDED")
		for _, f := range favs {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", f.NewsID, f.Title, f.Slug, f.CreatedAt.Local().Format(time.DateTime))
		}
		return tw.Flush()

	default:
		return usageError(favUsage)
	}
	return nil
}
