package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/newsdesk/internal/client/client"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	SignUp(ctx context.Context) error
	SignIn(ctx context.Context) error
	SignOut(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Profile(ctx context.Context, args []string) error

	News(ctx context.Context, args []string) error
	Tag(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Headlines(ctx context.Context) error
	Breaking(ctx context.Context, args []string) error
	Categories(ctx context.Context) error
	Tags(ctx context.Context) error
	Featured(ctx context.Context) error
	View(ctx context.Context, args []string) error

	Like(ctx context.Context, args []string) error
	Bookmark(ctx context.Context, args []string) error
	Bookmarks(ctx context.Context) error

	Favorites(ctx context.Context, args []string) error
	Stats(ctx context.Context) error
}

// usageError is returned by commands called with the wrong arguments.
type usageError string

func (u usageError) Error() string { return "usage: " + string(u) }

// runREPL starts a simple read–eval–print loop for the newsdesk CLI.
//
// It reads a line from reader, parses the first token as the command and
// passes the rest as arguments. The loop exits on EOF or when the user
// types "exit" or "quit". Command errors are reported and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("nd %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				printlnFn("Error:", err)
			}
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printHelp(a.isLoggedIn())

		case "signup":
			report(a.SignUp(ctx))
		case "signin", "login":
			report(a.SignIn(ctx))
		case "signout", "logout":
			report(a.SignOut(ctx))
		case "whoami":
			report(a.WhoAmI(ctx))
		case "profile":
			report(a.Profile(ctx, args))

		case "news":
			report(a.News(ctx, args))
		case "tag":
			report(a.Tag(ctx, args))
		case "search":
			report(a.Search(ctx, args))
		case "headlines":
			report(a.Headlines(ctx))
		case "breaking":
			report(a.Breaking(ctx, args))
		case "categories":
			report(a.Categories(ctx))
		case "tags":
			report(a.Tags(ctx))
		case "featured":
			report(a.Featured(ctx))
		case "view":
			report(a.View(ctx, args))

		case "like":
			report(a.Like(ctx, args))
		case "bookmark":
			report(a.Bookmark(ctx, args))
		case "bookmarks":
			report(a.Bookmarks(ctx))

		case "fav":
			report(a.Favorites(ctx, args))
		case "stats":
			report(a.Stats(ctx))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func printHelp(loggedIn bool) {
	printlnFn("Reading: news [category], tag <slug>, search <text>, headlines, breaking [slug],")
	printlnFn("         categories, tags, featured, view <id|slug>")
	if loggedIn {
		printlnFn("Account: whoami, profile [edit], like <id> <0|1>, bookmark <id> <0|1>, bookmarks,")
		printlnFn("         fav add|rm <id>, fav ls [offset], signout")
	} else {
		printlnFn("Account: signup, signin")
	}
	printlnFn("Other:   stats, help, exit")
}

func report(err error) {
	if err == nil {
		return
	}

	var usage usageError
	switch {
	case errors.As(err, &usage):
		printlnFn("Usage:", string(usage))
	case errors.Is(err, client.ErrUnauthorized):
		printlnFn("Error:", err, "(sign in first)")
	case errors.Is(err, client.ErrUnavailable):
		printlnFn("Error:", err, "(API unreachable)")
	default:
		printlnFn("Error:", err)
	}
}
