package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/newsdesk/internal/client/client"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  map[string][]string
	err   error
}

func (f *fakeExec) call(name string, args []string) error {
	f.calls = append(f.calls, name)
	if f.args == nil {
		f.args = map[string][]string{}
	}
	f.args[name] = args
	return f.err
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) SignUp(context.Context) error { return f.call("signup", nil) }
func (f *fakeExec) SignIn(context.Context) error {
	f.loggedIn = true
	return f.call("signin", nil)
}
func (f *fakeExec) SignOut(context.Context) error {
	f.loggedIn = false
	return f.call("signout", nil)
}
func (f *fakeExec) WhoAmI(context.Context) error                { return f.call("whoami", nil) }
func (f *fakeExec) Profile(_ context.Context, a []string) error { return f.call("profile", a) }
func (f *fakeExec) News(_ context.Context, a []string) error    { return f.call("news", a) }
func (f *fakeExec) Tag(_ context.Context, a []string) error     { return f.call("tag", a) }
func (f *fakeExec) Search(_ context.Context, a []string) error  { return f.call("search", a) }
func (f *fakeExec) Headlines(context.Context) error             { return f.call("headlines", nil) }
func (f *fakeExec) Breaking(_ context.Context, a []string) error {
	return f.call("breaking", a)
}
func (f *fakeExec) Categories(context.Context) error              { return f.call("categories", nil) }
func (f *fakeExec) Tags(context.Context) error                    { return f.call("tags", nil) }
func (f *fakeExec) Featured(context.Context) error                { return f.call("featured", nil) }
func (f *fakeExec) View(_ context.Context, a []string) error      { return f.call("view", a) }
func (f *fakeExec) Like(_ context.Context, a []string) error      { return f.call("like", a) }
func (f *fakeExec) Bookmark(_ context.Context, a []string) error  { return f.call("bookmark", a) }
func (f *fakeExec) Bookmarks(context.Context) error               { return f.call("bookmarks", nil) }
func (f *fakeExec) Favorites(_ context.Context, a []string) error { return f.call("fav", a) }
func (f *fakeExec) Stats(context.Context) error                   { return f.call("stats", nil) }

// capturePrintln records everything the REPL prints.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	capturePrintln(t)

	input := strings.Join([]string{
		"signin",
		"news technology",
		"tag climate",
		"search solar farm",
		"headlines",
		"breaking storm",
		"categories",
		"tags",
		"featured",
		"view 3",
		"like 3 1",
		"bookmark 3 0",
		"bookmarks",
		"whoami",
		"profile edit",
		"fav add 3",
		"stats",
		"signout",
		"signup",
		"exit",
		"news",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader(input)))

	require.Equal(t, []string{
		"signin", "news", "tag", "search", "headlines", "breaking", "categories", "tags",
		"featured", "view", "like", "bookmark", "bookmarks", "whoami", "profile", "fav",
		"stats", "signout", "signup",
	}, exec.calls)
	require.Equal(t, []string{"technology"}, exec.args["news"])
	require.Equal(t, []string{"solar", "farm"}, exec.args["search"])
	require.Equal(t, []string{"3", "1"}, exec.args["like"])
	require.Equal(t, []string{"add", "3"}, exec.args["fav"])
}

func TestRunREPL_Aliases(t *testing.T) {
	capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("login\nlogout\nquit\n")))

	require.Equal(t, []string{"signin", "signout"}, exec.calls)
}

func TestRunREPL_PromptHelpAndUnknown(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{}
	input := "\nhelp\nfoobar\n"
	runREPL(context.Background(), exec, func() string { return "(alice online)" }, bufio.NewReader(strings.NewReader(input)))

	out := strings.Join(*lines, "\n")
	require.Contains(t, out, "nd (alice online)> ")
	require.Contains(t, out, "Account: signup, signin")
	require.Contains(t, out, "Unknown command: foobar")
	require.Empty(t, exec.calls)
}

func TestRunREPL_HelpWhenSignedIn(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("help\n")))

	out := strings.Join(*lines, "\n")
	require.Contains(t, out, "signout")
	require.NotContains(t, out, "Account: signup, signin")
}

func TestRunREPL_ReportsErrorsAndContinues(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{err: fmt.Errorf("%w: Unauthenticated.", client.ErrUnauthorized)}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("bookmarks\nheadlines\nexit\n")))

	require.Equal(t, []string{"bookmarks", "headlines"}, exec.calls)
	out := strings.Join(*lines, "\n")
	require.Contains(t, out, "Unauthenticated.")
	require.Contains(t, out, "(sign in first)")
	require.Contains(t, out, "Bye!")
}

func TestReport(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil prints nothing", err: nil, want: ""},
		{name: "usage", err: usageError("tag <slug>"), want: "Usage: tag <slug>"},
		{name: "unavailable", err: fmt.Errorf("%w: dial tcp", client.ErrUnavailable), want: "(API unreachable)"},
		{name: "remote", err: fmt.Errorf("%w: Invalid credentials", client.ErrRemote), want: "Error: remote error: Invalid credentials"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lines := capturePrintln(t)
			report(tc.err)
			if tc.want == "" {
				require.Empty(t, *lines)
				return
			}
			require.Len(t, *lines, 1)
			require.Contains(t, (*lines)[0], tc.want)
		})
	}
}
