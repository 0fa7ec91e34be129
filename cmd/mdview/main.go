package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/mdview"
	mdviewfs "github.com/fwojciec/mdview/fs"
	"github.com/fwojciec/mdview/goldmark"
	"github.com/fwojciec/mdview/htmltomarkdown"
	mdviewhttp "github.com/fwojciec/mdview/http"
	"github.com/fwojciec/mdview/latex"
	mdviewslog "github.com/fwojciec/mdview/slog"
	"github.com/fwojciec/mdview/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, mdview.ErrorMessage(err))
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database backing the local storage.
	DB *sqlite.DB

	// Services for end-to-end testing. When nil they are built from flags.
	Trees    mdview.TreeService
	Contents mdview.ContentService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("mdview"),
		kong.Description("Browse a tree of markdown documents with LaTeX math."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'mdview --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Document source: a remote server when --url is set, otherwise the
	// content directory.
	trees, contents := m.Trees, m.Contents
	if trees == nil || contents == nil {
		if cli.URL != "" {
			client := mdviewhttp.NewClient(cli.URL, mdviewhttp.WithTimeout(cli.Timeout))
			trees, contents = client, client
		} else {
			store := mdviewfs.NewContentStore(cli.Content, mdviewfs.WithExclude(cli.Exclude...))
			trees, contents = store, store
		}
	}
	deps.Trees = mdviewslog.NewLoggingTreeService(trees, deps.Logger)
	deps.Contents = mdviewslog.NewLoggingContentService(contents, deps.Logger)

	deps.Markdown = goldmark.NewRenderer(goldmark.WithHighlightStyle(cli.HighlightStyle))
	deps.Math = latex.NewTypesetter()
	deps.Converter = htmltomarkdown.NewConverter()

	// Local storage holds the CLI's theme preference.
	if cmd == "view" || cmd == "theme" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set MDVIEW_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()
		deps.Storage = sqlite.NewLocalStorage(m.DB)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("MDVIEW_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "mdview.db"
	}
	dir := filepath.Join(home, ".mdview")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "mdview.db")
}
