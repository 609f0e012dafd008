package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/lawtree"
	"github.com/fwojciec/lawtree/etree"
	"github.com/fwojciec/lawtree/goquery"
	"github.com/fwojciec/lawtree/htmltomarkdown"
	lawslog "github.com/fwojciec/lawtree/slog"
	"github.com/fwojciec/lawtree/sqlite"
	"github.com/fwojciec/lawtree/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Record service. When set before Run(), no database is opened.
	Records lawtree.RecordService
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
		kong.Name("lawtree"),
		kong.Description("Parse Vietnamese legal documents into structured trees."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{"formats": formatEnum},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'lawtree --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cli.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cli.LogLevel, err)
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Parser = lawslog.NewLoggingParser(goquery.NewParser(goquery.WithMaxFragments(cli.MaxFragments)), deps.Logger)
	deps.Converter = htmltomarkdown.NewConverter()
	deps.Encoders = defaultEncoders()

	if cli.needsRecords(kongCtx.Selected().Name) {
		if m.Records == nil {
			if cli.DB != "" {
				m.DBPath = cli.DB
			}
			m.DB = sqlite.NewDB(m.DBPath)
			if err := m.DB.Open(); err != nil {
				fmt.Fprintf(stderr, "Hint: Set LAWTREE_DB to use a different database path\n")
				return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
			}
			defer m.Close()
			m.Records = sqlite.NewRecordService(m.DB)
		}
		deps.Records = lawslog.NewLoggingRecordService(m.Records, deps.Logger)
	}

	return kongCtx.Run(deps)
}

func defaultEncoders() map[string]lawtree.Encoder {
	encoders := make(map[string]lawtree.Encoder)
	for _, e := range []lawtree.Encoder{lawtree.JSONEncoder{}, yaml.NewEncoder(), etree.NewEncoder()} {
		encoders[e.Name()] = e
	}
	return encoders
}

func defaultDBPath() string {
	if path := os.Getenv("LAWTREE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "lawtree.db"
	}
	dir := filepath.Join(home, ".lawtree")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "lawtree.db")
}
