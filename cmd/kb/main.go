package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/knowbase"
	"github.com/fwojciec/knowbase/memory"
	kbslog "github.com/fwojciec/knowbase/slog"
	"github.com/fwojciec/knowbase/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// A missing .env file is fine; flags and the environment still apply.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Backend names accepted by --backend.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Main represents the program.
type Main struct {
	// Input for interactive commands. Set before calling Run().
	Stdin io.Reader

	// SQLite database, only opened for the sqlite backend.
	DB *sqlite.DB

	// Service for end-to-end testing.
	EntryService knowbase.EntryService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin: os.Stdin,
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
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("kb"),
		kong.Description("Browse a knowledge base of topic/subtopic entries"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'kb --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	entries, err := loadEntries(cli.Data)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Set KB_DATA or --data to a .json or .yaml entry file")
		return fmt.Errorf("failed to load entries: %w", err)
	}

	svc, err := m.openEntryService(cli.Backend)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := knowbase.ImportEntries(ctx, svc, entries); err != nil {
		return fmt.Errorf("failed to index entries: %w", err)
	}

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		svc = kbslog.NewLoggingEntryService(svc, logger)
	}

	m.EntryService = svc
	deps.Entries = svc

	return kongCtx.Run(deps)
}

// openEntryService builds the entry service for backend.
func (m *Main) openEntryService(backend string) (knowbase.EntryService, error) {
	switch backend {
	case BackendSQLite:
		m.DB = sqlite.NewDB(sqlite.MemoryPath)
		if err := m.DB.Open(); err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		return sqlite.NewEntryService(m.DB), nil
	case BackendMemory, "":
		return memory.NewEntryService(memory.NewIndex()), nil
	default:
		return nil, knowbase.Errorf(knowbase.EINVALID, "unknown backend %q", backend)
	}
}
