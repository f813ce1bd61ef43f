package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"

	"github.com/chaz8081/keysession/internal/config"
	"github.com/chaz8081/keysession/internal/hook"
	"github.com/chaz8081/keysession/internal/keys"
	"github.com/chaz8081/keysession/internal/output"
	"github.com/chaz8081/keysession/internal/session"
)

// CLI flags. Zero values leave the config file setting in place.
type CLI struct {
	Config   string        `help:"Path to config file (default: ~/.config/keysession/config.yaml)." type:"path"`
	Quiet    time.Duration `help:"Silence after the last key before a session is emitted."`
	Watchdog time.Duration `help:"First watchdog wait after a session starts."`
	Format   string        `help:"Output format: text, json or log."`
	LogLevel string        `help:"Log level: debug, info, warn or error."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("keysession"),
		kong.Description("Groups keystrokes into typing sessions per focused window and prints one record per session."),
		kong.UsageOnError(),
	)

	// Load configuration
	cfg, source, err := loadConfig(cli.Config)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	log.Printf("Config: %s", source)
	cli.apply(cfg)

	if err := cfg.Validate(); err != nil {
		log.Fatalf("config validation: %v", err)
	}

	setupLogging(cfg.LogLevel)
	printBanner(cfg)

	// Output sink
	base, err := output.New(cfg.Output.Format, os.Stdout)
	if err != nil {
		log.Fatalf("output: %v", err)
	}
	sink := base
	var async *output.Async
	if cfg.Output.QueueSize > 0 {
		async = output.NewAsync(base, cfg.Output.QueueSize)
		sink = async
	}

	// Session engine
	resolver := keys.NewResolver(keys.USLayout{}, cfg.Output.ControlPrefix)
	engine, err := session.NewEngine(session.NewEmitter(resolver, sink), session.Options{
		Quiet:    cfg.Debounce.Quiet,
		Watchdog: cfg.Debounce.Watchdog,
	})
	if err != nil {
		log.Fatalf("session engine: %v", err)
	}

	// Keyboard hook
	listener := hook.NewListener(func(ev keys.RawKeyEvent, title string) {
		engine.OnEvent(ev, title)
	}, hook.NewTitleSource(cfg.Output.PlaceholderTitle))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	hookErr := make(chan error, 1)
	go func() {
		hookErr <- listener.Start()
	}()

	log.Println("Ready! Recording typing sessions. Ctrl+C to quit.")

	select {
	case err := <-hookErr:
		if err != nil {
			log.Fatalf("Failed to start keyboard hook: %v\n\nOn macOS, grant Accessibility and Input Monitoring access in System Settings > Privacy & Security.", err)
		}
		log.Println("Keyboard hook stopped")
	case sig := <-sigCh:
		log.Printf("Received %s, shutting down...", sig)
		listener.Stop()
	}

	shutdown(engine, async)
	log.Println("Goodbye!")
	// Exit directly to avoid gohook's C cleanup crash.
	// The OS reclaims the event hook on process exit.
	os.Exit(0)
}

// apply overrides config values with flags that were set.
func (c *CLI) apply(cfg *config.Config) {
	if c.Quiet > 0 {
		cfg.Debounce.Quiet = c.Quiet
	}
	if c.Watchdog > 0 {
		cfg.Debounce.Watchdog = c.Watchdog
	}
	if c.Format != "" {
		cfg.Output.Format = c.Format
	}
	if c.LogLevel != "" {
		cfg.LogLevel = c.LogLevel
	}
}

// shutdown drains the pending session and the output queue.
func shutdown(engine *session.Engine, async *output.Async) {
	if err := engine.Close(); err != nil {
		log.Printf("ERROR: flushing last session: %v", err)
	}
	if async != nil {
		async.Close()
	}
	st := engine.Stats()
	log.Printf("Sessions: %d, keys: %d, modifier keys ignored: %d", st.Sessions, st.Accepted, st.Ignored)
}

// loadConfig returns the configuration and where it came from. An explicit
// path must exist; the default path is optional and built-in defaults apply
// when it is absent.
func loadConfig(explicit string) (*config.Config, string, error) {
	path := explicit
	if path == "" {
		path = config.DefaultConfigPath()
		if _, err := os.Stat(path); path == "" || errors.Is(err, fs.ErrNotExist) {
			return config.Default(), "built-in defaults", nil
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", fmt.Errorf("loading %s: %w", path, err)
	}
	return cfg, path, nil
}

// setupLogging installs the default slog logger on stderr: text for a
// terminal, JSON otherwise.
func setupLogging(level string) {
	opts := &slog.HandlerOptions{Level: config.ParseLogLevel(level)}
	var handler slog.Handler
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// printBanner displays the startup configuration summary.
func printBanner(cfg *config.Config) {
	fmt.Fprintln(os.Stderr, "=== keysession ===")
	fmt.Fprintf(os.Stderr, "  Quiet:     %s\n", cfg.Debounce.Quiet)
	fmt.Fprintf(os.Stderr, "  Watchdog:  %s\n", cfg.Debounce.Watchdog)
	fmt.Fprintf(os.Stderr, "  Output:    %s (queue %d)\n", cfg.Output.Format, cfg.Output.QueueSize)
	fmt.Fprintf(os.Stderr, "  Log:       %s\n", cfg.LogLevel)
	fmt.Fprintln(os.Stderr, "==================")
}
