package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/handiism/rekonise-unlocker/internal/config"
	"github.com/handiism/rekonise-unlocker/internal/resolve"
)

func main() {
	// Command line flags
	var (
		fileFlag     string
		linkFlag     string
		configFlag   = flag.String("config", "", "Path to config file")
		workersFlag  = flag.Int("workers", 0, "Max concurrent resolutions (overrides config)")
		timeoutFlag  = flag.Int("timeout", 0, "Request timeout in seconds (overrides config)")
		failFastFlag = flag.Bool("fail-fast", false, "Stop at the first failed link")
		verboseFlag  = flag.Bool("verbose", false, "Show verbose output")
	)
	flag.StringVar(&fileFlag, "file", "", "Path to a links file (one \"name: url\" per line)")
	flag.StringVar(&fileFlag, "f", "", "Shorthand for -file")
	flag.StringVar(&linkFlag, "link", "", "Single Rekonise link to resolve")
	flag.StringVar(&linkFlag, "l", "", "Shorthand for -link")

	flag.Parse()

	// Accept a bare positional argument as the link
	if fileFlag == "" && linkFlag == "" && flag.NArg() > 0 {
		linkFlag = flag.Arg(0)
	}

	// CLI mode - require a file or a link
	if fileFlag == "" && linkFlag == "" {
		fmt.Println("Rekonise Unlocker - Resolve Rekonise links into download URLs")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  rekonise-unlock -f <links file> [options]")
		fmt.Println("  rekonise-unlock -l <URL> [options]")
		fmt.Println("  rekonise-unlock <URL> [options]")
		fmt.Println()
		fmt.Println("For interactive mode, use: rekonise-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	if fileFlag != "" && linkFlag != "" {
		fmt.Fprintln(os.Stderr, "Error: specify either -file or -link, not both")
		os.Exit(1)
	}

	// Load config; environment variables override file values
	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Apply flags
	if *workersFlag > 0 {
		settings.MaxConcurrentResolves = *workersFlag
	}
	if *timeoutFlag > 0 {
		settings.RequestTimeoutSeconds = *timeoutFlag
	}
	if *failFastFlag {
		settings.FailFast = true
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nInterrupted, cancelling...")
		cancel()
	}()

	// Create manager with progress callback. Progress goes to stderr so
	// stdout stays a clean "name: download_url" mapping.
	manager := resolve.NewManager(settings, func(event resolve.ProgressEvent) {
		if event.Level == resolve.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := ""
		switch event.Level {
		case resolve.LevelError:
			prefix = "❌ "
		case resolve.LevelWarning:
			prefix = "⚠️  "
		case resolve.LevelSuccess:
			prefix = "✅ "
		case resolve.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		fmt.Fprintln(os.Stderr, prefix+event.Message)
	})

	fmt.Fprintln(os.Stderr, "🔓 Rekonise Unlocker")
	fmt.Fprintln(os.Stderr, "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Fprintln(os.Stderr)

	if fileFlag != "" {
		if err := manager.LoadFile(fileFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading links: %v\n", err)
			os.Exit(1)
		}
	} else {
		manager.LoadLink(linkFlag)
	}

	if len(manager.GetLinkNames()) == 0 {
		fmt.Fprintln(os.Stderr, "No links to resolve.")
		return
	}

	fmt.Fprintln(os.Stderr, "\n🔗 Resolving links...")
	fmt.Fprintln(os.Stderr)

	results, err := manager.ResolveAll(ctx)
	if err != nil {
		if ctx.Err() != nil {
			fmt.Fprintln(os.Stderr, "\nResolution cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error during resolution: %v\n", err)
		os.Exit(1)
	}
	if ctx.Err() != nil {
		fmt.Fprintln(os.Stderr, "\nResolution cancelled.")
		os.Exit(130)
	}

	// Print the mapping in input order, failures to stderr
	fmt.Fprintln(os.Stderr)
	for _, result := range results {
		if result.Failed() {
			continue
		}
		fmt.Printf("%s: %s\n", result.Record.Name, result.Record.DownloadURL)
	}

	_, failed, total := manager.GetProgress()

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Fprintf(os.Stderr, "✨ Complete! Resolved %d/%d links\n", total-failed, total)

	if failed > 0 {
		fmt.Fprintln(os.Stderr, "\nFailed links:")
		for _, result := range results {
			if result.Failed() {
				fmt.Fprintf(os.Stderr, "  ✗ %s: %v\n", result.Record.Name, result.Err)
			}
		}
		os.Exit(1)
	}
}
