package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"roscripthub/internal/catalog"
	"roscripthub/internal/config"
	"roscripthub/internal/hub"
	"roscripthub/internal/reputation"
	"roscripthub/ui/console"
	"roscripthub/ui/tui"
	"roscripthub/ui/tui/state"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code so deferred cleanup happens before exit.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("roscripthub", flag.ContinueOnError)
	fs.SetOutput(stderr)
	pageFlag := fs.String("page", "", "page to open: home, scripts, profile, forum, community")
	printFlag := fs.Bool("print", false, "print the page to stdout and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}
	if *pageFlag != "" {
		p, err := hub.ParsePage(*pageFlag)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 2
		}
		cfg = cfg.WithStartPage(p)
	}

	data := catalog.Default()
	if err := data.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error in sample data: %v\n", err)
		return 1
	}
	src := reputation.NewUniform(cfg.ReputationSeed)

	if *printFlag {
		console.Print(stdout, state.New(data, cfg.StartPage), src)
		return 0
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "hub")
		if err != nil {
			fmt.Fprintf(stderr, "Error opening log file: %v\n", err)
			return 1
		}
		defer f.Close()
		logger = log.Default()
	}
	logger.Printf("session %s started on %s", uuid.NewString(), cfg.StartPage)

	if err := tui.Start(cfg, data, src, logger); err != nil {
		logger.Printf("ui stopped: %v", err)
		fmt.Fprintf(stderr, "Error running TUI: %v\n", err)
		return 1
	}
	return 0
}
