package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/keshon/gitnot/internal/repo"
)

func main() {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Try 'gitnot --init' to reset if needed.")
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		initFlag   bool
		showFlag   bool
		statusFlag bool
	)

	cmd := &cobra.Command{
		Use:   "gitnot",
		Short: "Simple version control for personal projects",
		Long: `gitnot tracks changes in a directory without git: it snapshots text
files, detects additions, modifications and deletions, and records a
human-readable changelog per file while bumping a version counter.

Run with no arguments to save the current state as a new version.
Edit .gitnot/config.json to customize extensions and ignore patterns.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				fmt.Printf("Unknown command %q. Use '--help' to see available options\n", args[0])
				return nil
			}
			switch {
			case initFlag:
				return runInit()
			case showFlag:
				return runShow()
			case statusFlag:
				return runStatus()
			default:
				return runCommit()
			}
		},
	}

	cmd.Flags().BoolVar(&initFlag, "init", false, "initialize gitnot in the current folder")
	cmd.Flags().BoolVar(&showFlag, "show", false, "display the current version")
	cmd.Flags().BoolVar(&statusFlag, "status", false, "show pending changes without committing")

	// An unrecognized flag gets the same hint as an unrecognized command and
	// must never fall through to a commit.
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		fmt.Printf("Unknown command %q. Use '--help' to see available options\n", unknownToken(err))
		return nil
	})

	return cmd
}

// unknownToken pulls the offending flag out of a pflag parse error.
func unknownToken(err error) string {
	fields := strings.Fields(err.Error())
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

func runInit() error {
	r := repo.New(".")
	tracked, err := r.Init()
	if err != nil {
		return fmt.Errorf("failed to initialize gitnot: %w", err)
	}
	fmt.Println("Initialized gitnot at version 0.1")
	fmt.Printf("Tracking %d files\n", tracked)
	return nil
}

func runShow() error {
	r, err := repo.Open(".")
	if err != nil {
		return notInitialized(err)
	}
	fmt.Printf("Current version: v%.1f\n", r.Version())
	return nil
}

func runStatus() error {
	r, err := repo.Open(".")
	if err != nil {
		return notInitialized(err)
	}

	d, err := r.Status()
	if err != nil {
		return fmt.Errorf("error checking status: %w", err)
	}

	if d.Empty() {
		fmt.Println("No changes detected")
		return nil
	}

	printCategory("New files", d.Added)
	printCategory("Modified", d.Modified)
	printCategory("Deleted", d.Deleted)
	return nil
}

func runCommit() error {
	r, err := repo.Open(".")
	if err != nil {
		return notInitialized(err)
	}

	res, err := r.Commit()
	if err != nil {
		return err
	}
	if !res.Changed {
		fmt.Println("No changes detected")
		return nil
	}
	fmt.Printf("Version bumped -> v%.1f\n", res.Version)
	fmt.Printf("%d files tracked\n", res.Tracked)
	return nil
}

// printCategory lists the first few paths of a non-empty category.
func printCategory(label string, paths []string) {
	if len(paths) == 0 {
		return
	}
	const head = 3
	shown := paths
	if len(shown) > head {
		shown = shown[:head]
	}
	fmt.Printf("%s (%d): %s\n", label, len(paths), strings.Join(shown, ", "))
	if len(paths) > head {
		fmt.Printf("    ... and %d more\n", len(paths)-head)
	}
}

// notInitialized turns the sentinel into the advisory message the original
// CLI printed; anything else propagates.
func notInitialized(err error) error {
	if errors.Is(err, repo.ErrNotInitialized) {
		fmt.Println("gitnot not initialized in this folder. Run 'gitnot --init'")
		return nil
	}
	return err
}
