package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/recera/styled/internal/extract"
)

var (
	styleSuccess = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	styleWarn    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func newExtractCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Render CSS files into embeddable style blocks",
		Long: `Inject every matched CSS file into a server-side sheet, one component
per file, and write the serialized <style> blocks. Identical file
content is injected once; the rest hit the dedup cache.`,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(cmd)
		},
		RunE: runExtract,
	}

	f := cmd.Flags()
	f.StringSlice("include", nil, "Glob patterns for CSS files to include")
	f.StringP("out", "o", "", "Output file (default: stdout)")
	f.Bool("minify", false, "Minify CSS before injection")
	f.Bool("validate", false, "Drop rules the insertion primitive rejects")
	f.Bool("compat", false, "Use the text-node variant in validate mode")
	f.Int("capacity", 0, "Max distinct components per style tag (0 = unbounded)")
	f.BoolP("watch", "w", false, "Re-extract when input files change")
	f.Bool("quiet", false, "Suppress the summary")
	return cmd
}

func runExtract(cmd *cobra.Command, _ []string) error {
	cfg := buildExtractConfig()
	out := k.String("out")
	quiet := k.Bool("quiet")

	if err := extractOnce(cfg, out, quiet); err != nil {
		return err
	}
	if !k.Bool("watch") {
		return nil
	}
	return watchLoop(cfg, out)
}

func extractOnce(cfg extract.Config, out string, quiet bool) error {
	res, err := extract.Run(cfg)
	if err != nil {
		return err
	}

	if out == "" {
		fmt.Println(res.HTML)
	} else if err := os.WriteFile(out, []byte(res.HTML+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	if quiet {
		return nil
	}
	dest := "stdout"
	if out != "" {
		dest = out
	}
	fmt.Fprintln(os.Stderr, styleSuccess.Render("✓")+fmt.Sprintf(" extracted %d components (%d files) to %s",
		res.Components, len(res.Files), dest))
	for _, skipped := range res.Skipped {
		fmt.Fprintln(os.Stderr, styleWarn.Render("⚠")+" "+skipped+styleDim.Render(" (duplicate content, reused)"))
	}
	return nil
}

// watchLoop re-runs extraction whenever a CSS file below the include
// patterns' root directories changes, until interrupted.
func watchLoop(cfg extract.Config, out string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range watchRoots(cfg.Includes) {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	fmt.Fprintln(os.Stderr, styleDim.Render("watching for changes, ctrl-c to stop"))

	// Editors fire bursts of events per save; coalesce before re-running.
	var pending <-chan time.Time
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !strings.HasSuffix(ev.Name, ".css") {
				continue
			}
			pending = time.After(100 * time.Millisecond)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, styleWarn.Render("⚠")+" watch error: "+err.Error())
		case <-pending:
			pending = nil
			if err := extractOnce(cfg, out, false); err != nil {
				fmt.Fprintln(os.Stderr, styleWarn.Render("⚠")+" "+err.Error())
			}
		case <-stop:
			return nil
		}
	}
}

// watchRoots reduces glob patterns to their non-glob directory prefixes.
func watchRoots(patterns []string) []string {
	seen := make(map[string]bool)
	var roots []string
	for _, p := range patterns {
		dir := p
		if i := strings.IndexAny(dir, "*?["); i >= 0 {
			dir = dir[:i]
		}
		dir = filepath.Dir(dir)
		if dir == "" {
			dir = "."
		}
		if !seen[dir] {
			seen[dir] = true
			roots = append(roots, dir)
		}
	}
	return roots
}
