package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/squelette/internal/completion"
)

var eventsCmd = &cobra.Command{
	Use:   "events [file]",
	Short: "Validate and summarize a completion events file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			path = cfg.EventsFile
		}
		if path == "" {
			return fmt.Errorf("no events file: pass a path or set --events-file")
		}

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open events file: %w", err)
		}
		defer f.Close()

		return summarizeEvents(f, cmd.OutOrStdout())
	},
}

// summarizeEvents prints one row per valid event line and a summary. It
// fails when any line is invalid.
func summarizeEvents(r io.Reader, w io.Writer) error {
	var (
		valid, invalid int
		total, best    int
	)
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		raw := sc.Bytes()
		if len(raw) == 0 {
			continue
		}
		if err := completion.ValidateJSON(raw); err != nil {
			invalid++
			fmt.Fprintf(w, "line %d: %v\n", line, err)
			continue
		}
		var ev completion.Event
		if err := json.Unmarshal(raw, &ev); err != nil {
			invalid++
			fmt.Fprintf(w, "line %d: %v\n", line, err)
			continue
		}
		valid++
		total += ev.Score
		best = max(best, ev.Score)
		fmt.Fprintf(w, "%-20s  %3d / %d\n", ev.BlockID, ev.Score, ev.MaxScore)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read events file: %w", err)
	}

	fmt.Fprintf(w, "\n%d events, %d invalid", valid, invalid)
	if valid > 0 {
		fmt.Fprintf(w, ", average %d, best %d", (total+valid/2)/valid, best)
	}
	fmt.Fprintln(w)
	if invalid > 0 {
		return fmt.Errorf("%d invalid events", invalid)
	}
	return nil
}
