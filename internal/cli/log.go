package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/mkozlova/carewatch/internal/checkup"
	"github.com/mkozlova/carewatch/internal/journal"
	"github.com/mkozlova/carewatch/internal/notes"
	"github.com/mkozlova/carewatch/internal/triage"
	"github.com/spf13/cobra"
)

var (
	logName         string
	logRelationship string
	logSeverity     int
	logObserved     string
	logObservedFile string
	logNotes        string
	logOut          string
	logSave         bool
)

// logCmd represents the log command
var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Generate a structured care log note",
	Long: `Log formats a structured, copy/paste friendly note from caregiver
observations, suitable for sharing with family or a clinician without
making medical claims.

The observed text is also re-checked for red-flag keywords; any matches
are reported as a warning.

Example:
  carewatch log --name "Maria" --relationship daughter --severity 4 \
    --observed "Very tired after lunch, napped twice." --save
  carewatch log --observed-file observation.txt --out note.md`,
	RunE: runLog,
}

func init() {
	rootCmd.AddCommand(logCmd)

	logCmd.Flags().StringVar(&logName, "name", "", "person's name (optional)")
	logCmd.Flags().StringVar(&logRelationship, "relationship", "", "your relationship, e.g. daughter, spouse, aide (optional)")
	logCmd.Flags().IntVar(&logSeverity, "severity", 5, "how severe it feels, 0-10")
	logCmd.Flags().StringVar(&logObserved, "observed", "", "what you observed")
	logCmd.Flags().StringVar(&logObservedFile, "observed-file", "", "read the observation from file ('-' for stdin)")
	logCmd.Flags().StringVar(&logNotes, "notes", "", "extra notes: triggers, what helped, what changed (optional)")
	logCmd.Flags().StringVar(&logOut, "out", "", "write the note to a file instead of stdout")
	logCmd.Flags().BoolVar(&logSave, "save", false, "also save the entry to the journal")
}

// clampSeverity bounds the caregiver rating to 0-10 before it reaches
// the formatter, which accepts the value as given
func clampSeverity(severity int) int {
	if severity < 0 {
		return 0
	}
	if severity > 10 {
		return 10
	}
	return severity
}

func runLog(cmd *cobra.Command, args []string) error {
	observed, err := checkup.LoadInput(logObserved, logObservedFile, os.Stdin)
	if err != nil {
		return err
	}

	cfg := loadConfig()

	entry := notes.NewEntry(logName, logRelationship, observed, clampSeverity(logSeverity), logNotes)
	rendered := entry.Format()

	if logOut != "" {
		if err := os.WriteFile(logOut, []byte(rendered), 0644); err != nil {
			return fmt.Errorf("write note: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote note: %s\n", logOut)
		}
	} else {
		fmt.Print(rendered)
	}

	// Basic safety check on the observed text as well
	if flags := triage.FindRedFlags(observed); len(flags) > 0 {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Warning: red-flag keywords were detected in your observation note:")
		fmt.Fprintf(os.Stderr, "  %s\n", strings.Join(flags, ", "))
	}

	if logSave {
		store := journal.NewStore(cfg.Journal.Dir)
		id, err := store.Append(entry)
		if err != nil {
			return fmt.Errorf("save entry: %w", err)
		}
		fmt.Fprintf(os.Stderr, "✓ Saved journal entry: %s\n", id)
	}

	return nil
}
