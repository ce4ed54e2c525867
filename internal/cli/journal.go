package cli

import (
	"fmt"

	"github.com/mkozlova/carewatch/internal/journal"
	"github.com/spf13/cobra"
)

// journalCmd represents the journal command
var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Browse saved care log entries",
	Long: `Journal lists and shows care log entries saved with 'carewatch log --save'.
Entries live as plain JSON files under ~/.carewatch/journal.`,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved entries, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := journal.NewStore(loadConfig().Journal.Dir)

		ids, err := store.List()
		if err != nil {
			return fmt.Errorf("list journal: %w", err)
		}
		if len(ids) == 0 {
			fmt.Println("No saved entries. Use 'carewatch log --save' to create one.")
			return nil
		}

		for _, id := range ids {
			entry, err := store.Load(id)
			if err != nil {
				fmt.Printf("%s  (unreadable: %v)\n", id, err)
				continue
			}
			fmt.Printf("%s  severity %d/10  %s\n", id, entry.Severity, firstLine(entry.Observed))
		}
		return nil
	},
}

var journalShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one saved entry as a formatted note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := journal.NewStore(loadConfig().Journal.Dir)

		entry, err := store.Load(args[0])
		if err != nil {
			return fmt.Errorf("load entry: %w", err)
		}

		fmt.Print(entry.Format())
		return nil
	},
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalShowCmd)
}
