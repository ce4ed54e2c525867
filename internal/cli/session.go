package cli

import (
	"github.com/mkozlova/carewatch/internal/tui"
	"github.com/spf13/cobra"
)

// sessionCmd represents the session command
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start the interactive caregiver session",
	Long: `Session starts a full-screen interactive session with three tabs:

- Quick Check: type what you are seeing and run the rule-based check,
  with a live preview of red-flag matches while you type
- Care Log: fill in a structured note, generate it, and optionally
  save it to the journal
- Plan & Resources: general caregiver guidance`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(loadConfig())
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}
