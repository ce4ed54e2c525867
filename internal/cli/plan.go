package cli

import (
	"fmt"

	"github.com/mkozlova/carewatch/internal/model"
	"github.com/spf13/cobra"
)

// planCmd represents the plan command
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print a simple caregiver plan and checklists",
	Long:  `Plan prints general, non-medical caregiver guidance: a simple plan, helpful checklists, and emergency reminders.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(model.CarePlan)
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
}
