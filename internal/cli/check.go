package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mkozlova/carewatch/internal/checkup"
	"github.com/spf13/cobra"
)

var (
	checkFile string
	outJSON   string
	outMD     string
	noCache   bool
	noFooter  bool
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [text]",
	Short: "Run a rule-based quick check on an observation",
	Long: `Check scans free-text caregiver observations for simple red-flag
keywords and prints:
- An urgent or non-urgent advisory based on the matches
- The matched red-flag labels
- General, non-medical supportive suggestions

The input can be given inline, read from a file, or piped on stdin.
Saved HTML pages are reduced to their visible text first.

Example:
  carewatch check "sudden chest pain and trouble breathing"
  carewatch check --file observation.txt --json report.json
  cat observation.txt | carewatch check --file -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	// Input flags
	checkCmd.Flags().StringVar(&checkFile, "file", "", "read observation text from file ('-' for stdin)")

	// Output flags
	checkCmd.Flags().StringVar(&outJSON, "json", "", "output JSON report path (optional)")
	checkCmd.Flags().StringVar(&outMD, "md", "", "output Markdown report path (optional)")
	checkCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the check-result cache")
	checkCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable the disclaimer footer")
}

func runCheck(cmd *cobra.Command, args []string) error {
	arg := ""
	if len(args) == 1 {
		arg = args[0]
	}

	text, err := checkup.LoadInput(arg, checkFile, os.Stdin)
	if err != nil {
		return err
	}

	// The one caller-level validation; the core itself never fails
	if strings.TrimSpace(text) == "" {
		return errors.New("please type something first")
	}

	// Build configuration from flags
	cfg := loadConfig()
	cfg.Output.Verbose = verbose
	cfg.Cache.Enabled = cfg.Cache.Enabled && !noCache
	cfg.Output.IncludeFooter = cfg.Output.IncludeFooter && !noFooter

	p := checkup.NewPipeline(cfg)
	report := p.Run(text)

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Matched %d red-flag rules\n", len(report.RedFlags))
		fmt.Fprintf(os.Stderr, "✓ Collected %d suggestions\n", len(report.Suggestions))
		if report.FromCache {
			fmt.Fprintln(os.Stderr, "✓ Result served from cache")
		}
		fmt.Fprintln(os.Stderr)
	}

	renderer := checkup.NewRenderer(cfg.Output.IncludeFooter)

	if outJSON != "" {
		if err := renderer.RenderJSON(report, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}

	if outMD != "" {
		if err := renderer.RenderMarkdown(report, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", outMD)
		}
	}

	renderer.RenderSummary(os.Stdout, report)

	return nil
}
