package model

import "time"

// CheckReport represents the complete result of one quick check
type CheckReport struct {
	Input       string     `json:"input"`                // The text that was checked, trimmed
	CheckedAt   time.Time  `json:"checked_at"`           // When the check ran
	Urgent      bool       `json:"urgent"`               // Whether any red-flag rule matched
	RedFlags    []string   `json:"red_flags,omitempty"`  // Matched labels, deduplicated and sorted
	Advisory    string     `json:"advisory"`             // Canned emergency or non-urgent guidance
	Suggestions []string   `json:"suggestions"`          // Supportive suggestions in rule order
	FromCache   bool       `json:"from_cache,omitempty"` // Whether the result came from the cache
	Principles  Principles `json:"principles"`           // Core principles applied
}

// Principles documents what this tool does and does not do
type Principles struct {
	NonDiagnostic bool `json:"non_diagnostic"` // Never diagnoses or prescribes
	RuleBased     bool `json:"rule_based"`     // Simple keyword rules, no inference
	Stateless     bool `json:"stateless"`      // No session state in the core
}

// DefaultPrinciples returns the standard carewatch principles
func DefaultPrinciples() Principles {
	return Principles{
		NonDiagnostic: true,
		RuleBased:     true,
		Stateless:     true,
	}
}
