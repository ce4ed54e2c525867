// Package checkup orchestrates a single quick check: cache lookup,
// red-flag matching, suggestion generation, and report rendering.
package checkup

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/mkozlova/carewatch/internal/cache"
	"github.com/mkozlova/carewatch/internal/model"
	"github.com/mkozlova/carewatch/internal/triage"
)

// Pipeline runs quick checks against the static rule tables
type Pipeline struct {
	cache  cache.Cache // nil when caching is disabled
	config *model.Config
}

// NewPipeline creates a pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	var c cache.Cache
	if cfg.Cache.Enabled {
		c = cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.TTL)
	}

	return &Pipeline{
		cache:  c,
		config: cfg,
	}
}

// Run checks the given text and builds a complete report.
// It is total: any input, including empty text, produces a report.
func (p *Pipeline) Run(text string) *model.CheckReport {
	text = strings.TrimSpace(text)
	key := cache.Key(text)

	if p.cache != nil {
		if data, found := p.cache.Get(key); found {
			var report model.CheckReport
			if err := json.Unmarshal(data, &report); err == nil {
				report.FromCache = true
				return &report
			}
		}
	}

	flags := triage.FindRedFlags(text)

	advisory := model.NonUrgentAdvisory
	if len(flags) > 0 {
		advisory = model.EmergencyAdvisory
	}

	report := &model.CheckReport{
		Input:       text,
		CheckedAt:   time.Now().UTC(),
		Urgent:      len(flags) > 0,
		RedFlags:    flags,
		Advisory:    advisory,
		Suggestions: triage.SupportSuggestions(text),
		Principles:  model.DefaultPrinciples(),
	}

	if p.cache != nil {
		if data, err := json.Marshal(report); err == nil {
			_ = p.cache.Set(key, data, p.config.Cache.TTL)
		}
	}

	return report
}
