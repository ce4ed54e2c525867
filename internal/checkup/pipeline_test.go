package checkup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mkozlova/carewatch/internal/model"
)

func testConfig(t *testing.T) *model.Config {
	t.Helper()
	cfg := model.DefaultConfig()
	cfg.Cache.Dir = filepath.Join(t.TempDir(), "cache")
	cfg.Cache.TTL = time.Minute
	return cfg
}

func TestPipeline_UrgentReport(t *testing.T) {
	p := NewPipeline(testConfig(t))

	report := p.Run("sudden chest pain and trouble breathing")

	if !report.Urgent {
		t.Error("Expected urgent report")
	}
	if len(report.RedFlags) != 2 {
		t.Errorf("Expected 2 red flags, got %v", report.RedFlags)
	}
	if report.Advisory != model.EmergencyAdvisory {
		t.Error("Expected emergency advisory")
	}
	if len(report.Suggestions) == 0 {
		t.Error("Expected suggestions alongside red flags")
	}
}

func TestPipeline_NonUrgentReport(t *testing.T) {
	p := NewPipeline(testConfig(t))

	report := p.Run("seemed a bit confused this morning")

	if report.Urgent {
		t.Errorf("Expected non-urgent report, got flags %v", report.RedFlags)
	}
	if report.Advisory != model.NonUrgentAdvisory {
		t.Error("Expected non-urgent advisory")
	}
	if len(report.Suggestions) != 1 || !strings.Contains(report.Suggestions[0], "Confusion") {
		t.Errorf("Expected the confusion suggestion, got %v", report.Suggestions)
	}
}

func TestPipeline_EmptyInputIsTotal(t *testing.T) {
	p := NewPipeline(testConfig(t))

	report := p.Run("   \n ")

	if report.Urgent || len(report.RedFlags) != 0 {
		t.Errorf("Expected no flags for empty input, got %v", report.RedFlags)
	}
	if report.Input != "" {
		t.Errorf("Expected trimmed input, got %q", report.Input)
	}
	if len(report.Suggestions) != 1 {
		t.Errorf("Expected fallback suggestion only, got %v", report.Suggestions)
	}
}

func TestPipeline_CacheHit(t *testing.T) {
	p := NewPipeline(testConfig(t))

	first := p.Run("complaining of pain")
	if first.FromCache {
		t.Error("Expected first run to miss the cache")
	}

	second := p.Run("complaining of pain")
	if !second.FromCache {
		t.Error("Expected second run to hit the cache")
	}
	if second.Urgent != first.Urgent || len(second.Suggestions) != len(first.Suggestions) {
		t.Error("Expected cached report to match the original")
	}
}

func TestPipeline_CacheDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Cache.Enabled = false
	p := NewPipeline(cfg)

	p.Run("complaining of pain")
	second := p.Run("complaining of pain")

	if second.FromCache {
		t.Error("Expected no cache hits when caching is disabled")
	}
}

func TestLoadInput_ArgumentWins(t *testing.T) {
	got, err := LoadInput("inline text", "", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != "inline text" {
		t.Errorf("Expected inline text, got %q", got)
	}
}

func TestLoadInput_Stdin(t *testing.T) {
	got, err := LoadInput("", "-", strings.NewReader("from stdin\n"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != "from stdin\n" {
		t.Errorf("Expected stdin content, got %q", got)
	}
}

func TestLoadInput_PlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "obs.txt")
	if err := os.WriteFile(path, []byte("fell in the bathroom"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadInput("", path, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != "fell in the bathroom" {
		t.Errorf("Expected file content, got %q", got)
	}
}

func TestLoadInput_HTMLFile(t *testing.T) {
	page := `<html><head><script>var x = "chest pain in script";</script></head>
	<body><p>Patient reported trouble breathing overnight.</p></body></html>`

	path := filepath.Join(t.TempDir(), "visit.html")
	if err := os.WriteFile(path, []byte(page), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadInput("", path, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(got, "trouble breathing overnight") {
		t.Errorf("Expected visible text extracted, got %q", got)
	}
	if strings.Contains(got, "chest pain in script") {
		t.Error("Should not extract script content")
	}
}

func TestLoadInput_MissingFile(t *testing.T) {
	if _, err := LoadInput("", "/nonexistent/obs.txt", nil); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestVisibleText_SkipsInvisibleElements(t *testing.T) {
	page := `<html><body>
	<style>body { color: red; }</style>
	<p>Visible observation.</p>
	<noscript>hidden</noscript>
	</body></html>`

	text, err := VisibleText(page)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(text, "Visible observation.") {
		t.Errorf("Expected visible text, got %q", text)
	}
	if strings.Contains(text, "color: red") || strings.Contains(text, "hidden") {
		t.Errorf("Expected invisible elements skipped, got %q", text)
	}
}
