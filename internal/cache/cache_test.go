package cache

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestKey_StableAndPrefixed(t *testing.T) {
	first := Key("sudden chest pain")
	second := Key("sudden chest pain")

	if first != second {
		t.Errorf("Expected stable keys, got %q and %q", first, second)
	}
	if !strings.HasPrefix(first, "carewatch:v1:") {
		t.Errorf("Expected versioned prefix, got %q", first)
	}
	if Key("other text") == first {
		t.Error("Expected different inputs to produce different keys")
	}
}

func TestMemoryCache_RoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("Expected miss for unknown key")
	}

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	val, found := c.Get("k")
	if !found || string(val) != "v" {
		t.Errorf("Expected hit with value v, got %q found=%v", val, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("Expected miss after delete")
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(filepath.Join(t.TempDir(), "cache"), time.Minute)

	if err := c.Set("fresh", []byte("ok"), time.Minute); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, found := c.Get("fresh"); !found {
		t.Error("Expected hit before expiry")
	}

	if err := c.Set("stale", []byte("old"), -time.Second); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, found := c.Get("stale"); found {
		t.Error("Expected expired entry dropped")
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")

	// Seed only the disk layer
	disk := NewDiskCache(dir, time.Minute)
	if err := disk.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	layered := NewLayeredCache(time.Minute, dir, time.Minute)

	val, found := layered.Get("k")
	if !found || string(val) != "v" {
		t.Fatalf("Expected disk hit through layered cache, got %q found=%v", val, found)
	}

	// A second lookup should be served from memory even if disk goes away
	if err := disk.Clear(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, found := layered.Get("k"); !found {
		t.Error("Expected promoted memory hit after disk cleared")
	}
}
