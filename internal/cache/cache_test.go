package cache

import (
	"context"
	"testing"
)

func TestMemoryCache(t *testing.T) {
	c := New(nil)
	ctx := context.Background()

	key := Key("DET dog.NOM", "defaults")
	if _, ok := c.Get(ctx, key); ok {
		t.Fatal("empty cache reported a hit")
	}

	if err := c.Set(ctx, key, "<div>rendered</div>"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok := c.Get(ctx, key)
	if !ok || got != "<div>rendered</div>" {
		t.Errorf("Get = %q, %v", got, ok)
	}

	// Nil pool: schema and preload are no-ops, not errors.
	if err := c.EnsureSchema(ctx); err != nil {
		t.Errorf("EnsureSchema: %v", err)
	}
	if err := c.Preload(ctx); err != nil {
		t.Errorf("Preload: %v", err)
	}
}

func TestKeyIncludesOptions(t *testing.T) {
	if Key("same source", "a") == Key("same source", "b") {
		t.Error("cache key must depend on the options fingerprint")
	}
	if Key("a", "x") == Key("b", "x") {
		t.Error("cache key must depend on the source")
	}
	// The separator keeps (source, fingerprint) pairs unambiguous.
	if Key("ab", "c") == Key("a", "bc") {
		t.Error("cache key boundary ambiguity")
	}
}
