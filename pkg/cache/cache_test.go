package cache

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	ctx := context.Background()

	if _, ok, _ := c.Get(ctx, "missing"); ok {
		t.Error("empty cache must miss")
	}

	if err := c.Set(ctx, "k", []byte("payload"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, ok, err := c.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Get after Set: ok=%v err=%v", ok, err)
	}
	if string(data) != "payload" {
		t.Errorf("data = %q, want payload", data)
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("deleted key must miss")
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("double delete must be a no-op, got %v", err)
	}
}

func TestFileCacheTTL(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	if err := c.Set(ctx, "ephemeral", []byte("x"), time.Millisecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, ok, _ := c.Get(ctx, "ephemeral"); ok {
		t.Error("expired entry must miss")
	}

	if err := c.Set(ctx, "durable", []byte("x"), 0); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := c.Get(ctx, "durable"); !ok {
		t.Error("ttl 0 must not expire")
	}
}

func TestFileCacheClearAndSize(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte("data-"+k), 0); err != nil {
			t.Fatal(err)
		}
	}

	bytes, entries, err := c.Size()
	if err != nil {
		t.Fatalf("Size: %v", err)
	}
	if entries != 3 || bytes == 0 {
		t.Errorf("Size = %d bytes / %d entries, want 3 non-empty entries", bytes, entries)
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	_, entries, err = c.Size()
	if err != nil {
		t.Fatal(err)
	}
	if entries != 0 {
		t.Errorf("entries after Clear = %d, want 0", entries)
	}
	if _, ok, _ := c.Get(ctx, "a"); ok {
		t.Error("cleared key must miss")
	}
}

func TestNullCache(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("x"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("null cache must never hit")
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete: %v", err)
	}
}

func TestKeyerStability(t *testing.T) {
	k := NewDefaultKeyer()

	opts := ArtifactKeyOpts{Weights: true, Path: []string{"a", "b"}}
	first := k.ArtifactKey("hash123", "svg", opts)
	if first != k.ArtifactKey("hash123", "svg", opts) {
		t.Error("same inputs must produce the same key")
	}
	if !strings.HasPrefix(first, "artifact:") {
		t.Errorf("key %q missing family prefix", first)
	}

	if first == k.ArtifactKey("hash123", "dot", opts) {
		t.Error("format must participate in the key")
	}
	if first == k.ArtifactKey("hash123", "svg", ArtifactKeyOpts{Weights: true}) {
		t.Error("path option must participate in the key")
	}
	if k.GraphKey("h") == k.GraphKey("other") {
		t.Error("different graph hashes must produce different keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	base := NewDefaultKeyer()
	scoped := NewScopedKeyer(base, "ws1:")

	if got := scoped.GraphKey("h"); got != "ws1:"+base.GraphKey("h") {
		t.Errorf("GraphKey = %q, want prefixed base key", got)
	}

	// Nil inner falls back to the default keyer.
	fallback := NewScopedKeyer(nil, "ws2:")
	if got := fallback.GraphKey("h"); got != "ws2:"+base.GraphKey("h") {
		t.Errorf("fallback GraphKey = %q", got)
	}
}
