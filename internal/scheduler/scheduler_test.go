package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/ecosystem-ai/footer/internal/catalog"
	"github.com/ecosystem-ai/footer/internal/domain"
	"github.com/ecosystem-ai/footer/internal/logger"
	"github.com/ecosystem-ai/footer/internal/metrics"
	redisstore "github.com/ecosystem-ai/footer/internal/store/redis"
)

const validMenu = `brand: Acme
sections:
  - heading: Legal
    items:
      - name: Privacy policy
        href: /privacy
socials:
  - url: mailto:legal@acme.test
`

func newStore(t *testing.T) (*redisstore.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisstore.NewStore(client), mr
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestMenuReloaderBuiltin(t *testing.T) {
	cat := catalog.New()
	mr := NewMenuReloader("", "", nil, cat, metrics.NewRecorder(), logger.Nop(), 0, make(chan struct{}, 1))

	if err := mr.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if cat.Source() != catalog.SourceBuiltin {
		t.Errorf("Source() = %q, want builtin", cat.Source())
	}
	if cat.Current().Fingerprint() != domain.DefaultFooter("").Fingerprint() {
		t.Error("built-in reload should install the default footer")
	}

	held := cat.Current()
	if err := mr.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if cat.Current() != held {
		t.Error("unchanged content should keep the live snapshot")
	}
}

func TestMenuReloaderFileAndPersistence(t *testing.T) {
	store, rmr := newStore(t)
	path := filepath.Join(t.TempDir(), "menu.yaml")
	writeFile(t, path, validMenu)

	cat := catalog.New()
	mr := NewMenuReloader(path, "", store, cat, nil, logger.Nop(), 0, make(chan struct{}, 1))

	if err := mr.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if cat.Source() != catalog.SourceFile || cat.Current().Brand != "Acme" {
		t.Fatalf("catalog = %q/%q, want file/Acme", cat.Source(), cat.Current().Brand)
	}
	if !rmr.Exists(redisstore.SnapshotKey()) {
		t.Error("snapshot should be persisted to redis")
	}

	// A broken file keeps the live snapshot.
	held := cat.Current()
	writeFile(t, path, "sections: [")
	if err := mr.Reload(context.Background()); err == nil {
		t.Error("Reload() with broken yaml should fail")
	}
	if cat.Current() != held {
		t.Error("failed reload must not replace the live snapshot")
	}
}

func TestMenuReloaderStartFallsBackToBuiltin(t *testing.T) {
	cat := catalog.New()
	mr := NewMenuReloader("/nonexistent/menu.yaml", "", nil, cat, nil, logger.Nop(), 0, make(chan struct{}, 1))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := mr.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer mr.Stop()

	if cat.Source() != catalog.SourceBuiltin {
		t.Errorf("Source() = %q, want builtin fallback", cat.Source())
	}
}

func TestMenuReloaderManualTrigger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	writeFile(t, path, validMenu)

	cat := catalog.New()
	trigger := make(chan struct{}, 1)
	mr := NewMenuReloader(path, "", nil, cat, nil, logger.Nop(), 0, trigger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := mr.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer mr.Stop()

	writeFile(t, path, `sections:
  - heading: Blog
    items:
      - name: Blog
        href: /blog
`)
	trigger <- struct{}{}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if f := cat.Current(); f != nil && f.Sections[0].Heading == "Blog" {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("manual trigger did not reload the menu")
}

func TestRedisSyncer(t *testing.T) {
	store, _ := newStore(t)
	cat := catalog.New()
	syncer := NewRedisSyncer(store, cat, logger.Nop())

	if err := syncer.Sync(context.Background()); err != nil {
		t.Fatalf("Sync() on empty redis error = %v", err)
	}
	if cat.Loaded() {
		t.Error("empty redis should not load a snapshot")
	}

	if err := store.SaveSnapshot(context.Background(), domain.DefaultFooter("Acme")); err != nil {
		t.Fatal(err)
	}
	if err := syncer.Sync(context.Background()); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
	if cat.Source() != catalog.SourceRedis || cat.Current().Brand != "Acme" {
		t.Errorf("catalog = %q/%v, want redis/Acme", cat.Source(), cat.Current())
	}
}

func TestCachePrunerPrune(t *testing.T) {
	store, rmr := newStore(t)
	ctx := context.Background()
	cat := catalog.New()
	footer := domain.DefaultFooter("")
	cat.Swap(footer, catalog.SourceBuiltin)

	now := func() time.Time { return time.Date(2031, time.May, 1, 0, 0, 0, 0, time.UTC) }
	cp := NewCachePruner(store, cat, logger.Nop(), time.Hour, now)

	live := redisstore.FragmentKey("fragment", footer.Fingerprint(), 2031)
	for _, key := range []string{
		live,
		redisstore.FragmentKey("fragment", footer.Fingerprint(), 2030),
		redisstore.FragmentKey("fragment", "0000000000000000", 2031),
	} {
		if err := rmr.Set(key, "x"); err != nil {
			t.Fatal(err)
		}
	}

	deleted, err := cp.Prune(ctx)
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	if deleted != 2 {
		t.Errorf("deleted = %d, want 2", deleted)
	}
	if !rmr.Exists(live) {
		t.Error("live fragment should be kept")
	}
}

func TestCachePrunerWithoutStore(t *testing.T) {
	cp := NewCachePruner(nil, catalog.New(), logger.Nop(), 0, nil)
	if n, err := cp.Prune(context.Background()); n != 0 || err != nil {
		t.Errorf("Prune() = (%d, %v), want (0, nil)", n, err)
	}
}

func TestFileWatcherTriggersReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.yaml")
	writeFile(t, path, validMenu)

	trigger := make(chan struct{}, 1)
	fw, err := NewFileWatcher(path, trigger, 20*time.Millisecond, logger.Nop())
	if err != nil {
		t.Fatalf("NewFileWatcher() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := fw.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer fw.Stop()

	// Unrelated files in the same directory are ignored.
	writeFile(t, filepath.Join(dir, "other.yaml"), "x: 1")
	select {
	case <-trigger:
		t.Fatal("change to another file should not trigger a reload")
	case <-time.After(200 * time.Millisecond):
	}

	writeFile(t, path, validMenu+"\n")
	select {
	case <-trigger:
	case <-time.After(2 * time.Second):
		t.Fatal("menu file change did not trigger a reload")
	}
}

func TestFileWatcherFollowsConfigMapSwap(t *testing.T) {
	dir := t.TempDir()
	mkVersion := func(name, content string) {
		t.Helper()
		if err := os.Mkdir(filepath.Join(dir, name), 0o755); err != nil {
			t.Fatal(err)
		}
		writeFile(t, filepath.Join(dir, name, "menu.yaml"), content)
	}

	// Kubernetes layout: menu.yaml -> ..data/menu.yaml, ..data -> ..v1
	mkVersion("..v1", validMenu)
	if err := os.Symlink("..v1", filepath.Join(dir, "..data")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	path := filepath.Join(dir, "menu.yaml")
	if err := os.Symlink(filepath.Join("..data", "menu.yaml"), path); err != nil {
		t.Fatal(err)
	}

	trigger := make(chan struct{}, 1)
	fw, err := NewFileWatcher(path, trigger, 20*time.Millisecond, logger.Nop())
	if err != nil {
		t.Fatalf("NewFileWatcher() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := fw.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer fw.Stop()

	// Swap ..data atomically to a new version; menu.yaml itself sees no event.
	mkVersion("..v2", validMenu+"\n")
	tmp := filepath.Join(dir, "..data_tmp")
	if err := os.Symlink("..v2", tmp); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, filepath.Join(dir, "..data")); err != nil {
		t.Fatal(err)
	}

	select {
	case <-trigger:
	case <-time.After(2 * time.Second):
		t.Fatal("swapping the ..data link did not trigger a reload")
	}
}
