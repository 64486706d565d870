package level

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherBatchesLevelFiles(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "pack")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(20*time.Millisecond, dir)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	files := map[string]string{
		filepath.Join(dir, "a.yaml"): "id: a\nlength: 20\nend_x: 10\n",
		filepath.Join(sub, "b.yml"):  "id: b\nlength: 20\nend_x: 10\n",
		filepath.Join(dir, "readme"): "ignored",
		filepath.Join(dir, "x.txt"):  "ignored",
	}
	for name, body := range files {
		if err := os.WriteFile(name, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	want := map[string]bool{
		filepath.Join(dir, "a.yaml"): true,
		filepath.Join(sub, "b.yml"):  true,
	}
	seen := map[string]bool{}
	deadline := time.After(3 * time.Second)
	for len(seen) < len(want) {
		select {
		case batch := <-w.Changes():
			for _, name := range batch {
				if !want[name] {
					t.Errorf("unexpected change reported: %s", name)
				}
				seen[name] = true
			}
		case err := <-w.Errors():
			t.Fatalf("watch error: %v", err)
		case <-deadline:
			t.Fatalf("timed out, saw %v", seen)
		}
	}
}

func TestWatcherClose(t *testing.T) {
	w, err := Watch(0, t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}

	select {
	case _, ok := <-w.Changes():
		if ok {
			t.Error("Changes() delivered after Close")
		}
	case <-time.After(time.Second):
		t.Error("Changes() not closed after Close")
	}
}

func TestWatchMissingDir(t *testing.T) {
	if _, err := Watch(0, filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for a missing directory")
	}
}
