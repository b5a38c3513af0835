package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		path string
		kind ChangeKind
		ok   bool
	}{
		{"prefabs/match.yaml", ChangeMatch, true},
		{"prefabs/alt.YML", ChangeMatch, true},
		{"prefabs/scripts/opponent.tengo", ChangeScript, true},
		{"prefabs/scripts/opponent.lua", ChangeScript, true},
		{"prefabs/notes.txt", 0, false},
	}
	for _, c := range cases {
		got, ok := classify(c.path)
		if ok != c.ok || (ok && got.Kind != c.kind) {
			t.Fatalf("%s: got %+v ok=%v", c.path, got, ok)
		}
	}
}

func TestWatcherReportsScriptWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "opponent.tengo")
	if err := os.WriteFile(path, []byte("velocity := func(view) { return 0.0 }"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case change := <-w.Changes:
		if change.Kind != ChangeScript || change.Name != "opponent.tengo" {
			t.Fatalf("unexpected change %+v", change)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for change")
	}
}
