package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/noteme-app/noteme/persistence/v1/document"
)

func fixture() document.Document {
	base := time.Date(2024, 3, 10, 12, 30, 0, 0, time.UTC)
	return document.Document{Users: []document.User{
		{
			Id:           "alice_w",
			PasswordHash: "h1",
			Notes: []document.Note{
				{Id: 1, Text: "older note", CreatedAt: base},
				{Id: 2, Text: "<script>alert(1)</script>", CreatedAt: base.Add(time.Hour)},
			},
		},
		{
			Id:           "bob_99",
			PasswordHash: "h2",
			Notes:        []document.Note{},
		},
	}}
}

func TestBuild(t *testing.T) {
	out := t.TempDir()
	public := t.TempDir()
	if err := os.WriteFile(filepath.Join(public, "admin.html"), []byte("<html>admin</html>"), 0o644); err != nil {
		t.Fatalf("fixture: %v", err)
	}

	if err := Build(fixture(), public, out); err != nil {
		t.Fatalf("build should succeed: %v", err)
	}

	for _, name := range []string{"index.html", "alice_w.html", "bob_99.html", "alice_w-1.html", "alice_w-2.html", "admin.html"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Fatalf("should have generated %s: %v", name, err)
		}
	}

	index := read(t, out, "index.html")
	if !strings.Contains(index, "alice_w") || !strings.Contains(index, "bob_99") {
		t.Fatalf("index should list both users")
	}
	// the card preview shows the latest note, not the first one
	if !strings.Contains(index, "alert(1)") && !strings.Contains(index, "&lt;script&gt;") {
		t.Fatalf("index preview should come from the newest note")
	}
	if !strings.Contains(index, "2 notes") {
		t.Fatalf("index should show the note count")
	}
	if !strings.Contains(index, "No notes yet") {
		t.Fatalf("index should show the empty preview for bob_99")
	}

	user := read(t, out, "alice_w.html")
	if strings.Contains(user, "<script>alert(1)</script>") {
		t.Fatalf("note text must be html escaped")
	}
	if !strings.Contains(user, "&lt;script&gt;") {
		t.Fatalf("note text should survive escaped")
	}
	if strings.Index(user, "alice_w-2.html") > strings.Index(user, "alice_w-1.html") {
		t.Fatalf("user page should order notes newest first")
	}
	if !strings.Contains(user, "13:30") {
		t.Fatalf("dates should use the dd.mm.yyyy hh:mm format")
	}

	note := read(t, out, "alice_w-1.html")
	if !strings.Contains(note, "older note") || !strings.Contains(note, "10.03.2024 12:30") {
		t.Fatalf("note page should render the note and its date")
	}

	empty := read(t, out, "bob_99.html")
	if !strings.Contains(empty, "This user has no notes yet") {
		t.Fatalf("empty user page should say so")
	}
}

func TestBuildEmptyDocument(t *testing.T) {
	out := t.TempDir()

	if err := Build(document.Document{Users: []document.User{}}, filepath.Join(out, "missing-public"), out); err != nil {
		t.Fatalf("build should succeed without users or a public dir: %v", err)
	}

	index := read(t, out, "index.html")
	if !strings.Contains(index, "No notes yet") {
		t.Fatalf("index should show the empty state")
	}
}

func read(t *testing.T, dir, name string) string {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return string(data)
}
