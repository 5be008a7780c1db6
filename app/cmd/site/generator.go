package site

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/noteme-app/noteme/persistence/v1/document"
)

const dateLayout = "02.01.2006 15:04"

type userCard struct {
	Id      string
	Preview string
	Date    string
	Count   int
}

type indexView struct {
	Users []userCard
}

type noteView struct {
	Id   int
	User string
	Text string
	Date string
	Href string
}

type userView struct {
	Id    string
	Notes []noteView
}

// Build renders the whole site: one index, one page per user, one page per
// note, plus a verbatim copy of the public dir. It never mutates the
// document.
func Build(doc document.Document, publicDir, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	if err := renderIndex(doc, outDir); err != nil {
		return err
	}
	for _, u := range doc.Users {
		if err := renderUser(u, outDir); err != nil {
			return err
		}
	}
	if err := copyPublic(publicDir, outDir); err != nil {
		return err
	}
	return nil
}

func renderIndex(doc document.Document, outDir string) error {
	view := indexView{Users: make([]userCard, 0, len(doc.Users))}
	for _, u := range doc.Users {
		card := userCard{Id: u.Id, Preview: "No notes yet", Count: len(u.Notes)}
		if latest := latestNote(u); latest != nil {
			card.Preview = preview(latest.Text)
			card.Date = latest.CreatedAt.Format(dateLayout)
		}
		view.Users = append(view.Users, card)
	}
	return renderFile(outDir, "index.html", "index", view)
}

func renderUser(u document.User, outDir string) error {
	notes := sortedNotes(u)
	view := userView{Id: u.Id, Notes: make([]noteView, 0, len(notes))}
	for _, n := range notes {
		nv := noteView{
			Id:   n.Id,
			User: u.Id,
			Text: n.Text,
			Date: n.CreatedAt.Format(dateLayout),
			Href: fmt.Sprintf("%s-%d.html", u.Id, n.Id),
		}
		view.Notes = append(view.Notes, nv)

		if err := renderFile(outDir, nv.Href, "note", nv); err != nil {
			return err
		}
	}
	return renderFile(outDir, u.Id+".html", "user", view)
}

func renderFile(outDir, name, tmpl string, view any) error {
	f, err := os.Create(filepath.Join(outDir, name))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer func() {
		_ = f.Close()
	}()
	if err := pages.ExecuteTemplate(f, tmpl, view); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}

func copyPublic(publicDir, outDir string) error {
	entries, err := os.ReadDir(publicDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read public dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(publicDir, e.Name()))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", e.Name(), err)
		}
		if err := os.WriteFile(filepath.Join(outDir, e.Name()), data, 0o644); err != nil {
			return fmt.Errorf("failed to copy %s: %w", e.Name(), err)
		}
	}
	return nil
}

// sortedNotes returns the user's notes newest first
func sortedNotes(u document.User) []document.Note {
	notes := make([]document.Note, len(u.Notes))
	copy(notes, u.Notes)
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})
	return notes
}

func latestNote(u document.User) *document.Note {
	var latest *document.Note
	var latestAt time.Time
	for i := range u.Notes {
		if latest == nil || u.Notes[i].CreatedAt.After(latestAt) {
			latest = &u.Notes[i]
			latestAt = u.Notes[i].CreatedAt
		}
	}
	return latest
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= 80 {
		return text
	}
	return string(runes[:80]) + "..."
}
