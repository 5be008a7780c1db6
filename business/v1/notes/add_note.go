package notes

import (
	"context"
	"strings"
	"time"

	"github.com/noteme-app/noteme/persistence/v1/document"
	"github.com/noteme-app/noteme/sys"
)

// AddNote appends a note to an existing user and returns the assigned note
// id. The id is one greater than the user's current maximum, or 1 for the
// first note; callers never pick ids. The password hash is compared with
// plain string equality, no hashing happens server side.
func AddNote(ctx context.Context, newN NewNote) (int, error) {
	doc, err := document.Read(ctx)
	if err != nil {
		return 0, err
	}

	if newN.UserId == "" || newN.PasswordHash == "" || newN.Text == "" {
		return 0, ErrMissingFields
	}

	var user *document.User
	for i := range doc.Users {
		if doc.Users[i].Id == newN.UserId {
			user = &doc.Users[i]
			break
		}
	}
	if user == nil {
		return 0, ErrUserNotFound
	}
	if user.PasswordHash != newN.PasswordHash {
		return 0, ErrWrongPassword
	}

	noteId := 1
	for _, n := range user.Notes {
		if n.Id >= noteId {
			noteId = n.Id + 1
		}
	}

	user.Notes = append(user.Notes, document.Note{
		Id:        noteId,
		Text:      strings.TrimSpace(newN.Text),
		CreatedAt: time.Now().UTC(),
	})

	if err := document.Write(ctx, doc); err != nil {
		return 0, err
	}

	sys.R.Deploy.Trigger(ctx)
	return noteId, nil
}
