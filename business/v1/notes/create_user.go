package notes

import (
	"context"
	"regexp"

	"github.com/noteme-app/noteme/persistence/v1/document"
	"github.com/noteme-app/noteme/sys"
)

var loginPattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// CreateUser appends a new user with no notes. The whole operation is one
// read-modify-write cycle: the document is read first, validated against,
// mutated in memory and written back in full. A crash before the write
// leaves the document unchanged.
func CreateUser(ctx context.Context, newU NewUser) error {
	doc, err := document.Read(ctx)
	if err != nil {
		return err
	}

	if newU.UserId == "" || newU.PasswordHash == "" {
		return ErrMissingFields
	}
	if !loginPattern.MatchString(newU.UserId) {
		return ErrInvalidLogin
	}
	for _, u := range doc.Users {
		if u.Id == newU.UserId {
			return ErrUserExists
		}
	}

	doc.Users = append(doc.Users, document.User{
		Id:           newU.UserId,
		PasswordHash: newU.PasswordHash,
		Notes:        []document.Note{},
	})

	if err := document.Write(ctx, doc); err != nil {
		return err
	}

	sys.R.Deploy.Trigger(ctx)
	return nil
}
