package document

import "time"

// Document is the entire persisted state: one json object in the bin
type Document struct {
	Users []User `json:"users"`
}

// User owns an append-only sequence of notes, in creation order
type User struct {
	Id           string `json:"id"`
	PasswordHash string `json:"passwordHash"`
	Notes        []Note `json:"notes"`
}

// Note ids are unique per user, assigned by the service, starting at 1
type Note struct {
	Id        int       `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
