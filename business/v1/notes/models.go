package notes

// NewUser is the createUser payload. PasswordHash is opaque: the caller is
// trusted to have hashed the password already, the service never hashes.
type NewUser struct {
	UserId       string `json:"userId"`
	PasswordHash string `json:"passwordHash"`
}

// NewNote is the addNote payload
type NewNote struct {
	UserId       string `json:"userId"`
	PasswordHash string `json:"passwordHash"`
	Text         string `json:"text"`
}

// Event is a mutation delivered over messaging instead of http
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}
