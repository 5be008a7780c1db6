package notes

import "errors"

// ErrMissingFields is returned when a required payload field is empty
var ErrMissingFields = errors.New("missing fields")

// ErrInvalidLogin is returned when the user id is not lowercase latin letters, digits and _
var ErrInvalidLogin = errors.New("invalid login format")

// ErrUserExists is returned when the user id is already taken
var ErrUserExists = errors.New("user exists")

// ErrUserNotFound is returned when the addressed user does not exist
var ErrUserNotFound = errors.New("user not found")

// ErrWrongPassword is returned when the supplied password hash does not match the stored one
var ErrWrongPassword = errors.New("wrong password")
