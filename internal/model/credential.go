package model

// Credential is a stored username/password pair. Passwords are kept as
// entered; usernames are not required to be unique.
type Credential struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}
