package domain

import "time"

// AdminAccount is a stored administrator credential. Passwords are kept in
// whatever form the configured credential verifier expects; the default
// deployment stores them verbatim.
type AdminAccount struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// AdminSession is the single currently-authenticated administrator record.
type AdminSession struct {
	Username string    `json:"username"`
	Name     string    `json:"name"`
	LoginAt  time.Time `json:"loginAt"`
}

// AuthResult is the outcome of a login or password change attempt. Failures
// are ordinary results, not errors: the message is meant for display.
type AuthResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
