package service

import "golang.org/x/crypto/bcrypt"

// PlaintextVerifier stores and compares passwords verbatim. This is the
// historical behaviour of the system and the default; it exists as a named
// implementation so deployments can swap it out.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Hash(plain string) (string, error) { return plain, nil }

func (PlaintextVerifier) Verify(stored, plain string) bool { return stored == plain }

// BcryptVerifier stores bcrypt hashes instead of plaintext. Selected with
// CREDENTIAL_SCHEME=bcrypt.
type BcryptVerifier struct {
	Cost int
}

func (v BcryptVerifier) Hash(plain string) (string, error) {
	cost := v.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (v BcryptVerifier) Verify(stored, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}
