package ports

// CredentialVerifier isolates how admin passwords are stored and compared.
// The historical deployment keeps passwords verbatim; a bcrypt-backed
// implementation can be substituted without touching call sites.
type CredentialVerifier interface {
	// Hash converts a plaintext password into its stored form.
	Hash(plain string) (string, error)
	// Verify reports whether plain matches the stored form.
	Verify(stored, plain string) bool
}
