package secrets

// Entry is a stored credential for some external service. OwnerID references
// the owning user and is immutable after creation; every repository operation
// filters on it.
//
// Password is ciphertext (base64 IV||CBC blob) on the repository side of the
// service and plaintext on the caller side; the service is the only place
// where the two meet.
type Entry struct {
	ID       int64  `json:"id"`
	OwnerID  int64  `json:"owner_id"`
	Service  string `json:"service"`
	Username string `json:"username"`
	Password string `json:"password"`
}
