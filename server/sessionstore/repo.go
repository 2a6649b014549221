package sessionstore

// TokenRecord is the provider's access credential plus metadata, parsed from
// a successful token exchange. Records are immutable once stored and are
// never sent to the browser.
type TokenRecord struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	ExpiresIn    int64 // lifetime in seconds, as reported by the provider
}

// Repo maps opaque session identifiers to token records.
type Repo interface {
	Contains(id string) bool
	Get(id string) (TokenRecord, bool)

	// InsertUnique repeatedly calls generate until it yields an identifier
	// that is not already a key, then inserts the record under it and
	// returns it. The check and insert form one critical section, so the
	// returned identifier is unique at the moment of insertion even under
	// concurrent calls.
	InsertUnique(generate func() string, rec TokenRecord) string

	Delete(id string)
	Len() int
}
