package statestore

// Repo holds the outstanding, unconsumed anti-forgery state tokens minted at
// login start. A token is valid for exactly one callback.
type Repo interface {
	// Register inserts a token. Registering an already-present token is a
	// no-op, not an error.
	Register(token string)

	// Consume atomically removes the token if present and reports whether it
	// was. No two concurrent Consume calls for the same token may both
	// return true.
	Consume(token string) bool

	// Snapshot returns a copy of the outstanding tokens, for server-side
	// diagnostics only.
	Snapshot() []string

	Len() int

	// Sweep drops tokens older than the repository's TTL and returns how
	// many were removed.
	Sweep() int
}
