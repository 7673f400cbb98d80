package constants

// Redis key prefixes
const (
	// KeyTransferIdempotency caches finalized transactions by idempotency key.
	// The Postgres unique constraint stays authoritative; this is only the
	// cheap short-circuit for repeat submissions.
	KeyTransferIdempotency = "transfer:idem:"
)
