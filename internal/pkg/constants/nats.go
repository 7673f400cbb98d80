package constants

// NATS Subjects
const (
	// Transaction events, published once per terminal transition
	SubjectTransactionCompleted = "transaction.completed"
	SubjectTransactionFailed    = "transaction.failed"

	// Account events
	SubjectAccountCreated = "account.created"
)
