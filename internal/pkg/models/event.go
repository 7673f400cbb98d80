package models

import "time"

// TransactionEvent is published once per terminal transition of a transaction.
// Amount is an exact base-10 decimal string, matching the wire convention of
// the ledger RPC surface.
type TransactionEvent struct {
	TransactionID string            `json:"transaction_id"`
	CustomerID    string            `json:"customer_id"`
	Amount        string            `json:"amount"`
	Type          TransactionType   `json:"type"`
	Status        TransactionStatus `json:"status"`
	Timestamp     time.Time         `json:"timestamp"`
}
