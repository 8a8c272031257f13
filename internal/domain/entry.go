package domain

import (
	"time"
)

// TransactionKind is the direction of a transaction entry.
type TransactionKind string

const (
	KindCredit TransactionKind = "credit"
	KindDebit  TransactionKind = "debit"
)

// Valid reports whether the kind is one of the two known values.
func (k TransactionKind) Valid() bool {
	return k == KindCredit || k == KindDebit
}

// Delta returns the signed balance change for amount under this kind.
func (k TransactionKind) Delta(amount int64) int64 {
	if k == KindDebit {
		return -amount
	}
	return amount
}

// TransactionEntry is an immutable record of one credit or debit applied to
// a client. The ID is assigned by the store and increases monotonically.
type TransactionEntry struct {
	ID          int64
	ClientID    int64
	Amount      int64
	Kind        TransactionKind
	Description string
	OccurredAt  time.Time
}
