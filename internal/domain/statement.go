package domain

import "time"

// StatementSize is the fixed number of entries a statement may contain.
const StatementSize = 10

// Statement is a read-only view of a client's current balance together with
// the most recent transaction entries, newest first. Balance and entries come
// from one consistent snapshot.
type Statement struct {
	ClientID int64
	Balance  int64
	Limit    int64
	AsOf     time.Time
	Entries  []*TransactionEntry
}
