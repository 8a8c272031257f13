package domain

import (
	"time"
)

// Client represents an account holder with a fixed overdraft limit and a
// mutable balance. Clients are provisioned out-of-band; the service never
// creates or deletes them.
type Client struct {
	ID        int64
	Limit     int64
	Balance   int64
	CreatedAt time.Time
}

// ValidateDebit checks if the client can be debited by amount without
// breaching the overdraft limit. The balance may reach exactly -Limit.
func (c *Client) ValidateDebit(amount int64) error {
	if c.Balance-amount < -c.Limit {
		return ErrLimitExceeded
	}
	return nil
}

// ApplyDebit returns the balance after a debit.
func (c *Client) ApplyDebit(amount int64) int64 {
	return c.Balance - amount
}

// ApplyCredit returns the balance after a credit. Credits are unbounded.
func (c *Client) ApplyCredit(amount int64) int64 {
	return c.Balance + amount
}
