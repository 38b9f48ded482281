// Package schema has configs, models and global variables for all parts of bizdash.
package schema

import "time"

// Transaction is one row of cleaned_transactions.csv.
// Upstream cleaning guarantees that TotalAmount is defined for every row and
// that PaymentStatus is drawn from a fixed small vocabulary.
type Transaction struct {
	TransactionID string        // Unique identifier for the transaction
	CustomerID    string        // Customer who made the transaction
	CreatedAt     time.Time     // When the transaction was created
	PaymentStatus PaymentStatus // Outcome of the payment (paid, refunded, charged_back, ...)
	TotalAmount   float64       // Transaction value
}

// Session is one row of cleaned_sessions.csv.
// SessionStart <= SessionEnd is assumed from upstream cleaning, not enforced here.
type Session struct {
	CustomerID   string
	SessionStart time.Time
	SessionEnd   time.Time
}

// Customer is one row of cleaned_customers.csv. CustomerID is unique.
type Customer struct {
	CustomerID string
	SignupDate time.Time
}

// SupportTicket is one row of cleaned_support_tickets.csv.
type SupportTicket struct {
	CustomerID string
	CreatedAt  time.Time
	ResolvedAt time.Time
}

// Product is one row of cleaned_products.csv. The table is part of the archive
// contract and is loaded for completeness, but no analyzer consumes it.
type Product struct {
	ProductID string
	Name      string
	Category  string
	Price     float64
}

// Dataset bundles the five cleaned tables produced by the data loader.
// It is immutable once loaded; analyzers never mutate the source tables.
type Dataset struct {
	Transactions []Transaction
	Sessions     []Session
	Customers    []Customer
	Tickets      []SupportTicket
	Products     []Product
}
