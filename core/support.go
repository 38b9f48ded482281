package core

import (
	"sort"

	"github.com/rushiraj-gohil/bizdash/schema"
)

// BuildSupportPaymentSummary correlates per-customer support ticket volume with
// payment outcomes.
//
// The ticket table drives the join: one output row per customer with at least
// one ticket, ordered ascending by customer ID. Payment counts pivot the
// (customer, status) transaction counts into fixed columns; a customer with no
// transactions, or none of a given status, gets 0 in that column. The paid
// column is present even when no transaction anywhere carries status "paid".
func BuildSupportPaymentSummary(tickets []schema.SupportTicket, transactions []schema.Transaction) schema.SupportPaymentResult {
	ticketCounts := make(map[string]int)
	for _, t := range tickets {
		ticketCounts[t.CustomerID]++
	}

	payments := make(map[string]map[schema.PaymentStatus]int)
	for _, tx := range transactions {
		byStatus, ok := payments[tx.CustomerID]
		if !ok {
			byStatus = make(map[schema.PaymentStatus]int)
			payments[tx.CustomerID] = byStatus
		}
		byStatus[tx.PaymentStatus]++
	}

	customerIDs := make([]string, 0, len(ticketCounts))
	for id := range ticketCounts {
		customerIDs = append(customerIDs, id)
	}
	sort.Strings(customerIDs)

	rows := make([]schema.SupportPaymentRow, 0, len(customerIDs))
	for _, id := range customerIDs {
		byStatus := payments[id] // nil map reads as 0 for every status
		rows = append(rows, schema.SupportPaymentRow{
			CustomerID:  id,
			TicketCount: ticketCounts[id],
			PaidTx:      byStatus[schema.PaidStatus],
			Refunded:    byStatus[schema.RefundedStatus],
			ChargedBack: byStatus[schema.ChargedBackStatus],
		})
	}

	return schema.SupportPaymentResult{Rows: rows}
}
