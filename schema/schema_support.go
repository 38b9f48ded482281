package schema

// SupportPaymentRow correlates one customer's support ticket volume with their
// payment outcomes. Counts default to 0 for any status the customer never hit;
// none of the columns are ever absent.
type SupportPaymentRow struct {
	CustomerID  string `json:"customer_id"`
	TicketCount int    `json:"ticket_count"`
	PaidTx      int    `json:"paid_tx"`
	Refunded    int    `json:"refunded"`
	ChargedBack int    `json:"charged_back"`
}

// SupportPaymentResult holds one row per customer with at least one support
// ticket, ordered ascending by customer ID.
type SupportPaymentResult struct {
	Rows []SupportPaymentRow `json:"rows"`
}
