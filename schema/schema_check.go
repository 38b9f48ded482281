package schema

// CheckResult is the outcome of the dashboard health gate: the revenue trend
// is recomputed and the number of anomalous months is compared against the
// configured budget.
type CheckResult struct {
	Passed          bool                  `json:"passed"`
	MaxAnomalies    int                   `json:"max_anomalies"`
	TotalMonths     int                   `json:"total_months"`
	AnomalousMonths []MonthlyRevenuePoint `json:"anomalous_months"`
	Mean            float64               `json:"mean"`
	StdDev          float64               `json:"std_dev"`
}
