package schema

import "time"

// MonthlyRevenuePoint is one month of paid revenue with its anomaly annotation.
// Month is the first-of-month timestamp in UTC.
type MonthlyRevenuePoint struct {
	Month       time.Time    `json:"month"`
	TotalAmount float64      `json:"total_amount"`
	ZScore      float64      `json:"z_score"`
	Anomaly     AnomalyLabel `json:"anomaly"`
}

// RevenueTrendResult holds the ordered monthly revenue series along with the
// series statistics used to standardize each point.
type RevenueTrendResult struct {
	Points []MonthlyRevenuePoint `json:"points"`
	Mean   float64               `json:"mean"`
	StdDev float64               `json:"std_dev"`
}

// AnomalyCount returns the number of months flagged as anomalous.
func (r RevenueTrendResult) AnomalyCount() int {
	count := 0
	for _, p := range r.Points {
		if p.Anomaly == AnomalyValue {
			count++
		}
	}
	return count
}
