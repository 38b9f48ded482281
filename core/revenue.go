package core

import (
	"math"
	"sort"
	"time"

	"github.com/rushiraj-gohil/bizdash/schema"
)

// BuildRevenueTrend computes the monthly paid revenue series and flags months
// whose Z-score deviates by more than schema.AnomalyZThreshold.
//
// Only transactions with payment_status "paid" contribute. Months with zero
// paid revenue are absent from the series (no gap-filling). The standard
// deviation uses the sample definition; when fewer than two months exist the
// deviation is undefined, so every point gets z_score 0 and label Normal.
func BuildRevenueTrend(transactions []schema.Transaction) schema.RevenueTrendResult {
	totals := make(map[time.Time]float64)
	for _, tx := range transactions {
		if tx.PaymentStatus != schema.PaidStatus {
			continue
		}
		totals[truncateToMonth(tx.CreatedAt)] += tx.TotalAmount
	}

	months := make([]time.Time, 0, len(totals))
	for month := range totals {
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	values := make([]float64, len(months))
	for i, month := range months {
		values[i] = totals[month]
	}

	avg := mean(values)
	stdDev := sampleStdDev(values, avg)

	points := make([]schema.MonthlyRevenuePoint, len(months))
	for i, month := range months {
		z := 0.0
		if stdDev > 0 {
			z = (values[i] - avg) / stdDev
		}
		label := schema.NormalValue
		if math.Abs(z) > schema.AnomalyZThreshold {
			label = schema.AnomalyValue
		}
		points[i] = schema.MonthlyRevenuePoint{
			Month:       month,
			TotalAmount: values[i],
			ZScore:      z,
			Anomaly:     label,
		}
	}

	return schema.RevenueTrendResult{Points: points, Mean: avg, StdDev: stdDev}
}
