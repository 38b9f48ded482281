package schema

import "time"

// CohortRow is one cohort month of the retention matrix. Rates[m] is the
// retention percentage (0-100) for month offset m. A cohort/offset combination
// with no active customers holds 0.
type CohortRow struct {
	CohortMonth time.Time                        `json:"cohort_month"`
	CohortSize  int                              `json:"cohort_size"`
	Rates       [MaxRetentionOffset + 1]float64 `json:"rates"`
}

// RetentionMatrix is the cohort retention heatmap data: one row per cohort
// month present in the filtered data, ordered ascending by cohort month.
type RetentionMatrix struct {
	Cohorts []CohortRow `json:"cohorts"`
}
