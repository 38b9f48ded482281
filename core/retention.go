package core

import (
	"sort"
	"time"

	"github.com/rushiraj-gohil/bizdash/schema"
)

// BuildRetentionMatrix computes the cohort retention heatmap data.
//
// Each customer's cohort month is the calendar month of their signup; each
// session's activity month is the calendar month of session_start. Sessions
// join to customers on customer_id, the month offset between cohort and
// activity is restricted to [0, MaxRetentionOffset], and customers with no
// qualifying session drop out entirely. The cohort size is the distinct
// customer count over those filtered rows, so a cohort only counts customers
// who were active at least once within the tracked window.
func BuildRetentionMatrix(customers []schema.Customer, sessions []schema.Session) schema.RetentionMatrix {
	cohortByCustomer := make(map[string]time.Time, len(customers))
	for _, c := range customers {
		cohortByCustomer[c.CustomerID] = truncateToMonth(c.SignupDate)
	}

	// Distinct customers per (cohort, offset) cell and per cohort overall.
	retained := make(map[time.Time][]map[string]struct{})
	sizes := make(map[time.Time]map[string]struct{})

	for _, s := range sessions {
		cohort, ok := cohortByCustomer[s.CustomerID]
		if !ok {
			// Sessions without a matching customer fall out of the join.
			continue
		}
		offset := monthOffset(cohort, truncateToMonth(s.SessionStart))
		if offset < 0 || offset > schema.MaxRetentionOffset {
			continue
		}

		cells, ok := retained[cohort]
		if !ok {
			cells = make([]map[string]struct{}, schema.MaxRetentionOffset+1)
			for i := range cells {
				cells[i] = make(map[string]struct{})
			}
			retained[cohort] = cells
			sizes[cohort] = make(map[string]struct{})
		}
		cells[offset][s.CustomerID] = struct{}{}
		sizes[cohort][s.CustomerID] = struct{}{}
	}

	cohortMonths := make([]time.Time, 0, len(retained))
	for cohort := range retained {
		cohortMonths = append(cohortMonths, cohort)
	}
	sort.Slice(cohortMonths, func(i, j int) bool { return cohortMonths[i].Before(cohortMonths[j]) })

	rows := make([]schema.CohortRow, 0, len(cohortMonths))
	for _, cohort := range cohortMonths {
		size := len(sizes[cohort])
		row := schema.CohortRow{CohortMonth: cohort, CohortSize: size}
		for offset, cell := range retained[cohort] {
			if size == 0 {
				continue
			}
			row.Rates[offset] = round3(float64(len(cell))/float64(size)) * 100
		}
		rows = append(rows, row)
	}

	return schema.RetentionMatrix{Cohorts: rows}
}
