package booking

import (
	"passgate-backend/internal/domain/models"
)

// builtinPassTypes always appear in a summary, even at zero, so the
// dashboard cards render without key checks.
var builtinPassTypes = []string{"Teens", "Couple", "Family"}

// Summary is the dashboard aggregate over a booking list.
type Summary struct {
	TotalPasses  int            `json:"total_passes"`
	TotalRevenue int64          `json:"total_revenue"`
	CheckedIn    int            `json:"checked_in"`
	NotCheckedIn int            `json:"not_checked_in"`
	ByPassType   map[string]int `json:"by_pass_type"`
}

// Summarize folds list into a Summary. The fold is a plain sum/count,
// so any permutation of the input produces the same result, and an
// empty list yields the all-zero summary.
func Summarize(list []models.Booking) Summary {
	s := Summary{ByPassType: make(map[string]int, len(builtinPassTypes))}
	for _, name := range builtinPassTypes {
		s.ByPassType[name] = 0
	}

	for _, b := range list {
		s.TotalPasses++
		s.TotalRevenue += ResolvedAmount(b)
		if b.CheckedIn {
			s.CheckedIn++
		} else {
			s.NotCheckedIn++
		}
		for _, ref := range b.PassTypes {
			if name := ref.Name(); name != "" {
				s.ByPassType[name]++
			}
		}
	}
	return s
}
