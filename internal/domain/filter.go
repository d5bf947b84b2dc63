package domain

import "strings"

// FilterQuery captures in-memory complaint filters. A zero value matches
// everything.
type FilterQuery struct {
	Text   string
	Status *ComplaintStatus
}

// ApplyFilter returns the order-preserving subsequence of complaints
// matching the query. Text matches case-insensitively against title or
// description; status matches exactly; both predicates are ANDed. Pure and
// side-effect free, safe to call per keystroke.
func ApplyFilter(complaints []Complaint, query FilterQuery) []Complaint {
	text := strings.ToLower(strings.TrimSpace(query.Text))

	out := make([]Complaint, 0, len(complaints))
	for _, c := range complaints {
		if query.Status != nil && c.Status != *query.Status {
			continue
		}
		if text != "" && !matchesText(c, text) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matchesText(c Complaint, lowered string) bool {
	return strings.Contains(strings.ToLower(c.Title), lowered) ||
		strings.Contains(strings.ToLower(c.Description), lowered)
}
