package usecase

import (
	"strings"

	"humancapital-api/internal/domain"
)

// Fetch window for the public candidate list. Filters run in memory over
// the newest rows, so a filtered query looks further back.
const (
	candidateFetchLimit         = 1000
	candidateFilteredFetchLimit = 5000
)

func candidateFetchSize(filter domain.CandidateFilter) int {
	if filter.HasCriteria() {
		return candidateFilteredFetchLimit
	}
	return candidateFetchLimit
}

// FilterCandidates applies, in order: city (exact, case-insensitive),
// profession (substring), search (substring over first name, last name,
// profession or any skill), then truncates to filter.Limit when positive.
// The batch order is preserved.
func FilterCandidates(batch []domain.Candidate, filter domain.CandidateFilter) []domain.Candidate {
	city := strings.ToLower(strings.TrimSpace(filter.City))
	profession := strings.ToLower(strings.TrimSpace(filter.Profession))
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	out := make([]domain.Candidate, 0, len(batch))
	for _, c := range batch {
		if city != "" && strings.ToLower(strings.TrimSpace(c.City)) != city {
			continue
		}
		if profession != "" && !strings.Contains(strings.ToLower(c.Profession), profession) {
			continue
		}
		if search != "" && !matchesSearch(c, search) {
			continue
		}
		out = append(out, c)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out
}

// term must already be lower-cased
func matchesSearch(c domain.Candidate, term string) bool {
	for _, field := range []string{c.FirstName, c.LastName, c.Profession} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	for _, skill := range c.Skills {
		if strings.Contains(strings.ToLower(skill), term) {
			return true
		}
	}
	return false
}
