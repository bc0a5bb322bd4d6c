package usecase_test

import (
	"testing"

	"humancapital-api/internal/domain"
	"humancapital-api/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func candidateFixtures() []domain.Candidate {
	return []domain.Candidate{
		{ID: "1", FirstName: "Aysel", LastName: "Quliyeva", City: "Bakı", Profession: "Frontend Developer", Skills: []string{"React", "Node"}},
		{ID: "2", FirstName: "Murad", LastName: "Hasanov", City: " bakı ", Profession: "Backend Developer", Skills: []string{"Go", "PostgreSQL"}},
		{ID: "3", FirstName: "Leyla", LastName: "Frontov", City: "Gəncə", Profession: "Designer", Skills: []string{"Figma"}},
		{ID: "4", FirstName: "Kamran", LastName: "Əliyev", City: "Sumqayıt", Profession: "Accountant", Skills: nil},
	}
}

func ids(cs []domain.Candidate) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}

func TestFilterCandidatesCityIsExactAndCaseInsensitive(t *testing.T) {
	got := usecase.FilterCandidates(candidateFixtures(), domain.CandidateFilter{City: "BAKı"})
	assert.Equal(t, []string{"1", "2"}, ids(got))

	// exact, not substring
	got = usecase.FilterCandidates(candidateFixtures(), domain.CandidateFilter{City: "Bak"})
	assert.Empty(t, got)
}

func TestFilterCandidatesSearchMatchesNamesAndProfession(t *testing.T) {
	got := usecase.FilterCandidates(candidateFixtures(), domain.CandidateFilter{Search: "front"})
	// profession of 1, last name of 3
	assert.Equal(t, []string{"1", "3"}, ids(got))
}

func TestFilterCandidatesSearchMatchesSkills(t *testing.T) {
	got := usecase.FilterCandidates(candidateFixtures(), domain.CandidateFilter{Search: "react"})
	assert.Equal(t, []string{"1"}, ids(got))

	got = usecase.FilterCandidates(candidateFixtures(), domain.CandidateFilter{Search: "vue"})
	assert.Empty(t, got)
}

func TestFilterCandidatesProfessionThenSearch(t *testing.T) {
	got := usecase.FilterCandidates(candidateFixtures(), domain.CandidateFilter{
		City:       "bakı",
		Profession: "developer",
		Search:     "go",
	})
	assert.Equal(t, []string{"2"}, ids(got))
}

func TestFilterCandidatesLimitAppliedAfterFiltering(t *testing.T) {
	got := usecase.FilterCandidates(candidateFixtures(), domain.CandidateFilter{Profession: "e", Limit: 2})
	assert.Equal(t, []string{"1", "2"}, ids(got))

	got = usecase.FilterCandidates(candidateFixtures(), domain.CandidateFilter{Limit: 0})
	assert.Len(t, got, 4)
}
