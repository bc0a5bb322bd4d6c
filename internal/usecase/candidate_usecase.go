package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"humancapital-api/internal/domain"
	"humancapital-api/pkg/apperror"
	"humancapital-api/pkg/security"
	"humancapital-api/pkg/validation"
)

// Skill limits apply after the form value has been expanded and deduplicated.
const (
	maxSkills      = 50
	maxSkillLength = 100
)

type candidateUsecase struct {
	ownership
	candidateRepo domain.CandidateRepository
	uploads       UploadUsecase
}

func NewCandidateUsecase(candidateRepo domain.CandidateRepository, companyRepo domain.CompanyRepository, uploads UploadUsecase) domain.CandidateUsecase {
	return &candidateUsecase{
		ownership:     ownership{candidates: candidateRepo, companies: companyRepo},
		candidateRepo: candidateRepo,
		uploads:       uploads,
	}
}

// Upsert creates or updates the caller's profile in a single statement.
// Files are uploaded first; a missing file keeps the stored URL.
func (u *candidateUsecase) Upsert(ctx context.Context, identity domain.Identity, input domain.CandidateInput) (*domain.Candidate, error) {
	candidate := &domain.Candidate{
		UserID:       identity.UserID,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        normalizeEmail(input.Email),
		Phone:        strings.TrimSpace(input.Phone),
		City:         strings.TrimSpace(input.City),
		Profession:   strings.TrimSpace(input.Profession),
		Bio:          validation.SanitizeText(input.Bio),
		Skills:       uniqueSkills(validation.SanitizeList(input.Skills)),
		PortfolioURL: trimmedOrNil(input.PortfolioURL),
	}
	if candidate.Email == "" {
		candidate.Email = identity.Email
	}
	if candidate.FirstName == "" || candidate.LastName == "" {
		return nil, apperror.BadRequest("First name and last name are required")
	}
	if err := checkSkills(candidate.Skills); err != nil {
		return nil, err
	}

	if input.Video != nil {
		url, err := u.uploads.Upload(ctx, security.PurposeVideo, input.Video)
		if err != nil {
			return nil, err
		}
		candidate.VideoURL = &url
	}
	if input.CV != nil {
		url, err := u.uploads.Upload(ctx, security.PurposeCV, input.CV)
		if err != nil {
			return nil, err
		}
		candidate.CVURL = &url
	}

	if err := u.candidateRepo.Upsert(ctx, candidate); err != nil {
		return nil, apperror.Internal(err)
	}
	return candidate, nil
}

func (u *candidateUsecase) List(ctx context.Context, filter domain.CandidateFilter) ([]domain.Candidate, error) {
	batch, err := u.candidateRepo.ListRecent(ctx, candidateFetchSize(filter))
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return FilterCandidates(batch, filter), nil
}

func (u *candidateUsecase) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	candidate, err := u.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Candidate not found")
	}
	return candidate, nil
}

func (u *candidateUsecase) GetMine(ctx context.Context, userID string) (*domain.Candidate, error) {
	return u.CandidateOf(ctx, userID)
}

// uniqueSkills drops case-insensitive repeats, keeping first occurrence order
func uniqueSkills(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

func checkSkills(skills []string) error {
	if len(skills) > maxSkills {
		return apperror.BadRequest(fmt.Sprintf("Skills must contain at most %d items", maxSkills))
	}
	for _, s := range skills {
		if utf8.RuneCountInString(s) > maxSkillLength {
			return apperror.BadRequest(fmt.Sprintf("Each skill must be at most %d characters", maxSkillLength))
		}
	}
	return nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
