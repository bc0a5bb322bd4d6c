package postgres

import (
	"context"

	"humancapital-api/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

// Upsert keeps existing video/cv URLs when the new value is NULL.
func (r *candidateRepository) Upsert(ctx context.Context, c *domain.Candidate) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Skills == nil {
		c.Skills = []string{}
	}

	query := `
		INSERT INTO candidates AS c (
			id, user_id, first_name, last_name, email, phone, city, profession, bio,
			skills, portfolio_url, video_url, cv_url, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			first_name    = EXCLUDED.first_name,
			last_name     = EXCLUDED.last_name,
			email         = EXCLUDED.email,
			phone         = EXCLUDED.phone,
			city          = EXCLUDED.city,
			profession    = EXCLUDED.profession,
			bio           = EXCLUDED.bio,
			skills        = EXCLUDED.skills,
			portfolio_url = EXCLUDED.portfolio_url,
			video_url     = COALESCE(EXCLUDED.video_url, c.video_url),
			cv_url        = COALESCE(EXCLUDED.cv_url, c.cv_url),
			updated_at    = NOW()
		RETURNING ` + candidateColumns

	err := r.db.QueryRow(ctx, query,
		c.ID, c.UserID, c.FirstName, c.LastName, c.Email, c.Phone, c.City, c.Profession, c.Bio,
		c.Skills, c.PortfolioURL, c.VideoURL, c.CVURL,
	).Scan(candidateDest(c)...)
	return translateError("upsert candidate", err)
}

func (r *candidateRepository) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	return r.getOne(ctx, `SELECT `+candidateColumns+` FROM candidates c WHERE c.id = $1`, id)
}

func (r *candidateRepository) GetByUserID(ctx context.Context, userID string) (*domain.Candidate, error) {
	return r.getOne(ctx, `SELECT `+candidateColumns+` FROM candidates c WHERE c.user_id = $1`, userID)
}

func (r *candidateRepository) getOne(ctx context.Context, query, arg string) (*domain.Candidate, error) {
	var c domain.Candidate
	if err := r.db.QueryRow(ctx, query, arg).Scan(candidateDest(&c)...); err != nil {
		return nil, translateError("get candidate", err)
	}
	return &c, nil
}

// ListRecent returns at most limit candidates, newest first.
func (r *candidateRepository) ListRecent(ctx context.Context, limit int) ([]domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates c ORDER BY c.created_at DESC LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, translateError("list candidates", err)
	}
	defer rows.Close()

	candidates := make([]domain.Candidate, 0)
	for rows.Next() {
		var c domain.Candidate
		if err := rows.Scan(candidateDest(&c)...); err != nil {
			return nil, translateError("scan candidate", err)
		}
		candidates = append(candidates, c)
	}
	return candidates, translateError("list candidates", rows.Err())
}
