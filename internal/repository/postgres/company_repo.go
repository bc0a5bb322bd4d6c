package postgres

import (
	"context"

	"humancapital-api/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) Upsert(ctx context.Context, co *domain.Company) error {
	if co.ID == "" {
		co.ID = uuid.NewString()
	}

	query := `
		INSERT INTO companies AS co (
			id, user_id, name, description, website, city, phone, email, logo_url, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			name        = EXCLUDED.name,
			description = EXCLUDED.description,
			website     = EXCLUDED.website,
			city        = EXCLUDED.city,
			phone       = EXCLUDED.phone,
			email       = EXCLUDED.email,
			logo_url    = COALESCE(EXCLUDED.logo_url, co.logo_url),
			updated_at  = NOW()
		RETURNING ` + companyColumns

	err := r.db.QueryRow(ctx, query,
		co.ID, co.UserID, co.Name, co.Description, co.Website, co.City, co.Phone, co.Email, co.LogoURL,
	).Scan(companyDest(co)...)
	return translateError("upsert company", err)
}

func (r *companyRepo) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	return r.getOne(ctx, `SELECT `+companyColumns+` FROM companies co WHERE co.id = $1`, id)
}

func (r *companyRepo) GetByUserID(ctx context.Context, userID string) (*domain.Company, error) {
	return r.getOne(ctx, `SELECT `+companyColumns+` FROM companies co WHERE co.user_id = $1`, userID)
}

func (r *companyRepo) getOne(ctx context.Context, query, arg string) (*domain.Company, error) {
	var co domain.Company
	if err := r.db.QueryRow(ctx, query, arg).Scan(companyDest(&co)...); err != nil {
		return nil, translateError("get company", err)
	}
	return &co, nil
}

func (r *companyRepo) List(ctx context.Context) ([]domain.Company, error) {
	rows, err := r.db.Query(ctx, `SELECT `+companyColumns+` FROM companies co ORDER BY co.created_at DESC`)
	if err != nil {
		return nil, translateError("list companies", err)
	}
	defer rows.Close()

	companies := make([]domain.Company, 0)
	for rows.Next() {
		var co domain.Company
		if err := rows.Scan(companyDest(&co)...); err != nil {
			return nil, translateError("scan company", err)
		}
		companies = append(companies, co)
	}
	return companies, translateError("list companies", rows.Err())
}
