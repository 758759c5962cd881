package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gahalberto/ImobiManager/internal/domain/entity"
	"github.com/gahalberto/ImobiManager/internal/domain/repository"
)

type CompanyRepository struct {
	pool *pgxpool.Pool
}

func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{pool: pool}
}

func (r *CompanyRepository) Create(ctx context.Context, c *entity.Company) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO companies (name)
		VALUES ($1)
		RETURNING id, created_at
	`, c.Name)
	return row.Scan(&c.ID, &c.CreatedAt)
}

func (r *CompanyRepository) GetAll(ctx context.Context) ([]entity.Company, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, created_at
		FROM companies
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := make([]entity.Company, 0)
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

// GetByIDs silently omits ids with no matching row; callers decide whether a
// shorter result is an error.
func (r *CompanyRepository) GetByIDs(ctx context.Context, ids []int) ([]entity.Company, error) {
	if len(ids) == 0 {
		return []entity.Company{}, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, created_at
		FROM companies
		WHERE id = ANY($1)
		ORDER BY id
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := make([]entity.Company, 0, len(ids))
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

var _ repository.CompanyRepository = (*CompanyRepository)(nil)
