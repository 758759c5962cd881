package repository

import (
	"context"

	"github.com/gahalberto/ImobiManager/internal/domain/entity"
)

// CompanyRepository defines lookup and creation of builder/developer records.
type CompanyRepository interface {
	Create(ctx context.Context, c *entity.Company) error
	GetAll(ctx context.Context) ([]entity.Company, error)
	// GetByIDs is a batch membership lookup; ids with no matching row are
	// silently omitted from the result. Callers that require every id to
	// exist must compare lengths themselves.
	GetByIDs(ctx context.Context, ids []int) ([]entity.Company, error)
}
