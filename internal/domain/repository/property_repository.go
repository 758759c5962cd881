package repository

import (
	"context"

	"github.com/gahalberto/ImobiManager/internal/domain/entity"
)

// PropertyFilter is a partially-specified search predicate. Nil fields impose
// no constraint; a pointer to a zero value is a real constraint (bedrooms=0 is
// a valid filter, distinct from "not provided").
type PropertyFilter struct {
	PriceMin    *float64
	PriceMax    *float64
	Bedrooms    *int
	Bathrooms   *int
	AddressCity *string // case-insensitive substring match
}

// PropertyRepository defines persistence for listings and their photos.
type PropertyRepository interface {
	// CreateWithPhotos inserts the property row and one photo row per image
	// path in a single transaction, then fills ID, CreatedAt and Photos.
	CreateWithPhotos(ctx context.Context, p *entity.Property, imagePaths []string) error
	// GetByID loads a property with all of its photos; ErrNotFound when absent.
	GetByID(ctx context.Context, id int) (*entity.Property, error)
	// Update persists all scalar columns of p; ErrNotFound when the row is gone.
	Update(ctx context.Context, p *entity.Property) error
	// Delete removes the property; associated photos go with it in the same
	// transaction. ErrNotFound when absent.
	Delete(ctx context.Context, id int) error
	// Find returns one page of properties matching the filter plus the total
	// count over the same predicate. Each returned property carries at most
	// one photo (its first), for list-view display. Ordering is by id
	// ascending so pages never drift between requests.
	Find(ctx context.Context, f PropertyFilter, page, limit int) ([]entity.Property, int, error)
}
