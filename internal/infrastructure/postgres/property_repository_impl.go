package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gahalberto/ImobiManager/internal/domain/entity"
	"github.com/gahalberto/ImobiManager/internal/domain/repository"
)

type PropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyRepository(pool *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{pool: pool}
}

// CreateWithPhotos persists the property row and its photo rows in one
// transaction, so a failed photo insert never leaves a photo-less property
// behind.
func (r *PropertyRepository) CreateWithPhotos(ctx context.Context, p *entity.Property, imagePaths []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create property: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO properties
			(title, address_zipcode, address_street, address_number, address_complement,
			 address_neighborhood, address_city, address_state, price, description,
			 bedrooms, bathrooms, company_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at
	`, p.Title, p.AddressZipcode, p.AddressStreet, p.AddressNumber, p.AddressComplement,
		p.AddressNeighborhood, p.AddressCity, p.AddressState, p.Price, p.Description,
		p.Bedrooms, p.Bathrooms, p.CompanyID)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return fmt.Errorf("insert property: %w", err)
	}

	p.Photos = make([]entity.Photo, 0, len(imagePaths))
	for _, path := range imagePaths {
		photo := entity.Photo{PropertyID: p.ID, FilePath: path}
		if err := tx.QueryRow(ctx, `
			INSERT INTO photos (property_id, file_path)
			VALUES ($1, $2)
			RETURNING id
		`, photo.PropertyID, photo.FilePath).Scan(&photo.ID); err != nil {
			return fmt.Errorf("insert photo: %w", err)
		}
		p.Photos = append(p.Photos, photo)
	}

	return tx.Commit(ctx)
}

func (r *PropertyRepository) GetByID(ctx context.Context, id int) (*entity.Property, error) {
	p := &entity.Property{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, title, address_zipcode, address_street, address_number,
			address_complement, address_neighborhood, address_city, address_state,
			price, description, bedrooms, bathrooms, company_id, created_at
		FROM properties
		WHERE id = $1
	`, id)
	if err := scanProperty(row, p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	photos, err := r.photosFor(ctx, []int{p.ID}, false)
	if err != nil {
		return nil, err
	}
	p.Photos = photos[p.ID]
	if p.Photos == nil {
		p.Photos = []entity.Photo{}
	}
	return p, nil
}

func (r *PropertyRepository) Update(ctx context.Context, p *entity.Property) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE properties
		SET title = $1, address_zipcode = $2, address_street = $3, address_number = $4,
			address_complement = $5, address_neighborhood = $6, address_city = $7,
			address_state = $8, price = $9, description = $10, bedrooms = $11,
			bathrooms = $12, company_id = $13
		WHERE id = $14
	`, p.Title, p.AddressZipcode, p.AddressStreet, p.AddressNumber, p.AddressComplement,
		p.AddressNeighborhood, p.AddressCity, p.AddressState, p.Price, p.Description,
		p.Bedrooms, p.Bathrooms, p.CompanyID, p.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes the property and its photos in one transaction. The photos
// table also carries ON DELETE CASCADE; the explicit delete keeps the
// invariant visible and covers schemas restored without the constraint.
func (r *PropertyRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete property: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM photos WHERE property_id = $1`, id); err != nil {
		return fmt.Errorf("delete photos: %w", err)
	}
	res, err := tx.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return tx.Commit(ctx)
}

// Find runs the count and the page query over one shared predicate and
// attaches the first photo of each returned property.
func (r *PropertyRepository) Find(ctx context.Context, f repository.PropertyFilter, page, limit int) ([]entity.Property, int, error) {
	q := buildPropertyFilter(f)

	countSQL, countArgs := q.countSQL()
	var total int
	if err := r.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count properties: %w", err)
	}

	pageSQL, pageArgs := q.pageSQL(page, limit)
	rows, err := r.pool.Query(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("select properties: %w", err)
	}
	defer rows.Close()

	properties := make([]entity.Property, 0, limit)
	ids := make([]int, 0, limit)
	for rows.Next() {
		var p entity.Property
		if err := scanProperty(rows, &p); err != nil {
			return nil, 0, err
		}
		p.Photos = []entity.Photo{}
		properties = append(properties, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if len(ids) > 0 {
		photos, err := r.photosFor(ctx, ids, true)
		if err != nil {
			return nil, 0, err
		}
		for i := range properties {
			if ph, ok := photos[properties[i].ID]; ok {
				properties[i].Photos = ph
			}
		}
	}

	return properties, total, nil
}

// photosFor loads photos for the given property ids. With firstOnly set it
// returns only the lowest-id photo per property, which is what the list view
// displays.
func (r *PropertyRepository) photosFor(ctx context.Context, ids []int, firstOnly bool) (map[int][]entity.Photo, error) {
	sql := `SELECT id, property_id, file_path FROM photos WHERE property_id = ANY($1) ORDER BY property_id, id`
	if firstOnly {
		sql = `SELECT DISTINCT ON (property_id) id, property_id, file_path
			FROM photos WHERE property_id = ANY($1) ORDER BY property_id, id`
	}
	rows, err := r.pool.Query(ctx, sql, ids)
	if err != nil {
		return nil, fmt.Errorf("select photos: %w", err)
	}
	defer rows.Close()

	out := make(map[int][]entity.Photo, len(ids))
	for rows.Next() {
		var ph entity.Photo
		if err := rows.Scan(&ph.ID, &ph.PropertyID, &ph.FilePath); err != nil {
			return nil, err
		}
		out[ph.PropertyID] = append(out[ph.PropertyID], ph)
	}
	return out, rows.Err()
}

func scanProperty(row pgx.Row, p *entity.Property) error {
	return row.Scan(&p.ID, &p.Title, &p.AddressZipcode, &p.AddressStreet, &p.AddressNumber,
		&p.AddressComplement, &p.AddressNeighborhood, &p.AddressCity, &p.AddressState,
		&p.Price, &p.Description, &p.Bedrooms, &p.Bathrooms, &p.CompanyID, &p.CreatedAt)
}

var _ repository.PropertyRepository = (*PropertyRepository)(nil)
