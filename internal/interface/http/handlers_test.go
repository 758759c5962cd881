package handlers

import (
	"context"
	"io"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gahalberto/ImobiManager/internal/domain/entity"
	"github.com/gahalberto/ImobiManager/internal/domain/repository"
	"github.com/gahalberto/ImobiManager/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.Init()
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type memUserRepo struct {
	users  map[string]*entity.User
	nextID int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}, nextID: 1}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := r.users[u.Email]; ok {
		return repository.ErrDuplicate
	}
	u.ID = r.nextID
	r.nextID++
	cp := *u
	r.users[u.Email] = &cp
	return nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

type memCompanyRepo struct {
	companies map[int]*entity.Company
	nextID    int
}

func newMemCompanyRepo() *memCompanyRepo {
	return &memCompanyRepo{companies: map[int]*entity.Company{}, nextID: 1}
}

func (r *memCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	c.ID = r.nextID
	r.nextID++
	cp := *c
	r.companies[c.ID] = &cp
	return nil
}

func (r *memCompanyRepo) GetAll(_ context.Context) ([]entity.Company, error) {
	out := make([]entity.Company, 0, len(r.companies))
	for _, c := range r.companies {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memCompanyRepo) GetByIDs(_ context.Context, ids []int) ([]entity.Company, error) {
	out := make([]entity.Company, 0, len(ids))
	for _, id := range ids {
		if c, ok := r.companies[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

type memPropertyRepo struct {
	properties map[int]*entity.Property
	nextID     int
}

func newMemPropertyRepo() *memPropertyRepo {
	return &memPropertyRepo{properties: map[int]*entity.Property{}, nextID: 1}
}

func (r *memPropertyRepo) CreateWithPhotos(_ context.Context, p *entity.Property, imagePaths []string) error {
	p.ID = r.nextID
	r.nextID++
	p.Photos = make([]entity.Photo, 0, len(imagePaths))
	for i, path := range imagePaths {
		p.Photos = append(p.Photos, entity.Photo{ID: i + 1, PropertyID: p.ID, FilePath: path})
	}
	cp := *p
	r.properties[p.ID] = &cp
	return nil
}

func (r *memPropertyRepo) GetByID(_ context.Context, id int) (*entity.Property, error) {
	p, ok := r.properties[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memPropertyRepo) Update(_ context.Context, p *entity.Property) error {
	if _, ok := r.properties[p.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *p
	r.properties[p.ID] = &cp
	return nil
}

func (r *memPropertyRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.properties[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.properties, id)
	return nil
}

func (r *memPropertyRepo) Find(_ context.Context, f repository.PropertyFilter, page, limit int) ([]entity.Property, int, error) {
	matched := make([]entity.Property, 0, len(r.properties))
	for _, p := range r.properties {
		if f.PriceMin != nil && p.Price < *f.PriceMin {
			continue
		}
		if f.PriceMax != nil && p.Price > *f.PriceMax {
			continue
		}
		if f.Bedrooms != nil && p.Bedrooms != *f.Bedrooms {
			continue
		}
		if f.Bathrooms != nil && p.Bathrooms != *f.Bathrooms {
			continue
		}
		if f.AddressCity != nil && !strings.Contains(strings.ToLower(p.AddressCity), strings.ToLower(*f.AddressCity)) {
			continue
		}
		matched = append(matched, *p)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	total := len(matched)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

// memPhotoStore records saved files without touching disk.
type memPhotoStore struct {
	saved []string
}

func (s *memPhotoStore) Save(_ context.Context, filename, _ string, r io.Reader) (string, error) {
	_, _ = io.Copy(io.Discard, r)
	path := "uploads/photos/" + filename
	s.saved = append(s.saved, path)
	return path, nil
}
