package application

import (
	"context"

	"github.com/gahalberto/ImobiManager/internal/domain/entity"
	"github.com/gahalberto/ImobiManager/internal/domain/repository"
)

// CompanyService exposes the company directory to the HTTP layer.
type CompanyService struct {
	Companies repository.CompanyRepository
}

func NewCompanyService(companies repository.CompanyRepository) *CompanyService {
	return &CompanyService{Companies: companies}
}

func (s *CompanyService) Create(ctx context.Context, name string) (*entity.Company, error) {
	c := &entity.Company{Name: name}
	if err := s.Companies.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CompanyService) List(ctx context.Context) ([]entity.Company, error) {
	return s.Companies.GetAll(ctx)
}
