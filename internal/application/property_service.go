package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/gahalberto/ImobiManager/internal/domain/entity"
	"github.com/gahalberto/ImobiManager/internal/domain/repository"
)

// PropertyService is the listing lifecycle manager plus the filtered search
// entry point.
type PropertyService struct {
	Properties repository.PropertyRepository
	Companies  repository.CompanyRepository
	Logger     *logrus.Logger
	// ES is optional; when set, properties are indexed best-effort for the
	// full-text search endpoint.
	ES      *elasticsearch.Client
	ESIndex string
}

func NewPropertyService(properties repository.PropertyRepository, companies repository.CompanyRepository, logger *logrus.Logger, es *elasticsearch.Client, esIndex string) *PropertyService {
	return &PropertyService{Properties: properties, Companies: companies, Logger: logger, ES: es, ESIndex: esIndex}
}

type CreatePropertyInput struct {
	Title               string
	AddressZipcode      string
	AddressStreet       string
	AddressNumber       int
	AddressComplement   string
	AddressNeighborhood string
	AddressCity         string
	AddressState        string
	Price               float64
	Description         string
	Bedrooms            int
	Bathrooms           int
	CompanyID           int
	ImagePaths          []string
}

// UpdatePropertyInput distinguishes "field omitted" (nil) from "field set to
// a zero value". Bedrooms of 0 is a real update, not an omission.
type UpdatePropertyInput struct {
	Title               *string
	AddressZipcode      *string
	AddressStreet       *string
	AddressNumber       *int
	AddressComplement   *string
	AddressNeighborhood *string
	AddressCity         *string
	AddressState        *string
	Price               *float64
	Description         *string
	Bedrooms            *int
	Bathrooms           *int
	CompanyID           *int
}

// Create resolves the company reference, then persists the property and its
// photo rows atomically. A missing company is a hard error and nothing is
// written.
func (s *PropertyService) Create(ctx context.Context, in CreatePropertyInput) (*entity.Property, error) {
	if err := s.resolveCompany(ctx, in.CompanyID); err != nil {
		return nil, err
	}

	p := &entity.Property{
		Title:               in.Title,
		AddressZipcode:      in.AddressZipcode,
		AddressStreet:       in.AddressStreet,
		AddressNumber:       in.AddressNumber,
		AddressComplement:   in.AddressComplement,
		AddressNeighborhood: in.AddressNeighborhood,
		AddressCity:         in.AddressCity,
		AddressState:        in.AddressState,
		Price:               in.Price,
		Description:         in.Description,
		Bedrooms:            in.Bedrooms,
		Bathrooms:           in.Bathrooms,
		CompanyID:           in.CompanyID,
	}
	if err := s.Properties.CreateWithPhotos(ctx, p, in.ImagePaths); err != nil {
		return nil, err
	}

	s.indexProperty(ctx, p)
	return p, nil
}

func (s *PropertyService) GetByID(ctx context.Context, id int) (*entity.Property, error) {
	p, err := s.Properties.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Update loads the existing property and overwrites exactly the fields the
// caller supplied. Absent fields keep their stored values.
func (s *PropertyService) Update(ctx context.Context, id int, in UpdatePropertyInput) (*entity.Property, error) {
	p, err := s.Properties.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.AddressZipcode != nil {
		p.AddressZipcode = *in.AddressZipcode
	}
	if in.AddressStreet != nil {
		p.AddressStreet = *in.AddressStreet
	}
	if in.AddressNumber != nil {
		p.AddressNumber = *in.AddressNumber
	}
	if in.AddressComplement != nil {
		p.AddressComplement = *in.AddressComplement
	}
	if in.AddressNeighborhood != nil {
		p.AddressNeighborhood = *in.AddressNeighborhood
	}
	if in.AddressCity != nil {
		p.AddressCity = *in.AddressCity
	}
	if in.AddressState != nil {
		p.AddressState = *in.AddressState
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Bedrooms != nil {
		p.Bedrooms = *in.Bedrooms
	}
	if in.Bathrooms != nil {
		p.Bathrooms = *in.Bathrooms
	}
	if in.CompanyID != nil {
		if err := s.resolveCompany(ctx, *in.CompanyID); err != nil {
			return nil, err
		}
		p.CompanyID = *in.CompanyID
	}

	if err := s.Properties.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.indexProperty(ctx, p)
	return p, nil
}

// Delete captures the property snapshot before removing it, so the caller can
// return the removed entity in its confirmation payload.
func (s *PropertyService) Delete(ctx context.Context, id int) (*entity.Property, error) {
	p, err := s.Properties.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.Properties.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.deindexProperty(ctx, id)
	return p, nil
}

type FindResult struct {
	Properties      []entity.Property
	TotalProperties int
}

// Find runs the filtered, paginated query. page and limit are assumed valid
// (the handler rejects limit < 1 before storage is touched).
func (s *PropertyService) Find(ctx context.Context, f repository.PropertyFilter, page, limit int) (*FindResult, error) {
	properties, total, err := s.Properties.Find(ctx, f, page, limit)
	if err != nil {
		return nil, err
	}
	return &FindResult{Properties: properties, TotalProperties: total}, nil
}

// resolveCompany turns the directory's silent-omission batch lookup into the
// hard failure the lifecycle requires.
func (s *PropertyService) resolveCompany(ctx context.Context, id int) error {
	companies, err := s.Companies.GetByIDs(ctx, []int{id})
	if err != nil {
		return err
	}
	if len(companies) == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

// indexProperty mirrors the row into Elasticsearch. Failures are logged and
// swallowed; search lags behind storage rather than breaking writes.
func (s *PropertyService) indexProperty(ctx context.Context, p *entity.Property) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"id":           p.ID,
		"title":        p.Title,
		"description":  p.Description,
		"address_city": p.AddressCity,
		"price":        p.Price,
		"bedrooms":     p.Bedrooms,
		"bathrooms":    p.Bathrooms,
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: strconv.Itoa(p.ID), Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("property_id", p.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("property_id", p.ID).Warn("es index response error")
	}
}

func (s *PropertyService) deindexProperty(ctx context.Context, id int) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: strconv.Itoa(id)}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("property_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search performs a multi_match query over title, description and city.
// Returns an empty result when Elasticsearch is not configured.
func (s *PropertyService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "description", "address_city"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("es search: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
