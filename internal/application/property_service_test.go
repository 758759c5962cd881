package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gahalberto/ImobiManager/internal/domain/entity"
	"github.com/gahalberto/ImobiManager/internal/domain/repository"
)

func newPropertySvc(t *testing.T) (*PropertyService, *fakePropertyRepo, *fakeCompanyRepo) {
	t.Helper()
	props := newFakePropertyRepo()
	companies := newFakeCompanyRepo()
	svc := NewPropertyService(props, companies, testLogger(), nil, "")
	return svc, props, companies
}

func seedCompany(t *testing.T, companies *fakeCompanyRepo, name string) int {
	t.Helper()
	c := &entity.Company{Name: name}
	require.NoError(t, companies.Create(context.Background(), c))
	return c.ID
}

func validCreateInput(companyID int) CreatePropertyInput {
	return CreatePropertyInput{
		Title:               "Apartamento centro",
		AddressZipcode:      "01310-100",
		AddressStreet:       "Av. Paulista",
		AddressNumber:       1500,
		AddressNeighborhood: "Bela Vista",
		AddressCity:         "Sao Paulo",
		AddressState:        "SP",
		Price:               450000,
		Description:         "Reformado, vista livre.",
		Bedrooms:            2,
		Bathrooms:           1,
		CompanyID:           companyID,
		ImagePaths:          []string{"uploads/photos/a.jpg", "uploads/photos/b.jpg"},
	}
}

func TestCreatePropertyWithPhotos(t *testing.T) {
	svc, props, companies := newPropertySvc(t)
	companyID := seedCompany(t, companies, "Horizonte Imoveis")

	p, err := svc.Create(context.Background(), validCreateInput(companyID))
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Equal(t, companyID, p.CompanyID)
	require.Len(t, p.Photos, 2)
	assert.Equal(t, p.ID, p.Photos[0].PropertyID)
	assert.Equal(t, "uploads/photos/a.jpg", p.Photos[0].FilePath)

	stored, err := props.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Title, stored.Title)
}

func TestCreatePropertyUnknownCompany(t *testing.T) {
	svc, props, _ := newPropertySvc(t)

	_, err := svc.Create(context.Background(), validCreateInput(42))
	assert.ErrorIs(t, err, ErrCompanyNotFound)
	assert.Empty(t, props.properties, "nothing persisted when the company is unknown")
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	svc, _, companies := newPropertySvc(t)
	companyID := seedCompany(t, companies, "Horizonte Imoveis")

	p, err := svc.Create(context.Background(), validCreateInput(companyID))
	require.NoError(t, err)

	newPrice := 480000.0
	updated, err := svc.Update(context.Background(), p.ID, UpdatePropertyInput{Price: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, 480000.0, updated.Price)
	assert.Equal(t, p.Title, updated.Title)
	assert.Equal(t, p.Bedrooms, updated.Bedrooms)
	assert.Equal(t, p.AddressCity, updated.AddressCity)
}

func TestUpdateZeroValueIsApplied(t *testing.T) {
	svc, _, companies := newPropertySvc(t)
	companyID := seedCompany(t, companies, "Horizonte Imoveis")

	p, err := svc.Create(context.Background(), validCreateInput(companyID))
	require.NoError(t, err)
	require.Equal(t, 2, p.Bedrooms)

	zero := 0
	updated, err := svc.Update(context.Background(), p.ID, UpdatePropertyInput{Bedrooms: &zero})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Bedrooms, "bedrooms 0 is a real update, not an omission")
}

func TestUpdateUnknownCompanyLeavesPropertyUntouched(t *testing.T) {
	svc, props, companies := newPropertySvc(t)
	companyID := seedCompany(t, companies, "Horizonte Imoveis")

	p, err := svc.Create(context.Background(), validCreateInput(companyID))
	require.NoError(t, err)

	bogus := 999
	title := "changed"
	_, err = svc.Update(context.Background(), p.ID, UpdatePropertyInput{Title: &title, CompanyID: &bogus})
	assert.ErrorIs(t, err, ErrCompanyNotFound)

	stored, err := props.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Title, stored.Title)
	assert.Equal(t, companyID, stored.CompanyID)
}

func TestUpdateMissingProperty(t *testing.T) {
	svc, _, _ := newPropertySvc(t)

	title := "anything"
	_, err := svc.Update(context.Background(), 123, UpdatePropertyInput{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteReturnsSnapshot(t *testing.T) {
	svc, props, companies := newPropertySvc(t)
	companyID := seedCompany(t, companies, "Horizonte Imoveis")

	p, err := svc.Create(context.Background(), validCreateInput(companyID))
	require.NoError(t, err)

	snap, err := svc.Delete(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, snap.ID)
	assert.Equal(t, p.Title, snap.Title)

	_, err = svc.GetByID(context.Background(), p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, []int{p.ID}, props.deleted)
}

func TestDeleteMissingProperty(t *testing.T) {
	svc, _, _ := newPropertySvc(t)

	_, err := svc.Delete(context.Background(), 77)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindReturnsTotalOverWholePredicate(t *testing.T) {
	svc, _, companies := newPropertySvc(t)
	companyID := seedCompany(t, companies, "Horizonte Imoveis")

	for i := 0; i < 5; i++ {
		in := validCreateInput(companyID)
		in.Title = "Listing"
		in.Price = float64(100000 * (i + 1))
		_, err := svc.Create(context.Background(), in)
		require.NoError(t, err)
	}

	max := 300000.0
	res, err := svc.Find(context.Background(), repository.PropertyFilter{PriceMax: &max}, 1, 2)
	require.NoError(t, err)
	assert.Len(t, res.Properties, 2)
	assert.Equal(t, 3, res.TotalProperties, "total counts every match, not just the page")
}

func TestSearchWithoutElasticsearchIsEmpty(t *testing.T) {
	svc, _, _ := newPropertySvc(t)

	hits, err := svc.Search(context.Background(), "apartamento", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
