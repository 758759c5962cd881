package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gahalberto/ImobiManager/internal/application"
	"github.com/gahalberto/ImobiManager/internal/domain/repository"
	"github.com/gahalberto/ImobiManager/internal/infrastructure/upload"
	"github.com/gahalberto/ImobiManager/pkg/response"
	"github.com/gahalberto/ImobiManager/pkg/validation"
)

const (
	defaultPage  = 1
	defaultLimit = 9
)

type PropertyHandler struct {
	Svc    *application.PropertyService
	Photos upload.Store
	Logger *logrus.Logger
}

func NewPropertyHandler(svc *application.PropertyService, photos upload.Store, logger *logrus.Logger) *PropertyHandler {
	return &PropertyHandler{Svc: svc, Photos: photos, Logger: logger}
}

type createPropertyForm struct {
	Title               string  `form:"title" binding:"required"`
	AddressZipcode      string  `form:"address_zipcode" binding:"required"`
	AddressStreet       string  `form:"address_street" binding:"required"`
	AddressNumber       int     `form:"address_number" binding:"required"`
	AddressComplement   string  `form:"address_complement"`
	AddressNeighborhood string  `form:"address_neighborhood" binding:"required"`
	AddressCity         string  `form:"address_city" binding:"required"`
	AddressState        string  `form:"address_state" binding:"required"`
	Price               float64 `form:"price" binding:"required"`
	Description         string  `form:"description" binding:"required"`
	Bedrooms            int     `form:"bedrooms" binding:"gte=0"`
	Bathrooms           int     `form:"bathrooms" binding:"gte=0"`
	Company             int     `form:"company" binding:"required"`
}

// updatePropertyRequest uses pointers so that an omitted field and a field
// explicitly set to a zero value are different things.
type updatePropertyRequest struct {
	Title               *string  `json:"title"`
	AddressZipcode      *string  `json:"address_zipcode"`
	AddressStreet       *string  `json:"address_street"`
	AddressNumber       *int     `json:"address_number"`
	AddressComplement   *string  `json:"address_complement"`
	AddressNeighborhood *string  `json:"address_neighborhood"`
	AddressCity         *string  `json:"address_city"`
	AddressState        *string  `json:"address_state"`
	Price               *float64 `json:"price"`
	Description         *string  `json:"description"`
	Bedrooms            *int     `json:"bedrooms"`
	Bathrooms           *int     `json:"bathrooms"`
	Company             *int     `json:"company"`
}

// List GET /api/properties — filtered, paginated search.
func (h *PropertyHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid filter", map[string]string{"query": err.Error()})
		return
	}

	page, err := queryIntDefault(c, "page", defaultPage)
	if err != nil || page < 1 {
		response.Error(c, http.StatusBadRequest, "invalid filter", map[string]string{"page": "must be a positive integer"})
		return
	}
	limit, err := queryIntDefault(c, "limit", defaultLimit)
	if err != nil || limit < 1 {
		// limit 0 would blow up the page math; reject it before storage.
		response.Error(c, http.StatusBadRequest, "invalid filter", map[string]string{"limit": "must be a positive integer"})
		return
	}

	res, err := h.Svc.Find(c.Request.Context(), filter, page, limit)
	if err != nil {
		h.Logger.WithError(err).Error("filter properties failed")
		response.Error(c, http.StatusInternalServerError, "could not filter properties", nil)
		return
	}

	totalPages := (res.TotalProperties + limit - 1) / limit
	response.Success(c, http.StatusOK, gin.H{
		"properties":      res.Properties,
		"totalProperties": res.TotalProperties,
		"totalPages":      totalPages,
		"currentPage":     page,
	}, "properties")
}

// Search GET /api/properties/search — full-text lookup.
func (h *PropertyHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error(c, http.StatusBadRequest, "invalid filter", map[string]string{"q": "is required"})
		return
	}
	size, _ := queryIntDefault(c, "size", 10)
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).Error("search properties failed")
		response.Error(c, http.StatusInternalServerError, "could not search properties", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results")
}

// GetByID GET /api/properties/:id
func (h *PropertyHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid property id", nil)
		return
	}
	p, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "property not found", nil)
			return
		}
		h.Logger.WithError(err).Error("get property failed")
		response.Error(c, http.StatusInternalServerError, "could not load property", nil)
		return
	}
	response.Success(c, http.StatusOK, p, "property")
}

// Create POST /api/properties — multipart form with at least one image file.
func (h *PropertyHandler) Create(c *gin.Context) {
	var form createPropertyForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	mf, err := c.MultipartForm()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "no data received", nil)
		return
	}
	files := mf.File["images"]
	if len(files) == 0 {
		response.Error(c, http.StatusBadRequest, "no files uploaded", nil)
		return
	}

	paths := make([]string, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			response.Error(c, http.StatusBadRequest, "unreadable upload", nil)
			return
		}
		path, err := h.Photos.Save(c.Request.Context(), fh.Filename, fh.Header.Get("Content-Type"), f)
		_ = f.Close()
		if err != nil {
			h.Logger.WithError(err).Error("store photo failed")
			response.Error(c, http.StatusInternalServerError, "could not store photos", nil)
			return
		}
		paths = append(paths, path)
	}

	p, err := h.Svc.Create(c.Request.Context(), application.CreatePropertyInput{
		Title:               form.Title,
		AddressZipcode:      form.AddressZipcode,
		AddressStreet:       form.AddressStreet,
		AddressNumber:       form.AddressNumber,
		AddressComplement:   form.AddressComplement,
		AddressNeighborhood: form.AddressNeighborhood,
		AddressCity:         form.AddressCity,
		AddressState:        form.AddressState,
		Price:               form.Price,
		Description:         form.Description,
		Bedrooms:            form.Bedrooms,
		Bathrooms:           form.Bathrooms,
		CompanyID:           form.Company,
		ImagePaths:          paths,
	})
	if err != nil {
		if errors.Is(err, application.ErrCompanyNotFound) {
			response.Error(c, http.StatusNotFound, "company not found", nil)
			return
		}
		h.Logger.WithError(err).Error("create property failed")
		response.Error(c, http.StatusInternalServerError, "could not create property", nil)
		return
	}
	response.Success(c, http.StatusCreated, p, "property created")
}

// Update PUT /api/properties/:id — partial update.
func (h *PropertyHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid property id", nil)
		return
	}
	var req updatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	p, err := h.Svc.Update(c.Request.Context(), id, application.UpdatePropertyInput{
		Title:               req.Title,
		AddressZipcode:      req.AddressZipcode,
		AddressStreet:       req.AddressStreet,
		AddressNumber:       req.AddressNumber,
		AddressComplement:   req.AddressComplement,
		AddressNeighborhood: req.AddressNeighborhood,
		AddressCity:         req.AddressCity,
		AddressState:        req.AddressState,
		Price:               req.Price,
		Description:         req.Description,
		Bedrooms:            req.Bedrooms,
		Bathrooms:           req.Bathrooms,
		CompanyID:           req.Company,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrNotFound):
			response.Error(c, http.StatusNotFound, "property not found", nil)
		case errors.Is(err, application.ErrCompanyNotFound):
			response.Error(c, http.StatusNotFound, "company not found", nil)
		default:
			h.Logger.WithError(err).Error("update property failed")
			response.Error(c, http.StatusInternalServerError, "could not update property", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, p, "property updated")
}

// Remove DELETE /api/properties/:id — returns the removed snapshot.
func (h *PropertyHandler) Remove(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid property id", nil)
		return
	}
	p, err := h.Svc.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "property not found", nil)
			return
		}
		h.Logger.WithError(err).Error("delete property failed")
		response.Error(c, http.StatusInternalServerError, "could not delete property", nil)
		return
	}
	response.Success(c, http.StatusOK, p, "property removed")
}

// parseFilter reads the optional filter query params. A parameter that is
// present but unparsable is a client error, not an ignored filter.
func parseFilter(c *gin.Context) (repository.PropertyFilter, error) {
	var f repository.PropertyFilter
	var err error
	if f.PriceMin, err = queryFloat(c, "price_min"); err != nil {
		return f, err
	}
	if f.PriceMax, err = queryFloat(c, "price_max"); err != nil {
		return f, err
	}
	if f.Bedrooms, err = queryInt(c, "bedrooms"); err != nil {
		return f, err
	}
	if f.Bathrooms, err = queryInt(c, "bathrooms"); err != nil {
		return f, err
	}
	if city := c.Query("address_city"); city != "" {
		f.AddressCity = &city
	}
	return f, nil
}

func queryInt(c *gin.Context, name string) (*int, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, errors.New(name + " must be an integer")
	}
	return &n, nil
}

func queryFloat(c *gin.Context, name string) (*float64, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, errors.New(name + " must be a number")
	}
	return &n, nil
}

func queryIntDefault(c *gin.Context, name string, def int) (int, error) {
	v := c.Query(name)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
