package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gahalberto/ImobiManager/internal/application"
	"github.com/gahalberto/ImobiManager/pkg/response"
	"github.com/gahalberto/ImobiManager/pkg/validation"
)

type CompanyHandler struct {
	Svc    *application.CompanyService
	Logger *logrus.Logger
}

func NewCompanyHandler(svc *application.CompanyService, logger *logrus.Logger) *CompanyHandler {
	return &CompanyHandler{Svc: svc, Logger: logger}
}

type createCompanyRequest struct {
	Name string `json:"name" binding:"required"`
}

// List GET /api/company
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list companies failed")
		response.Error(c, http.StatusInternalServerError, "could not list companies", nil)
		return
	}
	response.Success(c, http.StatusOK, companies, "companies")
}

// Create POST /api/company
func (h *CompanyHandler) Create(c *gin.Context) {
	var req createCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	company, err := h.Svc.Create(c.Request.Context(), req.Name)
	if err != nil {
		h.Logger.WithError(err).Error("create company failed")
		response.Error(c, http.StatusInternalServerError, "could not create company", nil)
		return
	}
	response.Success(c, http.StatusCreated, company, "company created")
}
