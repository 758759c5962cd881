package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/gahalberto/ImobiManager/internal/domain/repository"
	handlers "github.com/gahalberto/ImobiManager/internal/interface/http"
	"github.com/gahalberto/ImobiManager/internal/interface/middleware"
	"github.com/gahalberto/ImobiManager/pkg/helpers"
)

// CompanyModule wires the builder/developer directory routes.
// Public: GET /api/company
// Protected: POST /api/company
type CompanyModule struct {
	Handler *handlers.CompanyHandler
	Users   repository.UserRepository
	JWT     *helpers.JWTManager
}

func NewCompanyModule(h *handlers.CompanyHandler, users repository.UserRepository, jwt *helpers.JWTManager) *CompanyModule {
	return &CompanyModule{Handler: h, Users: users, JWT: jwt}
}

func (m *CompanyModule) Register(rg *gin.RouterGroup) {
	rg.GET("/company", m.Handler.List)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Users, m.JWT))
	{
		auth.POST("/company", m.Handler.Create)
	}
}
