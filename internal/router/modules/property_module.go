package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gahalberto/ImobiManager/internal/container"
	"github.com/gahalberto/ImobiManager/internal/domain/repository"
	handlers "github.com/gahalberto/ImobiManager/internal/interface/http"
	"github.com/gahalberto/ImobiManager/internal/interface/middleware"
	"github.com/gahalberto/ImobiManager/pkg/helpers"
)

// PropertyModule wires the listing routes.
// Public: GET /api/properties, GET /api/properties/search, GET /api/properties/:id
// Protected: POST, PUT /:id, DELETE /:id
type PropertyModule struct {
	Handler *handlers.PropertyHandler
	Users   repository.UserRepository
	JWT     *helpers.JWTManager
}

func NewPropertyModule(h *handlers.PropertyHandler, users repository.UserRepository, jwt *helpers.JWTManager) *PropertyModule {
	return &PropertyModule{Handler: h, Users: users, JWT: jwt}
}

func (m *PropertyModule) Register(rg *gin.RouterGroup) {
	rg.GET("/properties", m.Handler.List)
	rg.GET("/properties/search", m.Handler.Search)
	rg.GET("/properties/:id", m.Handler.GetByID)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Users, m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP()))
	{
		auth.POST("/properties", m.Handler.Create)
		auth.PUT("/properties/:id", m.Handler.Update)
		auth.DELETE("/properties/:id", m.Handler.Remove)
	}
}
