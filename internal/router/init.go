package router

import (
	"github.com/gahalberto/ImobiManager/internal/application"
	"github.com/gahalberto/ImobiManager/internal/container"
	pginfra "github.com/gahalberto/ImobiManager/internal/infrastructure/postgres"
	handlers "github.com/gahalberto/ImobiManager/internal/interface/http"
	"github.com/gahalberto/ImobiManager/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	companies := pginfra.NewCompanyRepository(pool)
	properties := pginfra.NewPropertyRepository(pool)

	authSvc := application.NewAuthService(users, container.GetJWT(), logger, container.GetRabbitPub(), cfg.MailSendEnabled)
	companySvc := application.NewCompanyService(companies)
	propertySvc := application.NewPropertyService(properties, companies, logger, container.GetES(), cfg.ESPropertiesIndex)

	r.Engine.GET("/ping", handlers.Ping)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewCompanyModule(handlers.NewCompanyHandler(companySvc, logger), users, container.GetJWT()))
	r.Add(modules.NewPropertyModule(handlers.NewPropertyHandler(propertySvc, container.GetPhotoStore(), logger), users, container.GetJWT()))
}
