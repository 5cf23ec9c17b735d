package app

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/nephrocare/dialyse_backend/config"
	"github.com/nephrocare/dialyse_backend/internal/repo"
	"github.com/nephrocare/dialyse_backend/internal/service/auth"
	"github.com/nephrocare/dialyse_backend/internal/service/patient"
	"github.com/nephrocare/dialyse_backend/internal/service/permission"
	"github.com/nephrocare/dialyse_backend/internal/service/user"
	"github.com/nephrocare/dialyse_backend/pkg/authorize"
	"github.com/nephrocare/dialyse_backend/pkg/email"
	pasetotoken "github.com/nephrocare/dialyse_backend/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuthService,
		ProvideUserService,
		ProvidePatientService,
		ProvidePermissionService,
		ProvidePasetoManager,
	),
)

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) (auth.Service, error) {
	return auth.New(db, rdb, paseto, cfg)
}

func ProvideUserService(
	db *repo.Client,
	emailClient *email.Client,
	authSvc auth.Service,
	authz authorize.IAuthorization,
	cfg *config.Config,
) user.Service {
	return user.New(db, emailClient, authSvc, authz, cfg)
}

func ProvidePatientService(db *repo.Client, cfg *config.Config) (patient.Service, error) {
	return patient.New(db, cfg)
}

func ProvidePermissionService(db *repo.Client) permission.Service {
	return permission.New(db)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
