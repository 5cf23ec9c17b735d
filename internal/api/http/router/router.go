package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/nephrocare/dialyse_backend/config"
	"github.com/nephrocare/dialyse_backend/internal/api/http/handler"
	"github.com/nephrocare/dialyse_backend/internal/api/http/middleware"
	"github.com/nephrocare/dialyse_backend/internal/service/auth"
	"github.com/nephrocare/dialyse_backend/internal/service/patient"
	"github.com/nephrocare/dialyse_backend/internal/service/permission"
	"github.com/nephrocare/dialyse_backend/internal/service/user"
	"github.com/nephrocare/dialyse_backend/pkg/authorize"
	pasetotoken "github.com/nephrocare/dialyse_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg        *config.Config
	Redis      *redis.Client
	Auth       authorize.IAuthorization
	AuthSvc    auth.Service
	UserSvc    user.Service
	PatientSvc patient.Service
	PermSvc    permission.Service
	PasetoMgr  *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	authH := handler.NewAuthHandler(r.p.AuthSvc, r.p.UserSvc)
	patientH := handler.NewPatientHandler(r.p.PatientSvc)
	userH := handler.NewUserHandler(r.p.UserSvc, r.p.PermSvc)

	api := app.Group("/api/v1")

	r.registerAuthRoutes(api, authH, authRequired)
	r.registerPatientRoutes(api, patientH, authRequired, requirePerm)
	r.registerUserRoutes(api, userH, authRequired, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
