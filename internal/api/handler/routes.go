package handler

import (
	"net/http"

	"github.com/smdigital/pulso-social-api/internal/api/handler/router"
	"github.com/smdigital/pulso-social-api/internal/config"
	"github.com/smdigital/pulso-social-api/internal/usecases/authenticating"
	"github.com/smdigital/pulso-social-api/internal/usecases/ingesting"
	"github.com/smdigital/pulso-social-api/internal/usecases/reporting"
	"github.com/smdigital/pulso-social-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Publications(ingester ingesting.Ingester, reporter reporting.Reporter, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/publicaciones/upload-csv",
			Method:      http.MethodPost,
			Handler:     UploadCSV(ingester, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/publicaciones",
			Method:      http.MethodGet,
			Handler:     ListPublications(reporter),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/publicaciones/stats",
			Method:      http.MethodGet,
			Handler:     GetPublicationStats(reporter),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CsvSessions(reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/csv-sessions",
			Method:      http.MethodGet,
			Handler:     ListCsvSessions(reporter),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			// Ruta separada de /v1/csv-sessions/:id; httprouter no permite
			// mezclar segmentos estáticos y comodines en el mismo nivel
			Path:        "/v1/csv-sessions-stats",
			Method:      http.MethodGet,
			Handler:     GetCsvSessionStats(reporter),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/csv-sessions/:id",
			Method:      http.MethodGet,
			Handler:     GetCsvSession(reporter),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Jobs(services JobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/jobs/:type/run",
			Method:      http.MethodPost,
			Handler:     RunJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/jobs/status",
			Method:      http.MethodGet,
			Handler:     GetJobsStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
