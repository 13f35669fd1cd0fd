package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/smdigital/pulso-social-api/internal/domain"
	"github.com/smdigital/pulso-social-api/internal/scheduler"
	"github.com/smdigital/pulso-social-api/pkg/apiErrors"
	"github.com/smdigital/pulso-social-api/pkg/middleware"
)

// Tipos de job que se pueden disparar manualmente
const (
	JobTypeCategorizePending = "categorize-pending"
	JobTypeCleanupPending    = "cleanup-pending"
	JobTypeAll               = "all"
)

// JobServices contiene los agendadores que se pueden ejecutar manualmente
type JobServices struct {
	CategorizePendingService *scheduler.CategorizePendingService
	CleanupPendingService    *scheduler.CleanupPendingService
}

// RunJob dispara manualmente un job específico
func RunJob(services JobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunJob")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Solo administradores pueden ejecutar jobs", nil)
			return
		}

		jobType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if jobType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de job no especificado", nil)
			return
		}

		switch jobType {
		case JobTypeCategorizePending:
			if services.CategorizePendingService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Servicio de categorización no disponible", nil)
				return
			}
			services.CategorizePendingService.TriggerManualSync()

		case JobTypeCleanupPending:
			if services.CleanupPendingService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Servicio de limpieza no disponible", nil)
				return
			}
			services.CleanupPendingService.TriggerManualSync()

		case JobTypeAll:
			if services.CategorizePendingService != nil {
				services.CategorizePendingService.TriggerManualSync()
			}
			if services.CleanupPendingService != nil {
				services.CleanupPendingService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de job inválido. Valores aceptados: categorize-pending, cleanup-pending, all", nil)
			return
		}

		response := map[string]any{
			"message": "Job iniciado con éxito",
			"type":    jobType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetJobsStatus devuelve el estado de los jobs agendados
func GetJobsStatus(services JobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetJobsStatus")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Solo administradores pueden consultar el estado de los jobs", nil)
			return
		}

		status := map[string]any{
			JobTypeCategorizePending: services.CategorizePendingService.GetStatus(),
			JobTypeCleanupPending:    services.CleanupPendingService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
