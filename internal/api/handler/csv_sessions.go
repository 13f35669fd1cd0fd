package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/smdigital/pulso-social-api/internal/domain"
	"github.com/smdigital/pulso-social-api/internal/usecases/reporting"
	"github.com/smdigital/pulso-social-api/pkg/apiErrors"
)

// ListCsvSessions lista el historial de sesiones de carga CSV
func ListCsvSessions(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filtros := domain.FiltrosCsvSession{
			Status:   query.Get("status"),
			FileName: query.Get("fileName"),
		}

		if limit, err := strconv.Atoi(query.Get("limit")); err == nil {
			filtros.Limit = limit
		}
		if offset, err := strconv.Atoi(query.Get("offset")); err == nil {
			filtros.Offset = offset
		}

		listado, err := service.ListarSesiones(filtros)
		if err != nil {
			logrus.WithError(err).Error("Error al listar sesiones de carga")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar el historial de cargas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(listado)
	}
}

// GetCsvSession devuelve el detalle de auditoría de una sesión de carga
func GetCsvSession(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID de la sesión no proporcionado", nil)
			return
		}

		session, err := service.ObtenerSesion(id)
		if err != nil {
			logrus.WithError(err).WithField("sessionId", id).Error("Error al consultar la sesión de carga")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar la sesión", nil)
			return
		}

		if session == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Sesión de carga no encontrada", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(session)
	}
}

// GetCsvSessionStats devuelve los agregados del historial completo de cargas
func GetCsvSessionStats(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.EstadisticasSesiones()
		if err != nil {
			logrus.WithError(err).Error("Error al calcular estadísticas de sesiones")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al calcular las estadísticas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(stats)
	}
}
