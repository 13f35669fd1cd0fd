package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/smdigital/pulso-social-api/internal/domain"
	"github.com/smdigital/pulso-social-api/internal/usecases/reporting"
	"github.com/smdigital/pulso-social-api/pkg/apiErrors"
)

// ListPublications lista las publicaciones con filtros, orden y paginación
func ListPublications(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filtros := filtrosDesdeQuery(r)

		listado, err := service.ListarPublicaciones(filtros)
		if err != nil {
			logrus.WithError(err).Error("Error al listar publicaciones")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar las publicaciones", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(listado)
	}
}

// GetPublicationStats devuelve los agregados por red, perfil y categoría
func GetPublicationStats(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.EstadisticasPublicaciones()
		if err != nil {
			logrus.WithError(err).Error("Error al calcular estadísticas de publicaciones")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al calcular las estadísticas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(stats)
	}
}

func filtrosDesdeQuery(r *http.Request) domain.FiltrosPublicacion {
	query := r.URL.Query()

	filtros := domain.FiltrosPublicacion{
		Red:       query.Get("red"),
		Perfil:    query.Get("perfil"),
		Categoria: query.Get("categoria"),
		Tipo:      query.Get("tipo"),
		SortBy:    query.Get("sortBy"),
		SortOrder: query.Get("sortOrder"),
	}

	if limit, err := strconv.Atoi(query.Get("limit")); err == nil {
		filtros.Limit = limit
	}
	if offset, err := strconv.Atoi(query.Get("offset")); err == nil {
		filtros.Offset = offset
	}

	if inicio, err := time.Parse(time.DateOnly, query.Get("fechaInicio")); err == nil {
		filtros.FechaInicio = &inicio
	}
	if fin, err := time.Parse(time.DateOnly, query.Get("fechaFin")); err == nil {
		filtros.FechaFin = &fin
	}

	return filtros
}
