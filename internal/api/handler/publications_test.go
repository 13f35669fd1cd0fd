package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/smdigital/pulso-social-api/internal/domain"
	"github.com/smdigital/pulso-social-api/internal/usecases/reporting"
	"github.com/smdigital/pulso-social-api/internal/usecases/reporting/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestListPublications(t *testing.T) {
	t.Run("traduce la query completa a filtros", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockReporter(ctrl)

		service.EXPECT().
			ListarPublicaciones(gomock.Any()).
			DoAndReturn(func(f domain.FiltrosPublicacion) (*reporting.ListadoPublicaciones, error) {
				assert.Equal(t, "Facebook", f.Red)
				assert.Equal(t, "Alcaldía de Cali", f.Perfil)
				assert.Equal(t, domain.CategoriaSeguridad, f.Categoria)
				assert.Equal(t, "Reel", f.Tipo)
				assert.Equal(t, "impresiones", f.SortBy)
				assert.Equal(t, "desc", f.SortOrder)
				assert.Equal(t, 10, f.Limit)
				assert.Equal(t, 20, f.Offset)
				assert.NotNil(t, f.FechaInicio)
				assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *f.FechaInicio)
				assert.NotNil(t, f.FechaFin)
				return &reporting.ListadoPublicaciones{Total: 0, Limit: 10, Offset: 20}, nil
			})

		req := httptest.NewRequest(http.MethodGet,
			"/v1/publicaciones?red=Facebook&perfil=Alcald%C3%ADa+de+Cali&categoria=SEGURIDAD&tipo=Reel"+
				"&sortBy=impresiones&sortOrder=desc&limit=10&offset=20&fechaInicio=2024-01-01&fechaFin=2024-12-31", nil)
		rec := httptest.NewRecorder()

		ListPublications(service)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("query vacía deja los filtros en cero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockReporter(ctrl)

		service.EXPECT().
			ListarPublicaciones(gomock.Any()).
			DoAndReturn(func(f domain.FiltrosPublicacion) (*reporting.ListadoPublicaciones, error) {
				assert.Empty(t, f.Red)
				assert.Zero(t, f.Limit)
				assert.Nil(t, f.FechaInicio)
				assert.Nil(t, f.FechaFin)
				return &reporting.ListadoPublicaciones{
					Publicaciones: []*domain.Publicacion{{ID: "post-1"}},
					Total:         1,
				}, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/v1/publicaciones", nil)
		rec := httptest.NewRecorder()

		ListPublications(service)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var listado reporting.ListadoPublicaciones
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&listado))
		assert.Equal(t, 1, listado.Total)
	})

	t.Run("error del servicio responde 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockReporter(ctrl)

		service.EXPECT().ListarPublicaciones(gomock.Any()).Return(nil, errors.New("conexión perdida"))

		req := httptest.NewRequest(http.MethodGet, "/v1/publicaciones", nil)
		rec := httptest.NewRecorder()

		ListPublications(service)(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestGetPublicationStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReporter(ctrl)

	service.EXPECT().EstadisticasPublicaciones().Return(&domain.EstadisticasPublicaciones{
		TotalPublicaciones: 42,
		Redes:              []domain.ConteoPorCampo{{Valor: "Facebook", Conteo: 42}},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/publicaciones/stats", nil)
	rec := httptest.NewRecorder()

	GetPublicationStats(service)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var stats domain.EstadisticasPublicaciones
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&stats))
	assert.Equal(t, 42, stats.TotalPublicaciones)
}
