package categorizing

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	openaimocks "github.com/smdigital/pulso-social-api/infrastructure/integrator/openai/mocks"
	repomocks "github.com/smdigital/pulso-social-api/infrastructure/repository/mocks"
	"github.com/smdigital/pulso-social-api/internal/config"
	"github.com/smdigital/pulso-social-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func nuevoServicio(t *testing.T) (*Service, *repomocks.MockPublicationRepository, *openaimocks.MockCategorizer) {
	ctrl := gomock.NewController(t)
	publicationRepo := repomocks.NewMockPublicationRepository(ctrl)
	classifier := openaimocks.NewMockCategorizer(ctrl)

	cfg := &config.Config{}
	cfg.CategorizeSync.BatchSize = 10
	cfg.CategorizeSync.RequestDelaySeconds = 1

	service := NewService(cfg, publicationRepo, classifier)
	service.sleep = func(time.Duration) {}

	return service, publicationRepo, classifier
}

func contenido(s string) *string { return &s }

func TestProcesarPendientes(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(repo *repomocks.MockPublicationRepository, classifier *openaimocks.MockCategorizer)
		validate func(t *testing.T, resultado *ResultadoCategorizacion, err error)
	}{
		{
			name: "sin pendientes no llama al clasificador",
			setup: func(repo *repomocks.MockPublicationRepository, classifier *openaimocks.MockCategorizer) {
				repo.EXPECT().ListPendingWithContent().Return(nil, nil)
			},
			validate: func(t *testing.T, resultado *ResultadoCategorizacion, err error) {
				assert.NoError(t, err)
				assert.Zero(t, resultado.TotalPendientes)
				assert.Zero(t, resultado.Procesados)
				assert.NotEmpty(t, resultado.Duracion)
			},
		},
		{
			name: "categoriza y acumula por categoría",
			setup: func(repo *repomocks.MockPublicationRepository, classifier *openaimocks.MockCategorizer) {
				repo.EXPECT().ListPendingWithContent().Return([]*domain.Publicacion{
					{ID: "p1", Perfil: "Alcaldía de Cali", Publicar: contenido("operativo policial en el centro")},
					{ID: "p2", Perfil: "Alcaldía de Cali", Publicar: contenido("rendición de cuentas 2025")},
					{ID: "p3", Perfil: "Alcaldía de Cali", Publicar: contenido("obras del tren de cercanías")},
				}, nil)

				classifier.EXPECT().CategorizarPublicacion("Alcaldía de Cali", "operativo policial en el centro").
					Return(domain.CategoriaSeguridad, nil)
				classifier.EXPECT().CategorizarPublicacion("Alcaldía de Cali", "rendición de cuentas 2025").
					Return(domain.CategoriaTransparencia, nil)
				classifier.EXPECT().CategorizarPublicacion("Alcaldía de Cali", "obras del tren de cercanías").
					Return(domain.CategoriaInvertir, nil)

				repo.EXPECT().UpdateCategory("p1", domain.CategoriaSeguridad).Return(nil)
				repo.EXPECT().UpdateCategory("p2", domain.CategoriaTransparencia).Return(nil)
				repo.EXPECT().UpdateCategory("p3", domain.CategoriaInvertir).Return(nil)
			},
			validate: func(t *testing.T, resultado *ResultadoCategorizacion, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 3, resultado.TotalPendientes)
				assert.Equal(t, 3, resultado.Procesados)
				assert.Zero(t, resultado.Errores)
				assert.Equal(t, 1, resultado.Categorias[domain.CategoriaSeguridad])
				assert.Equal(t, 1, resultado.Categorias[domain.CategoriaTransparencia])
				assert.Equal(t, 1, resultado.Categorias[domain.CategoriaInvertir])
			},
		},
		{
			name: "el error del clasificador cuenta y continúa",
			setup: func(repo *repomocks.MockPublicationRepository, classifier *openaimocks.MockCategorizer) {
				repo.EXPECT().ListPendingWithContent().Return([]*domain.Publicacion{
					{ID: "p1", Perfil: "Alcaldía", Publicar: contenido("texto uno")},
					{ID: "p2", Perfil: "Alcaldía", Publicar: contenido("texto dos")},
				}, nil)

				classifier.EXPECT().CategorizarPublicacion("Alcaldía", "texto uno").
					Return("", errors.New("timeout de la API"))
				classifier.EXPECT().CategorizarPublicacion("Alcaldía", "texto dos").
					Return(domain.CategoriaSeguridad, nil)

				repo.EXPECT().UpdateCategory("p2", domain.CategoriaSeguridad).Return(nil)
			},
			validate: func(t *testing.T, resultado *ResultadoCategorizacion, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, resultado.Procesados)
				assert.Equal(t, 1, resultado.Errores)
			},
		},
		{
			name: "el error al guardar la categoría también cuenta",
			setup: func(repo *repomocks.MockPublicationRepository, classifier *openaimocks.MockCategorizer) {
				repo.EXPECT().ListPendingWithContent().Return([]*domain.Publicacion{
					{ID: "p1", Perfil: "Alcaldía", Publicar: contenido("texto")},
				}, nil)

				classifier.EXPECT().CategorizarPublicacion("Alcaldía", "texto").
					Return(domain.CategoriaNA, nil)
				repo.EXPECT().UpdateCategory("p1", domain.CategoriaNA).
					Return(errors.New("conexión perdida"))
			},
			validate: func(t *testing.T, resultado *ResultadoCategorizacion, err error) {
				assert.NoError(t, err)
				assert.Zero(t, resultado.Procesados)
				assert.Equal(t, 1, resultado.Errores)
			},
		},
		{
			name: "publicación sin contenido se cuenta como error sin llamar la API",
			setup: func(repo *repomocks.MockPublicationRepository, classifier *openaimocks.MockCategorizer) {
				repo.EXPECT().ListPendingWithContent().Return([]*domain.Publicacion{
					{ID: "p1", Perfil: "Alcaldía", Publicar: nil},
				}, nil)
			},
			validate: func(t *testing.T, resultado *ResultadoCategorizacion, err error) {
				assert.NoError(t, err)
				assert.Zero(t, resultado.Procesados)
				assert.Equal(t, 1, resultado.Errores)
			},
		},
		{
			name: "el error al listar pendientes aborta la corrida",
			setup: func(repo *repomocks.MockPublicationRepository, classifier *openaimocks.MockCategorizer) {
				repo.EXPECT().ListPendingWithContent().Return(nil, errors.New("conexión perdida"))
			},
			validate: func(t *testing.T, resultado *ResultadoCategorizacion, err error) {
				assert.Error(t, err)
				assert.Nil(t, resultado)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, publicationRepo, classifier := nuevoServicio(t)
			tt.setup(publicationRepo, classifier)

			resultado, err := service.ProcesarPendientes(context.Background())
			tt.validate(t, resultado, err)
		})
	}
}

func TestProcesarPendientesRespetaElContexto(t *testing.T) {
	service, publicationRepo, _ := nuevoServicio(t)

	publicationRepo.EXPECT().ListPendingWithContent().Return([]*domain.Publicacion{
		{ID: "p1", Perfil: "Alcaldía", Publicar: contenido("texto")},
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resultado, err := service.ProcesarPendientes(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.NotNil(t, resultado)
	assert.Zero(t, resultado.Procesados)
}

func TestLimpiarSinContenido(t *testing.T) {
	t.Run("elimina y reporta los identificadores", func(t *testing.T) {
		service, publicationRepo, _ := nuevoServicio(t)
		publicationRepo.EXPECT().DeletePendingWithoutContent().Return([]string{"p1", "p2"}, nil)

		resultado, err := service.LimpiarSinContenido(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 2, resultado.Eliminados)
		assert.Equal(t, []string{"p1", "p2"}, resultado.IDs)
	})

	t.Run("sin pendientes que limpiar", func(t *testing.T) {
		service, publicationRepo, _ := nuevoServicio(t)
		publicationRepo.EXPECT().DeletePendingWithoutContent().Return(nil, nil)

		resultado, err := service.LimpiarSinContenido(context.Background())

		assert.NoError(t, err)
		assert.Zero(t, resultado.Eliminados)
	})

	t.Run("propaga el error del repositorio", func(t *testing.T) {
		service, publicationRepo, _ := nuevoServicio(t)
		publicationRepo.EXPECT().DeletePendingWithoutContent().Return(nil, errors.New("conexión perdida"))

		resultado, err := service.LimpiarSinContenido(context.Background())

		assert.Error(t, err)
		assert.Nil(t, resultado)
	})

	t.Run("contexto cancelado no toca la base", func(t *testing.T) {
		service, _, _ := nuevoServicio(t)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		resultado, err := service.LimpiarSinContenido(ctx)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, resultado)
	})
}
