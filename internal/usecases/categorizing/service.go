// Package categorizing procesa las publicaciones pendientes de categoría
// con el clasificador automático.
package categorizing

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/smdigital/pulso-social-api/infrastructure/integrator/openai"
	"github.com/smdigital/pulso-social-api/infrastructure/repository"
	"github.com/smdigital/pulso-social-api/internal/config"
	"github.com/smdigital/pulso-social-api/internal/domain"
)

// ResultadoCategorizacion resume una corrida del clasificador
type ResultadoCategorizacion struct {
	TotalPendientes int            `json:"totalPendientes"`
	Procesados      int            `json:"procesados"`
	Errores         int            `json:"errores"`
	Categorias      map[string]int `json:"categorias"`
	Duracion        string         `json:"duracion"`
}

// ResultadoLimpieza resume una corrida de limpieza de pendientes sin contenido
type ResultadoLimpieza struct {
	Eliminados int      `json:"eliminados"`
	IDs        []string `json:"ids,omitempty"`
}

type PendingCategorizer interface {
	ProcesarPendientes(ctx context.Context) (*ResultadoCategorizacion, error)
	LimpiarSinContenido(ctx context.Context) (*ResultadoLimpieza, error)
}

type Service struct {
	cfg                   *config.Config
	publicationRepository repository.PublicationRepository
	classifier            openai.Categorizer
	sleep                 func(time.Duration)
}

func NewService(
	cfg *config.Config,
	publicationRepo repository.PublicationRepository,
	classifier openai.Categorizer,
) *Service {
	return &Service{
		cfg:                   cfg,
		publicationRepository: publicationRepo,
		classifier:            classifier,
		sleep:                 time.Sleep,
	}
}

// ProcesarPendientes recorre las publicaciones con categoría "Pendiente" que
// tengan contenido y les asigna la categoría que devuelva el clasificador.
// Entre peticiones se espera el delay configurado para no saturar la API.
// Los errores por publicación se cuentan y se continúa con la siguiente.
func (s *Service) ProcesarPendientes(ctx context.Context) (*ResultadoCategorizacion, error) {
	inicio := time.Now()

	pendientes, err := s.publicationRepository.ListPendingWithContent()
	if err != nil {
		return nil, fmt.Errorf("error al listar publicaciones pendientes: %w", err)
	}

	resultado := &ResultadoCategorizacion{
		TotalPendientes: len(pendientes),
		Categorias: map[string]int{
			domain.CategoriaSeguridad:     0,
			domain.CategoriaTransparencia: 0,
			domain.CategoriaInvertir:      0,
			domain.CategoriaNA:            0,
		},
	}

	if len(pendientes) == 0 {
		resultado.Duracion = time.Since(inicio).String()
		return resultado, nil
	}

	logrus.WithFields(logrus.Fields{
		"pendientes": len(pendientes),
		"batchSize":  s.cfg.CategorizeSync.BatchSize,
	}).Info("Iniciando categorización de publicaciones pendientes")

	delay := time.Duration(s.cfg.CategorizeSync.RequestDelaySeconds) * time.Second

	for i, publicacion := range pendientes {
		if err := ctx.Err(); err != nil {
			resultado.Duracion = time.Since(inicio).String()
			return resultado, err
		}

		if publicacion.Publicar == nil {
			resultado.Errores++
			continue
		}

		categoria, err := s.classifier.CategorizarPublicacion(publicacion.Perfil, *publicacion.Publicar)
		if err != nil {
			resultado.Errores++
			logrus.WithError(err).WithField("id", publicacion.ID).Error("Error al categorizar la publicación")
		} else if err := s.publicationRepository.UpdateCategory(publicacion.ID, categoria); err != nil {
			resultado.Errores++
			logrus.WithError(err).WithField("id", publicacion.ID).Error("Error al guardar la categoría asignada")
		} else {
			resultado.Procesados++
			resultado.Categorias[categoria]++
		}

		if delay > 0 && i < len(pendientes)-1 {
			s.sleep(delay)
		}
	}

	resultado.Duracion = time.Since(inicio).String()

	logrus.WithFields(logrus.Fields{
		"procesados": resultado.Procesados,
		"errores":    resultado.Errores,
		"duracion":   resultado.Duracion,
	}).Info("Categorización de pendientes completada")

	return resultado, nil
}

// LimpiarSinContenido elimina las publicaciones pendientes que no tienen
// contenido que el clasificador pueda analizar.
func (s *Service) LimpiarSinContenido(ctx context.Context) (*ResultadoLimpieza, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ids, err := s.publicationRepository.DeletePendingWithoutContent()
	if err != nil {
		return nil, fmt.Errorf("error al limpiar publicaciones pendientes sin contenido: %w", err)
	}

	if len(ids) > 0 {
		logrus.WithField("eliminados", len(ids)).Info("Publicaciones pendientes sin contenido eliminadas")
	}

	return &ResultadoLimpieza{Eliminados: len(ids), IDs: ids}, nil
}
