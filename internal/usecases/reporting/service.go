// Package reporting expone las consultas de publicaciones y del historial de
// cargas CSV.
package reporting

import (
	"fmt"

	"github.com/smdigital/pulso-social-api/infrastructure/repository"
	"github.com/smdigital/pulso-social-api/internal/domain"
)

// ListadoPublicaciones es una página del listado más el total sin paginar
type ListadoPublicaciones struct {
	Publicaciones []*domain.Publicacion `json:"publicaciones"`
	Total         int                   `json:"total"`
	Limit         int                   `json:"limit"`
	Offset        int                   `json:"offset"`
}

// ListadoSesiones es una página del historial de sesiones de carga
type ListadoSesiones struct {
	Sesiones []*domain.CsvSession `json:"sesiones"`
	Total    int                  `json:"total"`
	Limit    int                  `json:"limit"`
	Offset   int                  `json:"offset"`
}

type Reporter interface {
	ListarPublicaciones(filtros domain.FiltrosPublicacion) (*ListadoPublicaciones, error)
	EstadisticasPublicaciones() (*domain.EstadisticasPublicaciones, error)
	ListarSesiones(filtros domain.FiltrosCsvSession) (*ListadoSesiones, error)
	ObtenerSesion(id string) (*domain.CsvSession, error)
	EstadisticasSesiones() (*domain.EstadisticasCsvSessions, error)
}

type Service struct {
	publicationRepository repository.PublicationRepository
	sessionRepository     repository.CsvSessionRepository
}

func NewService(
	publicationRepo repository.PublicationRepository,
	sessionRepo repository.CsvSessionRepository,
) *Service {
	return &Service{
		publicationRepository: publicationRepo,
		sessionRepository:     sessionRepo,
	}
}

const (
	defaultLimit = 50
	maxLimit     = 500
)

func (s *Service) ListarPublicaciones(filtros domain.FiltrosPublicacion) (*ListadoPublicaciones, error) {
	filtros.Limit = acotarLimit(filtros.Limit)
	if filtros.Offset < 0 {
		filtros.Offset = 0
	}

	publicaciones, total, err := s.publicationRepository.List(filtros)
	if err != nil {
		return nil, fmt.Errorf("error al listar publicaciones: %w", err)
	}

	return &ListadoPublicaciones{
		Publicaciones: publicaciones,
		Total:         total,
		Limit:         filtros.Limit,
		Offset:        filtros.Offset,
	}, nil
}

func (s *Service) EstadisticasPublicaciones() (*domain.EstadisticasPublicaciones, error) {
	return s.publicationRepository.Stats()
}

func (s *Service) ListarSesiones(filtros domain.FiltrosCsvSession) (*ListadoSesiones, error) {
	filtros.Limit = acotarLimit(filtros.Limit)
	if filtros.Offset < 0 {
		filtros.Offset = 0
	}

	sesiones, total, err := s.sessionRepository.List(filtros)
	if err != nil {
		return nil, fmt.Errorf("error al listar sesiones de carga: %w", err)
	}

	return &ListadoSesiones{
		Sesiones: sesiones,
		Total:    total,
		Limit:    filtros.Limit,
		Offset:   filtros.Offset,
	}, nil
}

func (s *Service) ObtenerSesion(id string) (*domain.CsvSession, error) {
	return s.sessionRepository.GetByID(id)
}

func (s *Service) EstadisticasSesiones() (*domain.EstadisticasCsvSessions, error) {
	return s.sessionRepository.Stats()
}

func acotarLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
