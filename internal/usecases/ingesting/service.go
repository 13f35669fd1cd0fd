package ingesting

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/smdigital/pulso-social-api/infrastructure/repository"
	"github.com/smdigital/pulso-social-api/internal/domain"
)

// ErrArchivoIlegible indica que el archivo no se pudo parsear como CSV
var ErrArchivoIlegible = errors.New("archivo CSV ilegible")

// MetaArchivo son los metadatos del archivo subido, usados para la sesión
type MetaArchivo struct {
	Nombre    string
	Tamano    int64
	Overwrite bool
}

type Ingester interface {
	Ingestar(ctx context.Context, archivo io.Reader, meta MetaArchivo) (*domain.ResultadoIngesta, error)
}

type Service struct {
	publicationRepository repository.PublicationRepository
	sessionRepository     repository.CsvSessionRepository
	now                   func() time.Time
}

func NewService(
	publicationRepo repository.PublicationRepository,
	sessionRepo repository.CsvSessionRepository,
) *Service {
	return &Service{
		publicationRepository: publicationRepo,
		sessionRepository:     sessionRepo,
		now:                   time.Now,
	}
}

// Ingestar corre la carga completa de un CSV de publicaciones.
//
// La decisión sigue un orden estricto: primero la estructura del archivo,
// luego las filas inválidas, luego los duplicados, y solo si nada de eso
// aplica se persiste el lote. Con filas inválidas no se inserta nada; los
// duplicados pausan la carga hasta que el llamador confirme con overwrite.
func (s *Service) Ingestar(ctx context.Context, archivo io.Reader, meta MetaArchivo) (*domain.ResultadoIngesta, error) {
	headers, filas, err := leerCSV(archivo)
	if err != nil {
		return nil, errors.Wrap(ErrArchivoIlegible, err.Error())
	}

	validacion := ValidarEstructura(headers)
	if !validacion.Valida {
		logrus.WithFields(logrus.Fields{
			"archivo":   meta.Nombre,
			"faltantes": validacion.CamposFaltantes,
		}).Warn("CSV rechazado por estructura inválida")

		return &domain.ResultadoIngesta{
			Estado:             domain.ResultadoEstructuraInvalida,
			CamposFaltantes:    validacion.CamposFaltantes,
			HeadersEncontrados: headers,
		}, nil
	}

	cols := DetectarColumnas(headers)

	existentes, err := s.publicationRepository.ListIDs()
	if err != nil {
		return nil, fmt.Errorf("error al cargar identificadores existentes: %w", err)
	}

	ahora := s.now()

	var (
		registros       []*domain.Publicacion
		duplicados      []string
		invalidas       []domain.FilaInvalida
		totalInvalidas  int
		camposDefecto   int
		categoriasVista = map[string]struct{}{}
		perfilesVista   = map[string]struct{}{}
		redesVista      = map[string]struct{}{}
	)

	for i, celdas := range filas {
		fila := make(Fila, len(headers))
		for j, h := range headers {
			if j < len(celdas) {
				fila[h] = celdas[j]
			}
		}

		resultado := IngestarFila(fila, cols, i+1, meta.Overwrite, existentes, ahora)
		switch {
		case resultado.Invalida != nil:
			totalInvalidas++
			if len(invalidas) < domain.MaxFilasInvalidasReportadas {
				invalidas = append(invalidas, *resultado.Invalida)
			}
		case resultado.DuplicadoID != "":
			duplicados = append(duplicados, resultado.DuplicadoID)
		default:
			camposDefecto += resultado.CamposPorDefecto
			for _, registro := range resultado.Registros {
				registros = append(registros, registro)
				categoriasVista[registro.Categoria] = struct{}{}
				perfilesVista[registro.Perfil] = struct{}{}
				redesVista[registro.Red] = struct{}{}
			}
		}
	}

	if totalInvalidas > 0 {
		sessionID, sessErr := s.registrarSesionFallida(meta, headers, cols, len(filas), totalInvalidas, ahora)
		if sessErr != nil {
			logrus.WithError(sessErr).Error("Error al registrar la sesión fallida")
		}

		return &domain.ResultadoIngesta{
			Estado:              domain.ResultadoDatosInvalidos,
			FilasInvalidas:      invalidas,
			TotalFilasInvalidas: totalInvalidas,
			TotalFilas:          len(filas),
			SessionID:           sessionID,
		}, nil
	}

	if !meta.Overwrite && len(duplicados) > 0 {
		reportados := duplicados
		if len(reportados) > domain.MaxDuplicadosReportados {
			reportados = reportados[:domain.MaxDuplicadosReportados]
		}

		return &domain.ResultadoIngesta{
			Estado:          domain.ResultadoDuplicados,
			Duplicados:      reportados,
			TotalDuplicados: len(duplicados),
			FilasNuevas:     len(filas) - len(duplicados),
			TotalFilas:      len(filas),
		}, nil
	}

	if camposDefecto > 0 {
		logrus.WithFields(logrus.Fields{
			"archivo": meta.Nombre,
			"campos":  camposDefecto,
		}).Warn("Campos con valor por defecto durante la ingesta")
	}

	session := &domain.CsvSession{
		FileName:        meta.Nombre,
		FileSize:        meta.Tamano,
		Status:          domain.SessionStatusProcessing,
		TotalRows:       len(filas),
		Overwrite:       meta.Overwrite,
		OriginalHeaders: headers,
		DetectedColumns: cols.ComoMapa(),
		CategoriesFound: ordenado(categoriasVista),
		ProfilesFound:   ordenado(perfilesVista),
		NetworksFound:   ordenado(redesVista),
		StartedAt:       ahora,
	}
	if err := s.sessionRepository.Create(session); err != nil {
		return nil, fmt.Errorf("error al crear la sesión de carga: %w", err)
	}

	insertadas, actualizadas, omitidas, err := s.persistir(ctx, session.ID, registros, existentes, meta.Overwrite)
	if err != nil {
		s.cerrarSesion(session, domain.SessionStatusFailed, 0, 0, 0, err.Error())
		return nil, fmt.Errorf("error al persistir el lote: %w", err)
	}

	s.cerrarSesion(session, domain.SessionStatusCompleted, insertadas, actualizadas, omitidas, "")

	return &domain.ResultadoIngesta{
		Estado:                domain.ResultadoExitoso,
		TotalFilas:            len(filas),
		Insertadas:            insertadas,
		Actualizadas:          actualizadas,
		Errores:               omitidas,
		CategoriasEncontradas: session.CategoriesFound,
		PerfilesEncontrados:   session.ProfilesFound,
		RedesEncontradas:      session.NetworksFound,
		SessionID:             session.ID,
	}, nil
}

// persistir escribe el lote y devuelve insertadas, actualizadas y omitidas.
// Las omitidas son conflictos de identificador aparecidos entre el snapshot y
// la inserción; se saltan fila a fila y se cuentan como errores de la corrida.
func (s *Service) persistir(
	ctx context.Context,
	sessionID string,
	registros []*domain.Publicacion,
	existentes map[string]struct{},
	overwrite bool,
) (int, int, int, error) {
	if len(registros) == 0 {
		return 0, 0, 0, nil
	}

	if !overwrite {
		insertadas, omitidas, err := s.publicationRepository.InsertBatch(ctx, sessionID, registros)
		if err != nil {
			return 0, 0, 0, err
		}
		if omitidas > 0 {
			logrus.WithField("omitidas", omitidas).Warn("Registros omitidos por conflicto durante la inserción")
		}
		return insertadas, 0, omitidas, nil
	}

	actualizadas := 0
	for _, registro := range registros {
		if _, existe := existentes[registro.ID]; existe {
			actualizadas++
		}
	}

	procesadas, err := s.publicationRepository.UpsertBatch(ctx, sessionID, registros)
	if err != nil {
		return 0, 0, 0, err
	}

	return procesadas - actualizadas, actualizadas, 0, nil
}

func (s *Service) registrarSesionFallida(
	meta MetaArchivo,
	headers []string,
	cols MapeoColumnas,
	totalFilas int,
	filasInvalidas int,
	ahora time.Time,
) (string, error) {
	mensaje := fmt.Sprintf("carga rechazada: %d filas inválidas", filasInvalidas)
	completada := s.now()

	session := &domain.CsvSession{
		FileName:        meta.Nombre,
		FileSize:        meta.Tamano,
		Status:          domain.SessionStatusFailed,
		TotalRows:       totalFilas,
		ErrorRows:       filasInvalidas,
		Overwrite:       meta.Overwrite,
		OriginalHeaders: headers,
		DetectedColumns: cols.ComoMapa(),
		ErrorMessage:    &mensaje,
		StartedAt:       ahora,
		CompletedAt:     &completada,
	}
	if err := s.sessionRepository.Create(session); err != nil {
		return "", err
	}

	return session.ID, nil
}

func (s *Service) cerrarSesion(session *domain.CsvSession, status string, insertadas, actualizadas, errores int, mensaje string) {
	completada := s.now()

	session.Status = status
	session.InsertedRows = insertadas
	session.UpdatedRows = actualizadas
	session.ErrorRows = errores
	session.CompletedAt = &completada
	if mensaje != "" {
		session.ErrorMessage = &mensaje
	}

	if err := s.sessionRepository.Update(session); err != nil {
		logrus.WithError(err).WithField("sessionId", session.ID).Error("Error al actualizar la sesión de carga")
	}
}

// leerCSV parsea el archivo completo, recorta los encabezados y descarta las
// filas totalmente vacías. El BOM de UTF-8 se remueve del primer encabezado.
func leerCSV(archivo io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(archivo)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, errors.New("archivo vacío")
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		headers[i] = strings.TrimSpace(h)
	}

	filas := make([][]string, 0, len(records)-1)
	for _, record := range records[1:] {
		if filaVacia(record) {
			continue
		}
		filas = append(filas, record)
	}

	return headers, filas, nil
}

func filaVacia(celdas []string) bool {
	for _, c := range celdas {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func ordenado(valores map[string]struct{}) []string {
	lista := make([]string, 0, len(valores))
	for v := range valores {
		lista = append(lista, v)
	}
	sort.Strings(lista)
	return lista
}
