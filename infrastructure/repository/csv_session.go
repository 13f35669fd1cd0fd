package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/smdigital/pulso-social-api/infrastructure/database/postgres"
	"github.com/smdigital/pulso-social-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	csvSessionsTable = "csv_sessions"

	sessionIDLength     = 12
	sessionIDCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	csvSessionColumns = "id, file_name, file_size, status, total_rows, inserted_rows, updated_rows, error_rows, duplicate_rows, overwrite, original_headers, detected_columns, categories_found, profiles_found, networks_found, error_message, started_at, completed_at"
)

type CsvSessionRepository interface {
	Create(session *domain.CsvSession) error
	Update(session *domain.CsvSession) error
	GetByID(id string) (*domain.CsvSession, error)
	List(filtros domain.FiltrosCsvSession) ([]*domain.CsvSession, int, error)
	Stats() (*domain.EstadisticasCsvSessions, error)
}

type csvSessionRepository struct {
	conn *postgres.Connection
}

func NewCsvSessionRepository(conn *postgres.Connection) CsvSessionRepository {
	return &csvSessionRepository{
		conn: conn,
	}
}

func (r *csvSessionRepository) Create(session *domain.CsvSession) error {
	if session.ID == "" {
		id, err := gonanoid.Generate(sessionIDCharacters, sessionIDLength)
		if err != nil {
			return fmt.Errorf("error al generar identificador de sesión: %w", err)
		}
		session.ID = id
	}

	headersJSON, columnsJSON, categoriesJSON, profilesJSON, networksJSON, err := serializeSessionFields(session)
	if err != nil {
		return err
	}

	query, args, err := squirrel.
		Insert(csvSessionsTable).
		Columns("id", "file_name", "file_size", "status", "total_rows", "inserted_rows", "updated_rows", "error_rows", "duplicate_rows", "overwrite", "original_headers", "detected_columns", "categories_found", "profiles_found", "networks_found", "error_message", "started_at").
		Values(session.ID, session.FileName, session.FileSize, session.Status, session.TotalRows, session.InsertedRows, session.UpdatedRows, session.ErrorRows, session.DuplicateRows, session.Overwrite, headersJSON, columnsJSON, categoriesJSON, profilesJSON, networksJSON, session.ErrorMessage, session.StartedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("error al ejecutar la query: %w", err)
	}

	return nil
}

func (r *csvSessionRepository) Update(session *domain.CsvSession) error {
	headersJSON, columnsJSON, categoriesJSON, profilesJSON, networksJSON, err := serializeSessionFields(session)
	if err != nil {
		return err
	}

	query, args, err := squirrel.
		Update(csvSessionsTable).
		Set("status", session.Status).
		Set("total_rows", session.TotalRows).
		Set("inserted_rows", session.InsertedRows).
		Set("updated_rows", session.UpdatedRows).
		Set("error_rows", session.ErrorRows).
		Set("duplicate_rows", session.DuplicateRows).
		Set("original_headers", headersJSON).
		Set("detected_columns", columnsJSON).
		Set("categories_found", categoriesJSON).
		Set("profiles_found", profilesJSON).
		Set("networks_found", networksJSON).
		Set("error_message", session.ErrorMessage).
		Set("completed_at", session.CompletedAt).
		Where(squirrel.Eq{"id": session.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("error al ejecutar la query: %w", err)
	}

	return nil
}

func (r *csvSessionRepository) GetByID(id string) (*domain.CsvSession, error) {
	query, args, err := squirrel.
		Select(csvSessionColumns).
		From(csvSessionsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error al ejecutar la query: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
		}
		return nil, nil
	}

	session, err := scanCsvSession(rows)
	if err != nil {
		return nil, fmt.Errorf("error al escanear sesión: %w", err)
	}

	return session, nil
}

func (r *csvSessionRepository) List(filtros domain.FiltrosCsvSession) ([]*domain.CsvSession, int, error) {
	base := squirrel.
		Select(csvSessionColumns).
		From(csvSessionsTable).
		PlaceholderFormat(squirrel.Dollar)

	base = aplicarFiltrosSesion(base, filtros)
	base = base.OrderBy("started_at DESC")

	if filtros.Limit > 0 {
		base = base.Limit(uint64(filtros.Limit))
	}
	if filtros.Offset > 0 {
		base = base.Offset(uint64(filtros.Offset))
	}

	query, args, err := base.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error al construir la query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error al ejecutar la query: %w", err)
	}
	defer rows.Close()

	sessions := make([]*domain.CsvSession, 0)
	for rows.Next() {
		session, err := scanCsvSession(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error al escanear sesión: %w", err)
		}
		sessions = append(sessions, session)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	total, err := r.countSessions(filtros)
	if err != nil {
		return nil, 0, err
	}

	return sessions, total, nil
}

func (r *csvSessionRepository) countSessions(filtros domain.FiltrosCsvSession) (int, error) {
	base := squirrel.
		Select("COUNT(*)").
		From(csvSessionsTable).
		PlaceholderFormat(squirrel.Dollar)

	base = aplicarFiltrosSesion(base, filtros)

	query, args, err := base.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error al construir la query: %w", err)
	}

	var total int
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error al contar sesiones: %w", err)
	}

	return total, nil
}

func aplicarFiltrosSesion(base squirrel.SelectBuilder, filtros domain.FiltrosCsvSession) squirrel.SelectBuilder {
	if filtros.Status != "" {
		base = base.Where(squirrel.Eq{"status": filtros.Status})
	}
	if filtros.FileName != "" {
		base = base.Where(squirrel.ILike{"file_name": "%" + filtros.FileName + "%"})
	}
	if filtros.FechaInicio != nil {
		base = base.Where(squirrel.GtOrEq{"started_at": *filtros.FechaInicio})
	}
	if filtros.FechaFin != nil {
		base = base.Where(squirrel.LtOrEq{"started_at": *filtros.FechaFin})
	}
	return base
}

func (r *csvSessionRepository) Stats() (*domain.EstadisticasCsvSessions, error) {
	stats := &domain.EstadisticasCsvSessions{}

	var insertados, actualizados int
	err := r.conn.QueryRow(`
		SELECT COUNT(*),
			COALESCE(SUM(inserted_rows), 0),
			COALESCE(SUM(updated_rows), 0),
			COALESCE(SUM(error_rows), 0)
		FROM csv_sessions
	`).Scan(&stats.TotalSessions, &insertados, &actualizados, &stats.TotalErrors)
	if err != nil {
		return nil, fmt.Errorf("error al agregar sesiones: %w", err)
	}
	stats.TotalRecordsProcessed = insertados + actualizados

	rows, err := r.conn.Query("SELECT status, COUNT(*) FROM csv_sessions GROUP BY status")
	if err != nil {
		return nil, fmt.Errorf("error al ejecutar la query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("error al escanear conteo por estado: %w", err)
		}

		switch status {
		case domain.SessionStatusCompleted:
			stats.CompletedSessions = count
		case domain.SessionStatusFailed:
			stats.FailedSessions = count
		case domain.SessionStatusProcessing:
			stats.ProcessingSessions = count
		case domain.SessionStatusPartial:
			stats.PartialSessions = count
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return stats, nil
}

func serializeSessionFields(session *domain.CsvSession) ([]byte, []byte, []byte, []byte, []byte, error) {
	headersJSON, err := json.Marshal(session.OriginalHeaders)
	if err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("error al serializar encabezados: %w", err)
	}
	columnsJSON, err := json.Marshal(session.DetectedColumns)
	if err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("error al serializar columnas detectadas: %w", err)
	}
	categoriesJSON, err := json.Marshal(session.CategoriesFound)
	if err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("error al serializar categorías: %w", err)
	}
	profilesJSON, err := json.Marshal(session.ProfilesFound)
	if err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("error al serializar perfiles: %w", err)
	}
	networksJSON, err := json.Marshal(session.NetworksFound)
	if err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("error al serializar redes: %w", err)
	}

	return headersJSON, columnsJSON, categoriesJSON, profilesJSON, networksJSON, nil
}

func scanCsvSession(rows *sql.Rows) (*domain.CsvSession, error) {
	session := &domain.CsvSession{}
	var headersJSON, columnsJSON, categoriesJSON, profilesJSON, networksJSON []byte

	err := rows.Scan(
		&session.ID,
		&session.FileName,
		&session.FileSize,
		&session.Status,
		&session.TotalRows,
		&session.InsertedRows,
		&session.UpdatedRows,
		&session.ErrorRows,
		&session.DuplicateRows,
		&session.Overwrite,
		&headersJSON,
		&columnsJSON,
		&categoriesJSON,
		&profilesJSON,
		&networksJSON,
		&session.ErrorMessage,
		&session.StartedAt,
		&session.CompletedAt,
	)
	if err != nil {
		return nil, err
	}

	if headersJSON != nil {
		if err := json.Unmarshal(headersJSON, &session.OriginalHeaders); err != nil {
			return nil, fmt.Errorf("error al deserializar encabezados: %w", err)
		}
	}
	if columnsJSON != nil {
		if err := json.Unmarshal(columnsJSON, &session.DetectedColumns); err != nil {
			return nil, fmt.Errorf("error al deserializar columnas detectadas: %w", err)
		}
	}
	if categoriesJSON != nil {
		if err := json.Unmarshal(categoriesJSON, &session.CategoriesFound); err != nil {
			return nil, fmt.Errorf("error al deserializar categorías: %w", err)
		}
	}
	if profilesJSON != nil {
		if err := json.Unmarshal(profilesJSON, &session.ProfilesFound); err != nil {
			return nil, fmt.Errorf("error al deserializar perfiles: %w", err)
		}
	}
	if networksJSON != nil {
		if err := json.Unmarshal(networksJSON, &session.NetworksFound); err != nil {
			return nil, fmt.Errorf("error al deserializar redes: %w", err)
		}
	}

	return session, nil
}
