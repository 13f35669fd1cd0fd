package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/smdigital/pulso-social-api/infrastructure/database/postgres"
	"github.com/smdigital/pulso-social-api/internal/domain"
)

const (
	publicacionesTable = "publicaciones"

	publicacionColumns = "id, fecha, red, perfil, categoria, tipo_publicacion, publicar, impresiones, alcance, me_gusta, created_at, updated_at"
)

// Columnas de ordenamiento permitidas en el listado
var sortColumns = map[string]string{
	"fecha":       "fecha",
	"impresiones": "impresiones",
	"alcance":     "alcance",
	"me_gusta":    "me_gusta",
}

type PublicationRepository interface {
	ListIDs() (map[string]struct{}, error)
	InsertBatch(ctx context.Context, sessionID string, pubs []*domain.Publicacion) (int, int, error)
	UpsertBatch(ctx context.Context, sessionID string, pubs []*domain.Publicacion) (int, error)
	List(filtros domain.FiltrosPublicacion) ([]*domain.Publicacion, int, error)
	Stats() (*domain.EstadisticasPublicaciones, error)
	ListPendingWithContent() ([]*domain.Publicacion, error)
	UpdateCategory(id, categoria string) error
	DeletePendingWithoutContent() ([]string, error)
	CountBySession(sessionID string) (int, error)
}

type publicationRepository struct {
	conn *postgres.Connection
}

func NewPublicationRepository(conn *postgres.Connection) PublicationRepository {
	return &publicationRepository{
		conn: conn,
	}
}

// ListIDs devuelve el conjunto completo de identificadores persistidos.
// Una sola lectura masiva al inicio de la ingesta evita una consulta por fila.
func (r *publicationRepository) ListIDs() (map[string]struct{}, error) {
	query, args, err := squirrel.
		Select("id").
		From(publicacionesTable).
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

	ids := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error al escanear identificador: %w", err)
		}
		ids[id] = struct{}{}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return ids, nil
}

// InsertBatch inserta el lote dentro de una transacción. Cada fila usa
// ON CONFLICT DO NOTHING: un duplicado creado entre el snapshot de ids y la
// escritura se omite y se cuenta, sin abortar el lote. Devuelve insertadas
// y omitidas.
func (r *publicationRepository) InsertBatch(ctx context.Context, sessionID string, pubs []*domain.Publicacion) (int, int, error) {
	insertadas := 0
	omitidas := 0

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, pub := range pubs {
			query, args, err := squirrel.
				Insert(publicacionesTable).
				Columns("id", "fecha", "red", "perfil", "categoria", "tipo_publicacion", "publicar", "impresiones", "alcance", "me_gusta", "csv_session_id").
				Values(pub.ID, pub.Fecha, pub.Red, pub.Perfil, pub.Categoria, pub.TipoPublicacion, pub.Publicar, pub.Impresiones, pub.Alcance, pub.MeGusta, nullable(sessionID)).
				Suffix("ON CONFLICT (id) DO NOTHING").
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("error al construir la query: %w", err)
			}

			result, err := tx.Exec(query, args...)
			if err != nil {
				if pqErr, ok := err.(*pq.Error); ok {
					return fmt.Errorf("error en la base de datos: %w (código: %s)", pqErr, pqErr.Code)
				}
				return fmt.Errorf("error al ejecutar la query: %w", err)
			}

			affected, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("error al obtener filas afectadas: %w", err)
			}

			if affected == 0 {
				omitidas++
				continue
			}
			insertadas++
		}

		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return insertadas, omitidas, nil
}

// UpsertBatch persiste el lote con semántica de reemplazo por id, todo o
// nada dentro de una transacción
func (r *publicationRepository) UpsertBatch(ctx context.Context, sessionID string, pubs []*domain.Publicacion) (int, error) {
	actualizadas := 0

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, pub := range pubs {
			query, args, err := squirrel.
				Insert(publicacionesTable).
				Columns("id", "fecha", "red", "perfil", "categoria", "tipo_publicacion", "publicar", "impresiones", "alcance", "me_gusta", "csv_session_id").
				Values(pub.ID, pub.Fecha, pub.Red, pub.Perfil, pub.Categoria, pub.TipoPublicacion, pub.Publicar, pub.Impresiones, pub.Alcance, pub.MeGusta, nullable(sessionID)).
				Suffix(`
					ON CONFLICT (id) DO UPDATE SET
						fecha = EXCLUDED.fecha,
						red = EXCLUDED.red,
						perfil = EXCLUDED.perfil,
						categoria = EXCLUDED.categoria,
						tipo_publicacion = EXCLUDED.tipo_publicacion,
						publicar = EXCLUDED.publicar,
						impresiones = EXCLUDED.impresiones,
						alcance = EXCLUDED.alcance,
						me_gusta = EXCLUDED.me_gusta,
						csv_session_id = EXCLUDED.csv_session_id,
						updated_at = NOW()
				`).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("error al construir la query: %w", err)
			}

			if _, err := tx.Exec(query, args...); err != nil {
				if pqErr, ok := err.(*pq.Error); ok {
					return fmt.Errorf("error en la base de datos: %w (código: %s)", pqErr, pqErr.Code)
				}
				return fmt.Errorf("error al ejecutar la query: %w", err)
			}

			actualizadas++
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return actualizadas, nil
}

func (r *publicationRepository) List(filtros domain.FiltrosPublicacion) ([]*domain.Publicacion, int, error) {
	base := squirrel.
		Select(publicacionColumns).
		From(publicacionesTable).
		PlaceholderFormat(squirrel.Dollar)

	base = aplicarFiltros(base, filtros)

	sortBy, ok := sortColumns[filtros.SortBy]
	if !ok {
		sortBy = "fecha"
	}
	order := "DESC"
	if filtros.SortOrder == "asc" {
		order = "ASC"
	}
	base = base.OrderBy(fmt.Sprintf("%s %s", sortBy, order))

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

	pubs := make([]*domain.Publicacion, 0)
	for rows.Next() {
		pub, err := scanPublicacion(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error al escanear publicación: %w", err)
		}
		pubs = append(pubs, pub)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	total, err := r.count(filtros)
	if err != nil {
		return nil, 0, err
	}

	return pubs, total, nil
}

func (r *publicationRepository) count(filtros domain.FiltrosPublicacion) (int, error) {
	base := squirrel.
		Select("COUNT(*)").
		From(publicacionesTable).
		PlaceholderFormat(squirrel.Dollar)

	base = aplicarFiltros(base, filtros)

	query, args, err := base.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error al construir la query: %w", err)
	}

	var total int
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error al contar publicaciones: %w", err)
	}

	return total, nil
}

func aplicarFiltros(base squirrel.SelectBuilder, filtros domain.FiltrosPublicacion) squirrel.SelectBuilder {
	if filtros.Red != "" {
		base = base.Where(squirrel.Eq{"red": filtros.Red})
	}
	if filtros.Perfil != "" {
		base = base.Where(squirrel.Eq{"perfil": filtros.Perfil})
	}
	if filtros.Categoria != "" {
		base = base.Where(squirrel.Eq{"categoria": filtros.Categoria})
	}
	if filtros.Tipo != "" {
		base = base.Where(squirrel.Eq{"tipo_publicacion": filtros.Tipo})
	}
	if filtros.FechaInicio != nil {
		base = base.Where(squirrel.GtOrEq{"fecha": *filtros.FechaInicio})
	}
	if filtros.FechaFin != nil {
		base = base.Where(squirrel.LtOrEq{"fecha": *filtros.FechaFin})
	}
	return base
}

func (r *publicationRepository) Stats() (*domain.EstadisticasPublicaciones, error) {
	stats := &domain.EstadisticasPublicaciones{}

	if err := r.conn.QueryRow("SELECT COUNT(*) FROM publicaciones").Scan(&stats.TotalPublicaciones); err != nil {
		return nil, fmt.Errorf("error al contar publicaciones: %w", err)
	}

	var err error
	if stats.Redes, err = r.groupByCount("red"); err != nil {
		return nil, err
	}
	if stats.Perfiles, err = r.groupByCount("perfil"); err != nil {
		return nil, err
	}
	if stats.Categorias, err = r.groupByCount("categoria"); err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *publicationRepository) groupByCount(campo string) ([]domain.ConteoPorCampo, error) {
	query, args, err := squirrel.
		Select(campo, "COUNT(*)").
		From(publicacionesTable).
		GroupBy(campo).
		OrderBy("COUNT(*) DESC").
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

	conteos := make([]domain.ConteoPorCampo, 0)
	for rows.Next() {
		var c domain.ConteoPorCampo
		if err := rows.Scan(&c.Valor, &c.Conteo); err != nil {
			return nil, fmt.Errorf("error al escanear conteo: %w", err)
		}
		conteos = append(conteos, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return conteos, nil
}

// ListPendingWithContent devuelve las filas pendientes de categorizar que
// tienen texto para analizar
func (r *publicationRepository) ListPendingWithContent() ([]*domain.Publicacion, error) {
	query, args, err := squirrel.
		Select(publicacionColumns).
		From(publicacionesTable).
		Where(squirrel.Eq{"categoria": domain.CategoriaPendiente}).
		Where("publicar IS NOT NULL AND publicar <> ''").
		OrderBy("fecha ASC").
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

	pubs := make([]*domain.Publicacion, 0)
	for rows.Next() {
		pub, err := scanPublicacion(rows)
		if err != nil {
			return nil, fmt.Errorf("error al escanear publicación: %w", err)
		}
		pubs = append(pubs, pub)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return pubs, nil
}

func (r *publicationRepository) UpdateCategory(id, categoria string) error {
	query, args, err := squirrel.
		Update(publicacionesTable).
		Set("categoria", categoria).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
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

// DeletePendingWithoutContent elimina las filas pendientes sin texto, que el
// clasificador nunca podrá procesar. Devuelve los ids eliminados.
func (r *publicationRepository) DeletePendingWithoutContent() ([]string, error) {
	query, args, err := squirrel.
		Delete(publicacionesTable).
		Where(squirrel.Eq{"categoria": domain.CategoriaPendiente}).
		Where("(publicar IS NULL OR publicar = '')").
		Suffix("RETURNING id").
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

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error al escanear identificador: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return ids, nil
}

func (r *publicationRepository) CountBySession(sessionID string) (int, error) {
	var total int
	err := r.conn.QueryRow("SELECT COUNT(*) FROM publicaciones WHERE csv_session_id = $1", sessionID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error al contar publicaciones de la sesión: %w", err)
	}

	return total, nil
}

func scanPublicacion(rows *sql.Rows) (*domain.Publicacion, error) {
	pub := &domain.Publicacion{}

	err := rows.Scan(
		&pub.ID,
		&pub.Fecha,
		&pub.Red,
		&pub.Perfil,
		&pub.Categoria,
		&pub.TipoPublicacion,
		&pub.Publicar,
		&pub.Impresiones,
		&pub.Alcance,
		&pub.MeGusta,
		&pub.CreatedAt,
		&pub.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return pub, nil
}

// nullable convierte una cadena vacía en NULL
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
