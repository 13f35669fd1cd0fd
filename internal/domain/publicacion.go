// Package domain contiene las estructuras de datos del dominio de la aplicación
package domain

import "time"

// Categorías canónicas reconocidas por el sistema. Todo lo demás colapsa a
// CategoriaSinCategoria o pasa tal cual si es un rótulo legítimo no reconocido.
const (
	CategoriaSeguridad     = "SEGURIDAD"
	CategoriaTransparencia = "TRANSPARENCIA PÚBLICA"
	CategoriaInvertir      = "INVERTIR PARA CRECER"
	CategoriaSinCategoria  = "Sin categoría"
	CategoriaError         = "Error en procesamiento"

	// CategoriaPendiente marca filas a la espera del clasificador automático
	CategoriaPendiente = "Pendiente"

	// CategoriaNA es la respuesta del clasificador cuando el contenido no
	// encaja en ninguna categoría canónica
	CategoriaNA = "N/A"
)

// TipoPublicacionDefault se asigna cuando el CSV no trae la columna de tipo
const TipoPublicacionDefault = "Publicar"

type Publicacion struct {
	ID              string    `json:"id"`
	Fecha           time.Time `json:"fecha"`
	Red             string    `json:"red"`
	Perfil          string    `json:"perfil"`
	Categoria       string    `json:"categoria"`
	TipoPublicacion string    `json:"tipoPublicacion"`
	Publicar        *string   `json:"publicar,omitempty"` // texto de la publicación, usado por el clasificador
	Impresiones     int       `json:"impresiones"`
	Alcance         int       `json:"alcance"`
	MeGusta         int       `json:"meGusta"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// FiltrosPublicacion son los filtros aceptados por el listado de publicaciones
type FiltrosPublicacion struct {
	Red         string
	Perfil      string
	Categoria   string
	Tipo        string
	FechaInicio *time.Time
	FechaFin    *time.Time
	Limit       int
	Offset      int
	SortBy      string // fecha, impresiones, alcance, me_gusta
	SortOrder   string // asc, desc
}

// ConteoPorCampo es una fila de agregación (GROUP BY) por red/perfil/categoría
type ConteoPorCampo struct {
	Valor  string `json:"valor"`
	Conteo int    `json:"conteo"`
}

type EstadisticasPublicaciones struct {
	TotalPublicaciones int              `json:"totalPublicaciones"`
	Redes              []ConteoPorCampo `json:"redes"`
	Perfiles           []ConteoPorCampo `json:"perfiles"`
	Categorias         []ConteoPorCampo `json:"categorias"`
}
