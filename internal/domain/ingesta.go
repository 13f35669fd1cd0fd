package domain

// EstadoIngesta clasifica el desenlace de una corrida de ingesta.
//
// La política es de dos niveles: los errores estructurales y las filas
// inválidas son fatales para el archivo completo (no se persiste nada),
// mientras que los duplicados son una condición recuperable que pausa la
// carga hasta que el llamador confirme con overwrite=true.
type EstadoIngesta string

const (
	ResultadoExitoso            EstadoIngesta = "exitoso"
	ResultadoEstructuraInvalida EstadoIngesta = "estructura_invalida"
	ResultadoDatosInvalidos     EstadoIngesta = "datos_invalidos"
	ResultadoDuplicados         EstadoIngesta = "duplicados"
)

// Límites de detalle reportado; los totales siempre cuentan todo
const (
	MaxFilasInvalidasReportadas = 10
	MaxDuplicadosReportados     = 100
)

// FilaInvalida describe una fila rechazada, con la fila cruda como muestra
type FilaInvalida struct {
	Numero int               `json:"numero"` // número de fila de datos, empezando en 1
	Motivo string            `json:"motivo"`
	Datos  map[string]string `json:"datos,omitempty"`
}

type ResultadoIngesta struct {
	Estado EstadoIngesta `json:"estado"`

	// Estructura (ResultadoEstructuraInvalida)
	CamposFaltantes    []string `json:"camposFaltantes,omitempty"`
	HeadersEncontrados []string `json:"headersEncontrados,omitempty"`

	// Filas inválidas (ResultadoDatosInvalidos)
	FilasInvalidas      []FilaInvalida `json:"filasInvalidas,omitempty"`
	TotalFilasInvalidas int            `json:"totalFilasInvalidas,omitempty"`

	// Duplicados (ResultadoDuplicados)
	Duplicados      []string `json:"duplicados,omitempty"`
	TotalDuplicados int      `json:"totalDuplicados,omitempty"`
	FilasNuevas     int      `json:"filasNuevas,omitempty"`

	// Contadores de la corrida
	TotalFilas   int `json:"totalFilas"`
	Insertadas   int `json:"insertadas"`
	Actualizadas int `json:"actualizadas"`
	Errores      int `json:"errores"`

	// Valores distintos encontrados en el lote aceptado
	CategoriasEncontradas []string `json:"categoriasEncontradas,omitempty"`
	PerfilesEncontrados   []string `json:"perfilesEncontrados,omitempty"`
	RedesEncontradas      []string `json:"redesEncontradas,omitempty"`

	SessionID string `json:"sessionId,omitempty"`
}
