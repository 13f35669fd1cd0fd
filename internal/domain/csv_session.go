package domain

import "time"

// Estados posibles de una sesión de carga CSV
const (
	SessionStatusProcessing = "processing"
	SessionStatusCompleted  = "completed"
	SessionStatusFailed     = "failed"
	SessionStatusPartial    = "partial"
)

// CsvSession registra los metadatos de auditoría de una carga de CSV:
// archivo, contadores y el mapeo de columnas detectado. Solo metadatos,
// no participa en la decisión de ingesta.
type CsvSession struct {
	ID              string            `json:"id"`
	FileName        string            `json:"fileName"`
	FileSize        int64             `json:"fileSize"`
	Status          string            `json:"status"`
	TotalRows       int               `json:"totalRows"`
	InsertedRows    int               `json:"insertedRows"`
	UpdatedRows     int               `json:"updatedRows"`
	ErrorRows       int               `json:"errorRows"`
	DuplicateRows   int               `json:"duplicateRows"`
	Overwrite       bool              `json:"overwrite"`
	OriginalHeaders []string          `json:"originalHeaders"`
	DetectedColumns map[string]string `json:"detectedColumns"`
	CategoriesFound []string          `json:"categoriesFound"`
	ProfilesFound   []string          `json:"profilesFound"`
	NetworksFound   []string          `json:"networksFound"`
	ErrorMessage    *string           `json:"errorMessage,omitempty"`
	StartedAt       time.Time         `json:"startedAt"`
	CompletedAt     *time.Time        `json:"completedAt,omitempty"`
}

// FiltrosCsvSession filtra el historial de sesiones
type FiltrosCsvSession struct {
	Status      string
	FileName    string
	FechaInicio *time.Time
	FechaFin    *time.Time
	Limit       int
	Offset      int
}

// EstadisticasCsvSessions agrega el historial completo de sesiones
type EstadisticasCsvSessions struct {
	TotalSessions         int `json:"totalSessions"`
	CompletedSessions     int `json:"completedSessions"`
	FailedSessions        int `json:"failedSessions"`
	ProcessingSessions    int `json:"processingSessions"`
	PartialSessions       int `json:"partialSessions"`
	TotalRecordsProcessed int `json:"totalRecordsProcessed"`
	TotalErrors           int `json:"totalErrors"`
}
