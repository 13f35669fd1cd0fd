package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/smdigital/pulso-social-api/internal/config"
	"github.com/smdigital/pulso-social-api/internal/domain"
	"github.com/smdigital/pulso-social-api/internal/usecases/ingesting"
	"github.com/smdigital/pulso-social-api/pkg/apiErrors"
)

// UploadCSV recibe un archivo CSV de publicaciones vía multipart/form-data y
// corre la ingesta completa. El campo "overwrite" en el formulario confirma
// la sobreescritura de identificadores ya existentes.
func UploadCSV(service ingesting.Ingester, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UploadCSV")

		r.Body = http.MaxBytesReader(w, r.Body, cfg.Upload.MaxFileSizeBytes)

		if err := r.ParseMultipartForm(cfg.Upload.MaxFileSizeBytes); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				apiErrors.WriteError(w, apiErrors.ErrCsvTooLarge, "El archivo excede el tamaño máximo permitido", map[string]any{
					"maxFileSizeBytes": cfg.Upload.MaxFileSizeBytes,
				})
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "No se pudo leer el formulario multipart", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "El campo 'file' es obligatorio", nil)
			return
		}
		defer file.Close()

		if header.Size > cfg.Upload.MaxFileSizeBytes {
			apiErrors.WriteError(w, apiErrors.ErrCsvTooLarge, "El archivo excede el tamaño máximo permitido", map[string]any{
				"maxFileSizeBytes": cfg.Upload.MaxFileSizeBytes,
			})
			return
		}

		overwrite := r.FormValue("overwrite") == "true"

		resultado, err := service.Ingestar(r.Context(), file, ingesting.MetaArchivo{
			Nombre:    header.Filename,
			Tamano:    header.Size,
			Overwrite: overwrite,
		})
		if err != nil {
			if errors.Is(err, ingesting.ErrArchivoIlegible) {
				apiErrors.WriteError(w, apiErrors.ErrCsvUnreadable, "El archivo no se pudo parsear como CSV", map[string]any{
					"detalle": err.Error(),
				})
				return
			}

			logrus.WithError(err).Error("Error durante la ingesta del CSV")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al procesar el archivo", nil)
			return
		}

		switch resultado.Estado {
		case domain.ResultadoEstructuraInvalida:
			apiErrors.WriteError(w, apiErrors.ErrCsvInvalidStructure, "El CSV no tiene las columnas requeridas", resultado)

		case domain.ResultadoDatosInvalidos:
			apiErrors.WriteError(w, apiErrors.ErrCsvInvalidRows, "El CSV contiene filas inválidas y no se insertó ningún registro", resultado)

		case domain.ResultadoDuplicados:
			apiErrors.WriteError(w, apiErrors.ErrCsvDuplicates, "Se encontraron identificadores ya existentes; reenviar con overwrite=true para sobreescribir", resultado)

		default:
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(resultado)
		}
	}
}
