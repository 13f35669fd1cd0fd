package ingesting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidarEstructura(t *testing.T) {
	completos := []string{"ID", "Fecha", "Red", "Perfil", "Impresiones", "Alcance", "Me gusta"}

	tests := []struct {
		name      string
		headers   []string
		valida    bool
		faltantes []string
	}{
		{
			name:    "encabezados completos del export",
			headers: completos,
			valida:  true,
		},
		{
			name:    "basta una sola métrica",
			headers: []string{"ID", "Fecha", "Red", "Perfil", "Me gusta"},
			valida:  true,
		},
		{
			name:      "sin identificador",
			headers:   []string{"Fecha", "Red", "Perfil", "Impresiones"},
			valida:    false,
			faltantes: []string{"columna de identificador (id)"},
		},
		{
			name:      "sin fecha",
			headers:   []string{"ID", "Red", "Perfil", "Impresiones"},
			valida:    false,
			faltantes: []string{"columna de fecha"},
		},
		{
			name:      "redirecciones no cuenta como red",
			headers:   []string{"ID", "Fecha", "Redirecciones", "Perfil", "Impresiones"},
			valida:    false,
			faltantes: []string{"columna de red"},
		},
		{
			name:      "sin perfil",
			headers:   []string{"ID", "Fecha", "Red", "Impresiones"},
			valida:    false,
			faltantes: []string{"columna de perfil"},
		},
		{
			name:      "sin ninguna métrica",
			headers:   []string{"ID", "Fecha", "Red", "Perfil", "categoria"},
			valida:    false,
			faltantes: []string{"al menos una métrica (Impresiones/Alcance/Me gusta)"},
		},
		{
			name:    "encabezados vacíos reportan todo",
			headers: []string{},
			valida:  false,
			faltantes: []string{
				"columna de identificador (id)",
				"columna de fecha",
				"columna de red",
				"columna de perfil",
				"al menos una métrica (Impresiones/Alcance/Me gusta)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resultado := ValidarEstructura(tt.headers)
			assert.Equal(t, tt.valida, resultado.Valida)
			if !tt.valida {
				assert.Equal(t, tt.faltantes, resultado.CamposFaltantes)
			} else {
				assert.Empty(t, resultado.CamposFaltantes)
			}
		})
	}
}

func TestDetectarColumnas(t *testing.T) {
	t.Run("encabezados del export estándar", func(t *testing.T) {
		headers := []string{
			"ID", "Fecha", "Red", "Perfil", "categoria",
			"Tipo de publicación", "Publicar", "Impresiones", "Alcance", "Me gusta",
		}

		cols := DetectarColumnas(headers)

		assert.Equal(t, "ID", cols.ID)
		assert.Equal(t, "Fecha", cols.Fecha)
		assert.Equal(t, "Red", cols.Red)
		assert.Equal(t, "Perfil", cols.Perfil)
		assert.Equal(t, "categoria", cols.Categoria)
		assert.Equal(t, "Tipo de publicación", cols.Tipo)
		assert.Equal(t, "Publicar", cols.Publicar)
		assert.Equal(t, "Impresiones", cols.Impresiones)
		assert.Equal(t, "Alcance", cols.Alcance)
		assert.Equal(t, "Me gusta", cols.MeGusta)
	})

	t.Run("alias por contención insensible a mayúsculas", func(t *testing.T) {
		headers := []string{
			"POST ID", "Fecha de publicación", "red", "Nombre del perfil",
			"Categorias", "Total impresiones", "alcance total", "ME GUSTA",
		}

		cols := DetectarColumnas(headers)

		assert.Equal(t, "POST ID", cols.ID)
		assert.Equal(t, "Fecha de publicación", cols.Fecha)
		assert.Equal(t, "red", cols.Red)
		assert.Equal(t, "Nombre del perfil", cols.Perfil)
		assert.Equal(t, "Categorias", cols.Categoria)
		assert.Equal(t, "Total impresiones", cols.Impresiones)
		assert.Equal(t, "alcance total", cols.Alcance)
		assert.Equal(t, "ME GUSTA", cols.MeGusta)
	})

	t.Run("alias ausentes caen en los nombres por defecto", func(t *testing.T) {
		cols := DetectarColumnas([]string{"otra", "cosa"})

		assert.Equal(t, "ID", cols.ID)
		assert.Equal(t, "Fecha", cols.Fecha)
		assert.Equal(t, "Red", cols.Red)
		assert.Equal(t, "Perfil", cols.Perfil)
		assert.Equal(t, "categoria", cols.Categoria)
		assert.Equal(t, "Impresiones", cols.Impresiones)
		assert.Equal(t, "Alcance", cols.Alcance)
		assert.Equal(t, "Me gusta", cols.MeGusta)
		// Tipo y Publicar no tienen respaldo: sin columna, quedan vacíos
		assert.Empty(t, cols.Tipo)
		assert.Empty(t, cols.Publicar)
	})

	t.Run("variantes de tipo de publicación", func(t *testing.T) {
		assert.Equal(t, "Tipo de publicacion", buscarTipoPublicacion([]string{"ID", "Tipo de publicacion"}))
		assert.Equal(t, "TIPO DE PUBLICACIÓN", buscarTipoPublicacion([]string{"TIPO DE PUBLICACIÓN"}))
		assert.Empty(t, buscarTipoPublicacion([]string{"Tipo", "Publicación"}))
	})
}

func TestComoMapa(t *testing.T) {
	cols := DetectarColumnas([]string{"ID", "Fecha", "Red", "Perfil", "Impresiones"})
	mapa := cols.ComoMapa()

	assert.Len(t, mapa, 10)
	assert.Equal(t, "ID", mapa["id"])
	assert.Equal(t, "Red", mapa["red"])
	assert.Equal(t, "Me gusta", mapa["meGusta"])
}
