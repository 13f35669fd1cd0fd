package ingesting

import (
	"testing"
	"time"

	"github.com/smdigital/pulso-social-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestIngestarFila(t *testing.T) {
	ahora := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	cols := DetectarColumnas([]string{
		"ID", "Fecha", "Red", "Perfil", "categoria",
		"Tipo de publicación", "Publicar", "Impresiones", "Alcance", "Me gusta",
	})

	filaBase := func() Fila {
		return Fila{
			"ID":                  "post-1",
			"Fecha":               "3/15/2024 5:34 pm",
			"Red":                 "Facebook",
			"Perfil":              "Alcaldía de Cali",
			"categoria":           "SEGURIDAD",
			"Tipo de publicación": "Reel",
			"Publicar":            "Contenido del post",
			"Impresiones":         "1,000",
			"Alcance":             "500",
			"Me gusta":            "40",
		}
	}

	t.Run("fila válida con una categoría", func(t *testing.T) {
		resultado := IngestarFila(filaBase(), cols, 2, false, nil, ahora)

		assert.Nil(t, resultado.Invalida)
		assert.Empty(t, resultado.DuplicadoID)
		assert.Zero(t, resultado.CamposPorDefecto)
		assert.Len(t, resultado.Registros, 1)

		registro := resultado.Registros[0]
		assert.Equal(t, "post-1", registro.ID)
		assert.Equal(t, time.Date(2024, 3, 15, 17, 34, 0, 0, time.Local), registro.Fecha)
		assert.Equal(t, "Facebook", registro.Red)
		assert.Equal(t, "Alcaldía de Cali", registro.Perfil)
		assert.Equal(t, domain.CategoriaSeguridad, registro.Categoria)
		assert.Equal(t, "Reel", registro.TipoPublicacion)
		assert.NotNil(t, registro.Publicar)
		assert.Equal(t, "Contenido del post", *registro.Publicar)
		assert.Equal(t, 1000, registro.Impresiones)
		assert.Equal(t, 500, registro.Alcance)
		assert.Equal(t, 40, registro.MeGusta)
	})

	t.Run("múltiples categorías expanden con sufijos y reparto entero", func(t *testing.T) {
		fila := filaBase()
		fila["categoria"] = "seguridad, transparencia pública, invertir para crecer"
		fila["Impresiones"] = "10"
		fila["Alcance"] = "7"
		fila["Me gusta"] = "2"

		resultado := IngestarFila(fila, cols, 2, false, nil, ahora)

		assert.Len(t, resultado.Registros, 3)
		assert.Equal(t, "post-1_0", resultado.Registros[0].ID)
		assert.Equal(t, "post-1_1", resultado.Registros[1].ID)
		assert.Equal(t, "post-1_2", resultado.Registros[2].ID)

		assert.Equal(t, domain.CategoriaSeguridad, resultado.Registros[0].Categoria)
		assert.Equal(t, domain.CategoriaTransparencia, resultado.Registros[1].Categoria)
		assert.Equal(t, domain.CategoriaInvertir, resultado.Registros[2].Categoria)

		// División entera: el residuo se descarta en cada métrica
		for _, r := range resultado.Registros {
			assert.Equal(t, 3, r.Impresiones)
			assert.Equal(t, 2, r.Alcance)
			assert.Equal(t, 0, r.MeGusta)
		}
	})

	t.Run("identificador vacío invalida la fila", func(t *testing.T) {
		fila := filaBase()
		fila["ID"] = "   "

		resultado := IngestarFila(fila, cols, 7, false, nil, ahora)

		assert.NotNil(t, resultado.Invalida)
		assert.Equal(t, 7, resultado.Invalida.Numero)
		assert.Equal(t, "identificador vacío", resultado.Invalida.Motivo)
		assert.Equal(t, "Facebook", resultado.Invalida.Datos["Red"])
		assert.Empty(t, resultado.Registros)
	})

	t.Run("red vacía invalida la fila", func(t *testing.T) {
		fila := filaBase()
		fila["Red"] = ""

		resultado := IngestarFila(fila, cols, 3, false, nil, ahora)

		assert.NotNil(t, resultado.Invalida)
		assert.Equal(t, "red vacía", resultado.Invalida.Motivo)
	})

	t.Run("perfil vacío invalida la fila", func(t *testing.T) {
		fila := filaBase()
		fila["Perfil"] = ""

		resultado := IngestarFila(fila, cols, 4, false, nil, ahora)

		assert.NotNil(t, resultado.Invalida)
		assert.Equal(t, "perfil vacío", resultado.Invalida.Motivo)
	})

	t.Run("duplicado detectado sin overwrite", func(t *testing.T) {
		existentes := map[string]struct{}{"post-1": {}}

		resultado := IngestarFila(filaBase(), cols, 2, false, existentes, ahora)

		assert.Equal(t, "post-1", resultado.DuplicadoID)
		assert.Empty(t, resultado.Registros)
		assert.Nil(t, resultado.Invalida)
	})

	t.Run("con overwrite el duplicado se procesa normalmente", func(t *testing.T) {
		existentes := map[string]struct{}{"post-1": {}}

		resultado := IngestarFila(filaBase(), cols, 2, true, existentes, ahora)

		assert.Empty(t, resultado.DuplicadoID)
		assert.Len(t, resultado.Registros, 1)
	})

	t.Run("campos tolerantes cuentan los valores por defecto", func(t *testing.T) {
		fila := filaBase()
		fila["Fecha"] = "no es fecha"
		fila["Impresiones"] = ""
		fila["Alcance"] = "abc"
		fila["Me gusta"] = "-3"

		resultado := IngestarFila(fila, cols, 2, false, nil, ahora)

		assert.Len(t, resultado.Registros, 1)
		assert.Equal(t, 4, resultado.CamposPorDefecto)

		registro := resultado.Registros[0]
		assert.Equal(t, ahora, registro.Fecha)
		assert.Zero(t, registro.Impresiones)
		assert.Zero(t, registro.Alcance)
		assert.Zero(t, registro.MeGusta)
	})

	t.Run("sin columna de tipo usa el tipo por defecto", func(t *testing.T) {
		colsSinTipo := DetectarColumnas([]string{"ID", "Fecha", "Red", "Perfil", "Impresiones"})
		fila := Fila{
			"ID": "post-2", "Fecha": "3/15/2024", "Red": "Instagram",
			"Perfil": "Alcaldía de Cali", "Impresiones": "10",
		}

		resultado := IngestarFila(fila, colsSinTipo, 2, false, nil, ahora)

		assert.Len(t, resultado.Registros, 1)
		assert.Equal(t, domain.TipoPublicacionDefault, resultado.Registros[0].TipoPublicacion)
		assert.Nil(t, resultado.Registros[0].Publicar)
	})

	t.Run("celda de tipo vacía también usa el tipo por defecto", func(t *testing.T) {
		fila := filaBase()
		fila["Tipo de publicación"] = "  "
		fila["Publicar"] = ""

		resultado := IngestarFila(fila, cols, 2, false, nil, ahora)

		assert.Equal(t, domain.TipoPublicacionDefault, resultado.Registros[0].TipoPublicacion)
		assert.Nil(t, resultado.Registros[0].Publicar)
	})
}
