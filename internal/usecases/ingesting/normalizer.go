// Package ingesting implementa el pipeline de ingesta de archivos CSV de
// métricas de publicaciones: normalización de categorías, parseo tolerante
// de fechas y números, validación estructural y expansión de filas.
package ingesting

import (
	"regexp"
	"strings"

	"github.com/smdigital/pulso-social-api/internal/domain"
)

var (
	// n/a, na, n.a., n.a, o solo guiones/guiones bajos
	reSinCategoria = regexp.MustCompile(`(?i)^(n/a|na|n\.a\.?|-+|_+)$`)

	// ESTRATEGIA "X" / estrategia 'X' / ESTRATEGIA X
	reEstrategia = regexp.MustCompile(`(?i)^estrategia\s+["']?(.+?)["']?$`)
)

// NormalizarCategoria mapea un token crudo de categoría a una de las etiquetas
// canónicas del sistema. Los rótulos no reconocidos pero no vacíos pasan tal
// cual. El orden de los chequeos importa: gana la primera coincidencia.
func NormalizarCategoria(raw string) string {
	c := strings.TrimSpace(raw)

	// Quitar una capa de comillas envolventes
	c = stripQuotes(c)

	if c == "" || reSinCategoria.MatchString(c) {
		return domain.CategoriaSinCategoria
	}

	// ESTRATEGIA "X" se reemplaza por X y se vuelve a normalizar
	if m := reEstrategia.FindStringSubmatch(c); m != nil {
		return NormalizarCategoria(m[1])
	}

	lower := strings.ToLower(c)

	switch {
	case strings.Contains(lower, "invertir") && strings.Contains(lower, "para") && strings.Contains(lower, "crecer"):
		return domain.CategoriaInvertir
	case strings.Contains(lower, "seguridad"):
		return domain.CategoriaSeguridad
	case strings.Contains(lower, "transparencia") && (strings.Contains(lower, "publica") || strings.Contains(lower, "pública")):
		return domain.CategoriaTransparencia
	case strings.Contains(lower, "error"):
		return domain.CategoriaError
	case strings.Contains(lower, "estrategia"):
		// "estrategia" suelta, sin nombre que extraer
		return domain.CategoriaSinCategoria
	}

	return c
}

// NormalizarCategorias divide una celda en tokens por coma y normaliza cada
// uno. Una celda sin tokens equivale a un único "Sin categoría".
func NormalizarCategorias(celda string) []string {
	tokens := strings.Split(celda, ",")

	categorias := make([]string, 0, len(tokens))
	for _, token := range tokens {
		categorias = append(categorias, NormalizarCategoria(token))
	}

	if len(categorias) == 0 {
		categorias = append(categorias, domain.CategoriaSinCategoria)
	}

	return categorias
}

// stripQuotes quita un par de comillas envolventes coincidentes ("..." o '...')
func stripQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	return s
}
