package ingesting

import "strings"

// Encabezados literales de métricas en los exports de la plataforma
const (
	headerImpresiones = "impresiones"
	headerAlcance     = "alcance"
	headerMeGusta     = "me gusta"
)

// MapeoColumnas es el resultado de la detección de alias de columnas,
// calculado una sola vez por archivo y reutilizado para cada fila.
type MapeoColumnas struct {
	ID          string
	Fecha       string
	Red         string
	Perfil      string
	Categoria   string
	Tipo        string
	Publicar    string
	Impresiones string
	Alcance     string
	MeGusta     string
}

// ComoMapa expone el mapeo detectado para la auditoría de la sesión
func (m MapeoColumnas) ComoMapa() map[string]string {
	return map[string]string{
		"id":          m.ID,
		"fecha":       m.Fecha,
		"red":         m.Red,
		"perfil":      m.Perfil,
		"categoria":   m.Categoria,
		"tipo":        m.Tipo,
		"publicar":    m.Publicar,
		"impresiones": m.Impresiones,
		"alcance":     m.Alcance,
		"meGusta":     m.MeGusta,
	}
}

// ValidacionEstructura es el resultado del chequeo de columnas mínimas
type ValidacionEstructura struct {
	Valida          bool
	CamposFaltantes []string
}

// ValidarEstructura verifica que el CSV traiga las columnas semánticas
// mínimas: identificador, fecha, red (exacta), perfil y al menos una métrica.
// Cualquier ausencia rechaza el archivo completo.
func ValidarEstructura(headers []string) ValidacionEstructura {
	faltantes := make([]string, 0)

	if buscarContiene(headers, "id") == "" {
		faltantes = append(faltantes, "columna de identificador (id)")
	}
	if buscarContiene(headers, "fecha") == "" {
		faltantes = append(faltantes, "columna de fecha")
	}
	if buscarExacta(headers, "red") == "" {
		faltantes = append(faltantes, "columna de red")
	}
	if buscarContiene(headers, "perfil") == "" {
		faltantes = append(faltantes, "columna de perfil")
	}

	tieneMetrica := buscarContiene(headers, headerImpresiones) != "" ||
		buscarContiene(headers, headerAlcance) != "" ||
		buscarContiene(headers, headerMeGusta) != ""
	if !tieneMetrica {
		faltantes = append(faltantes, "al menos una métrica (Impresiones/Alcance/Me gusta)")
	}

	return ValidacionEstructura{
		Valida:          len(faltantes) == 0,
		CamposFaltantes: faltantes,
	}
}

// DetectarColumnas resuelve los alias de columnas contra los encabezados
// reales del archivo, con los nombres por defecto del export como respaldo.
func DetectarColumnas(headers []string) MapeoColumnas {
	return MapeoColumnas{
		ID:          oDefecto(buscarContiene(headers, "id"), "ID"),
		Fecha:       oDefecto(buscarContiene(headers, "fecha"), "Fecha"),
		Red:         oDefecto(buscarExacta(headers, "red"), "Red"),
		Perfil:      oDefecto(buscarContiene(headers, "perfil"), "Perfil"),
		Categoria:   oDefecto(buscarContiene(headers, "categoria"), "categoria"),
		Tipo:        buscarTipoPublicacion(headers),
		Publicar:    buscarContiene(headers, "publicar"),
		Impresiones: oDefecto(buscarContiene(headers, headerImpresiones), "Impresiones"),
		Alcance:     oDefecto(buscarContiene(headers, headerAlcance), "Alcance"),
		MeGusta:     oDefecto(buscarContiene(headers, headerMeGusta), "Me gusta"),
	}
}

// buscarContiene devuelve el primer encabezado que contiene el token
// (insensible a mayúsculas), o cadena vacía
func buscarContiene(headers []string, token string) string {
	for _, h := range headers {
		if strings.Contains(strings.ToLower(h), token) {
			return h
		}
	}
	return ""
}

// buscarExacta devuelve el primer encabezado igual al token (insensible a
// mayúsculas), o cadena vacía. "Red" se busca exacta para no confundirla con
// encabezados como "Redirecciones".
func buscarExacta(headers []string, token string) string {
	for _, h := range headers {
		if strings.EqualFold(strings.TrimSpace(h), token) {
			return h
		}
	}
	return ""
}

// buscarTipoPublicacion busca la columna "Tipo de publicación" y variantes
func buscarTipoPublicacion(headers []string) string {
	for _, h := range headers {
		lower := strings.ToLower(h)
		if strings.Contains(lower, "tipo") && strings.Contains(lower, "publicaci") {
			return h
		}
	}
	return ""
}

func oDefecto(valor, defecto string) string {
	if valor == "" {
		return defecto
	}
	return valor
}
