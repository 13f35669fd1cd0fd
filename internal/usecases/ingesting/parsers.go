package ingesting

import (
	"strconv"
	"strings"
	"time"
)

// ValorEntero es el resultado de parsear un número. PorDefecto distingue un
// dato real de un valor sustituido por la política de tolerancia: un campo
// mal formado nunca bloquea la ingesta de la fila.
type ValorEntero struct {
	Valor      int
	PorDefecto bool
	Motivo     string
}

// ValorFecha es el resultado de parsear una fecha, con la misma distinción
type ValorFecha struct {
	Valor      time.Time
	PorDefecto bool
	Motivo     string
}

// ParseNumero parsea un entero con separadores de miles ("1,051" → 1051).
// Entradas vacías, no numéricas o negativas producen 0 marcado como defecto.
func ParseNumero(s string) ValorEntero {
	s = strings.TrimSpace(s)
	if s == "" {
		return ValorEntero{Valor: 0, PorDefecto: true, Motivo: "vacío"}
	}

	limpio := strings.ReplaceAll(s, ",", "")
	n, err := strconv.Atoi(limpio)
	if err != nil {
		return ValorEntero{Valor: 0, PorDefecto: true, Motivo: "no numérico"}
	}

	if n < 0 {
		// Las métricas son no negativas por definición
		return ValorEntero{Valor: 0, PorDefecto: true, Motivo: "negativo"}
	}

	return ValorEntero{Valor: n}
}

// Layouts de hora aceptados tras la parte de fecha ("5:34 pm", "17:34")
var layoutsHora = []string{"3:04 pm", "3:04pm", "15:04", "3:04:05 pm", "15:04:05"}

// Layouts de respaldo para el intento genérico sobre la cadena completa
var layoutsRespaldo = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006",
}

// ParseFecha parsea fechas en formato M/D/YYYY H:MM am/pm y variantes ISO.
// Nunca falla: cuando todos los intentos se agotan devuelve ahora, marcado
// como defecto, para no bloquear la ingesta por una fecha corrupta.
func ParseFecha(s string, ahora time.Time) ValorFecha {
	s = strings.TrimSpace(s)
	if s == "" {
		return ValorFecha{Valor: ahora, PorDefecto: true, Motivo: "vacía"}
	}

	// ISO-8601 directo cuando viene con T y Z
	if strings.Contains(s, "T") && strings.Contains(s, "Z") {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return ValorFecha{Valor: t}
		}
		return ValorFecha{Valor: ahora, PorDefecto: true, Motivo: "ISO inválida"}
	}

	parteFecha, parteHora := s, ""
	if idx := strings.Index(s, " "); idx >= 0 {
		parteFecha, parteHora = s[:idx], strings.TrimSpace(s[idx+1:])
	}

	componentes := strings.Split(parteFecha, "/")
	if len(componentes) == 3 {
		mes, errM := strconv.Atoi(componentes[0])
		dia, errD := strconv.Atoi(componentes[1])
		anio, errA := strconv.Atoi(componentes[2])

		if errM == nil && errD == nil && errA == nil &&
			mes >= 1 && mes <= 12 && dia >= 1 && dia <= 31 && anio > 1900 {
			if parteHora == "" {
				// Solo fecha: medianoche de ese día
				return ValorFecha{Valor: time.Date(anio, time.Month(mes), dia, 0, 0, 0, 0, time.Local)}
			}

			horaNormalizada := strings.ToLower(parteHora)
			for _, layout := range layoutsHora {
				if t, err := time.Parse(layout, horaNormalizada); err == nil {
					return ValorFecha{Valor: time.Date(
						anio, time.Month(mes), dia,
						t.Hour(), t.Minute(), t.Second(), 0, time.Local,
					)}
				}
			}
		}
	}

	// Intento genérico sobre la cadena original completa
	for _, layout := range layoutsRespaldo {
		if t, err := time.Parse(layout, s); err == nil {
			return ValorFecha{Valor: t}
		}
	}

	return ValorFecha{Valor: ahora, PorDefecto: true, Motivo: "formato no reconocido"}
}
