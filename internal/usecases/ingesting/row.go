package ingesting

import (
	"fmt"
	"strings"
	"time"

	"github.com/smdigital/pulso-social-api/internal/domain"
)

// Fila es una fila del CSV ya mapeada encabezado→celda
type Fila map[string]string

// ResultadoFila es el desenlace de procesar una fila: registros listos para
// persistir, un duplicado detectado, o un motivo de invalidez. Exactamente
// uno de los tres casos aplica.
type ResultadoFila struct {
	Registros        []*domain.Publicacion
	DuplicadoID      string
	Invalida         *domain.FilaInvalida
	CamposPorDefecto int // fechas/números que cayeron al valor por defecto
}

// IngestarFila procesa una fila parseada: extrae y valida los campos
// requeridos, expande la celda de categorías en N registros repartiendo las
// métricas por división entera, y detecta duplicados contra el snapshot de
// identificadores existentes (solo relevante sin overwrite).
//
// El reparto por división entera descarta el residuo: con métrica 10 y 3
// categorías cada rebanada recibe 3 y la suma es 9. Comportamiento heredado
// del sistema original, pendiente de confirmación de producto.
func IngestarFila(
	fila Fila,
	cols MapeoColumnas,
	numero int,
	overwrite bool,
	existentes map[string]struct{},
	ahora time.Time,
) ResultadoFila {
	id := strings.TrimSpace(fila[cols.ID])
	if id == "" {
		return filaInvalida(numero, "identificador vacío", fila)
	}

	if !overwrite {
		if _, existe := existentes[id]; existe {
			return ResultadoFila{DuplicadoID: id}
		}
	}

	fecha := ParseFecha(fila[cols.Fecha], ahora)

	red := strings.TrimSpace(fila[cols.Red])
	if red == "" {
		return filaInvalida(numero, "red vacía", fila)
	}

	perfil := strings.TrimSpace(fila[cols.Perfil])
	if perfil == "" {
		return filaInvalida(numero, "perfil vacío", fila)
	}

	categorias := NormalizarCategorias(fila[cols.Categoria])

	impresiones := ParseNumero(fila[cols.Impresiones])
	alcance := ParseNumero(fila[cols.Alcance])
	meGusta := ParseNumero(fila[cols.MeGusta])

	porDefecto := 0
	for _, v := range []bool{fecha.PorDefecto, impresiones.PorDefecto, alcance.PorDefecto, meGusta.PorDefecto} {
		if v {
			porDefecto++
		}
	}

	n := len(categorias)
	impresionesPorCategoria := impresiones.Valor / n
	alcancePorCategoria := alcance.Valor / n
	meGustaPorCategoria := meGusta.Valor / n

	tipo := domain.TipoPublicacionDefault
	if cols.Tipo != "" {
		if t := strings.TrimSpace(fila[cols.Tipo]); t != "" {
			tipo = t
		}
	}

	var publicar *string
	if cols.Publicar != "" {
		if contenido := strings.TrimSpace(fila[cols.Publicar]); contenido != "" {
			publicar = &contenido
		}
	}

	registros := make([]*domain.Publicacion, 0, n)
	for i, categoria := range categorias {
		registroID := id
		if n > 1 {
			registroID = fmt.Sprintf("%s_%d", id, i)
		}

		registros = append(registros, &domain.Publicacion{
			ID:              registroID,
			Fecha:           fecha.Valor,
			Red:             red,
			Perfil:          perfil,
			Categoria:       categoria,
			TipoPublicacion: tipo,
			Publicar:        publicar,
			Impresiones:     impresionesPorCategoria,
			Alcance:         alcancePorCategoria,
			MeGusta:         meGustaPorCategoria,
		})
	}

	return ResultadoFila{Registros: registros, CamposPorDefecto: porDefecto}
}

func filaInvalida(numero int, motivo string, fila Fila) ResultadoFila {
	// Copia defensiva de la fila cruda para el reporte
	datos := make(map[string]string, len(fila))
	for k, v := range fila {
		datos[k] = v
	}

	return ResultadoFila{Invalida: &domain.FilaInvalida{
		Numero: numero,
		Motivo: motivo,
		Datos:  datos,
	}}
}
