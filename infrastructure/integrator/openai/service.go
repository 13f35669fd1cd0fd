package openai

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/smdigital/pulso-social-api/infrastructure/integrator/openai/openaiclient"
	"github.com/smdigital/pulso-social-api/internal/config"
	"github.com/smdigital/pulso-social-api/internal/domain"
)

const systemInstruction = "Eres un analista especializado en comunicación gubernamental. Responde ÚNICAMENTE con el nombre exacto de la categoría (SEGURIDAD, TRANSPARENCIA PÚBLICA, INVERTIR PARA CRECER, o N/A), sin explicaciones adicionales."

// Categorías que el clasificador puede devolver
var categoriasValidas = map[string]struct{}{
	domain.CategoriaSeguridad:     {},
	domain.CategoriaTransparencia: {},
	domain.CategoriaInvertir:      {},
	domain.CategoriaNA:            {},
}

type Categorizer interface {
	CategorizarPublicacion(perfil, contenido string) (string, error)
}

type OpenAIService struct {
	cfg    *config.Config
	Client openaiclient.Client
}

func New(cfg *config.Config, client openaiclient.Client) Categorizer {
	return &OpenAIService{
		cfg:    cfg,
		Client: client,
	}
}

// CategorizarPublicacion clasifica el texto de una publicación en una de las
// categorías canónicas. Una respuesta fuera del conjunto válido colapsa a N/A.
func (s *OpenAIService) CategorizarPublicacion(perfil, contenido string) (string, error) {
	respuesta, err := s.Client.CreateResponse(openaiclient.ResponseParams{
		System: systemInstruction,
		Prompt: generarPrompt(perfil, contenido),
	})
	if err != nil {
		return "", err
	}

	categoria := strings.TrimSpace(respuesta)
	if _, valida := categoriasValidas[categoria]; !valida {
		logrus.WithField("categoria", categoria).Warn("Categoría no válida recibida del clasificador")
		return domain.CategoriaNA, nil
	}

	return categoria, nil
}

func generarPrompt(perfil, contenido string) string {
	return fmt.Sprintf(`Actúa como un analista especializado en comunicación gubernamental y análisis de contenido digital. Tienes experiencia en categorización temática de publicaciones institucionales y análisis cuantitativo-cualitativo de estrategias comunicacionales de entidades públicas.

Analiza de manera exhaustiva y sistemática la base de datos de publicaciones de los perfiles de Facebook e Instagram de la %s clasificando cada publicación según los tres temas específicos definidos:

1. SEGURIDAD
Publicaciones que aborden temas de seguridad ciudadana, prevención del delito, orden público, convivencia pacífica, programas de seguridad comunitaria, o cualquier iniciativa relacionada con la protección y bienestar de los ciudadanos en materia de seguridad.

2. TRANSPARENCIA PÚBLICA
Publicaciones que cumplan con la obligación gubernamental de rendir cuentas, incluyendo: informes de gestión, uso de recursos públicos, decisiones administrativas, procesos de contratación, resultados de programas, datos abiertos, audiencias públicas, o cualquier contenido que busque mostrar información clara, oportuna y comprensible sobre las acciones y recursos de la entidad. Como Operaciones de crédito y condiciones financieras, Plataforma "Pa' que Veás" (que es el monitor de inversión pública), Cronogramas y ejecución presupuestal de proyectos, Rendición de cuentas sobre avances de inversiones y Control social y herramientas de seguimiento ciudadano

3. INVERTIR PARA CRECER
Publicaciones relacionadas con la estrategia "Invertir para Crecer" del alcalde Alejandro Eder, que contempla una inversión total de $3,5 billones para 32 proyectos estructurales. Incluye cualquier mención de: recuperación de territorios abandonados; tecnología, bioeconomía, movilidad sostenible; transformación urbana, empleo, seguridad.
Proyectos con invertir para crecer:
Recuperación de malla vial (800+ kilómetros, incluyendo Avenida Ciudad de Cali)
Subsidios de vivienda (6.300 subsidios)
Mejoras en colegios públicos (20 instituciones educativas)
Fortalecimiento de Plataforma Tecnológica de la Alcaldía
Recuperación de bibliotecas y espacios culturales
Intervención de escenarios deportivos y recreativos (63 espacios)
Fortalecimiento Casa Matria Juanambú
Mantenimiento de CALIs (18 de 23 centros)
Programas de formación en bilingüismo y competencias laborales
Becas educativas para educación superior

PROCESO DE ANÁLISIS REQUERIDO
PASO 1: Filtrado y Clasificación
Clasifica cada publicación en los tres temas definidos
Una publicación puede pertenecer solo a uno de los temas definidos.
Identifica publicaciones que NO correspondan a ninguno de los tres temas y asigna la etiqueta N/A

Los temas deben llamarse tal cual como están "SEGURIDAD", "TRANSPARENCIA PÚBLICA", "INVERTIR PARA CRECER"

Responde ÚNICAMENTE con el nombre exacto de la categoría (SEGURIDAD, TRANSPARENCIA PÚBLICA, INVERTIR PARA CRECER, o N/A), sin explicaciones adicionales.

Contenido de la publicación a analizar:
%s`, perfil, contenido)
}
