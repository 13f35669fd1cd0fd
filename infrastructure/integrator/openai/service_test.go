package openai

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/smdigital/pulso-social-api/infrastructure/integrator/openai/openaiclient"
	"github.com/smdigital/pulso-social-api/infrastructure/integrator/openai/openaiclient/mocks"
	"github.com/smdigital/pulso-social-api/internal/config"
	"github.com/smdigital/pulso-social-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCategorizarPublicacion(t *testing.T) {
	tests := []struct {
		name      string
		respuesta string
		errorAPI  error
		esperado  string
		conError  bool
	}{
		{
			name:      "categoría válida pasa tal cual",
			respuesta: domain.CategoriaSeguridad,
			esperado:  domain.CategoriaSeguridad,
		},
		{
			name:      "respuesta con espacios se recorta",
			respuesta: "  TRANSPARENCIA PÚBLICA \n",
			esperado:  domain.CategoriaTransparencia,
		},
		{
			name:      "n/a es una respuesta válida",
			respuesta: domain.CategoriaNA,
			esperado:  domain.CategoriaNA,
		},
		{
			name:      "categoría fuera del conjunto colapsa a n/a",
			respuesta: "EVENTOS CULTURALES",
			esperado:  domain.CategoriaNA,
		},
		{
			name:      "respuesta con explicación adicional colapsa a n/a",
			respuesta: "SEGURIDAD porque habla de policía",
			esperado:  domain.CategoriaNA,
		},
		{
			name:     "el error del cliente se propaga",
			errorAPI: errors.New("timeout"),
			conError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockClient(ctrl)

			client.EXPECT().
				CreateResponse(gomock.Any()).
				Return(tt.respuesta, tt.errorAPI)

			service := New(&config.Config{}, client)
			categoria, err := service.CategorizarPublicacion("Alcaldía de Cali", "texto de la publicación")

			if tt.conError {
				assert.Error(t, err)
				assert.Empty(t, categoria)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.esperado, categoria)
		})
	}
}

func TestCategorizarPublicacionArmaElPrompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().
		CreateResponse(gomock.Any()).
		DoAndReturn(func(params openaiclient.ResponseParams) (string, error) {
			assert.Equal(t, systemInstruction, params.System)
			assert.Contains(t, params.Prompt, "Alcaldía de Cali")
			assert.Contains(t, params.Prompt, "obras en la comuna 14")
			assert.True(t, strings.Contains(params.Prompt, "INVERTIR PARA CRECER"))
			return domain.CategoriaInvertir, nil
		})

	service := New(&config.Config{}, client)
	categoria, err := service.CategorizarPublicacion("Alcaldía de Cali", "obras en la comuna 14")

	assert.NoError(t, err)
	assert.Equal(t, domain.CategoriaInvertir, categoria)
}
