package openaiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"
)

type ResponseParams struct {
	System string
	Prompt string
}

type responseRequest struct {
	Model           string            `json:"model"`
	Input           []responseMessage `json:"input"`
	Temperature     float64           `json:"temperature"`
	MaxOutputTokens int               `json:"max_output_tokens"`
}

type responseMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseBody struct {
	Output []struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	} `json:"output"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CreateResponse invoca el endpoint /responses y devuelve el texto de la
// primera salida del modelo.
func (c *OpenAIClient) CreateResponse(params ResponseParams) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(c.config.OpenAI.BaseURL)
	if err != nil {
		return "", fmt.Errorf("error al analizar la URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/responses")

	body := responseRequest{
		Model: c.config.OpenAI.Model,
		Input: []responseMessage{
			{Role: "system", Content: params.System},
			{Role: "user", Content: params.Prompt},
		},
		Temperature:     0.2,
		MaxOutputTokens: c.config.OpenAI.MaxOutputTokens,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("error al serializar la petición: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("error al crear la petición: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.OpenAI.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error al ejecutar la petición: %w", err)
	}
	defer resp.Body.Close()

	var decoded responseBody
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("error al decodificar la respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if decoded.Error != nil {
			return "", fmt.Errorf("petición fallida con status %s: %s", resp.Status, decoded.Error.Message)
		}
		return "", fmt.Errorf("petición fallida con status: %s", resp.Status)
	}

	if len(decoded.Output) == 0 || len(decoded.Output[0].Content) == 0 {
		return "", fmt.Errorf("estructura de respuesta desconocida")
	}

	return decoded.Output[0].Content[0].Text, nil
}
