package openaiclient

import (
	"net/http"
	"time"

	"github.com/smdigital/pulso-social-api/internal/config"
)

type Client interface {
	CreateResponse(params ResponseParams) (string, error)
}

type OpenAIClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &OpenAIClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
