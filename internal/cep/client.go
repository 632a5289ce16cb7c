// Package cep resolves Brazilian postal codes (CEPs) to street-level
// addresses through the public ViaCEP API.
package cep

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	apperrors "homefinder-backend/internal/errors"
)

// Address is the free-text result of a CEP lookup. Names are not yet
// resolved to internal location identifiers.
type Address struct {
	CEP          string `json:"cep"`
	Street       string `json:"logradouro"`
	Complement   string `json:"complemento,omitempty"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	UF           string `json:"uf"`
}

// viaCEPResponse mirrors ViaCEP's wire format. A miss is reported with
// {"erro": true} and HTTP 200.
type viaCEPResponse struct {
	CEP          string `json:"cep"`
	Street       string `json:"logradouro"`
	Complement   string `json:"complemento"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	UF           string `json:"uf"`
	Erro         bool   `json:"erro"`
}

// Client looks up CEPs against a ViaCEP-compatible endpoint
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a CEP client. baseURL defaults to the public ViaCEP host.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://viacep.com.br"
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Normalize strips everything but digits from a CEP
func Normalize(code string) string {
	var b strings.Builder
	for _, r := range code {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Lookup resolves a CEP. It returns InvalidInputError when the normalized
// code is not 8 digits and NotFoundError when the provider reports no match.
func (c *Client) Lookup(ctx context.Context, code string) (*Address, error) {
	clean := Normalize(code)
	if len(clean) != 8 {
		return nil, apperrors.ErrInvalidCEP
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, clean)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.NewUpstreamError("viacep", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError("viacep", err)
	}
	defer resp.Body.Close()

	// ViaCEP answers 400 for syntactically bad codes it would not resolve.
	if resp.StatusCode == http.StatusBadRequest {
		return nil, apperrors.ErrInvalidCEP
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewUpstreamError("viacep", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, apperrors.NewUpstreamError("viacep", fmt.Errorf("decode response: %w", err))
	}

	if body.Erro {
		return nil, apperrors.ErrCEPNotFound
	}

	return &Address{
		CEP:          body.CEP,
		Street:       body.Street,
		Complement:   body.Complement,
		Neighborhood: body.Neighborhood,
		City:         body.City,
		UF:           body.UF,
	}, nil
}
