package infra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrCEPNaoEncontrado covers every lookup miss: bad length, provider error
// body, network failure. Callers leave the address fields blank and move on.
// An open breaker surfaces as ErrCircuitOpen instead so callers can report
// the outage.
var ErrCEPNaoEncontrado = errors.New("CEP não encontrado")

// EnderecoCEP holds the address fragment returned by the postal lookup.
type EnderecoCEP struct {
	CEP        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Municipio  string `json:"localidade"`
	Estado     string `json:"uf"`
	Pais       string `json:"pais"` // ViaCEP only covers Brazil
}

// CEPClient queries the ViaCEP web service behind a circuit breaker, so a
// flapping provider fast-fails instead of stalling form submissions.
type CEPClient struct {
	baseURL    string
	httpClient *http.Client
	cb         *CircuitBreaker
}

func NewCEPClient(baseURL string) *CEPClient {
	return &CEPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 5 * time.Second},
		cb:         NewCircuitBreaker(DefaultCBConfig()),
	}
}

// CircuitState exposes the breaker state for the health endpoint.
func (c *CEPClient) CircuitState() CBState { return c.cb.State() }

// LimparCEP strips formatting and returns the bare digits. A valid CEP has
// exactly 8 of them.
func LimparCEP(cep string) string {
	var b strings.Builder
	for _, r := range cep {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Consultar resolves a CEP into an address, or ErrCEPNaoEncontrado.
func (c *CEPClient) Consultar(ctx context.Context, cep string) (*EnderecoCEP, error) {
	limpo := LimparCEP(cep)
	if len(limpo) != 8 {
		return nil, ErrCEPNaoEncontrado
	}

	var endereco *EnderecoCEP
	var miss bool
	err := c.cb.Execute(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet,
			fmt.Sprintf("%s/ws/%s/json/", c.baseURL, limpo), nil)
		if err != nil {
			return err
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("viacep: status %d", resp.StatusCode)
		}

		// ViaCEP signals a miss with {"erro": true} and HTTP 200. The
		// provider answered fine, so the miss must not count against the
		// breaker.
		var body struct {
			EnderecoCEP
			Erro bool `json:"erro"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return fmt.Errorf("viacep: decode: %w", err)
		}
		if body.Erro {
			miss = true
			return nil
		}
		body.EnderecoCEP.Pais = "Brasil"
		endereco = &body.EnderecoCEP
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrCircuitOpen) {
			return nil, err
		}
		return nil, ErrCEPNaoEncontrado
	}
	if miss {
		return nil, ErrCEPNaoEncontrado
	}
	return endereco, nil
}
