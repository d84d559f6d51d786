package infra

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrEnderecoNaoEncontrado is the single failure mode of the geocoder: any
// timeout, bad response or empty candidate list degrades to "no map".
var ErrEnderecoNaoEncontrado = errors.New("endereço não encontrado no mapa")

// Coordenadas is a geographic point for the customer map.
type Coordenadas struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// GeocoderClient resolves free-form addresses through the ArcGIS world
// geocoding service, behind the same circuit breaker as the CEP lookup.
type GeocoderClient struct {
	baseURL    string
	httpClient *http.Client
	cb         *CircuitBreaker
}

func NewGeocoderClient(baseURL string) *GeocoderClient {
	return &GeocoderClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 5 * time.Second},
		cb:         NewCircuitBreaker(DefaultCBConfig()),
	}
}

// CircuitState exposes the breaker state for the health endpoint.
func (g *GeocoderClient) CircuitState() CBState { return g.cb.State() }

// Geocodificar converts an address into coordinates, or
// ErrEnderecoNaoEncontrado.
func (g *GeocoderClient) Geocodificar(ctx context.Context, endereco string) (*Coordenadas, error) {
	if strings.TrimSpace(endereco) == "" {
		return nil, ErrEnderecoNaoEncontrado
	}

	q := url.Values{}
	q.Set("f", "json")
	q.Set("singleLine", endereco)
	q.Set("maxLocations", "1")
	target := g.baseURL + "/arcgis/rest/services/World/GeocodeServer/findAddressCandidates?" + q.Encode()

	var coords *Coordenadas
	err := g.cb.Execute(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return err
		}
		resp, err := g.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return ErrEnderecoNaoEncontrado
		}

		var body struct {
			Candidates []struct {
				Location struct {
					X float64 `json:"x"`
					Y float64 `json:"y"`
				} `json:"location"`
			} `json:"candidates"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return err
		}
		if len(body.Candidates) == 0 {
			return ErrEnderecoNaoEncontrado
		}
		coords = &Coordenadas{
			Latitude:  body.Candidates[0].Location.Y,
			Longitude: body.Candidates[0].Location.X,
		}
		return nil
	})
	if err != nil {
		return nil, ErrEnderecoNaoEncontrado
	}
	return coords, nil
}
