package infra

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimparCEP(t *testing.T) {
	assert.Equal(t, "29060670", LimparCEP("29060-670"))
	assert.Equal(t, "29060670", LimparCEP(" 29.060-670 "))
	assert.Equal(t, "", LimparCEP("abc"))
}

func TestConsultarCEPSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ws/29060670/json/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"cep":"29060-670","logradouro":"Rua das Palmeiras","bairro":"Santa Lúcia","localidade":"Vitória","uf":"ES"}`))
	}))
	defer srv.Close()

	client := NewCEPClient(srv.URL)
	endereco, err := client.Consultar(context.Background(), "29060-670")
	require.NoError(t, err)
	assert.Equal(t, "Vitória", endereco.Municipio)
	assert.Equal(t, "ES", endereco.Estado)
	assert.Equal(t, "Brasil", endereco.Pais)
}

// ViaCEP answers 200 with {"erro": true} when the CEP does not exist.
func TestConsultarCEPProviderMiss(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"erro": true}`))
	}))
	defer srv.Close()

	client := NewCEPClient(srv.URL)
	_, err := client.Consultar(context.Background(), "00000000")
	assert.ErrorIs(t, err, ErrCEPNaoEncontrado)
}

func TestConsultarCEPRejectsBadLength(t *testing.T) {
	client := NewCEPClient("http://viacep.invalid")
	for _, cep := range []string{"", "123", "123456789"} {
		_, err := client.Consultar(context.Background(), cep)
		assert.ErrorIs(t, err, ErrCEPNaoEncontrado, "cep %q", cep)
	}
}

// Legitimate misses keep the breaker closed: the provider answered, only
// the CEP was wrong.
func TestConsultarCEPMissDoesNotOpenCircuit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"erro": true}`))
	}))
	defer srv.Close()

	client := NewCEPClient(srv.URL)
	for i := 0; i < DefaultCBConfig().FailureThreshold+1; i++ {
		_, err := client.Consultar(context.Background(), "00000000")
		require.ErrorIs(t, err, ErrCEPNaoEncontrado)
	}
	assert.Equal(t, CBClosed, client.CircuitState())
}

// Repeated provider failures trip the breaker into fast-fail.
func TestConsultarCEPOpensCircuit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewCEPClient(srv.URL)
	for i := 0; i < DefaultCBConfig().FailureThreshold; i++ {
		_, err := client.Consultar(context.Background(), "29060670")
		require.Error(t, err)
	}
	assert.Equal(t, CBOpen, client.CircuitState())
}
