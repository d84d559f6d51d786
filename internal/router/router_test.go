package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luizeletrico1/sistema-otica-fim/internal/config"
	"github.com/luizeletrico1/sistema-otica-fim/internal/repository"
	"github.com/luizeletrico1/sistema-otica-fim/internal/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, repository.NewUsuarioRepository(st).EnsureAdmin(context.Background()))

	cfg := &config.Config{
		Env:                    "test",
		FotosDir:               t.TempDir(),
		PDFStoragePath:         t.TempDir(),
		SessionSecret:          "segredo-de-teste",
		SessionExpirationHours: 1,
		ViaCEPURL:              "http://viacep.invalid",
		GeocoderURL:            "http://geocode.invalid",
		LojaNome:               "FÁBRICA DE ÓCULOS JR VITÓRIA",
		LojaCidade:             "Vitória - ES",
		LojaTelefone:           "27 99999-0000",
	}
	return New(cfg, st, nil)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, usuario, senha string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/v1/auth/login", "", gin.H{"usuario": usuario, "senha": senha})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestLoginAndProtectedRoutes(t *testing.T) {
	r := newTestRouter(t)

	// No token → 401.
	w := doJSON(t, r, http.MethodGet, "/v1/clientes", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Wrong password → 401.
	w = doJSON(t, r, http.MethodPost, "/v1/auth/login", "", gin.H{"usuario": "admin", "senha": "errada"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := login(t, r, "admin", "123")
	w = doJSON(t, r, http.MethodGet, "/v1/clientes", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminOnlySurface(t *testing.T) {
	r := newTestRouter(t)
	admin := login(t, r, "admin", "123")

	// Admin creates a seller account.
	w := doJSON(t, r, http.MethodPost, "/v1/usuarios", admin, gin.H{
		"usuario": "joana", "senha": "abc", "nome": "Joana", "perfil": "vendedor",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// The seller cannot touch the admin surface.
	vendedor := login(t, r, "joana", "abc")
	w = doJSON(t, r, http.MethodGet, "/v1/usuarios", vendedor, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = doJSON(t, r, http.MethodGet, "/v1/backup/clientes", vendedor, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Deleting the admin login is always refused.
	w = doJSON(t, r, http.MethodDelete, "/v1/usuarios/admin", admin, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutFlow(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "admin", "123")

	// Register stock.
	w := doJSON(t, r, http.MethodPost, "/v1/produtos", token, gin.H{
		"nome": "Armação Classic", "codigo": "ARM1", "tipo": "Armação",
		"quantidade": 5, "preco": 100,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var produto struct {
		ID int `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &produto))
	assert.Equal(t, 1000, produto.ID)

	// Register a customer.
	w = doJSON(t, r, http.MethodPost, "/v1/clientes", token, gin.H{
		"nome":    "Ana Paula",
		"contato": gin.H{"whatsapp": "27999990000"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var cliente struct {
		ID int `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cliente))

	// Quote first: stock must not move.
	w = doJSON(t, r, http.MethodPost, "/v1/orcamentos", token, gin.H{
		"cliente_id": cliente.ID, "codigos": []string{"ARM1"},
		"forma_pagamento": "PIX",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Then the sale: one unit off.
	w = doJSON(t, r, http.MethodPost, "/v1/vendas", token, gin.H{
		"cliente_id": cliente.ID, "codigos": []string{"ARM1"},
		"forma_pagamento": "CARTÃO DE CRÉDITO", "parcelas": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var venda struct {
		Total        json.Number `json:"total"`
		ValorParcela json.Number `json:"valor_parcela"`
		Documento    string      `json:"documento"`
	}
	dec := json.NewDecoder(bytes.NewReader(w.Body.Bytes()))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&venda))
	assert.Equal(t, "100", venda.Total.String())
	assert.Equal(t, "50", venda.ValorParcela.String())
	assert.Contains(t, venda.Documento, "FÁBRICA DE ÓCULOS JR VITÓRIA")

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/v1/produtos/%d", produto.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var atual struct {
		Quantidade int `json:"quantidade"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &atual))
	assert.Equal(t, 4, atual.Quantidade)
}

func TestBackupIsRawPassthrough(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "admin", "123")

	w := doJSON(t, r, http.MethodGet, "/v1/backup/usuarios", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "usuarios.json")
	assert.True(t, json.Valid(w.Body.Bytes()))

	w = doJSON(t, r, http.MethodGet, "/v1/backup/segredos", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthEndpointIsPublic(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "disabled", resp["redis"])
}
