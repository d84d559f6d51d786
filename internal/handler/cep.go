package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luizeletrico1/sistema-otica-fim/internal/apierror"
	"github.com/luizeletrico1/sistema-otica-fim/internal/infra"
)

// LookupHandler fronts the external address services: ViaCEP for postal
// code expansion and the geocoder for map pins. Both sit behind circuit
// breakers, so a hiccup upstream degrades to 503 instead of hanging.
type LookupHandler struct {
	cep      *infra.CEPClient
	geocoder *infra.GeocoderClient
}

func NewLookupHandler(cep *infra.CEPClient, geocoder *infra.GeocoderClient) *LookupHandler {
	return &LookupHandler{cep: cep, geocoder: geocoder}
}

func (h *LookupHandler) ConsultarCEP(c *gin.Context) {
	endereco, err := h.cep.Consultar(c.Request.Context(), c.Param("cep"))
	if err != nil {
		switch {
		case errors.Is(err, infra.ErrCEPNaoEncontrado):
			c.JSON(http.StatusNotFound, apierror.New("CEP não encontrado"))
		case errors.Is(err, infra.ErrCircuitOpen):
			c.JSON(http.StatusServiceUnavailable, apierror.New("Serviço de CEP temporariamente indisponível"))
		default:
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		}
		return
	}
	c.JSON(http.StatusOK, endereco)
}

func (h *LookupHandler) Geocodificar(c *gin.Context) {
	endereco := c.Query("endereco")
	if endereco == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Parâmetro 'endereco' obrigatório"))
		return
	}
	coords, err := h.geocoder.Geocodificar(c.Request.Context(), endereco)
	if err != nil {
		switch {
		case errors.Is(err, infra.ErrEnderecoNaoEncontrado):
			c.JSON(http.StatusNotFound, apierror.New("Endereço não localizado"))
		case errors.Is(err, infra.ErrCircuitOpen):
			c.JSON(http.StatusServiceUnavailable, apierror.New("Serviço de geocodificação temporariamente indisponível"))
		default:
			c.JSON(http.StatusBadGateway, apierror.New("Falha ao geocodificar endereço"))
		}
		return
	}
	c.JSON(http.StatusOK, coords)
}
