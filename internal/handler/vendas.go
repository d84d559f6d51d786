package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luizeletrico1/sistema-otica-fim/internal/apierror"
	"github.com/luizeletrico1/sistema-otica-fim/internal/dto"
	"github.com/luizeletrico1/sistema-otica-fim/internal/middleware"
	"github.com/luizeletrico1/sistema-otica-fim/internal/service"
)

type VendasHandler struct {
	svc service.VendaService
}

func NewVendasHandler(svc service.VendaService) *VendasHandler {
	return &VendasHandler{svc: svc}
}

// vendedorDaSessao picks the display name of whoever is behind the counter.
func vendedorDaSessao(c *gin.Context) string {
	if claims := middleware.GetSessao(c); claims != nil {
		return claims.Nome
	}
	return ""
}

// Registrar closes a sale: prices the cart, takes one unit of each item off
// stock, appends the customer history and renders the receipt.
func (h *VendasHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarVendaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarVenda(c.Request.Context(), vendedorDaSessao(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Simular prices a cart without registering anything.
func (h *VendasHandler) Simular(c *gin.Context) {
	var req dto.SimulacaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Simular(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Orcamento issues a quote valid for seven days. Stock is never touched.
func (h *VendasHandler) Orcamento(c *gin.Context) {
	var req dto.OrcamentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.GerarOrcamento(c.Request.Context(), vendedorDaSessao(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}
