package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luizeletrico1/sistema-otica-fim/internal/apierror"
	"github.com/luizeletrico1/sistema-otica-fim/internal/dto"
	"github.com/luizeletrico1/sistema-otica-fim/internal/repository"
	"github.com/luizeletrico1/sistema-otica-fim/internal/service"
)

type MarketingHandler struct {
	svc service.MarketingService
}

func NewMarketingHandler(svc service.MarketingService) *MarketingHandler {
	return &MarketingHandler{svc: svc}
}

// FiltrarClientes previews the campaign audience.
func (h *MarketingHandler) FiltrarClientes(c *gin.Context) {
	var filtro dto.FiltroClientesRequest
	if err := c.ShouldBindQuery(&filtro); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if err := validate.Struct(&filtro); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Filtro inválido"))
		return
	}
	clientes, err := h.svc.FiltrarClientes(c.Request.Context(), filtro)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, clientes)
}

// Disparar renders the selected template for every customer in the filter
// and returns the prepared messages with click-to-chat links.
func (h *MarketingHandler) Disparar(c *gin.Context) {
	var req dto.DisparoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	itens, err := h.svc.PrepararDisparo(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New("Template não encontrado"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, itens)
}

func (h *MarketingHandler) ListarTemplates(c *gin.Context) {
	templates, err := h.svc.ListarTemplates(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar templates"))
		return
	}
	c.JSON(http.StatusOK, templates)
}

func (h *MarketingHandler) CriarTemplate(c *gin.Context) {
	var req dto.TemplateRequest
	if !bindAndValidate(c, &req) {
		return
	}
	tpl, err := h.svc.CriarTemplate(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

func (h *MarketingHandler) AtualizarTemplate(c *gin.Context) {
	var req dto.TemplateRequest
	if !bindAndValidate(c, &req) {
		return
	}
	tpl, err := h.svc.AtualizarTemplate(c.Request.Context(), c.Param("titulo"), req)
	if err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New("Template não encontrado"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, tpl)
}

func (h *MarketingHandler) RemoverTemplate(c *gin.Context) {
	if err := h.svc.RemoverTemplate(c.Request.Context(), c.Param("titulo")); err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Template não encontrado"))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MarketingHandler) ConfigLoja(c *gin.Context) {
	cfg, err := h.svc.ConfigLoja(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao carregar configuração"))
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (h *MarketingHandler) SalvarConfigLoja(c *gin.Context) {
	var req dto.ConfigLojaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cfg, err := h.svc.SalvarConfigLoja(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, cfg)
}
