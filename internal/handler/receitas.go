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

type ReceitasHandler struct {
	svc service.ReceitaService
}

func NewReceitasHandler(svc service.ReceitaService) *ReceitasHandler {
	return &ReceitasHandler{svc: svc}
}

// Adicionar appends a prescription to the customer record.
func (h *ReceitasHandler) Adicionar(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.CriarReceitaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cliente, err := h.svc.Adicionar(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New("Cliente não encontrado"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, cliente)
}

func (h *ReceitasHandler) ListarDoCliente(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	receitas, err := h.svc.ListarDoCliente(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Cliente não encontrado"))
		return
	}
	c.JSON(http.StatusOK, receitas)
}

// Vencidas lists customers overdue for a new eye exam.
func (h *ReceitasHandler) Vencidas(c *gin.Context) {
	vencidas, err := h.svc.ListarVencidas(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar receitas vencidas"))
		return
	}
	c.JSON(http.StatusOK, vencidas)
}
