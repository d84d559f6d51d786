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

type ClientesHandler struct {
	svc service.ClienteService
}

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

func (h *ClientesHandler) Listar(c *gin.Context) {
	clientes, err := h.svc.Listar(c.Request.Context(), c.Query("busca"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar clientes"))
		return
	}
	c.JSON(http.StatusOK, clientes)
}

func (h *ClientesHandler) Buscar(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	cliente, err := h.svc.Buscar(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Cliente não encontrado"))
		return
	}
	c.JSON(http.StatusOK, cliente)
}

func (h *ClientesHandler) Criar(c *gin.Context) {
	var req dto.CriarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cliente, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, cliente)
}

func (h *ClientesHandler) Atualizar(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.AtualizarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cliente, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New("Cliente não encontrado"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, cliente)
}

func (h *ClientesHandler) Remover(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.Remover(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Cliente não encontrado"))
		return
	}
	c.Status(http.StatusNoContent)
}

// EnviarFoto receives the customer photo as multipart form field "foto".
func (h *ClientesHandler) EnviarFoto(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("foto")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Campo 'foto' ausente"))
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Arquivo de foto inválido"))
		return
	}
	defer f.Close()

	nome, err := h.svc.SalvarFoto(c.Request.Context(), id, fileHeader.Filename, f)
	if err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New("Cliente não encontrado"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"foto": nome})
}

func (h *ClientesHandler) BaixarFoto(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	path, err := h.svc.FotoPath(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Foto não encontrada"))
		return
	}
	c.File(path)
}
