package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luizeletrico1/sistema-otica-fim/internal/apierror"
	"github.com/luizeletrico1/sistema-otica-fim/internal/service"
)

type DashboardHandler struct {
	svc service.DashboardService
}

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) Resumo(c *gin.Context) {
	resumo, err := h.svc.Resumo(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao montar o painel"))
		return
	}
	c.JSON(http.StatusOK, resumo)
}
