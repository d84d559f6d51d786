package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luizeletrico1/sistema-otica-fim/internal/apierror"
	"github.com/luizeletrico1/sistema-otica-fim/internal/store"
)

// BackupHandler serves the raw collection files for download. The bytes on
// disk ARE the backup format, so this is a passthrough, never a re-encode.
type BackupHandler struct {
	st *store.Store
}

func NewBackupHandler(st *store.Store) *BackupHandler { return &BackupHandler{st: st} }

var colecoesBackup = map[string]bool{
	store.ColUsuarios:   true,
	store.ColClientes:   true,
	store.ColProdutos:   true,
	store.ColTemplates:  true,
	store.ColConfigLoja: true,
}

func (h *BackupHandler) Baixar(c *gin.Context) {
	colecao := c.Param("colecao")
	if !colecoesBackup[colecao] {
		c.JSON(http.StatusNotFound, apierror.New("Coleção desconhecida"))
		return
	}
	if !h.st.Exists(colecao) {
		c.JSON(http.StatusNotFound, apierror.New("Coleção ainda sem dados"))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.json"`, colecao))
	c.Header("Content-Type", "application/json")
	c.File(h.st.Path(colecao))
}
