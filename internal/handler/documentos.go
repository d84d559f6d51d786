package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"regexp"

	"github.com/gin-gonic/gin"

	"github.com/luizeletrico1/sistema-otica-fim/internal/apierror"
)

// nomeDocumentoRe matches only the file names the PDF generator emits.
var nomeDocumentoRe = regexp.MustCompile(`^(recibo|orcamento)_\d+\.pdf$`)

// DocumentosHandler serves the generated receipt and quote PDFs.
type DocumentosHandler struct {
	storagePath string
}

func NewDocumentosHandler(storagePath string) *DocumentosHandler {
	return &DocumentosHandler{storagePath: storagePath}
}

func (h *DocumentosHandler) Baixar(c *gin.Context) {
	nome := c.Param("nome")
	if !nomeDocumentoRe.MatchString(nome) {
		c.JSON(http.StatusNotFound, apierror.New("Documento não encontrado"))
		return
	}
	path := filepath.Join(h.storagePath, nome)
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Documento não encontrado"))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+nome+`"`)
	c.File(path)
}
