package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luizeletrico1/sistema-otica-fim/internal/apierror"
	"github.com/luizeletrico1/sistema-otica-fim/internal/dto"
	"github.com/luizeletrico1/sistema-otica-fim/internal/middleware"
	"github.com/luizeletrico1/sistema-otica-fim/internal/service"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login authenticates the user and returns the session token. The same
// token is set as a cookie for browser clients.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		return
	}
	c.SetCookie(middleware.SessaoCookie, resp.Token, resp.ExpiresIn, "/", "", false, true)
	c.JSON(http.StatusOK, resp)
}

// Me returns the identity behind the current session.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetSessao(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Autenticação necessária"))
		return
	}
	c.JSON(http.StatusOK, dto.UsuarioResponse{
		Usuario: claims.Usuario,
		Nome:    claims.Nome,
		Perfil:  claims.Perfil,
	})
}

// Logout clears the session cookie. The token itself just expires.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessaoCookie, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}
