package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/luizeletrico1/sistema-otica-fim/internal/apierror"
)

const (
	// SessaoKey is the gin context key carrying the session claims.
	SessaoKey = "sessao"
	// SessaoCookie is the cookie name set at login for browser clients.
	SessaoCookie = "sessao"
)

// SessaoClaims is the per-request session object: the authenticated identity
// travels with the request instead of living in process-wide state, so
// concurrent sessions never interfere.
type SessaoClaims struct {
	Usuario string `json:"usuario"`
	Nome    string `json:"nome"`
	Perfil  string `json:"perfil"`
	jwt.RegisteredClaims
}

// SessionAuth validates the session token on every protected route. The token
// is accepted either as a Bearer header or as the sessao cookie.
func SessionAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ""
		if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
			tokenStr = strings.TrimPrefix(header, "Bearer ")
		} else if cookie, err := c.Cookie(SessaoCookie); err == nil {
			tokenStr = cookie
		}
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticação necessária"))
			return
		}

		claims := &SessaoClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Sessão inválida ou expirada"))
			return
		}

		c.Set(SessaoKey, claims)
		c.Next()
	}
}

// RequirePerfil rejects requests whose session profile is not allowed.
func RequirePerfil(perfis ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(perfis))
	for _, p := range perfis {
		allowed[p] = true
	}
	return func(c *gin.Context) {
		claims, ok := c.MustGet(SessaoKey).(*SessaoClaims)
		if !ok || !allowed[claims.Perfil] {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Acesso negado: área restrita"))
			return
		}
		c.Next()
	}
}

// GetSessao retrieves the typed session claims from the gin context.
func GetSessao(c *gin.Context) *SessaoClaims {
	claims, _ := c.MustGet(SessaoKey).(*SessaoClaims)
	return claims
}
