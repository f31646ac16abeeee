package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voltatec/field-asset-api/internal/models"
	"github.com/voltatec/field-asset-api/internal/session"
)

const (
	ContextUserID    = "userID"
	ContextUsername  = "username"
	ContextPermissao = "permissao"
)

// RequireAuth barra requisições sem sessão válida e guarda a identidade no
// contexto para os handlers.
func RequireAuth(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := sessionFromRequest(c, store)
		if s == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Autenticação necessária"})
			return
		}

		c.Set(ContextUserID, s.UserID)
		c.Set(ContextUsername, s.Username)
		c.Set(ContextPermissao, s.Permissao)

		c.Next()
	}
}

// RequireAdmin exige sessão válida com permissão de admin. Sem sessão é
// 401; sessão de colaborador é 403.
func RequireAdmin(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := sessionFromRequest(c, store)
		if s == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Autenticação necessária"})
			return
		}
		if s.Permissao != models.PermissaoAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Permissão de administrador necessária"})
			return
		}

		c.Set(ContextUserID, s.UserID)
		c.Set(ContextUsername, s.Username)
		c.Set(ContextPermissao, s.Permissao)

		c.Next()
	}
}

func sessionFromRequest(c *gin.Context, store session.Store) *session.Session {
	token, err := c.Cookie(session.CookieName)
	if err != nil || token == "" {
		return nil
	}

	s, err := store.Get(c.Request.Context(), token)
	if err != nil {
		return nil
	}
	return s
}
