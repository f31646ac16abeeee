package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/voltatec/field-asset-api/internal/middleware"
)

// currentUserID devolve o id do usuário autenticado posto no contexto
// pelos guards, ou nil em rotas sem guard.
func currentUserID(c *gin.Context) *uint {
	v, ok := c.Get(middleware.ContextUserID)
	if !ok {
		return nil
	}
	id, ok := v.(uint)
	if !ok {
		return nil
	}
	return &id
}
