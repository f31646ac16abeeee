package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/voltatec/field-asset-api/internal/httperr"
	"github.com/voltatec/field-asset-api/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	var logs []models.AuditLog
	err := h.db.
		Order("id DESC").
		Limit(100).
		Find(&logs).Error
	if err != nil {
		httperr.Internal(c, "Erro ao listar logs de auditoria")
		return
	}

	c.JSON(http.StatusOK, logs)
}
