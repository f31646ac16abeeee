package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/voltatec/field-asset-api/internal/audit"
	"github.com/voltatec/field-asset-api/internal/httperr"
	"github.com/voltatec/field-asset-api/internal/models"
)

type EletricistaHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewEletricistaHandler(db *gorm.DB, audit *audit.Dispatcher) *EletricistaHandler {
	return &EletricistaHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateEletricistaRequest struct {
	Nome string `json:"nome"`
}

type UpdateEletricistaRequest struct {
	Nome *string `json:"nome,omitempty"`
}

// --------- Handlers ---------

func (h *EletricistaHandler) List(c *gin.Context) {
	var eletricistas []models.Eletricista
	if err := h.db.Find(&eletricistas).Error; err != nil {
		httperr.Internal(c, "Erro ao listar eletricistas")
		return
	}

	c.JSON(http.StatusOK, eletricistas)
}

func (h *EletricistaHandler) Create(c *gin.Context) {
	var req CreateEletricistaRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Nome == "" {
		httperr.BadRequest(c, "Nome é obrigatório")
		return
	}

	eletricista := models.Eletricista{Nome: req.Nome}
	if err := h.db.Create(&eletricista).Error; err != nil {
		httperr.Internal(c, "Erro ao criar eletricista")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   currentUserID(c),
		Action:   "eletricista_created",
		Entity:   "eletricista",
		EntityID: &eletricista.ID,
	})

	c.JSON(http.StatusCreated, eletricista)
}

func (h *EletricistaHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Eletricista não encontrado")
		return
	}

	var eletricista models.Eletricista
	if err := h.db.First(&eletricista, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Eletricista não encontrado")
			return
		}
		httperr.Internal(c, "Erro ao buscar eletricista")
		return
	}

	c.JSON(http.StatusOK, eletricista)
}

func (h *EletricistaHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Eletricista não encontrado")
		return
	}

	var eletricista models.Eletricista
	if err := h.db.First(&eletricista, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Eletricista não encontrado")
			return
		}
		httperr.Internal(c, "Erro ao buscar eletricista")
		return
	}

	var req UpdateEletricistaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Requisição inválida")
		return
	}

	if req.Nome != nil && *req.Nome != "" {
		eletricista.Nome = *req.Nome
	}

	if err := h.db.Save(&eletricista).Error; err != nil {
		httperr.Internal(c, "Erro ao atualizar eletricista")
		return
	}

	c.JSON(http.StatusOK, eletricista)
}

func (h *EletricistaHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Eletricista não encontrado")
		return
	}

	var eletricista models.Eletricista
	if err := h.db.First(&eletricista, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Eletricista não encontrado")
			return
		}
		httperr.Internal(c, "Erro ao buscar eletricista")
		return
	}

	// Atribuições são histórico: eletricista com atribuições não sai.
	var dependentes int64
	h.db.Model(&models.AtribuicaoFerramentaEPI{}).
		Where("eletricista_id = ?", eletricista.ID).
		Count(&dependentes)
	if dependentes > 0 {
		httperr.Conflict(c, "Não é possível excluir: existem atribuições vinculadas a este eletricista")
		return
	}

	if err := h.db.Delete(&eletricista).Error; err != nil {
		httperr.Internal(c, "Erro ao excluir eletricista")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   currentUserID(c),
		Action:   "eletricista_deleted",
		Entity:   "eletricista",
		EntityID: &eletricista.ID,
	})

	c.Status(http.StatusNoContent)
}
