package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/voltatec/field-asset-api/internal/audit"
	"github.com/voltatec/field-asset-api/internal/httperr"
	"github.com/voltatec/field-asset-api/internal/models"
)

type FerramentaEPIHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewFerramentaEPIHandler(db *gorm.DB, audit *audit.Dispatcher) *FerramentaEPIHandler {
	return &FerramentaEPIHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateFerramentaEPIRequest struct {
	Nome string `json:"nome"`
	Tipo string `json:"tipo"`
}

type UpdateFerramentaEPIRequest struct {
	Nome *string `json:"nome,omitempty"`
	Tipo *string `json:"tipo,omitempty"`
}

// --------- Handlers ---------

func (h *FerramentaEPIHandler) List(c *gin.Context) {
	var itens []models.FerramentaEPI
	if err := h.db.Find(&itens).Error; err != nil {
		httperr.Internal(c, "Erro ao listar ferramentas/EPIs")
		return
	}

	c.JSON(http.StatusOK, itens)
}

func (h *FerramentaEPIHandler) Create(c *gin.Context) {
	var req CreateFerramentaEPIRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Nome == "" || req.Tipo == "" {
		httperr.BadRequest(c, "Nome e tipo são obrigatórios")
		return
	}

	if !models.TipoValido(req.Tipo) {
		httperr.BadRequest(c, "Tipo deve ser Ferramenta ou EPI")
		return
	}

	item := models.FerramentaEPI{Nome: req.Nome, Tipo: req.Tipo}
	if err := h.db.Create(&item).Error; err != nil {
		httperr.Internal(c, "Erro ao criar ferramenta/EPI")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   currentUserID(c),
		Action:   "ferramenta_epi_created",
		Entity:   "ferramenta_epi",
		EntityID: &item.ID,
	})

	c.JSON(http.StatusCreated, item)
}

func (h *FerramentaEPIHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Ferramenta/EPI não encontrado")
		return
	}

	var item models.FerramentaEPI
	if err := h.db.First(&item, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Ferramenta/EPI não encontrado")
			return
		}
		httperr.Internal(c, "Erro ao buscar ferramenta/EPI")
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *FerramentaEPIHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Ferramenta/EPI não encontrado")
		return
	}

	var item models.FerramentaEPI
	if err := h.db.First(&item, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Ferramenta/EPI não encontrado")
			return
		}
		httperr.Internal(c, "Erro ao buscar ferramenta/EPI")
		return
	}

	var req UpdateFerramentaEPIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Requisição inválida")
		return
	}

	if req.Nome != nil && *req.Nome != "" {
		item.Nome = *req.Nome
	}
	// Tipo fora do vocabulário é ignorado, não é erro.
	if req.Tipo != nil && models.TipoValido(*req.Tipo) {
		item.Tipo = *req.Tipo
	}

	if err := h.db.Save(&item).Error; err != nil {
		httperr.Internal(c, "Erro ao atualizar ferramenta/EPI")
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *FerramentaEPIHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Ferramenta/EPI não encontrado")
		return
	}

	var item models.FerramentaEPI
	if err := h.db.First(&item, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Ferramenta/EPI não encontrado")
			return
		}
		httperr.Internal(c, "Erro ao buscar ferramenta/EPI")
		return
	}

	var dependentes int64
	h.db.Model(&models.AtribuicaoFerramentaEPI{}).
		Where("ferramenta_epi_id = ?", item.ID).
		Count(&dependentes)
	if dependentes > 0 {
		httperr.Conflict(c, "Não é possível excluir: existem atribuições vinculadas a esta ferramenta/EPI")
		return
	}

	if err := h.db.Delete(&item).Error; err != nil {
		httperr.Internal(c, "Erro ao excluir ferramenta/EPI")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   currentUserID(c),
		Action:   "ferramenta_epi_deleted",
		Entity:   "ferramenta_epi",
		EntityID: &item.ID,
	})

	c.Status(http.StatusNoContent)
}
