package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/voltatec/field-asset-api/internal/audit"
	"github.com/voltatec/field-asset-api/internal/httperr"
	"github.com/voltatec/field-asset-api/internal/models"
)

type VeiculoHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewVeiculoHandler(db *gorm.DB, audit *audit.Dispatcher) *VeiculoHandler {
	return &VeiculoHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateVeiculoRequest struct {
	Identificacao string `json:"identificacao"`
}

type UpdateVeiculoRequest struct {
	Identificacao *string `json:"identificacao,omitempty"`
}

// --------- Handlers ---------

func (h *VeiculoHandler) List(c *gin.Context) {
	var veiculos []models.Veiculo
	if err := h.db.Find(&veiculos).Error; err != nil {
		httperr.Internal(c, "Erro ao listar veículos")
		return
	}

	c.JSON(http.StatusOK, veiculos)
}

func (h *VeiculoHandler) Create(c *gin.Context) {
	var req CreateVeiculoRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Identificacao == "" {
		httperr.BadRequest(c, "Identificação é obrigatória")
		return
	}

	var count int64
	h.db.Model(&models.Veiculo{}).
		Where("identificacao = ?", req.Identificacao).
		Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "Já existe um veículo com esta identificação")
		return
	}

	veiculo := models.Veiculo{Identificacao: req.Identificacao}
	if err := h.db.Create(&veiculo).Error; err != nil {
		httperr.Internal(c, "Erro ao criar veículo")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   currentUserID(c),
		Action:   "veiculo_created",
		Entity:   "veiculo",
		EntityID: &veiculo.ID,
	})

	c.JSON(http.StatusCreated, veiculo)
}

func (h *VeiculoHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Veículo não encontrado")
		return
	}

	var veiculo models.Veiculo
	if err := h.db.First(&veiculo, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Veículo não encontrado")
			return
		}
		httperr.Internal(c, "Erro ao buscar veículo")
		return
	}

	c.JSON(http.StatusOK, veiculo)
}

func (h *VeiculoHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Veículo não encontrado")
		return
	}

	var veiculo models.Veiculo
	if err := h.db.First(&veiculo, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Veículo não encontrado")
			return
		}
		httperr.Internal(c, "Erro ao buscar veículo")
		return
	}

	var req UpdateVeiculoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Requisição inválida")
		return
	}

	if req.Identificacao != nil && *req.Identificacao != "" {
		// Unicidade global, exceto contra o próprio registro.
		var count int64
		h.db.Model(&models.Veiculo{}).
			Where("identificacao = ? AND id <> ?", *req.Identificacao, veiculo.ID).
			Count(&count)
		if count > 0 {
			httperr.BadRequest(c, "Já existe um veículo com esta identificação")
			return
		}
		veiculo.Identificacao = *req.Identificacao
	}

	if err := h.db.Save(&veiculo).Error; err != nil {
		httperr.Internal(c, "Erro ao atualizar veículo")
		return
	}

	c.JSON(http.StatusOK, veiculo)
}

func (h *VeiculoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Veículo não encontrado")
		return
	}

	var veiculo models.Veiculo
	if err := h.db.First(&veiculo, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Veículo não encontrado")
			return
		}
		httperr.Internal(c, "Erro ao buscar veículo")
		return
	}

	var dependentes int64
	h.db.Model(&models.ServicoExterno{}).
		Where("veiculo_id = ?", veiculo.ID).
		Count(&dependentes)
	if dependentes > 0 {
		httperr.Conflict(c, "Não é possível excluir: existem serviços externos vinculados a este veículo")
		return
	}

	if err := h.db.Delete(&veiculo).Error; err != nil {
		httperr.Internal(c, "Erro ao excluir veículo")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   currentUserID(c),
		Action:   "veiculo_deleted",
		Entity:   "veiculo",
		EntityID: &veiculo.ID,
	})

	c.Status(http.StatusNoContent)
}
