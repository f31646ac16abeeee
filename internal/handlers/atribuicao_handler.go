package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/voltatec/field-asset-api/internal/dto"
	"github.com/voltatec/field-asset-api/internal/httperr"
	"github.com/voltatec/field-asset-api/internal/models"
	ucAtribuicao "github.com/voltatec/field-asset-api/internal/usecase/atribuicao"
)

type AtribuicaoHandler struct {
	db         *gorm.DB
	createUC   *ucAtribuicao.CreateAtribuicao
	devolverUC *ucAtribuicao.DevolverAtribuicao
}

func NewAtribuicaoHandler(
	db *gorm.DB,
	createUC *ucAtribuicao.CreateAtribuicao,
	devolverUC *ucAtribuicao.DevolverAtribuicao,
) *AtribuicaoHandler {
	return &AtribuicaoHandler{
		db:         db,
		createUC:   createUC,
		devolverUC: devolverUC,
	}
}

// --------- Requests ---------

type CreateAtribuicaoRequest struct {
	EletricistaID   uint   `json:"eletricista_id"`
	FerramentaEPIID uint   `json:"ferramenta_epi_id"`
	Observacao      string `json:"observacao"`
}

type DevolverAtribuicaoRequest struct {
	Observacao *string `json:"observacao,omitempty"`
}

// --------- Handlers ---------

func (h *AtribuicaoHandler) List(c *gin.Context) {
	var atribuicoes []models.AtribuicaoFerramentaEPI
	err := h.db.
		Preload("Eletricista").
		Preload("FerramentaEPI").
		Find(&atribuicoes).Error
	if err != nil {
		httperr.Internal(c, "Erro ao listar atribuições")
		return
	}

	c.JSON(http.StatusOK, dto.FromAtribuicoes(atribuicoes))
}

func (h *AtribuicaoHandler) Create(c *gin.Context) {
	var req CreateAtribuicaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Eletricista e ferramenta/EPI são obrigatórios")
		return
	}

	userID := currentUserID(c)
	in := ucAtribuicao.CreateAtribuicaoInput{
		EletricistaID:   req.EletricistaID,
		FerramentaEPIID: req.FerramentaEPIID,
		Observacao:      req.Observacao,
	}
	if userID != nil {
		in.UserID = *userID
	}

	a, err := h.createUC.Execute(c.Request.Context(), in)
	if err != nil {
		h.writeAtribuicaoError(c, err)
		return
	}

	view := dto.FromAtribuicao(a)
	c.JSON(http.StatusCreated, view)
}

func (h *AtribuicaoHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Atribuição não encontrada")
		return
	}

	var a models.AtribuicaoFerramentaEPI
	err := h.db.
		Preload("Eletricista").
		Preload("FerramentaEPI").
		First(&a, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Atribuição não encontrada")
			return
		}
		httperr.Internal(c, "Erro ao buscar atribuição")
		return
	}

	c.JSON(http.StatusOK, dto.FromAtribuicao(&a))
}

func (h *AtribuicaoHandler) Devolver(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Atribuição não encontrada")
		return
	}

	// Corpo é opcional: devolver sem observação é o caso comum.
	var req DevolverAtribuicaoRequest
	if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
		httperr.BadRequest(c, "Requisição inválida")
		return
	}

	userID := currentUserID(c)
	in := ucAtribuicao.DevolverAtribuicaoInput{
		AtribuicaoID: id,
		Observacao:   req.Observacao,
	}
	if userID != nil {
		in.UserID = *userID
	}

	a, err := h.devolverUC.Execute(c.Request.Context(), in)
	if err != nil {
		h.writeAtribuicaoError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromAtribuicao(a))
}

func (h *AtribuicaoHandler) writeAtribuicaoError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "missing_fields"):
		httperr.BadRequest(c, "Eletricista e ferramenta/EPI são obrigatórios")
	case httperr.IsBusiness(err, "eletricista_not_found"):
		httperr.NotFound(c, "Eletricista não encontrado")
	case httperr.IsBusiness(err, "item_not_found"):
		httperr.NotFound(c, "Ferramenta/EPI não encontrado")
	case httperr.IsBusiness(err, "item_already_assigned"):
		httperr.BadRequest(c, "Esta ferramenta/EPI já está atribuída a outro eletricista")
	case httperr.IsBusiness(err, "atribuicao_not_found"):
		httperr.NotFound(c, "Atribuição não encontrada")
	case httperr.IsBusiness(err, "already_returned"):
		httperr.BadRequest(c, "Esta atribuição já foi devolvida")
	default:
		httperr.Internal(c, "Erro interno")
	}
}
