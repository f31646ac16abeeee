package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/voltatec/field-asset-api/internal/audit"
	"github.com/voltatec/field-asset-api/internal/dto"
	"github.com/voltatec/field-asset-api/internal/httperr"
	"github.com/voltatec/field-asset-api/internal/models"
)

type ServicoExternoHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServicoExternoHandler(db *gorm.DB, audit *audit.Dispatcher) *ServicoExternoHandler {
	return &ServicoExternoHandler{db: db, audit: audit}
}

// --------- Requests ---------

type MaterialRequest struct {
	Nome              string `json:"nome"`
	Tipo              string `json:"tipo"`
	Status            string `json:"status"`
	ObservacaoTecnica string `json:"observacao_tecnica"`
	FotoPath          string `json:"foto_path"`
}

type ChecklistCintoRequest struct {
	CintoSegurancaStatus *string `json:"cinto_seguranca_status,omitempty"`
	TalabarteStatus      *string `json:"talabarte_status,omitempty"`
	MosquetaoStatus      *string `json:"mosquetao_status,omitempty"`
	Observacoes          *string `json:"observacoes,omitempty"`
}

type ChecklistEscadaRequest struct {
	EscadaSimplesStatus    *string `json:"escada_simples_status,omitempty"`
	EscadaExtensivelStatus *string `json:"escada_extensivel_status,omitempty"`
	DegrausStatus          *string `json:"degraus_status,omitempty"`
	TravasStatus           *string `json:"travas_status,omitempty"`
	Observacoes            *string `json:"observacoes,omitempty"`
}

type CreateServicoExternoRequest struct {
	VeiculoID       uint                    `json:"veiculo_id"`
	Destino         string                  `json:"destino"`
	EmpresaAtendida string                  `json:"empresa_atendida"`
	Materiais       []MaterialRequest       `json:"materiais"`
	ChecklistCinto  *ChecklistCintoRequest  `json:"checklist_cinto"`
	ChecklistEscada *ChecklistEscadaRequest `json:"checklist_escada"`
}

// UpdateServicoExternoRequest usa ponteiros para distinguir "chave ausente"
// de "chave presente": materiais presentes substituem a coleção inteira,
// checklists presentes são mesclados ou criados.
type UpdateServicoExternoRequest struct {
	VeiculoID       *uint                   `json:"veiculo_id,omitempty"`
	Destino         *string                 `json:"destino,omitempty"`
	EmpresaAtendida *string                 `json:"empresa_atendida,omitempty"`
	Materiais       *[]MaterialRequest      `json:"materiais,omitempty"`
	ChecklistCinto  *ChecklistCintoRequest  `json:"checklist_cinto,omitempty"`
	ChecklistEscada *ChecklistEscadaRequest `json:"checklist_escada,omitempty"`
}

func statusOrDefault(s string) string {
	if s == "" {
		return models.StatusBom
	}
	return s
}

func (r MaterialRequest) toModel(servicoID uint) models.MaterialServicoExterno {
	return models.MaterialServicoExterno{
		ServicoExternoID:  servicoID,
		Nome:              r.Nome,
		Tipo:              r.Tipo,
		Status:            statusOrDefault(r.Status),
		ObservacaoTecnica: r.ObservacaoTecnica,
		FotoPath:          r.FotoPath,
	}
}

// --------- Handlers ---------

func (h *ServicoExternoHandler) List(c *gin.Context) {
	var servicos []models.ServicoExterno
	err := h.db.
		Preload("Colaborador").
		Preload("Veiculo").
		Preload("Materiais").
		Preload("ChecklistCinto").
		Preload("ChecklistEscada").
		Find(&servicos).Error
	if err != nil {
		httperr.Internal(c, "Erro ao listar serviços externos")
		return
	}

	c.JSON(http.StatusOK, dto.FromServicosExternos(servicos))
}

func (h *ServicoExternoHandler) Create(c *gin.Context) {
	var req CreateServicoExternoRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.VeiculoID == 0 || req.Destino == "" || req.EmpresaAtendida == "" {
		httperr.BadRequest(c, "Veículo, destino e empresa atendida são obrigatórios")
		return
	}

	var veiculo models.Veiculo
	if err := h.db.First(&veiculo, req.VeiculoID).Error; err != nil {
		httperr.NotFound(c, "Veículo não encontrado")
		return
	}

	userID := currentUserID(c)
	if userID == nil {
		httperr.Unauthorized(c, "Autenticação necessária")
		return
	}

	servico := models.ServicoExterno{
		ColaboradorID:   *userID,
		VeiculoID:       req.VeiculoID,
		Destino:         req.Destino,
		EmpresaAtendida: req.EmpresaAtendida,
	}

	// Pai, materiais e checklists entram juntos ou nada entra.
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&servico).Error; err != nil {
			return err
		}

		for _, m := range req.Materiais {
			material := m.toModel(servico.ID)
			if err := tx.Create(&material).Error; err != nil {
				return err
			}
		}

		if req.ChecklistCinto != nil {
			cinto := newChecklistCinto(servico.ID, req.ChecklistCinto)
			if err := tx.Create(&cinto).Error; err != nil {
				return err
			}
		}

		if req.ChecklistEscada != nil {
			escada := newChecklistEscada(servico.ID, req.ChecklistEscada)
			if err := tx.Create(&escada).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		httperr.Internal(c, "Erro ao criar serviço externo")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "servico_externo_created",
		Entity:   "servico_externo",
		EntityID: &servico.ID,
	})

	full, err := h.load(servico.ID)
	if err != nil {
		httperr.Internal(c, "Erro ao buscar serviço externo")
		return
	}

	c.JSON(http.StatusCreated, dto.FromServicoExterno(full))
}

func (h *ServicoExternoHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Serviço externo não encontrado")
		return
	}

	servico, err := h.load(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Serviço externo não encontrado")
			return
		}
		httperr.Internal(c, "Erro ao buscar serviço externo")
		return
	}

	c.JSON(http.StatusOK, dto.FromServicoExterno(servico))
}

func (h *ServicoExternoHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Serviço externo não encontrado")
		return
	}

	var servico models.ServicoExterno
	if err := h.db.First(&servico, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Serviço externo não encontrado")
			return
		}
		httperr.Internal(c, "Erro ao buscar serviço externo")
		return
	}

	var req UpdateServicoExternoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Requisição inválida")
		return
	}

	if req.Destino != nil {
		servico.Destino = *req.Destino
	}
	if req.EmpresaAtendida != nil {
		servico.EmpresaAtendida = *req.EmpresaAtendida
	}
	if req.VeiculoID != nil {
		var veiculo models.Veiculo
		if err := h.db.First(&veiculo, *req.VeiculoID).Error; err != nil {
			httperr.NotFound(c, "Veículo não encontrado")
			return
		}
		servico.VeiculoID = *req.VeiculoID
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&servico).Error; err != nil {
			return err
		}

		// Chave materiais presente substitui a coleção inteira; lista
		// vazia zera os materiais.
		if req.Materiais != nil {
			err := tx.Where("servico_externo_id = ?", servico.ID).
				Delete(&models.MaterialServicoExterno{}).Error
			if err != nil {
				return err
			}
			for _, m := range *req.Materiais {
				material := m.toModel(servico.ID)
				if err := tx.Create(&material).Error; err != nil {
					return err
				}
			}
		}

		if req.ChecklistCinto != nil {
			if err := upsertChecklistCinto(tx, servico.ID, req.ChecklistCinto); err != nil {
				return err
			}
		}

		if req.ChecklistEscada != nil {
			if err := upsertChecklistEscada(tx, servico.ID, req.ChecklistEscada); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		httperr.Internal(c, "Erro ao atualizar serviço externo")
		return
	}

	full, err := h.load(servico.ID)
	if err != nil {
		httperr.Internal(c, "Erro ao buscar serviço externo")
		return
	}

	c.JSON(http.StatusOK, dto.FromServicoExterno(full))
}

func (h *ServicoExternoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Serviço externo não encontrado")
		return
	}

	var servico models.ServicoExterno
	if err := h.db.First(&servico, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Serviço externo não encontrado")
			return
		}
		httperr.Internal(c, "Erro ao buscar serviço externo")
		return
	}

	// Sub-registros não existem sem o pai: a remoção cascateia os três.
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("servico_externo_id = ?", servico.ID).
			Delete(&models.MaterialServicoExterno{}).Error; err != nil {
			return err
		}
		if err := tx.Where("servico_externo_id = ?", servico.ID).
			Delete(&models.ChecklistCinto{}).Error; err != nil {
			return err
		}
		if err := tx.Where("servico_externo_id = ?", servico.ID).
			Delete(&models.ChecklistEscada{}).Error; err != nil {
			return err
		}
		return tx.Delete(&servico).Error
	})
	if err != nil {
		httperr.Internal(c, "Erro ao excluir serviço externo")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   currentUserID(c),
		Action:   "servico_externo_deleted",
		Entity:   "servico_externo",
		EntityID: &servico.ID,
	})

	c.Status(http.StatusNoContent)
}

// --------- helpers ---------

func (h *ServicoExternoHandler) load(id uint) (*models.ServicoExterno, error) {
	var servico models.ServicoExterno
	err := h.db.
		Preload("Colaborador").
		Preload("Veiculo").
		Preload("Materiais").
		Preload("ChecklistCinto").
		Preload("ChecklistEscada").
		First(&servico, id).Error
	if err != nil {
		return nil, err
	}
	return &servico, nil
}

func newChecklistCinto(servicoID uint, req *ChecklistCintoRequest) models.ChecklistCinto {
	cinto := models.ChecklistCinto{
		ServicoExternoID:     servicoID,
		CintoSegurancaStatus: models.StatusBom,
		TalabarteStatus:      models.StatusBom,
		MosquetaoStatus:      models.StatusBom,
	}
	applyChecklistCinto(&cinto, req)
	return cinto
}

func applyChecklistCinto(cinto *models.ChecklistCinto, req *ChecklistCintoRequest) {
	if req.CintoSegurancaStatus != nil {
		cinto.CintoSegurancaStatus = *req.CintoSegurancaStatus
	}
	if req.TalabarteStatus != nil {
		cinto.TalabarteStatus = *req.TalabarteStatus
	}
	if req.MosquetaoStatus != nil {
		cinto.MosquetaoStatus = *req.MosquetaoStatus
	}
	if req.Observacoes != nil {
		cinto.Observacoes = *req.Observacoes
	}
}

func upsertChecklistCinto(tx *gorm.DB, servicoID uint, req *ChecklistCintoRequest) error {
	var cinto models.ChecklistCinto
	err := tx.Where("servico_externo_id = ?", servicoID).First(&cinto).Error
	if err == gorm.ErrRecordNotFound {
		cinto = newChecklistCinto(servicoID, req)
		return tx.Create(&cinto).Error
	}
	if err != nil {
		return err
	}

	applyChecklistCinto(&cinto, req)
	return tx.Save(&cinto).Error
}

func newChecklistEscada(servicoID uint, req *ChecklistEscadaRequest) models.ChecklistEscada {
	escada := models.ChecklistEscada{
		ServicoExternoID:       servicoID,
		EscadaSimplesStatus:    models.StatusBom,
		EscadaExtensivelStatus: models.StatusBom,
		DegrausStatus:          models.StatusBom,
		TravasStatus:           models.StatusBom,
	}
	applyChecklistEscada(&escada, req)
	return escada
}

func applyChecklistEscada(escada *models.ChecklistEscada, req *ChecklistEscadaRequest) {
	if req.EscadaSimplesStatus != nil {
		escada.EscadaSimplesStatus = *req.EscadaSimplesStatus
	}
	if req.EscadaExtensivelStatus != nil {
		escada.EscadaExtensivelStatus = *req.EscadaExtensivelStatus
	}
	if req.DegrausStatus != nil {
		escada.DegrausStatus = *req.DegrausStatus
	}
	if req.TravasStatus != nil {
		escada.TravasStatus = *req.TravasStatus
	}
	if req.Observacoes != nil {
		escada.Observacoes = *req.Observacoes
	}
}

func upsertChecklistEscada(tx *gorm.DB, servicoID uint, req *ChecklistEscadaRequest) error {
	var escada models.ChecklistEscada
	err := tx.Where("servico_externo_id = ?", servicoID).First(&escada).Error
	if err == gorm.ErrRecordNotFound {
		escada = newChecklistEscada(servicoID, req)
		return tx.Create(&escada).Error
	}
	if err != nil {
		return err
	}

	applyChecklistEscada(&escada, req)
	return tx.Save(&escada).Error
}
