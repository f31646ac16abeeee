package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/voltatec/field-asset-api/internal/audit"
	"github.com/voltatec/field-asset-api/internal/httperr"
	"github.com/voltatec/field-asset-api/internal/models"
)

// UserHandler é a administração de contas de acesso (admin/colaborador),
// separada do cadastro de eletricistas, que não fazem login.
type UserHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewUserHandler(db *gorm.DB, audit *audit.Dispatcher) *UserHandler {
	return &UserHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateUserRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Permissao string `json:"permissao"`
}

type UpdateUserRequest struct {
	Username  *string `json:"username,omitempty"`
	Password  *string `json:"password,omitempty"`
	Permissao *string `json:"permissao,omitempty"`
}

func permissaoValida(p string) bool {
	return p == models.PermissaoAdmin || p == models.PermissaoColaborador
}

// --------- Handlers ---------

func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.Find(&users).Error; err != nil {
		httperr.Internal(c, "Erro ao listar usuários")
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		httperr.BadRequest(c, "Username e password são obrigatórios")
		return
	}

	if req.Permissao == "" {
		req.Permissao = models.PermissaoColaborador
	}
	if !permissaoValida(req.Permissao) {
		httperr.BadRequest(c, "Permissão deve ser admin ou colaborador")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("username = ?", req.Username).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "Já existe um usuário com este username")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "Erro ao criar usuário")
		return
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: string(hashed),
		Permissao:    req.Permissao,
	}
	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "Erro ao criar usuário")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   currentUserID(c),
		Action:   "user_created",
		Entity:   "user",
		EntityID: &user.ID,
	})

	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Usuário não encontrado")
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Usuário não encontrado")
			return
		}
		httperr.Internal(c, "Erro ao buscar usuário")
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Usuário não encontrado")
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Usuário não encontrado")
			return
		}
		httperr.Internal(c, "Erro ao buscar usuário")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Requisição inválida")
		return
	}

	if req.Username != nil && *req.Username != "" {
		var count int64
		h.db.Model(&models.User{}).
			Where("username = ? AND id <> ?", *req.Username, user.ID).
			Count(&count)
		if count > 0 {
			httperr.BadRequest(c, "Já existe um usuário com este username")
			return
		}
		user.Username = *req.Username
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "Erro ao atualizar usuário")
			return
		}
		user.PasswordHash = string(hashed)
	}
	if req.Permissao != nil {
		if !permissaoValida(*req.Permissao) {
			httperr.BadRequest(c, "Permissão deve ser admin ou colaborador")
			return
		}
		user.Permissao = *req.Permissao
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "Erro ao atualizar usuário")
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Usuário não encontrado")
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Usuário não encontrado")
			return
		}
		httperr.Internal(c, "Erro ao buscar usuário")
		return
	}

	var dependentes int64
	h.db.Model(&models.ServicoExterno{}).
		Where("colaborador_id = ?", user.ID).
		Count(&dependentes)
	if dependentes > 0 {
		httperr.Conflict(c, "Não é possível excluir: existem serviços externos vinculados a este usuário")
		return
	}

	if err := h.db.Delete(&user).Error; err != nil {
		httperr.Internal(c, "Erro ao excluir usuário")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   currentUserID(c),
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &user.ID,
	})

	c.Status(http.StatusNoContent)
}
