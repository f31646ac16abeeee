package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/voltatec/field-asset-api/internal/httperr"
	"github.com/voltatec/field-asset-api/internal/models"
	"github.com/voltatec/field-asset-api/internal/session"
)

type AuthHandler struct {
	db         *gorm.DB
	sessions   session.Store
	sessionTTL time.Duration
}

func NewAuthHandler(db *gorm.DB, sessions session.Store, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{db: db, sessions: sessions, sessionTTL: sessionTTL}
}

// --------- Requests ---------

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		httperr.BadRequest(c, "Username e password são obrigatórios")
		return
	}

	var user models.User
	if err := h.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "Credenciais inválidas")
			return
		}
		httperr.Internal(c, "Erro interno")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "Credenciais inválidas")
		return
	}

	token, err := h.sessions.Create(c.Request.Context(), session.Session{
		UserID:    user.ID,
		Username:  user.Username,
		Permissao: user.Permissao,
		ExpiresAt: time.Now().Add(h.sessionTTL),
	})
	if err != nil {
		httperr.Internal(c, "Erro interno")
		return
	}

	h.setSessionCookie(c, token, int(h.sessionTTL.Seconds()))

	c.JSON(http.StatusOK, gin.H{
		"message": "Login realizado com sucesso",
		"user":    user,
	})
}

// Logout destrói a sessão corrente. Sem sessão ativa continua sendo 200.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(session.CookieName); err == nil && token != "" {
		_ = h.sessions.Delete(c.Request.Context(), token)
	}

	h.setSessionCookie(c, "", -1)

	c.JSON(http.StatusOK, gin.H{"message": "Logout realizado com sucesso"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	token, err := c.Cookie(session.CookieName)
	if err != nil || token == "" {
		httperr.Unauthorized(c, "Usuário não autenticado")
		return
	}

	s, err := h.sessions.Get(c.Request.Context(), token)
	if err != nil {
		httperr.Unauthorized(c, "Usuário não autenticado")
		return
	}

	var user models.User
	if err := h.db.First(&user, s.UserID).Error; err != nil {
		// Sessão antiga apontando para usuário removido: derruba a sessão.
		_ = h.sessions.Delete(c.Request.Context(), token)
		h.setSessionCookie(c, "", -1)
		httperr.Unauthorized(c, "Usuário não encontrado")
		return
	}

	c.JSON(http.StatusOK, user)
}

// setSessionCookie grava (ou apaga, com maxAge negativo) o cookie de
// sessão. SameSite=None: o front-end vive em outra origem e o navegador
// precisa mandar o cookie em requisições cross-site com credenciais.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(session.CookieName, token, maxAge, "/", "", false, true)
}
