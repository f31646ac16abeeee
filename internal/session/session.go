package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indica token ausente, expirado ou já destruído.
var ErrNotFound = errors.New("session not found")

// CookieName é o nome do cookie que carrega o token opaco de sessão.
const CookieName = "sessao_token"

// Session é o estado mantido no servidor entre login e logout.
type Session struct {
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	Permissao string    `json:"permissao"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store abstrai o backend de sessões para que testes usem memória e
// produção possa usar Redis.
type Store interface {
	// Create grava a sessão e devolve o token opaco gerado.
	Create(ctx context.Context, s Session) (string, error)

	// Get devolve a sessão viva associada ao token, ou ErrNotFound.
	Get(ctx context.Context, token string) (*Session, error)

	// Delete destrói a sessão. Tokens desconhecidos não são erro.
	Delete(ctx context.Context, token string) error
}
