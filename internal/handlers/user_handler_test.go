package handlers_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltatec/field-asset-api/internal/models"
)

func TestUserCreate(t *testing.T) {
	r, _ := newTestServer(t)
	admin := loginAdmin(t, r)

	w := doJSON(r, http.MethodPost, "/users", `{"username":"fulano","password":"segredo1"}`, admin)
	require.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	decodeBody(t, w, &user)
	// permissão ausente entra como colaborador
	assert.Equal(t, models.PermissaoColaborador, user.Permissao)
	assert.NotContains(t, w.Body.String(), "password_hash")

	// a conta recém-criada consegue logar
	login(t, r, "fulano", "segredo1")

	t.Run("username duplicado", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/users", `{"username":"fulano","password":"x"}`, admin)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Já existe um usuário com este username", errorMessage(t, w))
	})

	t.Run("permissao desconhecida", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/users", `{"username":"beltrano","password":"x","permissao":"chefe"}`, admin)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Permissão deve ser admin ou colaborador", errorMessage(t, w))
	})
}

func TestUserUpdateTrocaSenhaEPermissao(t *testing.T) {
	r, db := newTestServer(t)
	admin := loginAdmin(t, r)

	user := createColaborador(t, db, "ciclano", "antiga1")

	w := doJSON(r, http.MethodPut, "/users/2", `{"password":"nova123","permissao":"admin"}`, admin)
	require.Equal(t, http.StatusOK, w.Code)

	var atualizado models.User
	require.NoError(t, db.First(&atualizado, user.ID).Error)
	assert.Equal(t, models.PermissaoAdmin, atualizado.Permissao)

	// a senha antiga deixa de valer
	body := `{"username":"ciclano","password":"antiga1"}`
	resp := doJSON(r, http.MethodPost, "/auth/login", body, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	login(t, r, "ciclano", "nova123")
}

func TestUserRotasSaoAdmin(t *testing.T) {
	r, db := newTestServer(t)
	createColaborador(t, db, "comum", "senha123")
	colaborador := login(t, r, "comum", "senha123")

	w := doJSON(r, http.MethodGet, "/users", "", colaborador)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodPost, "/users", `{"username":"novo","password":"x"}`, colaborador)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUserDeleteComServicos(t *testing.T) {
	r, _ := newTestServer(t)
	admin := loginAdmin(t, r)

	// o admin (id 1) vira dono de um serviço e não pode mais ser excluído
	w := doJSON(r, http.MethodPost, "/servicos-externos", `{"veiculo_id":1,"destino":"Galpão","empresa_atendida":"RGE"}`, admin)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodDelete, "/users/1", "", admin)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuditLogsRegistramAcoes(t *testing.T) {
	r, db := newTestServer(t)
	admin := loginAdmin(t, r)

	w := doJSON(r, http.MethodPost, "/eletricistas", `{"nome":"Auditor"}`, admin)
	require.Equal(t, http.StatusCreated, w.Code)

	// o despacho é assíncrono; espera o worker drenar a fila
	require.Eventually(t, func() bool {
		var count int64
		db.Model(&models.AuditLog{}).Where("action = ?", "eletricista_created").Count(&count)
		return count == 1
	}, 2*time.Second, 10*time.Millisecond)

	w = doJSON(r, http.MethodGet, "/audit-logs", "", admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "eletricista_created"))
}
