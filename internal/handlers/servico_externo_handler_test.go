package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltatec/field-asset-api/internal/dto"
	"github.com/voltatec/field-asset-api/internal/models"
)

func TestServicoExternoCreateCompleto(t *testing.T) {
	r, _ := newTestServer(t)
	admin := loginAdmin(t, r)

	body := `{
		"veiculo_id": 1,
		"destino": "Subestação Norte",
		"empresa_atendida": "CPFL",
		"materiais": [
			{"nome": "Cabo 16mm", "tipo": "Material", "status": "B"},
			{"nome": "Isolador", "tipo": "Material"}
		],
		"checklist_cinto": {"talabarte_status": "R", "observacoes": "Talabarte com desgaste"},
		"checklist_escada": {}
	}`
	w := doJSON(r, http.MethodPost, "/servicos-externos", body, admin)
	require.Equal(t, http.StatusCreated, w.Code)

	var servico dto.ServicoExternoDTO
	decodeBody(t, w, &servico)
	assert.Equal(t, "Subestação Norte", servico.Destino)
	assert.Equal(t, "admin", servico.ColaboradorNome)
	assert.NotEmpty(t, servico.VeiculoIdentificacao)
	assert.False(t, servico.DataHoraSaida.IsZero())

	require.Len(t, servico.Materiais, 2)
	// status ausente vira "B"
	assert.Equal(t, models.StatusBom, servico.Materiais[1].Status)

	require.NotNil(t, servico.ChecklistCinto)
	assert.Equal(t, models.StatusBom, servico.ChecklistCinto.CintoSegurancaStatus)
	assert.Equal(t, "R", servico.ChecklistCinto.TalabarteStatus)

	// checklist enviado vazio é criado com todos os status padrão
	require.NotNil(t, servico.ChecklistEscada)
	assert.Equal(t, models.StatusBom, servico.ChecklistEscada.TravasStatus)
}

func TestServicoExternoCreateValidacao(t *testing.T) {
	r, _ := newTestServer(t)
	admin := loginAdmin(t, r)

	t.Run("campos obrigatorios", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/servicos-externos", `{"veiculo_id":1}`, admin)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Veículo, destino e empresa atendida são obrigatórios", errorMessage(t, w))
	})

	t.Run("veiculo inexistente", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/servicos-externos", `{"veiculo_id":999,"destino":"Usina","empresa_atendida":"Light"}`, admin)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Veículo não encontrado", errorMessage(t, w))
	})

	t.Run("sem checklists nem materiais", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/servicos-externos", `{"veiculo_id":1,"destino":"Usina","empresa_atendida":"Light"}`, admin)
		require.Equal(t, http.StatusCreated, w.Code)

		var servico dto.ServicoExternoDTO
		decodeBody(t, w, &servico)
		assert.Empty(t, servico.Materiais)
		assert.Nil(t, servico.ChecklistCinto)
		assert.Nil(t, servico.ChecklistEscada)
	})
}

func TestServicoExternoUpdate(t *testing.T) {
	r, _ := newTestServer(t)
	admin := loginAdmin(t, r)

	body := `{
		"veiculo_id": 1,
		"destino": "Linha rural km 12",
		"empresa_atendida": "Energisa",
		"materiais": [{"nome": "Chave de fenda", "tipo": "Ferramenta"}]
	}`
	w := doJSON(r, http.MethodPost, "/servicos-externos", body, admin)
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("chave materiais ausente preserva a colecao", func(t *testing.T) {
		w := doJSON(r, http.MethodPut, "/servicos-externos/1", `{"destino":"Linha rural km 18"}`, admin)
		require.Equal(t, http.StatusOK, w.Code)

		var servico dto.ServicoExternoDTO
		decodeBody(t, w, &servico)
		assert.Equal(t, "Linha rural km 18", servico.Destino)
		assert.Len(t, servico.Materiais, 1)
	})

	t.Run("materiais presentes substituem a colecao inteira", func(t *testing.T) {
		body := `{"materiais":[{"nome":"Trena","tipo":"Ferramenta"},{"nome":"Luva classe 2","tipo":"EPI","status":"R"}]}`
		w := doJSON(r, http.MethodPut, "/servicos-externos/1", body, admin)
		require.Equal(t, http.StatusOK, w.Code)

		var servico dto.ServicoExternoDTO
		decodeBody(t, w, &servico)
		require.Len(t, servico.Materiais, 2)
		assert.Equal(t, "Trena", servico.Materiais[0].Nome)
	})

	t.Run("lista vazia zera os materiais", func(t *testing.T) {
		w := doJSON(r, http.MethodPut, "/servicos-externos/1", `{"materiais":[]}`, admin)
		require.Equal(t, http.StatusOK, w.Code)

		var servico dto.ServicoExternoDTO
		decodeBody(t, w, &servico)
		assert.Empty(t, servico.Materiais)
	})

	t.Run("checklist ausente cria, presente mescla", func(t *testing.T) {
		w := doJSON(r, http.MethodPut, "/servicos-externos/1", `{"checklist_escada":{"degraus_status":"R"}}`, admin)
		require.Equal(t, http.StatusOK, w.Code)

		var servico dto.ServicoExternoDTO
		decodeBody(t, w, &servico)
		require.NotNil(t, servico.ChecklistEscada)
		assert.Equal(t, "R", servico.ChecklistEscada.DegrausStatus)
		assert.Equal(t, models.StatusBom, servico.ChecklistEscada.EscadaSimplesStatus)

		// segunda passada só toca o campo enviado
		w = doJSON(r, http.MethodPut, "/servicos-externos/1", `{"checklist_escada":{"travas_status":"R"}}`, admin)
		require.Equal(t, http.StatusOK, w.Code)
		decodeBody(t, w, &servico)
		assert.Equal(t, "R", servico.ChecklistEscada.DegrausStatus)
		assert.Equal(t, "R", servico.ChecklistEscada.TravasStatus)
	})

	t.Run("troca de veiculo valida a referencia", func(t *testing.T) {
		w := doJSON(r, http.MethodPut, "/servicos-externos/1", `{"veiculo_id":999}`, admin)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = doJSON(r, http.MethodPut, "/servicos-externos/1", `{"veiculo_id":2}`, admin)
		require.Equal(t, http.StatusOK, w.Code)
		var servico dto.ServicoExternoDTO
		decodeBody(t, w, &servico)
		assert.Equal(t, uint(2), servico.VeiculoID)
	})
}

func TestServicoExternoDeleteCascateia(t *testing.T) {
	r, db := newTestServer(t)
	admin := loginAdmin(t, r)

	body := `{
		"veiculo_id": 3,
		"destino": "Condomínio Vista Verde",
		"empresa_atendida": "Neoenergia",
		"materiais": [{"nome": "Alicate", "tipo": "Ferramenta"}],
		"checklist_cinto": {},
		"checklist_escada": {}
	}`
	w := doJSON(r, http.MethodPost, "/servicos-externos", body, admin)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodDelete, "/servicos-externos/1", "", admin)
	require.Equal(t, http.StatusNoContent, w.Code)

	var materiais, cintos, escadas int64
	db.Model(&models.MaterialServicoExterno{}).Count(&materiais)
	db.Model(&models.ChecklistCinto{}).Count(&cintos)
	db.Model(&models.ChecklistEscada{}).Count(&escadas)
	assert.Zero(t, materiais)
	assert.Zero(t, cintos)
	assert.Zero(t, escadas)

	w = doJSON(r, http.MethodDelete, "/servicos-externos/1", "", admin)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
