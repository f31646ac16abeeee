package dto

import (
	"time"

	"github.com/voltatec/field-asset-api/internal/models"
)

// ServicoExternoDTO expande o serviço com colaborador, veículo, materiais e
// os dois checklists (presentes só quando existem).
type ServicoExternoDTO struct {
	ID                   uint                            `json:"id"`
	ColaboradorID        uint                            `json:"colaborador_id"`
	VeiculoID            uint                            `json:"veiculo_id"`
	Destino              string                          `json:"destino"`
	EmpresaAtendida      string                          `json:"empresa_atendida"`
	DataHoraSaida        time.Time                       `json:"data_hora_saida"`
	ColaboradorNome      string                          `json:"colaborador_nome"`
	VeiculoIdentificacao string                          `json:"veiculo_identificacao"`
	Materiais            []models.MaterialServicoExterno `json:"materiais"`
	ChecklistCinto       *models.ChecklistCinto          `json:"checklist_cinto,omitempty"`
	ChecklistEscada      *models.ChecklistEscada         `json:"checklist_escada,omitempty"`
}

func FromServicoExterno(s *models.ServicoExterno) ServicoExternoDTO {
	materiais := s.Materiais
	if materiais == nil {
		materiais = []models.MaterialServicoExterno{}
	}

	return ServicoExternoDTO{
		ID:                   s.ID,
		ColaboradorID:        s.ColaboradorID,
		VeiculoID:            s.VeiculoID,
		Destino:              s.Destino,
		EmpresaAtendida:      s.EmpresaAtendida,
		DataHoraSaida:        s.DataHoraSaida,
		ColaboradorNome:      s.Colaborador.Username,
		VeiculoIdentificacao: s.Veiculo.Identificacao,
		Materiais:            materiais,
		ChecklistCinto:       s.ChecklistCinto,
		ChecklistEscada:      s.ChecklistEscada,
	}
}

func FromServicosExternos(list []models.ServicoExterno) []ServicoExternoDTO {
	out := make([]ServicoExternoDTO, 0, len(list))
	for i := range list {
		out = append(out, FromServicoExterno(&list[i]))
	}
	return out
}
