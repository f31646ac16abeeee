package dto

import (
	"time"

	"github.com/voltatec/field-asset-api/internal/models"
)

// AtribuicaoDTO é a visão denormalizada de uma atribuição: além dos campos
// da linha, carrega nome do eletricista e nome/tipo do item.
type AtribuicaoDTO struct {
	ID                uint       `json:"id"`
	EletricistaID     uint       `json:"eletricista_id"`
	FerramentaEPIID   uint       `json:"ferramenta_epi_id"`
	DataRetirada      time.Time  `json:"data_retirada"`
	DataDevolucao     *time.Time `json:"data_devolucao"`
	Observacao        string     `json:"observacao"`
	EletricistaNome   string     `json:"eletricista_nome"`
	FerramentaEPINome string     `json:"ferramenta_epi_nome"`
	FerramentaEPITipo string     `json:"ferramenta_epi_tipo"`
}

func FromAtribuicao(a *models.AtribuicaoFerramentaEPI) AtribuicaoDTO {
	return AtribuicaoDTO{
		ID:                a.ID,
		EletricistaID:     a.EletricistaID,
		FerramentaEPIID:   a.FerramentaEPIID,
		DataRetirada:      a.DataRetirada,
		DataDevolucao:     a.DataDevolucao,
		Observacao:        a.Observacao,
		EletricistaNome:   a.Eletricista.Nome,
		FerramentaEPINome: a.FerramentaEPI.Nome,
		FerramentaEPITipo: a.FerramentaEPI.Tipo,
	}
}

func FromAtribuicoes(list []models.AtribuicaoFerramentaEPI) []AtribuicaoDTO {
	out := make([]AtribuicaoDTO, 0, len(list))
	for i := range list {
		out = append(out, FromAtribuicao(&list[i]))
	}
	return out
}
