package models

import "time"

// AtribuicaoFerramentaEPI registra a retirada de uma ferramenta/EPI por um
// eletricista. data_devolucao nula significa que o item ainda está em campo.
//
// O índice único parcial garante no banco que cada item tenha no máximo uma
// atribuição aberta, mesmo sob requisições concorrentes.
type AtribuicaoFerramentaEPI struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EletricistaID   uint        `gorm:"not null" json:"eletricista_id"`
	Eletricista     Eletricista `gorm:"constraint:OnUpdate:CASCADE;" json:"-"`
	FerramentaEPIID uint        `gorm:"column:ferramenta_epi_id;not null;index:ux_atribuicoes_abertas,unique,where:data_devolucao IS NULL" json:"ferramenta_epi_id"`

	FerramentaEPI FerramentaEPI `gorm:"foreignKey:FerramentaEPIID;constraint:OnUpdate:CASCADE;" json:"-"`

	DataRetirada  time.Time  `gorm:"autoCreateTime" json:"data_retirada"`
	DataDevolucao *time.Time `json:"data_devolucao"`
	Observacao    string     `gorm:"type:text" json:"observacao"`
}

func (AtribuicaoFerramentaEPI) TableName() string { return "atribuicoes" }
