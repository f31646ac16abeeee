package models

import "time"

const (
	TipoFerramenta = "Ferramenta"
	TipoEPI        = "EPI"
)

// TipoValido reports whether tipo is one of the two accepted item kinds.
func TipoValido(tipo string) bool {
	return tipo == TipoFerramenta || tipo == TipoEPI
}

type FerramentaEPI struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nome string `gorm:"size:100;not null" json:"nome"`
	Tipo string `gorm:"size:20;not null" json:"tipo"`

	DataCriacao time.Time `gorm:"autoCreateTime" json:"data_criacao"`
}

func (FerramentaEPI) TableName() string { return "ferramentas_epis" }
