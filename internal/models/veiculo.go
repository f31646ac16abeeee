package models

import "time"

type Veiculo struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Identificacao string `gorm:"size:50;uniqueIndex;not null" json:"identificacao"`

	DataCriacao time.Time `gorm:"autoCreateTime" json:"data_criacao"`
}

func (Veiculo) TableName() string { return "veiculos" }
