package models

import "time"

type Eletricista struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nome string `gorm:"size:100;not null" json:"nome"`

	DataCriacao time.Time `gorm:"autoCreateTime" json:"data_criacao"`
}

func (Eletricista) TableName() string { return "eletricistas" }
