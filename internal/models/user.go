package models

import "time"

const (
	PermissaoAdmin       = "admin"
	PermissaoColaborador = "colaborador"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username     string `gorm:"size:80;uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Permissao    string `gorm:"size:20;not null;default:'colaborador'" json:"permissao"`

	DataCriacao time.Time `gorm:"autoCreateTime" json:"data_criacao"`
}

func (User) TableName() string { return "users" }
