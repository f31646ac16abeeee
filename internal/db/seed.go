package db

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/voltatec/field-asset-api/internal/models"
)

var ferramentasPadrao = []string{
	"Alicate Universal", "Chave de Fenda", "Chave Phillips", "Multímetro",
	"Alicate Amperímetro", "Furadeira", "Parafusadeira", "Morsa", "Martelo", "Chave Inglesa",
}

var episPadrao = []string{
	"Capacete de Segurança", "Óculos de Proteção", "Luvas Isolantes", "Botina de Segurança",
	"Cinto de Segurança", "Talabarte", "Uniforme NR-10", "Protetor Auricular",
	"Máscara de Proteção", "Detector de Tensão",
}

var veiculosPadrao = []string{
	"VAN-001", "VAN-002", "CAMINHÃO-001", "PICKUP-001", "UTILITÁRIO-001",
}

// Seed insere os registros padrão que o sistema espera no primeiro boot.
// Cada linha só é criada quando a chave natural ainda não existe, então
// rodar de novo em um banco já populado é um no-op.
func Seed(db *gorm.DB) error {
	var count int64
	db.Model(&models.User{}).Where("username = ?", "admin").Count(&count)
	if count == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := models.User{
			Username:     "admin",
			PasswordHash: string(hashed),
			Permissao:    models.PermissaoAdmin,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
	}

	for _, nome := range ferramentasPadrao {
		if err := seedItem(db, nome, models.TipoFerramenta); err != nil {
			return err
		}
	}
	for _, nome := range episPadrao {
		if err := seedItem(db, nome, models.TipoEPI); err != nil {
			return err
		}
	}

	for _, identificacao := range veiculosPadrao {
		var n int64
		db.Model(&models.Veiculo{}).Where("identificacao = ?", identificacao).Count(&n)
		if n == 0 {
			if err := db.Create(&models.Veiculo{Identificacao: identificacao}).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

func seedItem(db *gorm.DB, nome, tipo string) error {
	var n int64
	db.Model(&models.FerramentaEPI{}).Where("nome = ? AND tipo = ?", nome, tipo).Count(&n)
	if n > 0 {
		return nil
	}
	return db.Create(&models.FerramentaEPI{Nome: nome, Tipo: tipo}).Error
}
