package db

import (
	"log"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"github.com/voltatec/field-asset-api/internal/config"
	"github.com/voltatec/field-asset-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(dialector(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if err := Seed(db); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	return db
}

// dialector escolhe o driver pelo esquema da URL: postgres:// usa o driver
// Postgres, qualquer outra coisa é tratada como caminho de arquivo SQLite.
func dialector(url string) gorm.Dialector {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return postgres.Open(url)
	}
	return gormsqlite.Dialector{DriverName: "sqlite", DSN: url}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Eletricista{},
		&models.FerramentaEPI{},
		&models.AtribuicaoFerramentaEPI{},
		&models.Veiculo{},
		&models.ServicoExterno{},
		&models.MaterialServicoExterno{},
		&models.ChecklistCinto{},
		&models.ChecklistEscada{},
		&models.AuditLog{},
	)
}
