package db

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"github.com/voltatec/field-asset-api/internal/models"
)

func newMigratedDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}, &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestSeedCargaInicial(t *testing.T) {
	db := newMigratedDB(t)
	require.NoError(t, Seed(db))

	var admin models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.Equal(t, models.PermissaoAdmin, admin.Permissao)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))

	var ferramentas, epis, veiculos int64
	db.Model(&models.FerramentaEPI{}).Where("tipo = ?", models.TipoFerramenta).Count(&ferramentas)
	db.Model(&models.FerramentaEPI{}).Where("tipo = ?", models.TipoEPI).Count(&epis)
	db.Model(&models.Veiculo{}).Count(&veiculos)
	assert.EqualValues(t, 10, ferramentas)
	assert.EqualValues(t, 10, epis)
	assert.EqualValues(t, 5, veiculos)
}

func TestSeedIdempotente(t *testing.T) {
	db := newMigratedDB(t)
	require.NoError(t, Seed(db))

	// troca a senha do admin para verificar que o seed não regrava a conta
	require.NoError(t, db.Model(&models.User{}).
		Where("username = ?", "admin").
		Update("password_hash", "custom").Error)

	require.NoError(t, Seed(db))

	var users, itens, veiculos int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.FerramentaEPI{}).Count(&itens)
	db.Model(&models.Veiculo{}).Count(&veiculos)
	assert.EqualValues(t, 1, users)
	assert.EqualValues(t, 20, itens)
	assert.EqualValues(t, 5, veiculos)

	var admin models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.Equal(t, "custom", admin.PasswordHash)
}
