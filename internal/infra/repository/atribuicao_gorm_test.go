package repository_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	dbpkg "github.com/voltatec/field-asset-api/internal/db"
	domain "github.com/voltatec/field-asset-api/internal/domain/atribuicao"
	"github.com/voltatec/field-asset-api/internal/httperr"
	infraRepo "github.com/voltatec/field-asset-api/internal/infra/repository"
	"github.com/voltatec/field-asset-api/internal/models"
)

func newRepo(t *testing.T) (domain.Repository, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}, &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	require.NoError(t, db.Create(&models.Eletricista{Nome: "Tiago"}).Error)
	require.NoError(t, db.Create(&models.FerramentaEPI{Nome: "Multímetro", Tipo: models.TipoFerramenta}).Error)

	return infraRepo.NewAtribuicaoGormRepository(db), db
}

func TestHasAtribuicaoAberta(t *testing.T) {
	repo, db := newRepo(t)
	ctx := context.Background()

	aberta, err := repo.HasAtribuicaoAberta(ctx, 1)
	require.NoError(t, err)
	assert.False(t, aberta)

	a := models.AtribuicaoFerramentaEPI{EletricistaID: 1, FerramentaEPIID: 1}
	require.NoError(t, repo.CreateAtribuicao(ctx, &a))

	aberta, err = repo.HasAtribuicaoAberta(ctx, 1)
	require.NoError(t, err)
	assert.True(t, aberta)

	// fechada, deixa de contar como aberta
	require.NoError(t, db.First(&a, a.ID).Error)
	now := a.DataRetirada
	a.DataDevolucao = &now
	require.NoError(t, repo.UpdateAtribuicao(ctx, &a))

	aberta, err = repo.HasAtribuicaoAberta(ctx, 1)
	require.NoError(t, err)
	assert.False(t, aberta)
}

// O índice único parcial é a última linha de defesa quando duas retiradas
// do mesmo item passam juntas pela checagem de aplicação.
func TestCreateAtribuicaoIndiceUnico(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	primeira := models.AtribuicaoFerramentaEPI{EletricistaID: 1, FerramentaEPIID: 1}
	require.NoError(t, repo.CreateAtribuicao(ctx, &primeira))
	assert.NotEmpty(t, primeira.Eletricista.Nome)

	segunda := models.AtribuicaoFerramentaEPI{EletricistaID: 1, FerramentaEPIID: 1}
	err := repo.CreateAtribuicao(ctx, &segunda)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "item_already_assigned"))
}

func TestGetAtribuicaoCarregaRelacoes(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	a := models.AtribuicaoFerramentaEPI{EletricistaID: 1, FerramentaEPIID: 1, Observacao: "manutenção"}
	require.NoError(t, repo.CreateAtribuicao(ctx, &a))

	got, err := repo.GetAtribuicao(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tiago", got.Eletricista.Nome)
	assert.Equal(t, "Multímetro", got.FerramentaEPI.Nome)
	assert.Equal(t, "manutenção", got.Observacao)

	_, err = repo.GetAtribuicao(ctx, 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
