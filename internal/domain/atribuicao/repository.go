package atribuicao

import (
	"context"

	"github.com/voltatec/field-asset-api/internal/models"
)

type Repository interface {
	// -------- Referências --------
	GetEletricista(
		ctx context.Context,
		id uint,
	) (*models.Eletricista, error)

	GetFerramentaEPI(
		ctx context.Context,
		id uint,
	) (*models.FerramentaEPI, error)

	// -------- Atribuição --------
	HasAtribuicaoAberta(
		ctx context.Context,
		ferramentaEPIID uint,
	) (bool, error)

	CreateAtribuicao(
		ctx context.Context,
		a *models.AtribuicaoFerramentaEPI,
	) error

	GetAtribuicao(
		ctx context.Context,
		id uint,
	) (*models.AtribuicaoFerramentaEPI, error)

	UpdateAtribuicao(
		ctx context.Context,
		a *models.AtribuicaoFerramentaEPI,
	) error
}
