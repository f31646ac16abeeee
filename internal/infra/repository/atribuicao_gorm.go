package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/voltatec/field-asset-api/internal/domain/atribuicao"
	"github.com/voltatec/field-asset-api/internal/httperr"
	"github.com/voltatec/field-asset-api/internal/models"
)

type AtribuicaoGormRepository struct {
	db *gorm.DB
}

func NewAtribuicaoGormRepository(db *gorm.DB) domain.Repository {
	return &AtribuicaoGormRepository{db: db}
}

func (r *AtribuicaoGormRepository) GetEletricista(
	ctx context.Context,
	id uint,
) (*models.Eletricista, error) {

	var e models.Eletricista
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *AtribuicaoGormRepository) GetFerramentaEPI(
	ctx context.Context,
	id uint,
) (*models.FerramentaEPI, error) {

	var f models.FerramentaEPI
	if err := r.db.WithContext(ctx).First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *AtribuicaoGormRepository) HasAtribuicaoAberta(
	ctx context.Context,
	ferramentaEPIID uint,
) (bool, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.AtribuicaoFerramentaEPI{}).
		Where("ferramenta_epi_id = ? AND data_devolucao IS NULL", ferramentaEPIID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AtribuicaoGormRepository) CreateAtribuicao(
	ctx context.Context,
	a *models.AtribuicaoFerramentaEPI,
) error {

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(a).Error; err != nil {
		// Corrida perdida contra outra retirada do mesmo item: o índice
		// único parcial rejeita a segunda inserção.
		if isUniqueViolation(err) {
			return httperr.ErrBusiness("item_already_assigned")
		}
		return err
	}

	return r.db.WithContext(ctx).
		Preload("Eletricista").
		Preload("FerramentaEPI").
		First(a, a.ID).Error
}

func (r *AtribuicaoGormRepository) GetAtribuicao(
	ctx context.Context,
	id uint,
) (*models.AtribuicaoFerramentaEPI, error) {

	var a models.AtribuicaoFerramentaEPI
	err := r.db.WithContext(ctx).
		Preload("Eletricista").
		Preload("FerramentaEPI").
		First(&a, id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AtribuicaoGormRepository) UpdateAtribuicao(
	ctx context.Context,
	a *models.AtribuicaoFerramentaEPI,
) error {
	// a chega com as relações pré-carregadas; só a linha da atribuição
	// deve ser gravada.
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(a).Error
}

// isUniqueViolation cobre a tradução do GORM e as mensagens cruas do
// sqlite (modernc) e do postgres, que o tradutor nem sempre reconhece.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
