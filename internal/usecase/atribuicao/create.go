package atribuicao

import (
	"context"

	"github.com/voltatec/field-asset-api/internal/audit"
	domain "github.com/voltatec/field-asset-api/internal/domain/atribuicao"
	"github.com/voltatec/field-asset-api/internal/httperr"
	"github.com/voltatec/field-asset-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAtribuicaoInput struct {
	UserID uint

	EletricistaID   uint
	FerramentaEPIID uint
	Observacao      string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAtribuicao struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAtribuicao(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAtribuicao {
	return &CreateAtribuicao{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAtribuicao) Execute(
	ctx context.Context,
	in CreateAtribuicaoInput,
) (*models.AtribuicaoFerramentaEPI, error) {

	if in.EletricistaID == 0 || in.FerramentaEPIID == 0 {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	// --------------------------------------------------
	// Referências
	// --------------------------------------------------
	if _, err := uc.repo.GetEletricista(ctx, in.EletricistaID); err != nil {
		return nil, httperr.ErrBusiness("eletricista_not_found")
	}

	if _, err := uc.repo.GetFerramentaEPI(ctx, in.FerramentaEPIID); err != nil {
		return nil, httperr.ErrBusiness("item_not_found")
	}

	// --------------------------------------------------
	// No máximo uma atribuição aberta por item. A pré-checagem dá a
	// mensagem amigável; o índice único parcial segura a corrida.
	// --------------------------------------------------
	open, err := uc.repo.HasAtribuicaoAberta(ctx, in.FerramentaEPIID)
	if err != nil {
		return nil, err
	}
	if open {
		return nil, httperr.ErrBusiness("item_already_assigned")
	}

	a := &models.AtribuicaoFerramentaEPI{
		EletricistaID:   in.EletricistaID,
		FerramentaEPIID: in.FerramentaEPIID,
		Observacao:      in.Observacao,
	}

	if err := uc.repo.CreateAtribuicao(ctx, a); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "atribuicao_created",
		Entity:   "atribuicao",
		EntityID: &a.ID,
	})

	return a, nil
}
