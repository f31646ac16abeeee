package atribuicao

import (
	"context"
	"time"

	"github.com/voltatec/field-asset-api/internal/audit"
	domain "github.com/voltatec/field-asset-api/internal/domain/atribuicao"
	"github.com/voltatec/field-asset-api/internal/httperr"
	"github.com/voltatec/field-asset-api/internal/models"
)

type DevolverAtribuicaoInput struct {
	UserID uint

	AtribuicaoID uint

	// Observacao substitui a nota existente quando enviada.
	Observacao *string
}

type DevolverAtribuicao struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDevolverAtribuicao(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DevolverAtribuicao {
	return &DevolverAtribuicao{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DevolverAtribuicao) Execute(
	ctx context.Context,
	in DevolverAtribuicaoInput,
) (*models.AtribuicaoFerramentaEPI, error) {

	a, err := uc.repo.GetAtribuicao(ctx, in.AtribuicaoID)
	if err != nil {
		return nil, httperr.ErrBusiness("atribuicao_not_found")
	}

	// Devolução acontece exatamente uma vez.
	if a.DataDevolucao != nil {
		return nil, httperr.ErrBusiness("already_returned")
	}

	now := time.Now()
	a.DataDevolucao = &now
	if in.Observacao != nil {
		a.Observacao = *in.Observacao
	}

	if err := uc.repo.UpdateAtribuicao(ctx, a); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "atribuicao_returned",
		Entity:   "atribuicao",
		EntityID: &a.ID,
	})

	return a, nil
}
