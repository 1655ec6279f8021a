package payment

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rafaelmaiia/mar-de-beleza-system/internal/audit"
	domain "github.com/rafaelmaiia/mar-de-beleza-system/internal/domain/payment"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/httperr"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/models"
)

type UpdatePaymentInput struct {
	TotalAmount  float64
	Method       domain.Method
	Observations string
}

type UpdatePayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewUpdatePayment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *UpdatePayment {
	return &UpdatePayment{
		repo:  repo,
		audit: audit,
		log:   log,
	}
}

func (uc *UpdatePayment) Execute(
	ctx context.Context,
	id uint,
	in UpdatePaymentInput,
	actorID uint,
	requestID string,
) (*models.Payment, error) {

	uc.log.Info("atualizando pagamento", zap.Uint("id", id))

	if in.TotalAmount <= 0 {
		return nil, httperr.ErrValidation(
			"invalid_amount",
			"Valor do pagamento deve ser positivo.",
		)
	}
	if !in.Method.IsValid() {
		return nil, httperr.ErrValidation(
			"invalid_payment_method",
			fmt.Sprintf("Forma de pagamento inválida: %s", in.Method),
		)
	}

	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound(
				"payment_not_found",
				fmt.Sprintf("Pagamento não encontrado com id %d", id),
			)
		}
		return nil, err
	}

	p.TotalAmount = in.TotalAmount
	p.Method = string(in.Method)
	p.Observations = in.Observations

	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:    &actorID,
		Action:    "payment_updated",
		Entity:    "payment",
		EntityID:  &p.ID,
		RequestID: requestID,
	})

	return p, nil
}
