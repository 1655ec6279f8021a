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
)

type CancelPayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewCancelPayment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *CancelPayment {
	return &CancelPayment{
		repo:  repo,
		audit: audit,
		log:   log,
	}
}

func (uc *CancelPayment) Execute(
	ctx context.Context,
	id uint,
	actorID uint,
	requestID string,
) error {

	uc.log.Info("cancelando pagamento", zap.Uint("id", id))

	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrNotFound(
				"payment_not_found",
				fmt.Sprintf("Pagamento não encontrado com id %d", id),
			)
		}
		return err
	}

	if p.Status == string(domain.StatusCanceled) {
		return httperr.ErrValidation(
			"payment_already_canceled",
			"Este pagamento já foi cancelado.",
		)
	}

	p.Status = string(domain.StatusCanceled)
	if err := uc.repo.Save(ctx, p); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:    &actorID,
		Action:    "payment_canceled",
		Entity:    "payment",
		EntityID:  &p.ID,
		RequestID: requestID,
	})

	uc.log.Info("pagamento cancelado", zap.Uint("id", id))
	return nil
}
