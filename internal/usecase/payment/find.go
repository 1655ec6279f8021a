package payment

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/rafaelmaiia/mar-de-beleza-system/internal/domain/payment"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/httperr"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/models"
)

type FindPayment struct {
	repo domain.Repository
}

func NewFindPayment(repo domain.Repository) *FindPayment {
	return &FindPayment{repo: repo}
}

func (uc *FindPayment) Execute(
	ctx context.Context,
	id uint,
) (*models.Payment, error) {

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
	return p, nil
}

type ListPayments struct {
	repo domain.Repository
}

func NewListPayments(repo domain.Repository) *ListPayments {
	return &ListPayments{repo: repo}
}

func (uc *ListPayments) Execute(
	ctx context.Context,
	filter domain.Filter,
) ([]models.Payment, int64, error) {
	return uc.repo.List(ctx, filter)
}
