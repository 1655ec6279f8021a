package payment

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rafaelmaiia/mar-de-beleza-system/internal/audit"
	appointmentDomain "github.com/rafaelmaiia/mar-de-beleza-system/internal/domain/appointment"
	domain "github.com/rafaelmaiia/mar-de-beleza-system/internal/domain/payment"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/httperr"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/models"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreatePaymentInput struct {
	AppointmentID uint
	TotalAmount   float64
	Method        domain.Method
	Observations  string
}

// ======================================================
// USE CASE
// ======================================================

type CreatePayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewCreatePayment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *CreatePayment {
	return &CreatePayment{
		repo:  repo,
		audit: audit,
		log:   log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreatePayment) Execute(
	ctx context.Context,
	in CreatePaymentInput,
	actorID uint,
	requestID string,
) (*models.Payment, error) {

	uc.log.Info("registrando pagamento",
		zap.Uint("appointment_id", in.AppointmentID),
	)

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

	var created *models.Payment

	err := uc.repo.InTx(ctx, func(tx domain.Repository) error {

		ap, err := tx.FindAppointmentByID(ctx, in.AppointmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrNotFound(
					"appointment_not_found",
					fmt.Sprintf("Agendamento não encontrado com id %d", in.AppointmentID),
				)
			}
			return err
		}

		// Só agendamentos SCHEDULED ou CONFIRMED podem ser concluídos
		// com registro de pagamento.
		if !appointmentDomain.Status(ap.Status).CanReceivePayment() {
			return httperr.ErrValidation(
				"invalid_appointment_status",
				"Apenas agendamentos agendados ou confirmados podem receber pagamento.",
			)
		}

		p := &models.Payment{
			AppointmentID: ap.ID,
			TotalAmount:   in.TotalAmount,
			Method:        string(in.Method),
			Status:        string(domain.StatusPaid),
			PaymentDate:   timezone.Now(),
			Observations:  in.Observations,
		}

		if err := tx.Save(ctx, p); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return httperr.ErrIntegrity(
					"payment_already_exists",
					"Este agendamento já tem um pagamento registrado.",
				)
			}
			return err
		}

		// Pagamento registrado força o agendamento para DONE.
		if err := tx.UpdateAppointmentStatus(
			ctx,
			ap.ID,
			string(appointmentDomain.StatusDone),
		); err != nil {
			return err
		}

		created = p
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:    &actorID,
		Action:    "payment_created",
		Entity:    "payment",
		EntityID:  &created.ID,
		RequestID: requestID,
	})

	uc.log.Info("pagamento registrado", zap.Uint("id", created.ID))
	return created, nil
}
