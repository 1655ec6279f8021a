package appointment

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rafaelmaiia/mar-de-beleza-system/internal/audit"
	domain "github.com/rafaelmaiia/mar-de-beleza-system/internal/domain/appointment"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/httperr"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/models"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		log:   log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in AppointmentInput,
	actorID uint,
	requestID string,
) (*models.Appointment, error) {

	uc.log.Info("criando agendamento",
		zap.Uint("client_id", in.ClientID),
		zap.Time("start_time", in.StartTime),
	)

	// --------------------------------------------------
	// 1. Validação de entrada (antes de qualquer conflito)
	// --------------------------------------------------
	if err := in.validate(); err != nil {
		return nil, err
	}

	if in.StartTime.Before(timezone.Now()) {
		return nil, httperr.ErrValidation(
			"past_date",
			"Não é possível agendar em data passada.",
		)
	}

	// --------------------------------------------------
	// 2. Leitura de conflito + escrita na mesma transação
	// --------------------------------------------------
	var created *models.Appointment

	err := uc.repo.InTx(ctx, func(tx domain.Repository) error {

		client, err := tx.FindClientByID(ctx, in.ClientID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrNotFound(
					"client_not_found",
					fmt.Sprintf("Cliente não encontrado com id %d", in.ClientID),
				)
			}
			return err
		}

		items, err := resolveItems(ctx, tx, in)
		if err != nil {
			return err
		}

		if err := checkConflicts(ctx, tx, in.StartTime, items, 0); err != nil {
			uc.log.Warn("conflito de horário detectado",
				zap.Uint("client_id", in.ClientID),
				zap.Time("start_time", in.StartTime),
			)
			return err
		}

		status := domain.InitialStatus()
		if in.Status != nil {
			status = *in.Status
		}

		ap := &models.Appointment{
			ClientID:     client.ID,
			StartTime:    in.StartTime,
			Status:       string(status),
			Observations: in.Observations,
		}

		if err := tx.Save(ctx, ap); err != nil {
			return err
		}
		if err := tx.ReplaceItems(ctx, ap, items); err != nil {
			return err
		}

		created = ap
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:    &actorID,
		Action:    "appointment_created",
		Entity:    "appointment",
		EntityID:  &created.ID,
		RequestID: requestID,
	})

	uc.log.Info("agendamento criado", zap.Uint("id", created.ID))
	return created, nil
}
