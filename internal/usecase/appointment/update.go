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
)

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
		log:   log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id uint,
	in AppointmentInput,
	actorID uint,
	requestID string,
) (*models.Appointment, error) {

	uc.log.Info("atualizando agendamento", zap.Uint("id", id))

	if err := in.validate(); err != nil {
		return nil, err
	}

	var updated *models.Appointment

	err := uc.repo.InTx(ctx, func(tx domain.Repository) error {

		ap, err := tx.FindAppointmentByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrNotFound(
					"appointment_not_found",
					fmt.Sprintf("Agendamento não encontrado com id %d", id),
				)
			}
			return err
		}

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

		// O próprio agendamento é ignorado na checagem (auto-colisão).
		if err := checkConflicts(ctx, tx, in.StartTime, items, ap.ID); err != nil {
			uc.log.Warn("conflito de horário detectado na atualização",
				zap.Uint("id", id),
			)
			return err
		}

		ap.ClientID = client.ID
		ap.Client = *client
		ap.StartTime = in.StartTime
		ap.Observations = in.Observations

		// Status só muda se fornecido; ausente mantém o anterior.
		if in.Status != nil {
			ap.Status = string(*in.Status)
		}

		if err := tx.Save(ctx, ap); err != nil {
			return err
		}
		if err := tx.ReplaceItems(ctx, ap, items); err != nil {
			return err
		}

		updated = ap
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:    &actorID,
		Action:    "appointment_updated",
		Entity:    "appointment",
		EntityID:  &updated.ID,
		RequestID: requestID,
	})

	uc.log.Info("agendamento atualizado", zap.Uint("id", updated.ID))
	return updated, nil
}
