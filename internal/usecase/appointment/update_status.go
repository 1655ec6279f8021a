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

// UpdateStatus é a operação estreita de status: aceita qualquer transição
// e não passa pela detecção de conflito.
type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
		log:   log,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	id uint,
	status domain.Status,
	actorID uint,
	requestID string,
) (*models.Appointment, error) {

	if !status.IsValid() {
		return nil, httperr.ErrValidation(
			"invalid_status",
			fmt.Sprintf("Status inválido: %s", status),
		)
	}

	uc.log.Info("atualizando status do agendamento",
		zap.Uint("id", id),
		zap.String("status", string(status)),
	)

	ap, err := uc.repo.FindAppointmentByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound(
				"appointment_not_found",
				fmt.Sprintf("Agendamento não encontrado com id %d", id),
			)
		}
		return nil, err
	}

	ap.Status = string(status)
	if err := uc.repo.Save(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:    &actorID,
		Action:    "appointment_status_updated",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		RequestID: requestID,
	})

	return ap, nil
}
