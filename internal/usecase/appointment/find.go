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
// FIND BY ID
// ======================================================

type FindAppointment struct {
	repo domain.Repository
}

func NewFindAppointment(repo domain.Repository) *FindAppointment {
	return &FindAppointment{repo: repo}
}

func (uc *FindAppointment) Execute(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

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
	return ap, nil
}

// ======================================================
// LIST (filtros dinâmicos)
// ======================================================

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	filter domain.Filter,
) ([]models.Appointment, int64, error) {
	return uc.repo.ListAppointments(ctx, filter)
}

// ======================================================
// DELETE (hard delete)
// ======================================================

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
		log:   log,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	id uint,
	actorID uint,
	requestID string,
) error {

	exists, err := uc.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return httperr.ErrNotFound(
			"appointment_not_found",
			fmt.Sprintf("Agendamento não encontrado com id %d", id),
		)
	}

	if err := uc.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:    &actorID,
		Action:    "appointment_deleted",
		Entity:    "appointment",
		EntityID:  &id,
		RequestID: requestID,
	})

	uc.log.Info("agendamento removido", zap.Uint("id", id))
	return nil
}
