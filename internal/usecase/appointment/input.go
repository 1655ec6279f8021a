package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "github.com/rafaelmaiia/mar-de-beleza-system/internal/domain/appointment"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/httperr"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type ItemInput struct {
	SalonServiceID uint
	ProfessionalID uint
	Price          float64
}

type AppointmentInput struct {
	ClientID     uint
	StartTime    time.Time
	Observations string

	// Status é opcional: na criação o default é SCHEDULED; no update,
	// ausente significa manter o status anterior.
	Status *domain.Status

	Items []ItemInput
}

// ======================================================
// VALIDAÇÃO + RESOLUÇÃO
// ======================================================

// validate roda ANTES de qualquer consulta de conflito.
func (in *AppointmentInput) validate() error {
	if len(in.Items) == 0 {
		return httperr.ErrValidation(
			"empty_items",
			"O agendamento precisa de pelo menos um serviço.",
		)
	}
	for _, item := range in.Items {
		if item.Price <= 0 {
			return httperr.ErrValidation(
				"invalid_price",
				"Preço do item deve ser positivo.",
			)
		}
	}
	if in.Status != nil && !in.Status.IsValid() {
		return httperr.ErrValidation(
			"invalid_status",
			fmt.Sprintf("Status inválido: %s", *in.Status),
		)
	}
	return nil
}

// resolveItems busca cliente, profissionais e serviços referenciados.
// Qualquer id inexistente interrompe com NotFound.
func resolveItems(
	ctx context.Context,
	repo domain.Repository,
	in AppointmentInput,
) ([]models.AppointmentItem, error) {

	serviceIDs := make([]uint, 0, len(in.Items))
	for _, item := range in.Items {
		serviceIDs = append(serviceIDs, item.SalonServiceID)
	}

	services, err := repo.FindServicesByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}

	seenProfessionals := make(map[uint]bool)
	items := make([]models.AppointmentItem, 0, len(in.Items))

	for _, item := range in.Items {
		service, ok := services[item.SalonServiceID]
		if !ok {
			return nil, httperr.ErrNotFound(
				"service_not_found",
				fmt.Sprintf("Serviço não encontrado com id %d", item.SalonServiceID),
			)
		}
		if service.DurationMin <= 0 {
			return nil, httperr.ErrValidation(
				"invalid_duration",
				fmt.Sprintf("Serviço %d tem duração inválida.", service.ID),
			)
		}

		if !seenProfessionals[item.ProfessionalID] {
			if _, err := repo.FindProfessionalByID(ctx, item.ProfessionalID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, httperr.ErrNotFound(
						"professional_not_found",
						fmt.Sprintf("Profissional não encontrado com id %d", item.ProfessionalID),
					)
				}
				return nil, err
			}
			seenProfessionals[item.ProfessionalID] = true
		}

		items = append(items, models.AppointmentItem{
			SalonServiceID: service.ID,
			SalonService:   service,
			ProfessionalID: item.ProfessionalID,
			Price:          item.Price,
		})
	}

	return items, nil
}

// checkConflicts roda o detector para cada profissional envolvida.
// Colisão em qualquer uma bloqueia a operação inteira.
func checkConflicts(
	ctx context.Context,
	repo domain.Repository,
	start time.Time,
	items []models.AppointmentItem,
	excludeID uint,
) error {

	for _, pw := range domain.WindowsByProfessional(start, items) {
		candidates, err := repo.FindActiveAppointmentsForProfessionalOnDay(
			ctx,
			pw.ProfessionalID,
			start,
		)
		if err != nil {
			return err
		}

		if conflict := domain.FindConflict(
			pw.ProfessionalID,
			pw.Window,
			candidates,
			excludeID,
		); conflict != nil {
			return conflict.Error()
		}
	}

	return nil
}
