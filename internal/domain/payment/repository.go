package payment

import (
	"context"
	"time"

	"github.com/rafaelmaiia/mar-de-beleza-system/internal/models"
)

// Filter da página de financeiro: intervalo de datas, profissional e status.
type Filter struct {
	StartDate      *time.Time
	EndDate        *time.Time
	ProfessionalID *uint
	Status         *Status

	Page     int
	PageSize int
}

func (f *Filter) Normalize() {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 || f.PageSize > 100 {
		f.PageSize = 20
	}
}

func (f Filter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

type Repository interface {
	FindByID(ctx context.Context, id uint) (*models.Payment, error)

	Save(ctx context.Context, p *models.Payment) error

	List(ctx context.Context, filter Filter) ([]models.Payment, int64, error)

	// -------- Appointment (invariante cross-entity) --------
	FindAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error)

	UpdateAppointmentStatus(ctx context.Context, id uint, status string) error

	InTx(ctx context.Context, fn func(Repository) error) error
}
