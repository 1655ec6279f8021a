package appointment

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rafaelmaiia/mar-de-beleza-system/internal/audit"
	domain "github.com/rafaelmaiia/mar-de-beleza-system/internal/domain/appointment"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/models"
)

// stubRepo implementa domain.Repository em memória para os testes de use
// case. InTx apenas invoca fn sobre o próprio stub.
type stubRepo struct {
	clients       map[uint]*models.Client
	professionals map[uint]*models.Professional
	services      map[uint]models.SalonService
	appointments  map[uint]*models.Appointment

	// candidatos devolvidos pela consulta de conflito, por profissional
	dayAppointments map[uint][]models.Appointment

	// erro injetado para simular falha de infraestrutura na busca
	professionalErr error

	saved      []*models.Appointment
	savedItems []models.AppointmentItem
	deletedIDs []uint
	nextID     uint
}

var _ domain.Repository = (*stubRepo)(nil)

func newStubRepo() *stubRepo {
	return &stubRepo{
		clients:         make(map[uint]*models.Client),
		professionals:   make(map[uint]*models.Professional),
		services:        make(map[uint]models.SalonService),
		appointments:    make(map[uint]*models.Appointment),
		dayAppointments: make(map[uint][]models.Appointment),
		nextID:          100,
	}
}

func (r *stubRepo) FindServicesByIDs(_ context.Context, ids []uint) (map[uint]models.SalonService, error) {
	out := make(map[uint]models.SalonService)
	for _, id := range ids {
		if svc, ok := r.services[id]; ok {
			out[id] = svc
		}
	}
	return out, nil
}

func (r *stubRepo) FindClientByID(_ context.Context, id uint) (*models.Client, error) {
	if c, ok := r.clients[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRepo) FindProfessionalByID(_ context.Context, id uint) (*models.Professional, error) {
	if r.professionalErr != nil {
		return nil, r.professionalErr
	}
	if p, ok := r.professionals[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRepo) FindActiveAppointmentsForProfessionalOnDay(_ context.Context, professionalID uint, _ time.Time) ([]models.Appointment, error) {
	return r.dayAppointments[professionalID], nil
}

func (r *stubRepo) Save(_ context.Context, ap *models.Appointment) error {
	if ap.ID == 0 {
		r.nextID++
		ap.ID = r.nextID
	}
	r.saved = append(r.saved, ap)
	r.appointments[ap.ID] = ap
	return nil
}

func (r *stubRepo) ReplaceItems(_ context.Context, ap *models.Appointment, items []models.AppointmentItem) error {
	r.savedItems = items
	ap.Items = items
	return nil
}

func (r *stubRepo) FindAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	if ap, ok := r.appointments[id]; ok {
		return ap, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRepo) ExistsByID(_ context.Context, id uint) (bool, error) {
	_, ok := r.appointments[id]
	return ok, nil
}

func (r *stubRepo) DeleteByID(_ context.Context, id uint) error {
	delete(r.appointments, id)
	r.deletedIDs = append(r.deletedIDs, id)
	return nil
}

func (r *stubRepo) ListAppointments(_ context.Context, _ domain.Filter) ([]models.Appointment, int64, error) {
	out := make([]models.Appointment, 0, len(r.appointments))
	for _, ap := range r.appointments {
		out = append(out, *ap)
	}
	return out, int64(len(out)), nil
}

func (r *stubRepo) InTx(_ context.Context, fn func(domain.Repository) error) error {
	return fn(r)
}

// discardSink descarta eventos de auditoria nos testes.
type discardSink struct{}

func (discardSink) Log(audit.Event) error { return nil }

func newTestDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(discardSink{}, zap.NewNop())
}
