package payment

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rafaelmaiia/mar-de-beleza-system/internal/audit"
	appointmentDomain "github.com/rafaelmaiia/mar-de-beleza-system/internal/domain/appointment"
	domain "github.com/rafaelmaiia/mar-de-beleza-system/internal/domain/payment"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/httperr"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/models"
)

// stubRepo implementa domain.Repository em memória.
type stubRepo struct {
	payments     map[uint]*models.Payment
	appointments map[uint]*models.Appointment

	// simula a unique em appointment_id
	paidAppointments map[uint]bool

	statusUpdates map[uint]string
	nextID        uint
}

var _ domain.Repository = (*stubRepo)(nil)

func newStubRepo() *stubRepo {
	return &stubRepo{
		payments:         make(map[uint]*models.Payment),
		appointments:     make(map[uint]*models.Appointment),
		paidAppointments: make(map[uint]bool),
		statusUpdates:    make(map[uint]string),
		nextID:           100,
	}
}

func (r *stubRepo) FindByID(_ context.Context, id uint) (*models.Payment, error) {
	if p, ok := r.payments[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRepo) Save(_ context.Context, p *models.Payment) error {
	if p.ID == 0 {
		if r.paidAppointments[p.AppointmentID] {
			return gorm.ErrDuplicatedKey
		}
		r.nextID++
		p.ID = r.nextID
		r.paidAppointments[p.AppointmentID] = true
	}
	r.payments[p.ID] = p
	return nil
}

func (r *stubRepo) List(_ context.Context, _ domain.Filter) ([]models.Payment, int64, error) {
	out := make([]models.Payment, 0, len(r.payments))
	for _, p := range r.payments {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubRepo) FindAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	if ap, ok := r.appointments[id]; ok {
		return ap, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRepo) UpdateAppointmentStatus(_ context.Context, id uint, status string) error {
	r.statusUpdates[id] = status
	if ap, ok := r.appointments[id]; ok {
		ap.Status = status
	}
	return nil
}

func (r *stubRepo) InTx(_ context.Context, fn func(domain.Repository) error) error {
	return fn(r)
}

type discardSink struct{}

func (discardSink) Log(audit.Event) error { return nil }

func newTestDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(discardSink{}, zap.NewNop())
}

func repoWithAppointment(status appointmentDomain.Status) *stubRepo {
	repo := newStubRepo()
	repo.appointments[1] = &models.Appointment{
		ID:     1,
		Status: string(status),
	}
	return repo
}

func validCreateInput() CreatePaymentInput {
	return CreatePaymentInput{
		AppointmentID: 1,
		TotalAmount:   130,
		Method:        domain.MethodPix,
	}
}

func TestCreatePayment(t *testing.T) {
	repo := repoWithAppointment(appointmentDomain.StatusConfirmed)
	uc := NewCreatePayment(repo, newTestDispatcher(), zap.NewNop())

	created, err := uc.Execute(context.Background(), validCreateInput(), 1, "req-1")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if created.Status != string(domain.StatusPaid) {
		t.Errorf("Status = %s, want PAID", created.Status)
	}
	if created.PaymentDate.IsZero() {
		t.Error("PaymentDate não foi preenchida")
	}

	// Pagamento registrado conclui o agendamento.
	if got := repo.statusUpdates[1]; got != string(appointmentDomain.StatusDone) {
		t.Errorf("status do agendamento = %s, want DONE", got)
	}
}

func TestCreatePaymentInvalidAmount(t *testing.T) {
	repo := repoWithAppointment(appointmentDomain.StatusScheduled)
	uc := NewCreatePayment(repo, newTestDispatcher(), zap.NewNop())

	in := validCreateInput()
	in.TotalAmount = 0

	_, err := uc.Execute(context.Background(), in, 1, "req-1")
	if !httperr.IsKind(err, httperr.KindValidation) {
		t.Fatalf("esperava erro de validação, got %v", err)
	}
}

func TestCreatePaymentInvalidMethod(t *testing.T) {
	repo := repoWithAppointment(appointmentDomain.StatusScheduled)
	uc := NewCreatePayment(repo, newTestDispatcher(), zap.NewNop())

	in := validCreateInput()
	in.Method = domain.Method("CHEQUE")

	_, err := uc.Execute(context.Background(), in, 1, "req-1")

	be, ok := httperr.AsBusiness(err)
	if !ok || be.Code != "invalid_payment_method" {
		t.Fatalf("esperava invalid_payment_method, got %v", err)
	}
}

func TestCreatePaymentAppointmentNotFound(t *testing.T) {
	repo := newStubRepo()
	uc := NewCreatePayment(repo, newTestDispatcher(), zap.NewNop())

	_, err := uc.Execute(context.Background(), validCreateInput(), 1, "req-1")
	if !httperr.IsKind(err, httperr.KindNotFound) {
		t.Fatalf("esperava not_found, got %v", err)
	}
}

func TestCreatePaymentRejectsFinishedAppointment(t *testing.T) {
	for _, status := range []appointmentDomain.Status{
		appointmentDomain.StatusDone,
		appointmentDomain.StatusCanceled,
		appointmentDomain.StatusNoShow,
	} {
		repo := repoWithAppointment(status)
		uc := NewCreatePayment(repo, newTestDispatcher(), zap.NewNop())

		_, err := uc.Execute(context.Background(), validCreateInput(), 1, "req-1")

		be, ok := httperr.AsBusiness(err)
		if !ok || be.Code != "invalid_appointment_status" {
			t.Errorf("status %s: esperava invalid_appointment_status, got %v", status, err)
		}
	}
}

func TestCreatePaymentDuplicate(t *testing.T) {
	repo := repoWithAppointment(appointmentDomain.StatusScheduled)
	uc := NewCreatePayment(repo, newTestDispatcher(), zap.NewNop())

	if _, err := uc.Execute(context.Background(), validCreateInput(), 1, "req-1"); err != nil {
		t.Fatalf("primeiro pagamento falhou: %v", err)
	}

	// O agendamento foi para DONE; devolve-o a CONFIRMED para isolar a
	// violação da unique.
	repo.appointments[1].Status = string(appointmentDomain.StatusConfirmed)

	_, err := uc.Execute(context.Background(), validCreateInput(), 1, "req-2")
	if !httperr.IsKind(err, httperr.KindIntegrity) {
		t.Fatalf("esperava erro de integridade, got %v", err)
	}
}

func TestCancelPayment(t *testing.T) {
	repo := newStubRepo()
	repo.payments[5] = &models.Payment{
		ID:            5,
		AppointmentID: 1,
		Status:        string(domain.StatusPaid),
	}
	uc := NewCancelPayment(repo, newTestDispatcher(), zap.NewNop())

	if err := uc.Execute(context.Background(), 5, 1, "req-1"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if repo.payments[5].Status != string(domain.StatusCanceled) {
		t.Errorf("Status = %s, want CANCELED", repo.payments[5].Status)
	}
}

func TestCancelPaymentAlreadyCanceled(t *testing.T) {
	repo := newStubRepo()
	repo.payments[5] = &models.Payment{
		ID:     5,
		Status: string(domain.StatusCanceled),
	}
	uc := NewCancelPayment(repo, newTestDispatcher(), zap.NewNop())

	err := uc.Execute(context.Background(), 5, 1, "req-1")

	be, ok := httperr.AsBusiness(err)
	if !ok || be.Code != "payment_already_canceled" {
		t.Fatalf("esperava payment_already_canceled, got %v", err)
	}
}

func TestCancelPaymentNotFound(t *testing.T) {
	repo := newStubRepo()
	uc := NewCancelPayment(repo, newTestDispatcher(), zap.NewNop())

	err := uc.Execute(context.Background(), 999, 1, "req-1")
	if !httperr.IsKind(err, httperr.KindNotFound) {
		t.Fatalf("esperava not_found, got %v", err)
	}
}
