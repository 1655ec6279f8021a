package appointment

import (
	"strings"
	"testing"
	"time"

	"github.com/rafaelmaiia/mar-de-beleza-system/internal/httperr"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/models"
)

func existingAppointment(id uint, professionalID uint, start time.Time, durationMin int, status Status) models.Appointment {
	return models.Appointment{
		ID:        id,
		StartTime: start,
		Status:    string(status),
		Items: []models.AppointmentItem{
			{
				ProfessionalID: professionalID,
				SalonService:   models.SalonService{DurationMin: durationMin},
			},
		},
	}
}

func TestFindConflictDetectsOverlap(t *testing.T) {
	// Existente: 09:30–10:30. Proposto: 10:00–11:00 → colide.
	candidates := []models.Appointment{
		existingAppointment(10, 1, at(9, 30), 60, StatusScheduled),
	}

	proposed := NewWindow(at(10, 0), 60)

	conflict := FindConflict(1, proposed, candidates, 0)
	if conflict == nil {
		t.Fatal("FindConflict() = nil, want conflito")
	}
	if conflict.AppointmentID != 10 {
		t.Errorf("AppointmentID = %d, want 10", conflict.AppointmentID)
	}
}

func TestFindConflictAllowsBackToBack(t *testing.T) {
	// Existente: 09:30–10:30. Proposto começa exatamente às 10:30 → livre.
	candidates := []models.Appointment{
		existingAppointment(10, 1, at(9, 30), 60, StatusScheduled),
	}

	proposed := NewWindow(at(10, 30), 60)

	if conflict := FindConflict(1, proposed, candidates, 0); conflict != nil {
		t.Errorf("FindConflict() = %+v, want nil", conflict)
	}
}

func TestFindConflictSkipsCanceled(t *testing.T) {
	candidates := []models.Appointment{
		existingAppointment(10, 1, at(10, 0), 60, StatusCanceled),
	}

	proposed := NewWindow(at(10, 0), 60)

	if conflict := FindConflict(1, proposed, candidates, 0); conflict != nil {
		t.Errorf("agendamento cancelado não deveria colidir, got %+v", conflict)
	}
}

func TestFindConflictConsidersNoShowAndDone(t *testing.T) {
	// Todo status exceto CANCELED segura o horário na agenda.
	for _, status := range []Status{StatusDone, StatusNoShow, StatusConfirmed, StatusRescheduled} {
		candidates := []models.Appointment{
			existingAppointment(10, 1, at(10, 0), 60, status),
		}

		proposed := NewWindow(at(10, 30), 60)

		if conflict := FindConflict(1, proposed, candidates, 0); conflict == nil {
			t.Errorf("status %s deveria colidir", status)
		}
	}
}

func TestFindConflictExcludesSelfOnUpdate(t *testing.T) {
	candidates := []models.Appointment{
		existingAppointment(10, 1, at(10, 0), 60, StatusScheduled),
	}

	proposed := NewWindow(at(10, 15), 60)

	// O update do agendamento 10 não colide consigo mesmo.
	if conflict := FindConflict(1, proposed, candidates, 10); conflict != nil {
		t.Errorf("auto-colisão não deveria ser reportada, got %+v", conflict)
	}

	// Mas qualquer outro id continua colidindo.
	if conflict := FindConflict(1, proposed, candidates, 99); conflict == nil {
		t.Error("FindConflict() = nil, want conflito")
	}
}

func TestFindConflictIgnoresOtherProfessionals(t *testing.T) {
	// O agendamento existente ocupa a profissional 2, não a 1.
	candidates := []models.Appointment{
		existingAppointment(10, 2, at(10, 0), 60, StatusScheduled),
	}

	proposed := NewWindow(at(10, 0), 60)

	if conflict := FindConflict(1, proposed, candidates, 0); conflict != nil {
		t.Errorf("profissional diferente não deveria colidir, got %+v", conflict)
	}
}

func TestFindConflictUsesProfessionalOwnDuration(t *testing.T) {
	// Agendamento existente com duas profissionais: a profissional 1 só tem
	// 30 min (10:00–10:30); a janela da profissional 2 (10:00–12:00) não
	// conta para ela.
	candidates := []models.Appointment{
		{
			ID:        10,
			StartTime: at(10, 0),
			Status:    string(StatusScheduled),
			Items: []models.AppointmentItem{
				{ProfessionalID: 1, SalonService: models.SalonService{DurationMin: 30}},
				{ProfessionalID: 2, SalonService: models.SalonService{DurationMin: 120}},
			},
		},
	}

	// 10:30 em diante está livre para a profissional 1.
	if conflict := FindConflict(1, NewWindow(at(10, 30), 60), candidates, 0); conflict != nil {
		t.Errorf("profissional 1 deveria estar livre às 10:30, got %+v", conflict)
	}

	// A profissional 2 segue ocupada até 12:00.
	if conflict := FindConflict(2, NewWindow(at(10, 30), 60), candidates, 0); conflict == nil {
		t.Error("profissional 2 deveria colidir às 10:30")
	}
}

func TestConflictErrorMessage(t *testing.T) {
	conflict := &Conflict{
		ProfessionalID: 1,
		AppointmentID:  10,
		Existing:       Window{Start: at(9, 30), End: at(10, 30)},
	}

	err := conflict.Error()

	if !httperr.IsKind(err, httperr.KindSchedulingConflict) {
		t.Fatalf("kind inesperado: %v", err)
	}

	be, ok := httperr.AsBusiness(err)
	if !ok {
		t.Fatalf("esperava BusinessError, got %T", err)
	}
	if !strings.Contains(be.Message, "das 09:30 às 10:30") {
		t.Errorf("mensagem sem a janela existente: %q", be.Message)
	}
}
