package appointment

import (
	"testing"
	"time"

	"github.com/rafaelmaiia/mar-de-beleza-system/internal/models"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 9, 15, hour, min, 0, 0, time.UTC)
}

func TestWindowOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Window
		b    Window
		want bool
	}{
		{
			name: "sobreposição parcial",
			a:    Window{Start: at(9, 30), End: at(10, 30)},
			b:    Window{Start: at(10, 0), End: at(11, 0)},
			want: true,
		},
		{
			name: "janelas encostadas não colidem",
			a:    Window{Start: at(9, 30), End: at(10, 30)},
			b:    Window{Start: at(10, 30), End: at(11, 30)},
			want: false,
		},
		{
			name: "uma contém a outra",
			a:    Window{Start: at(9, 0), End: at(12, 0)},
			b:    Window{Start: at(10, 0), End: at(10, 30)},
			want: true,
		},
		{
			name: "janelas disjuntas",
			a:    Window{Start: at(8, 0), End: at(9, 0)},
			b:    Window{Start: at(14, 0), End: at(15, 0)},
			want: false,
		},
		{
			name: "mesma janela",
			a:    Window{Start: at(10, 0), End: at(11, 0)},
			b:    Window{Start: at(10, 0), End: at(11, 0)},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			// Sobreposição é simétrica.
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps() invertido = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewWindow(t *testing.T) {
	w := NewWindow(at(10, 0), 90)

	if !w.Start.Equal(at(10, 0)) {
		t.Errorf("Start = %v, want %v", w.Start, at(10, 0))
	}
	if !w.End.Equal(at(11, 30)) {
		t.Errorf("End = %v, want %v", w.End, at(11, 30))
	}
}

func item(professionalID uint, durationMin int) models.AppointmentItem {
	return models.AppointmentItem{
		ProfessionalID: professionalID,
		SalonService:   models.SalonService{DurationMin: durationMin},
	}
}

func TestWindowsByProfessionalSumsPerProfessional(t *testing.T) {
	start := at(10, 0)

	// Profissional 1: 30 + 15 min; profissional 2: 60 min.
	items := []models.AppointmentItem{
		item(1, 30),
		item(2, 60),
		item(1, 15),
	}

	windows := WindowsByProfessional(start, items)

	if len(windows) != 2 {
		t.Fatalf("len(windows) = %d, want 2", len(windows))
	}

	if windows[0].ProfessionalID != 1 {
		t.Errorf("windows[0].ProfessionalID = %d, want 1", windows[0].ProfessionalID)
	}
	if !windows[0].Window.End.Equal(at(10, 45)) {
		t.Errorf("janela da profissional 1 termina em %v, want %v",
			windows[0].Window.End, at(10, 45))
	}

	if windows[1].ProfessionalID != 2 {
		t.Errorf("windows[1].ProfessionalID = %d, want 2", windows[1].ProfessionalID)
	}
	if !windows[1].Window.End.Equal(at(11, 0)) {
		t.Errorf("janela da profissional 2 termina em %v, want %v",
			windows[1].Window.End, at(11, 0))
	}
}

func TestWindowsByPreservesInsertionOrder(t *testing.T) {
	items := []models.AppointmentItem{
		item(7, 30),
		item(3, 30),
		item(7, 30),
		item(5, 30),
	}

	windows := WindowsByProfessional(at(9, 0), items)

	wantOrder := []uint{7, 3, 5}
	if len(windows) != len(wantOrder) {
		t.Fatalf("len(windows) = %d, want %d", len(windows), len(wantOrder))
	}
	for i, want := range wantOrder {
		if windows[i].ProfessionalID != want {
			t.Errorf("windows[%d].ProfessionalID = %d, want %d",
				i, windows[i].ProfessionalID, want)
		}
	}
}

func TestWindowFor(t *testing.T) {
	ap := &models.Appointment{
		StartTime: at(14, 0),
		Items: []models.AppointmentItem{
			item(1, 30),
			item(2, 45),
			item(1, 30),
		},
	}

	w, ok := WindowFor(ap, 1)
	if !ok {
		t.Fatal("WindowFor(ap, 1) ok = false, want true")
	}
	if !w.End.Equal(at(15, 0)) {
		t.Errorf("End = %v, want %v", w.End, at(15, 0))
	}

	if _, ok := WindowFor(ap, 99); ok {
		t.Error("WindowFor(ap, 99) ok = true, want false")
	}
}
