package appointment

import (
	"time"

	"github.com/rafaelmaiia/mar-de-beleza-system/internal/models"
)

// ===============================
// Janela de atendimento
// ===============================

// Window é o intervalo meio-aberto [Start, End) que um atendimento ocupa
// na agenda de uma profissional.
type Window struct {
	Start time.Time
	End   time.Time
}

func NewWindow(start time.Time, totalMinutes int) Window {
	return Window{
		Start: start,
		End:   start.Add(time.Duration(totalMinutes) * time.Minute),
	}
}

// Overlaps aplica a sobreposição de intervalos meio-abertos:
// atendimentos encostados (um termina exatamente quando o outro começa)
// NÃO colidem.
func (w Window) Overlaps(other Window) bool {
	return w.Start.Before(other.End) && w.End.After(other.Start)
}

type ProfessionalWindow struct {
	ProfessionalID uint
	Window         Window
}

// WindowsByProfessional deriva, a partir do início do agendamento e dos
// itens, a janela ocupada por CADA profissional: a duração de uma
// profissional é a soma das durações apenas dos itens dela. A ordem segue
// a primeira aparição da profissional nos itens.
func WindowsByProfessional(start time.Time, items []models.AppointmentItem) []ProfessionalWindow {
	minutes := make(map[uint]int)
	order := make([]uint, 0, len(items))

	for _, item := range items {
		if _, seen := minutes[item.ProfessionalID]; !seen {
			order = append(order, item.ProfessionalID)
		}
		minutes[item.ProfessionalID] += item.SalonService.DurationMin
	}

	windows := make([]ProfessionalWindow, 0, len(order))
	for _, id := range order {
		windows = append(windows, ProfessionalWindow{
			ProfessionalID: id,
			Window:         NewWindow(start, minutes[id]),
		})
	}
	return windows
}

// WindowFor calcula a janela que um agendamento persistido ocupa na agenda
// de UMA profissional específica. Retorna false se nenhum item é dela.
func WindowFor(ap *models.Appointment, professionalID uint) (Window, bool) {
	total := 0
	found := false
	for _, item := range ap.Items {
		if item.ProfessionalID == professionalID {
			total += item.SalonService.DurationMin
			found = true
		}
	}
	if !found {
		return Window{}, false
	}
	return NewWindow(ap.StartTime, total), true
}
