package appointment

import (
	"fmt"

	"github.com/rafaelmaiia/mar-de-beleza-system/internal/httperr"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/models"
)

// Conflict descreve a colisão encontrada, com a janela do agendamento
// existente para a mensagem ao usuário.
type Conflict struct {
	ProfessionalID uint
	AppointmentID  uint
	Existing       Window
}

func (c *Conflict) Error() error {
	return httperr.ErrSchedulingConflict(fmt.Sprintf(
		"Conflito de horário: a profissional já tem um agendamento das %s às %s",
		c.Existing.Start.Format("15:04"),
		c.Existing.End.Format("15:04"),
	))
}

// FindConflict compara a janela proposta para uma profissional com os
// agendamentos ativos dela no mesmo dia.
//
// excludeID ignora o próprio agendamento durante um update (0 = nenhum).
// A avaliação segue a ordem de inserção dos candidatos e para na primeira
// colisão.
func FindConflict(
	professionalID uint,
	proposed Window,
	candidates []models.Appointment,
	excludeID uint,
) *Conflict {

	for i := range candidates {
		existing := &candidates[i]

		if excludeID != 0 && existing.ID == excludeID {
			continue
		}
		if !Status(existing.Status).IsActive() {
			continue
		}

		window, ok := WindowFor(existing, professionalID)
		if !ok {
			continue
		}

		if proposed.Overlaps(window) {
			return &Conflict{
				ProfessionalID: professionalID,
				AppointmentID:  existing.ID,
				Existing:       window,
			}
		}
	}

	return nil
}
