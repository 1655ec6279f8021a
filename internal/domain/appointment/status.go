package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled   Status = "SCHEDULED"
	StatusConfirmed   Status = "CONFIRMED"
	StatusDone        Status = "DONE"
	StatusCanceled    Status = "CANCELED"
	StatusNoShow      Status = "NO_SHOW"
	StatusRescheduled Status = "RESCHEDULED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusDone,
		StatusCanceled, StatusNoShow, StatusRescheduled:
		return true
	}
	return false
}

// IsActive diz se o agendamento ocupa a agenda da profissional.
// Apenas CANCELED libera o horário.
func (s Status) IsActive() bool {
	return s != StatusCanceled
}

// CanReceivePayment: só agendamentos agendados ou confirmados podem ser
// concluídos com registro de pagamento.
func (s Status) CanReceivePayment() bool {
	return s == StatusScheduled || s == StatusConfirmed
}

func InitialStatus() Status {
	return StatusScheduled
}
