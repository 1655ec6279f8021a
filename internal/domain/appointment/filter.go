package appointment

import "time"

// Filter combina os critérios opcionais da listagem de agendamentos.
// Substitui a composição dinâmica de predicados por uma struct explícita
// consumida por um único query builder.
type Filter struct {
	Date           *time.Time
	ProfessionalID *uint
	ClientID       *uint
	Status         *Status

	Page     int
	PageSize int
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Normalize aplica os limites de paginação.
func (f *Filter) Normalize() {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 || f.PageSize > MaxPageSize {
		f.PageSize = DefaultPageSize
	}
}

func (f Filter) Offset() int {
	return (f.Page - 1) * f.PageSize
}
