package appointment

import (
	"context"
	"time"

	"github.com/rafaelmaiia/mar-de-beleza-system/internal/models"
)

type Repository interface {
	// -------- Catálogo / referências --------
	FindServicesByIDs(
		ctx context.Context,
		ids []uint,
	) (map[uint]models.SalonService, error)

	FindClientByID(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	FindProfessionalByID(
		ctx context.Context,
		id uint,
	) (*models.Professional, error)

	// -------- Conflict query --------
	// Agendamentos ativos (status ≠ CANCELED) da profissional cujo início
	// cai em [startOfDay, startOfDay+24h), com itens e serviços carregados.
	// Dentro de uma transação a leitura trava as linhas candidatas.
	FindActiveAppointmentsForProfessionalOnDay(
		ctx context.Context,
		professionalID uint,
		day time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (escrita) --------
	Save(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// ReplaceItems descarta os itens persistidos e grava o novo conjunto.
	ReplaceItems(
		ctx context.Context,
		ap *models.Appointment,
		items []models.AppointmentItem,
	) error

	FindAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	ExistsByID(
		ctx context.Context,
		id uint,
	) (bool, error)

	DeleteByID(
		ctx context.Context,
		id uint,
	) error

	// -------- Listagem --------
	ListAppointments(
		ctx context.Context,
		filter Filter,
	) ([]models.Appointment, int64, error)

	// -------- Transação --------
	// InTx executa fn dentro de uma transação; o Repository recebido por fn
	// opera sobre ela. Leitura de conflito e escrita formam uma unidade
	// atômica (check-then-act).
	InTx(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
