package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/rafaelmaiia/mar-de-beleza-system/internal/domain/payment"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/models"
)

type PaymentGormRepository struct {
	db *gorm.DB
}

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Payment, error) {

	var p models.Payment
	if err := r.db.WithContext(ctx).
		Preload("Appointment").
		Preload("Appointment.Client").
		First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentGormRepository) Save(
	ctx context.Context,
	p *models.Payment,
) error {
	// O pagamento chega com Appointment pré-carregado; só a linha de
	// payments pode ser escrita aqui.
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(p).Error
}

func (r *PaymentGormRepository) List(
	ctx context.Context,
	filter domain.Filter,
) ([]models.Payment, int64, error) {

	filter.Normalize()

	query := r.db.WithContext(ctx).Model(&models.Payment{})

	if filter.StartDate != nil {
		d := *filter.StartDate
		query = query.Where("payment_date >= ?",
			time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location()))
	}

	if filter.EndDate != nil {
		d := *filter.EndDate
		endOfDay := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location()).
			Add(24 * time.Hour)
		query = query.Where("payment_date < ?", endOfDay)
	}

	if filter.ProfessionalID != nil {
		itemSubquery := r.db.
			Model(&models.AppointmentItem{}).
			Select("appointment_id").
			Where("professional_id = ?", *filter.ProfessionalID)
		query = query.Where("appointment_id IN (?)", itemSubquery)
	}

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payments []models.Payment
	if err := query.
		Preload("Appointment").
		Preload("Appointment.Client").
		Order("payment_date DESC").
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&payments).Error; err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}

// --------------------------------------------------
// Appointment (status forçado pelo pagamento)
// --------------------------------------------------

func (r *PaymentGormRepository) FindAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *PaymentGormRepository) UpdateAppointmentStatus(
	ctx context.Context,
	id uint,
	status string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *PaymentGormRepository) InTx(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewPaymentGormRepository(tx))
	})
}

// Compile-time check
var _ domain.Repository = (*PaymentGormRepository)(nil)
