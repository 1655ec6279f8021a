package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/rafaelmaiia/mar-de-beleza-system/internal/domain/appointment"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Catálogo / referências
// --------------------------------------------------

func (r *AppointmentGormRepository) FindServicesByIDs(
	ctx context.Context,
	ids []uint,
) (map[uint]models.SalonService, error) {

	var services []models.SalonService
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&services).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]models.SalonService, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}
	return byID, nil
}

func (r *AppointmentGormRepository) FindClientByID(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *AppointmentGormRepository) FindProfessionalByID(
	ctx context.Context,
	id uint,
) (*models.Professional, error) {

	var professional models.Professional
	if err := r.db.WithContext(ctx).
		Preload("Specialties").
		First(&professional, id).Error; err != nil {
		return nil, err
	}
	return &professional, nil
}

// --------------------------------------------------
// Conflict query
// --------------------------------------------------

func (r *AppointmentGormRepository) FindActiveAppointmentsForProfessionalOnDay(
	ctx context.Context,
	professionalID uint,
	day time.Time,
) ([]models.Appointment, error) {

	startOfDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	itemSubquery := r.db.
		Model(&models.AppointmentItem{}).
		Select("appointment_id").
		Where("professional_id = ?", professionalID)

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN (?)", itemSubquery).
		Where("status <> ?", string(domain.StatusCanceled)).
		Where("start_time >= ? AND start_time < ?", startOfDay, endOfDay).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	// Preload fora do SELECT ... FOR UPDATE: só as linhas de appointment
	// precisam do lock.
	for i := range apps {
		if err := r.db.WithContext(ctx).
			Preload("SalonService").
			Where("appointment_id = ?", apps[i].ID).
			Find(&apps[i].Items).Error; err != nil {
			return nil, err
		}
	}

	return apps, nil
}

// --------------------------------------------------
// Appointment (escrita)
// --------------------------------------------------

func (r *AppointmentGormRepository) Save(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(ap).Error
}

func (r *AppointmentGormRepository) ReplaceItems(
	ctx context.Context,
	ap *models.Appointment,
	items []models.AppointmentItem,
) error {

	if err := r.db.WithContext(ctx).
		Where("appointment_id = ?", ap.ID).
		Delete(&models.AppointmentItem{}).Error; err != nil {
		return err
	}

	for i := range items {
		items[i].ID = 0
		items[i].AppointmentID = ap.ID
	}

	if len(items) > 0 {
		if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
			return err
		}
	}

	ap.Items = items
	return nil
}

func (r *AppointmentGormRepository) FindAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Items").
		Preload("Items.SalonService").
		Preload("Items.Professional").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ExistsByID(
	ctx context.Context,
	id uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AppointmentGormRepository) DeleteByID(
	ctx context.Context,
	id uint,
) error {

	if err := r.db.WithContext(ctx).
		Where("appointment_id = ?", id).
		Delete(&models.AppointmentItem{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Delete(&models.Appointment{}, id).Error
}

// --------------------------------------------------
// Listagem com filtros dinâmicos
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.Filter,
) ([]models.Appointment, int64, error) {

	filter.Normalize()

	query := r.db.WithContext(ctx).Model(&models.Appointment{})

	if filter.Date != nil {
		d := *filter.Date
		startOfDay := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
		query = query.Where(
			"start_time >= ? AND start_time < ?",
			startOfDay, startOfDay.Add(24*time.Hour),
		)
	}

	if filter.ProfessionalID != nil {
		itemSubquery := r.db.
			Model(&models.AppointmentItem{}).
			Select("appointment_id").
			Where("professional_id = ?", *filter.ProfessionalID)
		query = query.Where("id IN (?)", itemSubquery)
	}

	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []models.Appointment
	if err := query.
		Preload("Client").
		Preload("Items").
		Preload("Items.SalonService").
		Preload("Items.Professional").
		Order("start_time ASC").
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&apps).Error; err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

// --------------------------------------------------
// Transação
// --------------------------------------------------

func (r *AppointmentGormRepository) InTx(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewAppointmentGormRepository(tx))
	})
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
