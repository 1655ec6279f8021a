package models

type AppointmentItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint `gorm:"not null;index" json:"appointment_id"`

	SalonServiceID uint         `gorm:"not null" json:"salon_service_id"`
	SalonService   SalonService `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"salon_service"`

	ProfessionalID uint         `gorm:"not null;index" json:"professional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"professional"`

	// Preço cobrado no item; pode divergir do preço de tabela do serviço.
	Price float64 `json:"price"`
}
