package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/rafaelmaiia/mar-de-beleza-system/internal/models"
)

type Logger struct {
	db *gorm.DB
}

var _ Sink = (*Logger)(nil)

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ev Event) error {

	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		UserID:    ev.UserID,
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		RequestID: ev.RequestID,
		Metadata:  metaJSON,
	}

	return l.db.Create(&entry).Error
}
