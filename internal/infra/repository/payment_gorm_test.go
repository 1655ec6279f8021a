package repository

import (
	"context"
	"strings"
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"github.com/rafaelmaiia/mar-de-beleza-system/internal/models"
)

// dryRunDB monta um gorm sem banco real que apenas gera SQL; capture
// registra cada statement emitido pelas callbacks de escrita.
func dryRunDB(t *testing.T, capture *[]string) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{
		DryRun:                 true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open dry-run db: %v", err)
	}

	record := func(tx *gorm.DB) {
		*capture = append(*capture, tx.Statement.SQL.String())
	}
	if err := db.Callback().Create().After("gorm:create").Register("record_sql", record); err != nil {
		t.Fatalf("failed to register create callback: %v", err)
	}
	if err := db.Callback().Update().After("gorm:update").Register("record_sql", record); err != nil {
		t.Fatalf("failed to register update callback: %v", err)
	}

	return db
}

func TestPaymentSaveWritesOnlyPaymentRow(t *testing.T) {
	var statements []string
	repo := NewPaymentGormRepository(dryRunDB(t, &statements))

	// Pagamento como chega dos use cases: com o Appointment pré-carregado.
	p := &models.Payment{
		ID:            5,
		AppointmentID: 1,
		Appointment: models.Appointment{
			ID:       1,
			ClientID: 2,
			Status:   "DONE",
		},
		TotalAmount: 130,
		Method:      "PIX",
		Status:      "PAID",
	}

	if err := repo.Save(context.Background(), p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if len(statements) == 0 {
		t.Fatal("nenhum statement capturado")
	}
	for _, sql := range statements {
		lower := strings.ToLower(sql)
		if strings.Contains(lower, "appointments") {
			t.Errorf("Save do pagamento escreveu na tabela de agendamentos: %s", sql)
		}
		if !strings.Contains(lower, "payments") {
			t.Errorf("statement inesperado fora de payments: %s", sql)
		}
	}
}
