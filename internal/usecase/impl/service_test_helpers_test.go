package impl

import (
	"io"
	"log/slog"

	"arbolitos/internal/domain/entity"
)

// newDiscardLogger returns a logger that drops everything, so tests stay quiet.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testSettings returns a pricing singleton with known values for tests.
func testSettings() *entity.Settings {
	return &entity.Settings{
		AdoptionPrice:  35,
		WaterPrice:     10,
		WelcomeCredits: 10,
		Currency:       "ARS",
		Packages: []entity.CreditPackage{
			{ID: "basico", Name: "Básico", Credits: 25, Bonus: 3},
			{ID: "premium", Name: "Premium", Credits: 60, Bonus: 10},
		},
	}
}
