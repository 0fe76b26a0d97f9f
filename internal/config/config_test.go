package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_WorkingHours(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.validate())

	// Рабочий день заканчивается не позже 23:00: слот, оканчивающийся
	// ровно в полночь, невыразим во времени вида HH:MM
	cfg.Booking.CloseHour = 24
	assert.Error(t, cfg.validate())

	cfg.Booking.CloseHour = 23
	assert.NoError(t, cfg.validate())

	// Открытие должно быть строго раньше закрытия
	cfg.Booking.OpenHour = 23
	assert.Error(t, cfg.validate())

	cfg.Booking.OpenHour = -1
	assert.Error(t, cfg.validate())
}

func TestValidate_PendingTTL(t *testing.T) {
	cfg := defaultConfig()

	cfg.Booking.PendingTTLMinutes = 0
	assert.Error(t, cfg.validate())

	cfg.Booking.PendingTTLMinutes = 30
	assert.NoError(t, cfg.validate())
}

func TestValidate_Catalog(t *testing.T) {
	cfg := defaultConfig()
	cfg.Catalog.Services = []CatalogService{
		{ID: "classic", Name: "Classic", DurationMinutes: 60, Price: 3500},
		{ID: "classic", Name: "Duplicate", DurationMinutes: 60, Price: 3500},
	}
	assert.Error(t, cfg.validate())

	cfg.Catalog.Services = []CatalogService{
		{ID: "classic", Name: "Classic", DurationMinutes: 60, Price: -1},
	}
	assert.Error(t, cfg.validate())

	cfg.Catalog.Services = []CatalogService{
		{Name: "No ID", DurationMinutes: 60, Price: 3500},
	}
	assert.Error(t, cfg.validate())
}
