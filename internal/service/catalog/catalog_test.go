package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shvic/booking-service/internal/config"
)

func testCatalogConfig() config.CatalogConfig {
	return config.CatalogConfig{
		Services: []config.CatalogService{
			{ID: "classic", Name: "Classic", DurationMinutes: 60, Price: 3500},
			{ID: "signature", Name: "Signature", DurationMinutes: 90, Price: 6500},
			{ID: "elite", Name: "Elite", DurationMinutes: 120, Price: 12000},
		},
	}
}

func TestNew_EmptyCatalog(t *testing.T) {
	_, err := New(config.CatalogConfig{})
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestCatalog_List_PreservesOrder(t *testing.T) {
	catalog, err := New(testCatalogConfig())
	require.NoError(t, err)

	services := catalog.List()
	require.Len(t, services, 3)
	assert.Equal(t, "classic", services[0].ID)
	assert.Equal(t, "signature", services[1].ID)
	assert.Equal(t, "elite", services[2].ID)
}

func TestCatalog_List_ReturnsCopy(t *testing.T) {
	catalog, err := New(testCatalogConfig())
	require.NoError(t, err)

	services := catalog.List()
	services[0].Name = "mutated"

	again := catalog.List()
	assert.Equal(t, "Classic", again[0].Name)
}

func TestCatalog_GetByID(t *testing.T) {
	catalog, err := New(testCatalogConfig())
	require.NoError(t, err)

	svc, err := catalog.GetByID("signature")
	require.NoError(t, err)
	assert.Equal(t, "Signature", svc.Name)
	assert.Equal(t, 90, svc.DurationMinutes)
	assert.Equal(t, 6500.0, svc.Price)

	_, err = catalog.GetByID("unknown")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
