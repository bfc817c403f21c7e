package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matematicodogreen/mhdelivery/internal/storage"
)

func newTestStore(t *testing.T) (*Store, storage.Backend) {
	t.Helper()
	backend := storage.NewMemory()
	s, err := New(context.Background(), backend)
	require.NoError(t, err)
	return s, backend
}

func TestSeedOnFirstRun(t *testing.T) {
	s, backend := newTestStore(t)

	ps := s.Products()
	require.Len(t, ps, 3)
	for _, p := range ps {
		assert.Equal(t, p.Stock > 0, p.InStock, "inStock must track stock for %s", p.Name)
	}

	st := s.Settings()
	assert.Equal(t, "MH Delivery", st.StoreName)
	assert.Equal(t, "20.00", st.MinOrderValue.StringFixed(2))
	assert.Equal(t, "7.00", st.DefaultDeliveryFee.StringFixed(2))
	require.Len(t, st.DeliveryZones, 2)
	assert.Equal(t, "Centro", st.DeliveryZones[0].Name)
	assert.Equal(t, "#D32F2F", st.Theme.PrimaryColorHex)

	// Seeds were persisted, so a second store loads them instead of reseeding.
	s2, err := New(context.Background(), backend)
	require.NoError(t, err)
	assert.Equal(t, s.Products(), s2.Products())
}

func TestProductCRUD(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	p, err := s.AddProduct(ctx, ProductInput{
		Name:        "Açúcar Cristal 1kg",
		Description: "Açúcar cristal peneirado",
		Price:       decimal.NewFromFloat(4.20),
		Category:    "Mercearia",
		Stock:       12,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.True(t, p.InStock)

	got, ok := s.Get(p.ID)
	require.True(t, ok)
	assert.Equal(t, p, got)

	// Setting stock to zero must flip inStock.
	up, err := s.UpdateProduct(ctx, p.ID, ProductInput{
		Name:     p.Name,
		Price:    p.Price,
		Category: p.Category,
		Stock:    0,
	})
	require.NoError(t, err)
	assert.False(t, up.InStock)
	assert.Equal(t, 0, up.Stock)

	del, err := s.DeleteProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, up.Name, del.Name)
	_, ok = s.Get(p.ID)
	assert.False(t, ok)

	_, err = s.UpdateProduct(ctx, p.ID, ProductInput{})
	assert.ErrorIs(t, err, ErrProductNotFound)
	_, err = s.DeleteProduct(ctx, p.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestNegativeStockInputIsFloored(t *testing.T) {
	s, _ := newTestStore(t)
	p, err := s.AddProduct(context.Background(), ProductInput{Name: "X", Stock: -5})
	require.NoError(t, err)
	assert.Equal(t, 0, p.Stock)
	assert.False(t, p.InStock)
}

func TestDecreaseStock(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	p, err := s.AddProduct(ctx, ProductInput{Name: "Y", Stock: 3})
	require.NoError(t, err)

	require.NoError(t, s.DecreaseStock(ctx, p.ID, 3))
	got, _ := s.Get(p.ID)
	assert.Equal(t, 0, got.Stock)
	assert.False(t, got.InStock)

	// Floors at zero even when asked for more than remains.
	require.NoError(t, s.DecreaseStock(ctx, p.ID, 10))
	got, _ = s.Get(p.ID)
	assert.Equal(t, 0, got.Stock)

	assert.ErrorIs(t, s.DecreaseStock(ctx, "nope", 1), ErrProductNotFound)
}

func TestFilter(t *testing.T) {
	s, _ := newTestStore(t)

	testCases := []struct {
		name     string
		filters  Filters
		expected []string
	}{
		{"no filters", Filters{}, []string{"Coca-Cola 2L", "Arroz Tipo 1 5kg", "Pão de Forma Tradicional"}},
		{"category all", Filters{Category: "all"}, []string{"Coca-Cola 2L", "Arroz Tipo 1 5kg", "Pão de Forma Tradicional"}},
		{"by category", Filters{Category: "Bebidas"}, []string{"Coca-Cola 2L"}},
		{"search in name case-insensitive", Filters{Search: "coca"}, []string{"Coca-Cola 2L"}},
		{"search in description", Filters{Search: "macio"}, []string{"Pão de Forma Tradicional"}},
		{"search and category", Filters{Search: "arroz", Category: "Mercearia"}, []string{"Arroz Tipo 1 5kg"}},
		{"no match", Filters{Search: "picanha"}, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := s.Filter(tc.filters)
			names := make([]string, 0, len(got))
			for _, p := range got {
				names = append(names, p.Name)
			}
			if tc.expected == nil {
				assert.Empty(t, names)
				return
			}
			assert.Equal(t, tc.expected, names)
		})
	}
}

func TestCategories(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	assert.Equal(t, []string{"Bebidas", "Mercearia", "Padaria"}, s.Categories())

	// Duplicates and empty categories are skipped.
	_, err := s.AddProduct(ctx, ProductInput{Name: "Guaraná 2L", Category: "Bebidas", Stock: 1})
	require.NoError(t, err)
	_, err = s.AddProduct(ctx, ProductInput{Name: "Avulso", Stock: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"Bebidas", "Mercearia", "Padaria"}, s.Categories())
}

func TestUpdateSettingsShallowMerge(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	name := "Mercadinho da Vila"
	min := decimal.NewFromFloat(35.00)
	st, err := s.UpdateSettings(ctx, SettingsPatch{StoreName: &name, MinOrderValue: &min})
	require.NoError(t, err)

	assert.Equal(t, "Mercadinho da Vila", st.StoreName)
	assert.Equal(t, "35.00", st.MinOrderValue.StringFixed(2))
	// Untouched fields keep their values.
	assert.Equal(t, "7.00", st.DefaultDeliveryFee.StringFixed(2))
	require.Len(t, st.DeliveryZones, 2)
	assert.Equal(t, "#D32F2F", st.Theme.PrimaryColorHex)
}

func TestDeliveryZoneCRUD(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	z, err := s.AddDeliveryZone(ctx, ZoneInput{Name: "Jardins", Fee: decimal.NewFromFloat(8.00)})
	require.NoError(t, err)
	assert.NotEmpty(t, z.ID)
	assert.Len(t, s.Settings().DeliveryZones, 3)

	z, err = s.UpdateDeliveryZone(ctx, z.ID, ZoneInput{Name: "Jardins II", Fee: decimal.NewFromFloat(9.50)})
	require.NoError(t, err)
	assert.Equal(t, "Jardins II", z.Name)

	require.NoError(t, s.DeleteDeliveryZone(ctx, z.ID))
	assert.Len(t, s.Settings().DeliveryZones, 2)

	_, err = s.UpdateDeliveryZone(ctx, z.ID, ZoneInput{})
	assert.ErrorIs(t, err, ErrZoneNotFound)
	assert.ErrorIs(t, s.DeleteDeliveryZone(ctx, z.ID), ErrZoneNotFound)
}

func TestSettingsPersistence(t *testing.T) {
	ctx := context.Background()
	s, backend := newTestStore(t)

	wa := "5511999999999"
	_, err := s.UpdateSettings(ctx, SettingsPatch{WhatsAppNumber: &wa})
	require.NoError(t, err)

	s2, err := New(ctx, backend)
	require.NoError(t, err)
	assert.Equal(t, "5511999999999", s2.Settings().WhatsAppNumber)
	// Defaults still present under the loaded snapshot.
	assert.Equal(t, "MH Delivery", s2.Settings().StoreName)
}
