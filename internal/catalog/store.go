// Package catalog owns the product list and store settings. It is the single
// source of truth for stock; the cart only reads from it.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/matematicodogreen/mhdelivery/internal/storage"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrZoneNotFound    = errors.New("delivery zone not found")
)

type Store struct {
	mu       sync.RWMutex
	backend  storage.Backend
	products []Product
	settings Settings
}

// New loads persisted state from the backend, seeding defaults on first run.
func New(ctx context.Context, backend storage.Backend) (*Store, error) {
	s := &Store{backend: backend}

	b, ok, err := backend.Load(ctx, storage.KeyProducts)
	if err != nil {
		return nil, err
	}
	if ok {
		if err := json.Unmarshal(b, &s.products); err != nil {
			return nil, err
		}
	} else {
		s.products = seedProducts()
		if err := s.persistProducts(ctx); err != nil {
			return nil, err
		}
	}

	// Settings are unmarshaled over the defaults so fields missing from an
	// older snapshot keep their default value.
	s.settings = defaultSettings()
	b, ok, err = backend.Load(ctx, storage.KeySettings)
	if err != nil {
		return nil, err
	}
	if ok {
		if err := json.Unmarshal(b, &s.settings); err != nil {
			return nil, err
		}
	} else if err := s.persistSettings(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// Products returns a copy of the catalog in insertion order.
func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) Get(id string) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Stock reads the live stock figure for a product.
func (s *Store) Stock(id string) (int, bool) {
	p, ok := s.Get(id)
	if !ok {
		return 0, false
	}
	return p.Stock, true
}

// Filter lists products matching the search term (name or description,
// case-insensitive) and category. Category "" or "all" matches everything.
func (s *Store) Filter(f Filters) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term := strings.ToLower(f.Search)
	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		if f.Category != "" && f.Category != "all" && p.Category != f.Category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Categories returns the distinct non-empty categories in catalog order.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool, len(s.products))
	var out []string
	for _, p := range s.products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}

func (s *Store) AddProduct(ctx context.Context, in ProductInput) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		Category:    in.Category,
		Stock:       normStock(in.Stock),
	}
	p.InStock = p.Stock > 0
	s.products = append(s.products, p)
	return p, s.persistProducts(ctx)
}

func (s *Store) UpdateProduct(ctx context.Context, id string, in ProductInput) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		p.Name = in.Name
		p.Description = in.Description
		p.Price = in.Price
		p.Image = in.Image
		p.Category = in.Category
		p.Stock = normStock(in.Stock)
		p.InStock = p.Stock > 0
		return *p, s.persistProducts(ctx)
	}
	return Product{}, ErrProductNotFound
}

// DeleteProduct removes a product and returns it, for the caller's notice.
func (s *Store) DeleteProduct(ctx context.Context, id string) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return p, s.persistProducts(ctx)
		}
	}
	return Product{}, ErrProductNotFound
}

// DecreaseStock subtracts qty units, flooring at zero, and recomputes
// InStock. Called by checkout once per ordered line.
func (s *Store) DecreaseStock(ctx context.Context, id string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		p.Stock -= qty
		if p.Stock < 0 {
			p.Stock = 0
		}
		p.InStock = p.Stock > 0
		return s.persistProducts(ctx)
	}
	return ErrProductNotFound
}

// Settings returns a copy of the settings record.
func (s *Store) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copySettings()
}

// UpdateSettings applies a shallow merge: only non-nil patch fields change.
func (s *Store) UpdateSettings(ctx context.Context, patch SettingsPatch) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.StoreName != nil {
		s.settings.StoreName = *patch.StoreName
	}
	if patch.WhatsAppNumber != nil {
		s.settings.WhatsAppNumber = *patch.WhatsAppNumber
	}
	if patch.MinOrderValue != nil {
		s.settings.MinOrderValue = *patch.MinOrderValue
	}
	if patch.DefaultDeliveryFee != nil {
		s.settings.DefaultDeliveryFee = *patch.DefaultDeliveryFee
	}
	if patch.Theme != nil {
		s.settings.Theme = *patch.Theme
	}
	return s.copySettings(), s.persistSettings(ctx)
}

func (s *Store) AddDeliveryZone(ctx context.Context, in ZoneInput) (DeliveryZone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	z := DeliveryZone{ID: uuid.NewString(), Name: in.Name, Fee: in.Fee}
	s.settings.DeliveryZones = append(s.settings.DeliveryZones, z)
	return z, s.persistSettings(ctx)
}

func (s *Store) UpdateDeliveryZone(ctx context.Context, id string, in ZoneInput) (DeliveryZone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.settings.DeliveryZones {
		if s.settings.DeliveryZones[i].ID != id {
			continue
		}
		z := &s.settings.DeliveryZones[i]
		z.Name = in.Name
		z.Fee = in.Fee
		return *z, s.persistSettings(ctx)
	}
	return DeliveryZone{}, ErrZoneNotFound
}

func (s *Store) DeleteDeliveryZone(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, z := range s.settings.DeliveryZones {
		if z.ID == id {
			s.settings.DeliveryZones = append(s.settings.DeliveryZones[:i], s.settings.DeliveryZones[i+1:]...)
			return s.persistSettings(ctx)
		}
	}
	return ErrZoneNotFound
}

func (s *Store) copySettings() Settings {
	cp := s.settings
	cp.DeliveryZones = make([]DeliveryZone, len(s.settings.DeliveryZones))
	copy(cp.DeliveryZones, s.settings.DeliveryZones)
	return cp
}

func (s *Store) persistProducts(ctx context.Context) error {
	b, err := json.Marshal(s.products)
	if err != nil {
		return err
	}
	return s.backend.Save(ctx, storage.KeyProducts, b)
}

func (s *Store) persistSettings(ctx context.Context) error {
	b, err := json.Marshal(s.settings)
	if err != nil {
		return err
	}
	return s.backend.Save(ctx, storage.KeySettings, b)
}

func normStock(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
