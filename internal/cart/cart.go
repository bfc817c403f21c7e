// Package cart holds the shopping cart lines and keeps their quantities
// reconciled against live catalog stock on every mutation.
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/matematicodogreen/mhdelivery/internal/catalog"
	"github.com/matematicodogreen/mhdelivery/internal/notice"
	"github.com/matematicodogreen/mhdelivery/internal/storage"
)

// Line is one cart entry. ID references the catalog product; name, price and
// image are snapshots taken when the line was created.
type Line struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Quantity int             `json:"quantity"`
}

// Catalog is the read-only view of inventory the cart reconciles against.
// Stock is authoritative there; the cart never caches it.
type Catalog interface {
	Get(id string) (catalog.Product, bool)
}

type Cart struct {
	mu      sync.Mutex
	backend storage.Backend
	catalog Catalog
	lines   []Line
}

// New loads any persisted cart lines from the backend.
func New(ctx context.Context, backend storage.Backend, cat Catalog) (*Cart, error) {
	c := &Cart{backend: backend, catalog: cat}
	b, ok, err := backend.Load(ctx, storage.KeyCart)
	if err != nil {
		return nil, err
	}
	if ok {
		if err := json.Unmarshal(b, &c.lines); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Lines returns a copy of the cart in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// AddToCart adds qty units of a product. A new line is rejected when stock
// is short; merging into an existing line clamps at current stock instead of
// rejecting, so as much of the request as inventory allows is kept. The
// returned notice always says which of the three happened.
func (c *Cart) AddToCart(ctx context.Context, productID string, qty int) (notice.Notice, error) {
	if qty < 1 {
		qty = 1
	}
	p, ok := c.catalog.Get(productID)
	if !ok {
		return notice.Notice{}, catalog.ErrProductNotFound
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if p.Stock < qty {
		return notice.Warn("Estoque insuficiente",
			fmt.Sprintf("Não há estoque suficiente para %s.", p.Name)), nil
	}

	for i := range c.lines {
		if c.lines[i].ID != productID {
			continue
		}
		want := c.lines[i].Quantity + qty
		if want > p.Stock {
			room := p.Stock - c.lines[i].Quantity
			c.lines[i].Quantity = p.Stock
			return notice.Warn("Estoque insuficiente",
					fmt.Sprintf("Apenas %d unidades de %s podem ser adicionadas.", room, p.Name)),
				c.persist(ctx)
		}
		c.lines[i].Quantity = want
		return notice.Info("Produto atualizado!",
			fmt.Sprintf("%s foi atualizado no carrinho", p.Name)), c.persist(ctx)
	}

	c.lines = append(c.lines, Line{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
		Quantity: qty,
	})
	return notice.Info("Produto adicionado!",
		fmt.Sprintf("%s foi adicionado ao carrinho", p.Name)), c.persist(ctx)
}

// UpdateQuantity sets a line to exactly qty. qty <= 0 removes the line;
// qty above live stock is clamped to stock with a notice.
func (c *Cart) UpdateQuantity(ctx context.Context, productID string, qty int) (notice.Notice, error) {
	if qty <= 0 {
		return c.RemoveFromCart(ctx, productID)
	}
	p, ok := c.catalog.Get(productID)
	if !ok {
		return notice.Notice{}, catalog.ErrProductNotFound
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ID != productID {
			continue
		}
		if qty > p.Stock {
			c.lines[i].Quantity = p.Stock
			return notice.Warn("Estoque insuficiente",
					fmt.Sprintf("Apenas %d unidades de %s disponíveis.", p.Stock, p.Name)),
				c.persist(ctx)
		}
		c.lines[i].Quantity = qty
		return notice.Notice{}, c.persist(ctx)
	}
	return notice.Notice{}, nil
}

// RemoveFromCart deletes the line if present; removing an absent line is a
// silent no-op.
func (c *Cart) RemoveFromCart(ctx context.Context, productID string) (notice.Notice, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, l := range c.lines {
		if l.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return notice.Info("Produto removido",
				fmt.Sprintf("%s foi removido do carrinho", l.Name)), c.persist(ctx)
		}
	}
	return notice.Notice{}, nil
}

// ClearCart empties the cart unconditionally and drops the snapshot.
func (c *Cart) ClearCart(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
	return c.backend.Delete(ctx, storage.KeyCart)
}

// GetTotalItems sums all line quantities.
func (c *Cart) GetTotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

// GetTotalPrice sums line price times quantity over all lines.
func (c *Cart) GetTotalPrice() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

func (c *Cart) persist(ctx context.Context) error {
	b, err := json.Marshal(c.lines)
	if err != nil {
		return err
	}
	return c.backend.Save(ctx, storage.KeyCart, b)
}
