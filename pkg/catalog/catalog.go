package catalog

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/munteanooo/telegram-restaurant-bot/pkg/domain"
)

// Catalog is the read-only set of orderable items. It preserves menu order
// for rendering.
type Catalog struct {
	items map[string]domain.CatalogItem
	order []string
}

// New builds a catalog from the given items. Duplicate ids are rejected.
func New(items []domain.CatalogItem) (*Catalog, error) {
	c := &Catalog{items: make(map[string]domain.CatalogItem, len(items))}
	for _, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("catalog item with empty id")
		}
		if _, dup := c.items[item.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog item %q", item.ID)
		}
		if item.Price.IsNegative() {
			return nil, fmt.Errorf("catalog item %q has negative price", item.ID)
		}
		c.items[item.ID] = item
		c.order = append(c.order, item.ID)
	}
	return c, nil
}

// Default returns the restaurant's built-in menu.
func Default() *Catalog {
	c, err := New([]domain.CatalogItem{
		{ID: "pizza_margherita", Name: "Pizza Margherita", Price: decimal.NewFromFloat(25.0)},
		{ID: "salata_caesar", Name: "Salată Caesar", Price: decimal.NewFromFloat(18.0)},
		{ID: "supa_pui", Name: "Supă de pui", Price: decimal.NewFromFloat(12.0)},
		{ID: "friptura_vita", Name: "Friptură de vită", Price: decimal.NewFromFloat(35.0)},
		{ID: "cheesecake", Name: "Cheesecake", Price: decimal.NewFromFloat(15.0)},
	})
	if err != nil {
		panic(err) // static data, cannot fail
	}
	return c
}

type fileItem struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
}

type catalogFile struct {
	Items []fileItem `yaml:"items"`
}

// LoadFile reads a catalog from a YAML file, replacing the built-in menu.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var doc catalogFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	if len(doc.Items) == 0 {
		return nil, fmt.Errorf("catalog file %s defines no items", path)
	}

	items := make([]domain.CatalogItem, 0, len(doc.Items))
	for _, fi := range doc.Items {
		price, err := decimal.NewFromString(fi.Price)
		if err != nil {
			return nil, fmt.Errorf("invalid price for item %q: %w", fi.ID, err)
		}
		items = append(items, domain.CatalogItem{ID: fi.ID, Name: fi.Name, Price: price})
	}
	return New(items)
}

// Lookup resolves an item id. Returns domain.ErrItemNotFound when absent.
func (c *Catalog) Lookup(id string) (domain.CatalogItem, error) {
	item, ok := c.items[id]
	if !ok {
		return domain.CatalogItem{}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	return item, nil
}

// Has reports whether an item id exists.
func (c *Catalog) Has(id string) bool {
	_, ok := c.items[id]
	return ok
}

// Items returns the catalog in menu order.
func (c *Catalog) Items() []domain.CatalogItem {
	out := make([]domain.CatalogItem, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}
