package catalog

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

// Index holds the current known set of products and answers filter
// queries. Load replaces the set wholesale; queries never mutate it.
type Index struct {
	mu       sync.RWMutex
	products []Product
	byID     map[string]int
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{byID: make(map[string]int)}
}

// Load replaces the held product set. Feed order is preserved.
func (ix *Index) Load(products []Product) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	ix.products = make([]Product, len(products))
	copy(ix.products, products)
	ix.byID = make(map[string]int, len(products))
	for i, p := range ix.products {
		ix.byID[p.ID] = i
	}
}

// Get returns the product with the given id.
func (ix *Index) Get(id string) (Product, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	i, ok := ix.byID[id]
	if !ok {
		return Product{}, false
	}
	return ix.products[i], true
}

// SetStock overwrites the stock figure of one product. Used after a
// confirmed backend update; a no-op for unknown ids.
func (ix *Index) SetStock(id string, stock int) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if i, ok := ix.byID[id]; ok {
		ix.products[i].Stock = stock
	}
}

// All returns a copy of every held product.
func (ix *Index) All() []Product {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.snapshot(func(Product) bool { return true })
}

// FilterByText matches term case-insensitively against name and SKU.
// An empty term returns all products.
func (ix *Index) FilterByText(term string) []Product {
	folded := fold(term)
	if folded == "" {
		return ix.All()
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.snapshot(func(p Product) bool {
		return strings.Contains(fold(p.Name), folded) || strings.Contains(fold(p.SKU), folded)
	})
}

// FilterInStock returns products with stock above zero.
func (ix *Index) FilterInStock() []Product {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.snapshot(func(p Product) bool { return p.Stock > 0 })
}

// LowStock returns products with 0 < stock < LowStockThreshold.
func (ix *Index) LowStock() []Product {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.snapshot(func(p Product) bool {
		return p.Stock > 0 && p.Stock < LowStockThreshold
	})
}

// Len reports the number of held products.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.products)
}

// snapshot copies matching products; callers must hold at least a read lock.
func (ix *Index) snapshot(match func(Product) bool) []Product {
	result := make([]Product, 0, len(ix.products))
	for _, p := range ix.products {
		if match(p) {
			result = append(result, p)
		}
	}
	return result
}

func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
