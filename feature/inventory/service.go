package inventory

import (
	"cached-inventory/core/stock"

	"go.uber.org/zap"
)

// Item is one entry of the stock listing.
type Item struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// Listing is the response of GET /stock.
type Listing struct {
	Total int    `json:"total"`
	Items []Item `json:"items"`
}

// Service handles stock operations.
type Service struct {
	cache  *stock.Cache
	logger *zap.Logger
}

// NewService creates a new inventory service.
func NewService(cache *stock.Cache, logger *zap.Logger) *Service {
	return &Service{cache: cache, logger: logger}
}

// Quantity returns the cached quantity of productID.
func (s *Service) Quantity(productID int) int {
	return s.cache.Quantity(productID)
}

// Retrieve takes amount units of productID out of stock.
func (s *Service) Retrieve(productID, amount int) (int, error) {
	return s.cache.Retrieve(productID, amount)
}

// Restock adds amount units of productID.
func (s *Service) Restock(productID, amount int) (int, error) {
	return s.cache.Restock(productID, amount)
}

// List returns every cached product in ascending id order.
func (s *Service) List() Listing {
	snap := s.cache.Snapshot()
	items := make([]Item, 0, len(snap))
	for _, id := range s.cache.ProductIDs() {
		qty, ok := snap[id]
		if !ok {
			// Added between the two reads.
			qty = s.cache.Quantity(id)
		}
		items = append(items, Item{ProductID: id, Quantity: qty})
	}
	return Listing{Total: len(items), Items: items}
}
