package warehouse

import (
	"context"
	"errors"
	"fmt"
)

const (
	DriverHTTP     = "http"
	DriverDatabase = "database"
)

// ErrProductNotFound is returned by GetStock when the warehouse has no record of a product.
var ErrProductNotFound = errors.New("product not found in warehouse")

// Client defines the warehouse operations used for reconciliation.
type Client interface {
	// GetStock returns the warehouse quantity of productID.
	GetStock(ctx context.Context, productID int) (int, error)
	// UpdateStock sets the warehouse quantity of productID.
	UpdateStock(ctx context.Context, productID, quantity int) error
	// Ping checks that the warehouse is reachable.
	Ping(ctx context.Context) error
}

// StatusError is returned when the warehouse answers with an unexpected HTTP status.
type StatusError struct {
	Method string
	URL    string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("warehouse %s %s: status %d", e.Method, e.URL, e.Code)
	}
	return fmt.Sprintf("warehouse %s %s: status %d: %s", e.Method, e.URL, e.Code, e.Body)
}
