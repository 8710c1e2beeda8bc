package warehouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Stock is a row of the warehouse_stock table.
type Stock struct {
	ProductID int       `gorm:"column:product_id;primaryKey;autoIncrement:false"`
	Quantity  int       `gorm:"column:quantity;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides the GORM default.
func (Stock) TableName() string {
	return "warehouse_stock"
}

// StockColumns lists the columns the warehouse_stock table must have.
var StockColumns = []string{"product_id", "quantity", "updated_at"}

// DBClient is a Client that reads and writes the warehouse_stock table directly.
type DBClient struct {
	db *gorm.DB
}

// NewDBClient creates a DBClient on db.
func NewDBClient(db *gorm.DB) *DBClient {
	return &DBClient{db: db}
}

// Migrate creates or updates the warehouse_stock table.
func (c *DBClient) Migrate(ctx context.Context) error {
	if err := c.db.WithContext(ctx).AutoMigrate(&Stock{}); err != nil {
		return fmt.Errorf("migrate warehouse_stock: %w", err)
	}
	return nil
}

// GetStock returns the stored quantity of productID.
func (c *DBClient) GetStock(ctx context.Context, productID int) (int, error) {
	var row Stock
	err := c.db.WithContext(ctx).Where("product_id = ?", productID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("%w: %d", ErrProductNotFound, productID)
	}
	if err != nil {
		return 0, fmt.Errorf("query warehouse stock %d: %w", productID, err)
	}
	return row.Quantity, nil
}

// UpdateStock upserts the quantity of productID.
func (c *DBClient) UpdateStock(ctx context.Context, productID, quantity int) error {
	row := Stock{ProductID: productID, Quantity: quantity, UpdatedAt: time.Now()}
	err := c.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("update warehouse stock %d: %w", productID, err)
	}
	return nil
}

// List returns every stored row ordered by product id.
func (c *DBClient) List(ctx context.Context) ([]Stock, error) {
	var rows []Stock
	if err := c.db.WithContext(ctx).Order("product_id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list warehouse stock: %w", err)
	}
	return rows, nil
}

// Ping checks the database connection.
func (c *DBClient) Ping(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// DB exposes the underlying connection for schema inspection.
func (c *DBClient) DB() *gorm.DB {
	return c.db
}
