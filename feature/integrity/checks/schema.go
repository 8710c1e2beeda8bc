package checks

import (
	"cached-inventory/core/database"
	"cached-inventory/core/warehouse"

	"gorm.io/gorm"
)

// SchemaReport describes the warehouse_stock table of the database driver.
type SchemaReport struct {
	Table          string   `json:"table"`
	Status         string   `json:"status"`
	MissingColumns []string `json:"missing_columns"`
	Error          string   `json:"error,omitempty"`
}

// CheckSchema verifies that the warehouse table has every column the database driver writes.
// A nil db means the HTTP driver is in use and the check is skipped.
func CheckSchema(db *gorm.DB) SchemaReport {
	table := warehouse.Stock{}.TableName()
	report := SchemaReport{Table: table, Status: StatusOK, MissingColumns: []string{}}

	if db == nil {
		report.Status = StatusSkipped
		return report
	}

	missing, err := database.MissingColumns(db, table, warehouse.StockColumns)
	if err != nil {
		report.Status = StatusError
		report.Error = err.Error()
		return report
	}

	report.MissingColumns = missing
	if len(missing) == len(warehouse.StockColumns) {
		report.Status = StatusMissing
	} else if len(missing) > 0 {
		report.Status = StatusError
	}
	return report
}
