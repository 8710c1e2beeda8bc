// Package database opens GORM connections for the database-backed warehouse.
//
// Connect supports MySQL for deployments and SQLite for the local warehouse
// simulator and tests. The inspector helpers read table columns so the
// integrity check can confirm the warehouse table has the expected shape.
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//	missing, err := database.MissingColumns(db, "warehouse_stock", []string{"product_id", "quantity"})
package database
