package warehouse_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"cached-inventory/core/database"
	"cached-inventory/core/warehouse"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupSQLite(t *testing.T) *warehouse.DBClient {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	client := warehouse.NewDBClient(db)
	require.NoError(t, client.Migrate(context.Background()))
	return client
}

func setupMockDB(t *testing.T) (*warehouse.DBClient, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return warehouse.NewDBClient(gormDB), mock
}

func TestDBClient_UpdateThenGet(t *testing.T) {
	ctx := context.Background()
	client := setupSQLite(t)

	require.NoError(t, client.UpdateStock(ctx, 1, 10))
	qty, err := client.GetStock(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, qty)

	// Second update hits the conflict path.
	require.NoError(t, client.UpdateStock(ctx, 1, 4))
	qty, err = client.GetStock(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, qty)

	rows, err := client.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].ProductID)
}

func TestDBClient_GetStock_NotFound(t *testing.T) {
	client := setupSQLite(t)

	_, err := client.GetStock(context.Background(), 404)
	assert.ErrorIs(t, err, warehouse.ErrProductNotFound)
}

func TestDBClient_List_Ordered(t *testing.T) {
	ctx := context.Background()
	client := setupSQLite(t)
	for _, id := range []int{9, 2, 5} {
		require.NoError(t, client.UpdateStock(ctx, id, id*10))
	}

	rows, err := client.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []int{2, 5, 9}, []int{rows[0].ProductID, rows[1].ProductID, rows[2].ProductID})
	assert.Equal(t, 50, rows[1].Quantity)
}

func TestDBClient_Ping(t *testing.T) {
	client := setupSQLite(t)
	assert.NoError(t, client.Ping(context.Background()))
}

func TestDBClient_UpdateStock_MySQLUpsert(t *testing.T) {
	client, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `warehouse_stock` (`product_id`,`quantity`,`updated_at`) VALUES (?,?,?) ON DUPLICATE KEY UPDATE")).
		WithArgs(7, 3, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	require.NoError(t, client.UpdateStock(context.Background(), 7, 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBClient_UpdateStock_Error(t *testing.T) {
	client, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `warehouse_stock`").WillReturnError(errors.New("deadlock"))
	mock.ExpectRollback()

	err := client.UpdateStock(context.Background(), 7, 3)
	assert.ErrorContains(t, err, "update warehouse stock 7")
	assert.ErrorContains(t, err, "deadlock")
}

func TestDBClient_GetStock_MySQL(t *testing.T) {
	client, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `warehouse_stock` WHERE product_id = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "quantity", "updated_at"}).AddRow(7, 11, time.Now()))

	qty, err := client.GetStock(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 11, qty)
	assert.NoError(t, mock.ExpectationsWereMet())
}
