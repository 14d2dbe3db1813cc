package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrined/proProjectWineStore/internal/models"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func testLogger() *slog.Logger {
	return slog.Default()
}

func TestCalculateCartPricesAndAvailability(t *testing.T) {
	repo := newFakeWinesRepo(
		&models.Wine{
			Id:            "w1",
			Name:          "Spätburgunder",
			Price:         19.9,
			Sale:          true,
			SalePrice:     floatPtr(15),
			StockStatus:   models.StockInStock,
			StockQuantity: intPtr(10),
		},
	)
	cs := NewCartService(repo, testLogger())

	result, err := cs.Calculate(context.Background(), &CartRequest{
		Items: []CartItem{
			{ProductID: "w1", Quantity: 2},
			{ProductID: "gone", Quantity: 1},
		},
	})
	require.NoError(t, err)

	require.Len(t, result.Items, 2)

	line := result.Items[0]
	assert.Equal(t, "w1", line.ProductID)
	assert.Equal(t, 15.0, line.UnitPrice)
	assert.Equal(t, 30.0, line.LineTotal)
	assert.True(t, line.Available)

	unknown := result.Items[1]
	assert.Equal(t, "gone", unknown.ProductID)
	assert.Equal(t, "Unknown Product", unknown.Name)
	assert.Equal(t, 0.0, unknown.LineTotal)
	assert.Equal(t, string(models.StockOutOfStock), unknown.StockStatus)
	assert.False(t, unknown.Available)

	assert.Equal(t, 30.0, result.Total)
	assert.False(t, result.AllAvailable)
}

func TestCalculateCartChecksEveryLine(t *testing.T) {
	repo := newFakeWinesRepo(
		&models.Wine{Id: "w1", Name: "A", Price: 10, StockStatus: models.StockOutOfStock},
		&models.Wine{Id: "w2", Name: "B", Price: 12, StockStatus: models.StockInStock, StockQuantity: intPtr(1)},
	)
	cs := NewCartService(repo, testLogger())

	result, err := cs.Calculate(context.Background(), &CartRequest{
		Items: []CartItem{
			{ProductID: "w1", Quantity: 1},
			{ProductID: "w2", Quantity: 1},
		},
	})
	require.NoError(t, err)

	// the unavailable first line must not stop the second from being priced
	require.Len(t, result.Items, 2)
	assert.False(t, result.Items[0].Available)
	assert.True(t, result.Items[1].Available)
	assert.Equal(t, 22.0, result.Total)
	assert.False(t, result.AllAvailable)
}

func TestCalculateCartSkipsLinesWithoutProductID(t *testing.T) {
	repo := newFakeWinesRepo(
		&models.Wine{Id: "w1", Name: "A", Price: 10, StockStatus: models.StockInStock, StockQuantity: intPtr(5)},
	)
	cs := NewCartService(repo, testLogger())

	result, err := cs.Calculate(context.Background(), &CartRequest{
		Items: []CartItem{
			{ProductID: "", Quantity: 2},
			{ProductID: "w1", Quantity: 1},
		},
	})
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	assert.Equal(t, "w1", result.Items[0].ProductID)
	assert.Equal(t, 10.0, result.Total)
	assert.False(t, result.AllAvailable)
}

func TestCalculateCartInsufficientStock(t *testing.T) {
	repo := newFakeWinesRepo(
		&models.Wine{Id: "w1", Name: "A", Price: 10, StockStatus: models.StockInStock, StockQuantity: intPtr(2)},
	)
	cs := NewCartService(repo, testLogger())

	result, err := cs.Calculate(context.Background(), &CartRequest{
		Items: []CartItem{{ProductID: "w1", Quantity: 3}},
	})
	require.NoError(t, err)

	// the line is still priced even though it cannot be fulfilled
	require.Len(t, result.Items, 1)
	assert.False(t, result.Items[0].Available)
	assert.Equal(t, 30.0, result.Items[0].LineTotal)
	assert.False(t, result.AllAvailable)
}

func TestCalculateCartRejectsInvalidQuantity(t *testing.T) {
	cs := NewCartService(newFakeWinesRepo(), testLogger())

	_, err := cs.Calculate(context.Background(), &CartRequest{
		Items: []CartItem{{ProductID: "w1", Quantity: 0}},
	})
	assert.Error(t, err)
}

func TestCalculateCartEmptyCart(t *testing.T) {
	cs := NewCartService(newFakeWinesRepo(), testLogger())

	result, err := cs.Calculate(context.Background(), &CartRequest{Items: []CartItem{}})
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Equal(t, 0.0, result.Total)
	assert.True(t, result.AllAvailable)
}
