package purchases

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atlas-erp/atlas-erp/internal/inventory"
	"github.com/atlas-erp/atlas-erp/internal/invoice"
	"github.com/atlas-erp/atlas-erp/internal/shared"
	"github.com/atlas-erp/atlas-erp/internal/storage"
)

type fixture struct {
	purchases *Service
	products  *inventory.Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := storage.NewMemoryStore()
	productSvc := inventory.NewService(inventory.NewRepository(store, logger), logger)
	purchaseSvc := NewService(NewRepository(store, logger), productSvc, logger)
	return fixture{purchases: purchaseSvc, products: productSvc}
}

func TestCreateReceivesStockAndMovesCost(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	product, err := f.products.Create(ctx, inventory.CreateProductRequest{
		Name: "rice", CostPrice: 10, SellingPrice: 15, Quantity: 4,
	})
	require.NoError(t, err)

	purchase, err := f.purchases.Create(ctx, CreatePurchaseRequest{
		SupplierName:  "Noor Wholesale",
		Items:         []CreatePurchaseLineRequest{{ProductID: product.ID, Quantity: 10, UnitPrice: 12}},
		PaymentMethod: invoice.PaymentBankTransfer,
	})
	require.NoError(t, err)
	require.InDelta(t, 120, purchase.Total, 0.001)
	require.InDelta(t, 120, purchase.Paid, 0.001, "nil paid captures the invoice fully settled")
	require.Zero(t, purchase.Remaining)
	require.Equal(t, "rice", purchase.Items[0].ProductName)

	got, err := f.products.Get(ctx, product.ID)
	require.NoError(t, err)
	require.Equal(t, 14, got.Quantity)
	require.InDelta(t, 12, got.CostPrice, 0.001, "purchase price becomes the new cost")
}

func TestCreateRejectsUnknownProduct(t *testing.T) {
	f := newFixture(t)

	_, err := f.purchases.Create(context.Background(), CreatePurchaseRequest{
		SupplierName:  "Noor Wholesale",
		Items:         []CreatePurchaseLineRequest{{ProductID: "product_missing", Quantity: 1, UnitPrice: 5}},
		PaymentMethod: invoice.PaymentCash,
	})
	require.True(t, shared.IsValidation(err))
}

func TestUpdateSettlement(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	product, err := f.products.Create(ctx, inventory.CreateProductRequest{
		Name: "rice", CostPrice: 10, SellingPrice: 15,
	})
	require.NoError(t, err)

	paid := 50.0
	purchase, err := f.purchases.Create(ctx, CreatePurchaseRequest{
		SupplierName:  "Noor Wholesale",
		Items:         []CreatePurchaseLineRequest{{ProductID: product.ID, Quantity: 10, UnitPrice: 12}},
		Paid:          &paid,
		PaymentMethod: invoice.PaymentCredit,
	})
	require.NoError(t, err)
	require.InDelta(t, 70, purchase.Remaining, 0.001)

	settled := 120.0
	updated, err := f.purchases.Update(ctx, purchase.ID, UpdatePurchaseRequest{Paid: &settled})
	require.NoError(t, err)
	require.Zero(t, updated.Remaining)

	_, err = f.purchases.Update(ctx, "purchase_missing", UpdatePurchaseRequest{Paid: &settled})
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestDeleteLeavesStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	product, err := f.products.Create(ctx, inventory.CreateProductRequest{
		Name: "rice", CostPrice: 10, SellingPrice: 15,
	})
	require.NoError(t, err)

	purchase, err := f.purchases.Create(ctx, CreatePurchaseRequest{
		SupplierName:  "Noor Wholesale",
		Items:         []CreatePurchaseLineRequest{{ProductID: product.ID, Quantity: 10, UnitPrice: 12}},
		PaymentMethod: invoice.PaymentCash,
	})
	require.NoError(t, err)

	require.True(t, f.purchases.Delete(ctx, purchase.ID))
	require.False(t, f.purchases.Delete(ctx, purchase.ID))

	got, err := f.products.Get(ctx, product.ID)
	require.NoError(t, err)
	require.Equal(t, 10, got.Quantity, "received stock is not clawed back")
}
