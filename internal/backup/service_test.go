package backup

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atlas-erp/atlas-erp/internal/customers"
	"github.com/atlas-erp/atlas-erp/internal/inventory"
	"github.com/atlas-erp/atlas-erp/internal/invoice"
	"github.com/atlas-erp/atlas-erp/internal/purchases"
	"github.com/atlas-erp/atlas-erp/internal/sales"
	"github.com/atlas-erp/atlas-erp/internal/settings"
	"github.com/atlas-erp/atlas-erp/internal/storage"
)

type fixture struct {
	backup    *Service
	customers *customers.Service
	products  *inventory.Service
	sales     *sales.Service
	purchases *purchases.Service
	settings  *settings.Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := storage.NewMemoryStore()

	customerSvc := customers.NewService(customers.NewRepository(store, logger), logger)
	productSvc := inventory.NewService(inventory.NewRepository(store, logger), logger)
	saleSvc := sales.NewService(sales.NewRepository(store, logger), productSvc, customerSvc, logger)
	purchaseSvc := purchases.NewService(purchases.NewRepository(store, logger), productSvc, logger)
	settingsSvc := settings.NewService(store, logger)
	backupSvc := NewService(store, customerSvc, productSvc, saleSvc, purchaseSvc, settingsSvc, logger)

	return fixture{
		backup:    backupSvc,
		customers: customerSvc,
		products:  productSvc,
		sales:     saleSvc,
		purchases: purchaseSvc,
		settings:  settingsSvc,
	}
}

func (f fixture) seed(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	customer, err := f.customers.Create(ctx, customers.CreateCustomerRequest{Name: "Ahmed"})
	require.NoError(t, err)
	product, err := f.products.Create(ctx, inventory.CreateProductRequest{
		Name: "rice", CostPrice: 10, SellingPrice: 20, Quantity: 50,
	})
	require.NoError(t, err)

	_, err = f.sales.Create(ctx, sales.CreateSaleRequest{
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		Items:         []sales.CreateSaleLineRequest{{ProductID: product.ID, Quantity: 2, UnitPrice: 20}},
		PaymentMethod: invoice.PaymentCash,
	})
	require.NoError(t, err)

	_, err = f.purchases.Create(ctx, purchases.CreatePurchaseRequest{
		SupplierName:  "Noor Wholesale",
		Items:         []purchases.CreatePurchaseLineRequest{{ProductID: product.ID, Quantity: 5, UnitPrice: 11}},
		PaymentMethod: invoice.PaymentCash,
	})
	require.NoError(t, err)

	name := "Salem Trading"
	_, err = f.settings.Update(ctx, settings.UpdateSettingsRequest{CompanyName: &name})
	require.NoError(t, err)
}

func TestExportImportRoundTrip(t *testing.T) {
	src := newFixture(t)
	src.seed(t)
	ctx := context.Background()

	raw, err := src.backup.ExportJSON(ctx)
	require.NoError(t, err)

	dst := newFixture(t)
	require.NoError(t, dst.backup.Import(ctx, raw))

	require.Equal(t, src.customers.List(ctx), dst.customers.List(ctx), "ids and stamps survive the round trip")
	require.Equal(t, src.products.List(ctx), dst.products.List(ctx))
	require.Equal(t, src.sales.List(ctx), dst.sales.List(ctx))
	require.Equal(t, src.purchases.List(ctx), dst.purchases.List(ctx))
	require.Equal(t, src.settings.Get(ctx), dst.settings.Get(ctx))
}

func TestImportMalformedLeavesStateUntouched(t *testing.T) {
	f := newFixture(t)
	f.seed(t)
	ctx := context.Background()

	before := f.customers.List(ctx)
	err := f.backup.Import(ctx, []byte(`{"customers": [{]`))
	require.Error(t, err)
	require.Equal(t, before, f.customers.List(ctx))
}

func TestImportSubsetKeepsOtherCollections(t *testing.T) {
	f := newFixture(t)
	f.seed(t)
	ctx := context.Background()

	productsBefore := f.products.List(ctx)

	doc := map[string]any{
		"customers": []map[string]any{{"id": "customer_1", "name": "Imported"}},
	}
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, f.backup.Import(ctx, raw))

	imported := f.customers.List(ctx)
	require.Len(t, imported, 1)
	require.Equal(t, "Imported", imported[0].Name)
	require.Equal(t, productsBefore, f.products.List(ctx), "absent keys leave their collections alone")
}

func TestExportDocumentShape(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	raw, err := f.backup.ExportJSON(context.Background())
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	for _, key := range []string{"customers", "products", "sales", "purchases", "settings", "exportDate"} {
		require.Contains(t, doc, key)
	}
}
