package report

import (
	"testing"
	"time"

	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/catalog"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/partner"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/sale"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/stock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	coffeeSupplier  partner.Supplier
	machineSupplier partner.Supplier
	coffee          catalog.Product
	machine         catalog.Product
	customer        *partner.Customer
	sales           []sale.Sale
}

// builds one finalized sale (2x coffee, 1x machine), one finalized sale
// (1x coffee) and one sale still in progress
func buildFixture(t *testing.T) fixture {
	t.Helper()

	coffeeSupplier, err := partner.NewCoffeeSupplier("12345678000195", "Fazenda Alta", "", "", "arabica")
	require.NoError(t, err)
	machineSupplier, err := partner.NewMachineSupplier("98765432000110", "Macchine SRL", "", "", "Italy")
	require.NoError(t, err)

	coffee, err := catalog.NewCoffeeProduct("CAF-001", "Bourbon", decimal.NewFromInt(10),
		decimal.NewFromInt(25), time.Now(), coffeeSupplier.ID, catalog.CoffeeDetails{
			RecommendedProfile: catalog.TasteProfileSweetMild,
		})
	require.NoError(t, err)
	machine, err := catalog.NewMachineProduct("MAQ-001", "Espresso One", decimal.NewFromInt(400),
		decimal.NewFromInt(800), time.Now(), machineSupplier.ID)
	require.NoError(t, err)

	customer, err := partner.NewCustomer("Ana", "ana@example.com", "secret123",
		decimal.NewFromInt(10000), catalog.TasteProfileSweetMild)
	require.NoError(t, err)

	ledger := stock.NewLedger()
	for _, p := range []*catalog.Product{coffee, machine} {
		_, err := ledger.Register(p.ID, 100)
		require.NoError(t, err)
	}

	finalize := func(items map[*catalog.Product]int) sale.Sale {
		s, err := sale.NewSale(customer.ID, customer.Name)
		require.NoError(t, err)
		for p, qty := range items {
			require.NoError(t, s.AddProduct(p, qty))
		}
		require.NoError(t, s.Finalize(customer, ledger))
		return *s
	}

	first := finalize(map[*catalog.Product]int{coffee: 2, machine: 1})
	second := finalize(map[*catalog.Product]int{coffee: 1})

	open, err := sale.NewSale(customer.ID, customer.Name)
	require.NoError(t, err)
	require.NoError(t, open.AddProduct(coffee, 50))

	return fixture{
		coffeeSupplier:  *coffeeSupplier,
		machineSupplier: *machineSupplier,
		coffee:          *coffee,
		machine:         *machine,
		customer:        customer,
		sales:           []sale.Sale{first, second, *open},
	}
}

func TestBuildFinalizedSalesReport(t *testing.T) {
	f := buildFixture(t)

	report := BuildFinalizedSalesReport(f.sales)

	require.Len(t, report.Lines, 2, "in-progress sales are excluded")
	// 2*25 + 800 + 1*25 = 875
	assert.Equal(t, "875", report.TotalRevenue.String())
	assert.Equal(t, "Ana", report.Lines[0].CustomerName)
	assert.NotNil(t, report.Lines[0].CompletedAt)
}

func TestBuildFinalizedSalesReportEmpty(t *testing.T) {
	report := BuildFinalizedSalesReport(nil)
	assert.Empty(t, report.Lines)
	assert.True(t, report.TotalRevenue.IsZero())
}

func TestBuildTopProducts(t *testing.T) {
	f := buildFixture(t)
	products := []catalog.Product{f.coffee, f.machine}

	t.Run("coffee ranking counts only coffees", func(t *testing.T) {
		ranking := BuildTopProducts(f.sales, products, catalog.ProductKindCoffee)
		require.Len(t, ranking, 1)
		assert.Equal(t, f.coffee.ID, ranking[0].ProductID)
		assert.Equal(t, 3, ranking[0].UnitsSold, "open sale is not counted")
	})

	t.Run("machine ranking counts only machines", func(t *testing.T) {
		ranking := BuildTopProducts(f.sales, products, catalog.ProductKindMachine)
		require.Len(t, ranking, 1)
		assert.Equal(t, f.machine.ID, ranking[0].ProductID)
		assert.Equal(t, 1, ranking[0].UnitsSold)
	})

	t.Run("ordered by units sold descending", func(t *testing.T) {
		ranking := BuildTopProducts(f.sales, products, catalog.ProductKindCoffee)
		for i := 1; i < len(ranking); i++ {
			assert.GreaterOrEqual(t, ranking[i-1].UnitsSold, ranking[i].UnitsSold)
		}
	})
}

func TestBuildTopSuppliers(t *testing.T) {
	f := buildFixture(t)
	products := []catalog.Product{f.coffee, f.machine}
	suppliers := []partner.Supplier{f.coffeeSupplier, f.machineSupplier}

	ranking := BuildTopSuppliers(f.sales, products, suppliers)

	require.Len(t, ranking, 2)
	assert.Equal(t, f.coffeeSupplier.ID, ranking[0].SupplierID, "coffee supplier sold 3 units")
	assert.Equal(t, 3, ranking[0].UnitsSold)
	assert.Equal(t, f.machineSupplier.ID, ranking[1].SupplierID)
	assert.Equal(t, 1, ranking[1].UnitsSold)
	assert.Equal(t, "12345678000195", ranking[0].CNPJ)
}
