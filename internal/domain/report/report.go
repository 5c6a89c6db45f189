package report

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/catalog"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/partner"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/sale"
	"github.com/shopspring/decimal"
)

// SalesReportLine is one finalized sale in the sales report
type SalesReportLine struct {
	SaleID       uuid.UUID       `json:"sale_id"`
	Number       string          `json:"number"`
	CustomerName string          `json:"customer_name"`
	Total        decimal.Decimal `json:"total"`
	CompletedAt  *time.Time      `json:"completed_at"`
}

// FinalizedSalesReport lists every finalized sale with the grand total
type FinalizedSalesReport struct {
	Lines        []SalesReportLine `json:"lines"`
	TotalRevenue decimal.Decimal   `json:"total_revenue"`
}

// ProductSales ranks a product by units sold across finalized sales
type ProductSales struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	UnitsSold int       `json:"units_sold"`
}

// SupplierSales ranks a supplier by units of its products sold
type SupplierSales struct {
	SupplierID uuid.UUID `json:"supplier_id"`
	Name       string    `json:"name"`
	CNPJ       string    `json:"cnpj"`
	UnitsSold  int       `json:"units_sold"`
}

// BuildFinalizedSalesReport computes the finalized sales report.
// Sales that are still in progress are ignored.
func BuildFinalizedSalesReport(sales []sale.Sale) FinalizedSalesReport {
	report := FinalizedSalesReport{
		Lines:        make([]SalesReportLine, 0),
		TotalRevenue: decimal.Zero,
	}
	for i := range sales {
		s := &sales[i]
		if !s.IsFinalized() {
			continue
		}
		report.Lines = append(report.Lines, SalesReportLine{
			SaleID:       s.ID,
			Number:       s.Number,
			CustomerName: s.CustomerName,
			Total:        s.TotalDue,
			CompletedAt:  s.CompletedAt,
		})
		report.TotalRevenue = report.TotalRevenue.Add(s.TotalDue)
	}
	return report
}

// BuildTopProducts ranks products of the given kind by units sold in
// finalized sales, most sold first. Ties break alphabetically so the
// ranking is deterministic.
func BuildTopProducts(sales []sale.Sale, products []catalog.Product, kind catalog.ProductKind) []ProductSales {
	byID := make(map[uuid.UUID]*catalog.Product, len(products))
	for i := range products {
		if products[i].Kind == kind {
			byID[products[i].ID] = &products[i]
		}
	}

	units := make(map[uuid.UUID]int)
	for i := range sales {
		s := &sales[i]
		if !s.IsFinalized() {
			continue
		}
		for j := range s.Items {
			item := &s.Items[j]
			if _, ok := byID[item.ProductID]; ok {
				units[item.ProductID] += item.Quantity
			}
		}
	}

	ranking := make([]ProductSales, 0, len(units))
	for id, sold := range units {
		ranking = append(ranking, ProductSales{
			ProductID: id,
			Name:      byID[id].Name,
			UnitsSold: sold,
		})
	}
	sort.Slice(ranking, func(a, b int) bool {
		if ranking[a].UnitsSold != ranking[b].UnitsSold {
			return ranking[a].UnitsSold > ranking[b].UnitsSold
		}
		return ranking[a].Name < ranking[b].Name
	})
	return ranking
}

// BuildTopSuppliers ranks suppliers by units of their products sold in
// finalized sales, most active first
func BuildTopSuppliers(sales []sale.Sale, products []catalog.Product, suppliers []partner.Supplier) []SupplierSales {
	productSupplier := make(map[uuid.UUID]uuid.UUID, len(products))
	for i := range products {
		productSupplier[products[i].ID] = products[i].SupplierID
	}
	supplierByID := make(map[uuid.UUID]*partner.Supplier, len(suppliers))
	for i := range suppliers {
		supplierByID[suppliers[i].ID] = &suppliers[i]
	}

	units := make(map[uuid.UUID]int)
	for i := range sales {
		s := &sales[i]
		if !s.IsFinalized() {
			continue
		}
		for j := range s.Items {
			item := &s.Items[j]
			supplierID, ok := productSupplier[item.ProductID]
			if !ok {
				continue
			}
			if _, known := supplierByID[supplierID]; known {
				units[supplierID] += item.Quantity
			}
		}
	}

	ranking := make([]SupplierSales, 0, len(units))
	for id, sold := range units {
		supplier := supplierByID[id]
		ranking = append(ranking, SupplierSales{
			SupplierID: id,
			Name:       supplier.Name,
			CNPJ:       supplier.CNPJ,
			UnitsSold:  sold,
		})
	}
	sort.Slice(ranking, func(a, b int) bool {
		if ranking[a].UnitsSold != ranking[b].UnitsSold {
			return ranking[a].UnitsSold > ranking[b].UnitsSold
		}
		return ranking[a].Name < ranking[b].Name
	})
	return ranking
}
