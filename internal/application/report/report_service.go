package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/catalog"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/partner"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/report"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/sale"
)

// ReportService assembles reports from the sale, catalog, and partner
// repositories. Reports are computed on demand and never persisted.
type ReportService struct {
	saleRepo     sale.SaleRepository
	productRepo  catalog.ProductRepository
	supplierRepo partner.SupplierRepository
}

// NewReportService creates a new ReportService
func NewReportService(saleRepo sale.SaleRepository, productRepo catalog.ProductRepository, supplierRepo partner.SupplierRepository) *ReportService {
	return &ReportService{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
	}
}

// FinalizedSales returns every finalized sale plus the total revenue
func (s *ReportService) FinalizedSales(ctx context.Context) (*report.FinalizedSalesReport, error) {
	sales, err := s.saleRepo.FindFinalized(ctx)
	if err != nil {
		return nil, err
	}
	result := report.BuildFinalizedSalesReport(sales)
	return &result, nil
}

// TopProducts ranks products of one kind by units sold in finalized sales
func (s *ReportService) TopProducts(ctx context.Context, kind catalog.ProductKind) ([]report.ProductSales, error) {
	sales, err := s.saleRepo.FindFinalized(ctx)
	if err != nil {
		return nil, err
	}

	products, err := s.soldProducts(ctx, sales)
	if err != nil {
		return nil, err
	}
	return report.BuildTopProducts(sales, products, kind), nil
}

// TopSuppliers ranks suppliers by units of their products sold
func (s *ReportService) TopSuppliers(ctx context.Context) ([]report.SupplierSales, error) {
	sales, err := s.saleRepo.FindFinalized(ctx)
	if err != nil {
		return nil, err
	}

	products, err := s.soldProducts(ctx, sales)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{})
	suppliers := make([]partner.Supplier, 0)
	for i := range products {
		id := products[i].SupplierID
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		supplier, err := s.supplierRepo.FindByID(ctx, id)
		if err != nil {
			// products can outlive their supplier; skip the orphan
			continue
		}
		suppliers = append(suppliers, *supplier)
	}
	return report.BuildTopSuppliers(sales, products, suppliers), nil
}

// soldProducts fetches the catalog entries referenced by the sales' items
func (s *ReportService) soldProducts(ctx context.Context, sales []sale.Sale) ([]catalog.Product, error) {
	seen := make(map[uuid.UUID]struct{})
	ids := make([]uuid.UUID, 0)
	for i := range sales {
		for j := range sales[i].Items {
			id := sales[i].Items[j].ProductID
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return s.productRepo.FindByIDs(ctx, ids)
}
