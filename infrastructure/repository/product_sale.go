package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
)

const (
	productSalesTable = "product_sales ps"
)

type ProductSaleRepository interface {
	TopProducts(filters domain.MetricFilters, limit uint64) ([]*domain.TopProduct, error)
	GroupByCategory(filters domain.MetricFilters) ([]*domain.CategorySales, error)
}

type productSaleRepository struct {
	conn postgres.Queryer
}

func NewProductSaleRepository(conn postgres.Queryer) ProductSaleRepository {
	return &productSaleRepository{
		conn: conn,
	}
}

// TopProducts agrega itens vendidos por produto dentro do filtro de vendas.
// Produtos ou categorias removidos do catálogo degradam para "Unknown" em
// vez de derrubar a consulta.
func (r *productSaleRepository) TopProducts(filters domain.MetricFilters, limit uint64) ([]*domain.TopProduct, error) {
	query, args, err := squirrel.
		Select(
			"ps.product_id",
			"COALESCE(p.name, 'Unknown')",
			"COALESCE(cat.name, 'Unknown')",
			"SUM(ps.quantity)",
			"SUM(ps.total_price)",
		).
		From(productSalesTable).
		Join("sales s ON s.id = ps.sale_id").
		LeftJoin("products p ON p.id = ps.product_id").
		LeftJoin("categories cat ON cat.id = p.category_id").
		Where(saleConditions(filters)).
		GroupBy("ps.product_id", "p.name", "cat.name").
		OrderBy("SUM(ps.total_price) DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.TopProduct, 0)
	for rows.Next() {
		item := &domain.TopProduct{}
		err := rows.Scan(
			&item.ProductID,
			&item.ProductName,
			&item.CategoryName,
			&item.TotalQuantity,
			&item.TotalRevenue,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear top produtos: %w", err)
		}
		products = append(products, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

func (r *productSaleRepository) GroupByCategory(filters domain.MetricFilters) ([]*domain.CategorySales, error) {
	query, args, err := squirrel.
		Select(
			"COALESCE(cat.name, 'Uncategorized')",
			"SUM(ps.quantity)",
			"SUM(ps.total_price)",
		).
		From(productSalesTable).
		Join("sales s ON s.id = ps.sale_id").
		LeftJoin("products p ON p.id = ps.product_id").
		LeftJoin("categories cat ON cat.id = p.category_id").
		Where(saleConditions(filters)).
		GroupBy("COALESCE(cat.id, 0)", "cat.name").
		OrderBy("SUM(ps.total_price) DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	categories := make([]*domain.CategorySales, 0)
	for rows.Next() {
		item := &domain.CategorySales{}
		if err := rows.Scan(&item.Name, &item.Quantity, &item.Revenue); err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas por categoria: %w", err)
		}
		categories = append(categories, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return categories, nil
}
