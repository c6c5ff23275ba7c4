package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
)

const (
	salesTable = "sales s"
)

type SaleRepository interface {
	Aggregate(filters domain.MetricFilters) (*domain.SalesAggregate, error)
	GroupByChannel(filters domain.MetricFilters) ([]*domain.ChannelSales, error)
	GroupByStore(filters domain.MetricFilters) ([]*domain.StoreSales, error)
	ListPoints(filters domain.MetricFilters) ([]domain.SalePoint, error)
	ListExportRows(filters domain.MetricFilters, limit uint64) ([]*domain.ExportRow, error)
}

type saleRepository struct {
	conn postgres.Queryer
}

func NewSaleRepository(conn postgres.Queryer) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// saleConditions monta o filtro comum a todas as agregações: período
// fechado, apenas vendas COMPLETED e, opcionalmente, canal e loja.
func saleConditions(filters domain.MetricFilters) squirrel.And {
	conditions := squirrel.And{
		squirrel.GtOrEq{"s.created_at": filters.Start},
		squirrel.LtOrEq{"s.created_at": filters.End},
		squirrel.Eq{"s.sale_status_desc": domain.SaleStatusCompleted},
	}

	if filters.ChannelID != nil {
		conditions = append(conditions, squirrel.Eq{"s.channel_id": *filters.ChannelID})
	}

	if filters.StoreID != nil {
		conditions = append(conditions, squirrel.Eq{"s.store_id": *filters.StoreID})
	}

	return conditions
}

func (r *saleRepository) Aggregate(filters domain.MetricFilters) (*domain.SalesAggregate, error) {
	query, args, err := squirrel.
		Select(
			"COALESCE(SUM(s.total_amount), 0)",
			"COUNT(s.id)",
			"COALESCE(AVG(s.total_amount), 0)",
			"COALESCE(SUM(s.total_discount), 0)",
			"COALESCE(SUM(s.delivery_fee), 0)",
			"COALESCE(AVG(s.production_seconds), 0)",
			"COALESCE(AVG(s.delivery_seconds), 0)",
		).
		From(salesTable).
		Where(saleConditions(filters)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	aggregate := &domain.SalesAggregate{}
	err = r.conn.QueryRow(query, args...).Scan(
		&aggregate.TotalRevenue,
		&aggregate.TotalOrders,
		&aggregate.AverageTicket,
		&aggregate.TotalDiscount,
		&aggregate.TotalDeliveryFee,
		&aggregate.AvgProductionSecs,
		&aggregate.AvgDeliverySecs,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar vendas: %w", err)
	}

	return aggregate, nil
}

func (r *saleRepository) GroupByChannel(filters domain.MetricFilters) ([]*domain.ChannelSales, error) {
	query, args, err := squirrel.
		Select(
			"s.channel_id",
			"COALESCE(c.name, 'Unknown')",
			"COALESCE(c.type, 'Unknown')",
			"SUM(s.total_amount)",
			"COUNT(s.id)",
			"AVG(s.total_amount)",
		).
		From(salesTable).
		LeftJoin("channels c ON c.id = s.channel_id").
		Where(saleConditions(filters)).
		GroupBy("s.channel_id", "c.name", "c.type").
		OrderBy("SUM(s.total_amount) DESC").
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

	channels := make([]*domain.ChannelSales, 0)
	for rows.Next() {
		item := &domain.ChannelSales{}
		err := rows.Scan(
			&item.ChannelID,
			&item.ChannelName,
			&item.ChannelType,
			&item.TotalRevenue,
			&item.TotalOrders,
			&item.AverageTicket,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas por canal: %w", err)
		}
		channels = append(channels, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return channels, nil
}

func (r *saleRepository) GroupByStore(filters domain.MetricFilters) ([]*domain.StoreSales, error) {
	query, args, err := squirrel.
		Select(
			"s.store_id",
			"COALESCE(st.name, 'Unknown')",
			"COALESCE(st.city, 'Unknown')",
			"SUM(s.total_amount)",
			"COUNT(s.id)",
			"AVG(s.total_amount)",
		).
		From(salesTable).
		LeftJoin("stores st ON st.id = s.store_id").
		Where(saleConditions(filters)).
		GroupBy("s.store_id", "st.name", "st.city").
		OrderBy("SUM(s.total_amount) DESC").
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

	stores := make([]*domain.StoreSales, 0)
	for rows.Next() {
		item := &domain.StoreSales{}
		err := rows.Scan(
			&item.StoreID,
			&item.StoreName,
			&item.City,
			&item.TotalRevenue,
			&item.TotalOrders,
			&item.AverageTicket,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas por loja: %w", err)
		}
		stores = append(stores, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stores, nil
}

// ListPoints devolve a projeção mínima (data, valor) das vendas do período,
// em ordem crescente de criação, para os agrupamentos feitos em memória.
func (r *saleRepository) ListPoints(filters domain.MetricFilters) ([]domain.SalePoint, error) {
	query, args, err := squirrel.
		Select("s.created_at", "s.total_amount").
		From(salesTable).
		Where(saleConditions(filters)).
		OrderBy("s.created_at ASC").
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

	points := make([]domain.SalePoint, 0)
	for rows.Next() {
		var point domain.SalePoint
		if err := rows.Scan(&point.CreatedAt, &point.TotalAmount); err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas: %w", err)
		}
		points = append(points, point)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return points, nil
}

// ListExportRows devolve as linhas achatadas (venda × item) do export.
// O limite é aplicado sobre as vendas, não sobre as linhas resultantes:
// cada venda expande para uma linha por item.
func (r *saleRepository) ListExportRows(filters domain.MetricFilters, limit uint64) ([]*domain.ExportRow, error) {
	cappedSales := squirrel.
		Select("*").
		From(salesTable).
		Where(saleConditions(filters)).
		OrderBy("s.created_at DESC").
		Limit(limit)

	query, args, err := squirrel.
		Select(
			"s.id",
			"s.created_at",
			"c.name",
			"st.name",
			"s.customer_name",
			"p.name",
			"cat.name",
			"ps.quantity",
			"ps.base_price",
			"ps.total_price",
			"s.total_discount",
			"s.delivery_fee",
			"s.total_amount",
			"s.production_seconds",
			"s.delivery_seconds",
			"s.sale_status_desc",
		).
		FromSelect(cappedSales, "s").
		Join("product_sales ps ON ps.sale_id = s.id").
		LeftJoin("channels c ON c.id = s.channel_id").
		LeftJoin("stores st ON st.id = s.store_id").
		LeftJoin("products p ON p.id = ps.product_id").
		LeftJoin("categories cat ON cat.id = p.category_id").
		OrderBy("s.created_at DESC", "s.id DESC", "ps.id ASC").
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

	exportRows := make([]*domain.ExportRow, 0)
	for rows.Next() {
		row, err := scanExportRow(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear linha de export: %w", err)
		}
		exportRows = append(exportRows, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return exportRows, nil
}

func scanExportRow(rows *sql.Rows) (*domain.ExportRow, error) {
	row := &domain.ExportRow{}
	err := rows.Scan(
		&row.SaleID,
		&row.CreatedAt,
		&row.ChannelName,
		&row.StoreName,
		&row.CustomerName,
		&row.ProductName,
		&row.CategoryName,
		&row.Quantity,
		&row.BasePrice,
		&row.TotalPrice,
		&row.TotalDiscount,
		&row.DeliveryFee,
		&row.TotalAmount,
		&row.ProductionSeconds,
		&row.DeliverySeconds,
		&row.Status,
	)
	if err != nil {
		return nil, err
	}

	return row, nil
}
