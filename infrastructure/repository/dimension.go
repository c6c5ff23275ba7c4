package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
)

const (
	channelsTable   = "channels"
	storesTable     = "stores"
	categoriesTable = "categories"
)

// DimensionRepository serve os dados de referência usados nos filtros do
// dashboard: canais, lojas ativas e categorias não removidas.
type DimensionRepository interface {
	ListChannels() ([]*domain.Channel, error)
	ListActiveStores() ([]*domain.Store, error)
	ListCategories() ([]*domain.Category, error)
}

type dimensionRepository struct {
	conn postgres.Queryer
}

func NewDimensionRepository(conn postgres.Queryer) DimensionRepository {
	return &dimensionRepository{
		conn: conn,
	}
}

func (r *dimensionRepository) ListChannels() ([]*domain.Channel, error) {
	query, args, err := squirrel.
		Select("id", "name", "type").
		From(channelsTable).
		OrderBy("name ASC").
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

	channels := make([]*domain.Channel, 0)
	for rows.Next() {
		channel := &domain.Channel{}
		if err := rows.Scan(&channel.ID, &channel.Name, &channel.Type); err != nil {
			return nil, fmt.Errorf("erro ao escanear canais: %w", err)
		}
		channels = append(channels, channel)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return channels, nil
}

func (r *dimensionRepository) ListActiveStores() ([]*domain.Store, error) {
	query, args, err := squirrel.
		Select("id", "name", "city", "state").
		From(storesTable).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("name ASC").
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

	stores := make([]*domain.Store, 0)
	for rows.Next() {
		store := &domain.Store{}
		if err := rows.Scan(&store.ID, &store.Name, &store.City, &store.State); err != nil {
			return nil, fmt.Errorf("erro ao escanear lojas: %w", err)
		}
		stores = append(stores, store)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stores, nil
}

func (r *dimensionRepository) ListCategories() ([]*domain.Category, error) {
	query, args, err := squirrel.
		Select("id", "name").
		From(categoriesTable).
		Where(squirrel.Eq{"deleted_at": nil}).
		OrderBy("name ASC").
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

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		category := &domain.Category{}
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, fmt.Errorf("erro ao escanear categorias: %w", err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return categories, nil
}
