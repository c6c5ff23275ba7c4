package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
)

const (
	dashboardsTable = "dashboards"
)

type DashboardRepository interface {
	Create(dashboard *domain.Dashboard) (*domain.Dashboard, error)
	ListByUser(userID int) ([]*domain.Dashboard, error)
	GetByID(id, userID int) (*domain.Dashboard, error)
	GetByShareToken(token string) (*domain.Dashboard, error)
	Update(dashboard *domain.Dashboard) error
	Delete(id, userID int) (bool, error)
	SetShareToken(id, userID int, token string) error
}

type dashboardRepository struct {
	conn postgres.Queryer
}

func NewDashboardRepository(conn postgres.Queryer) DashboardRepository {
	return &dashboardRepository{
		conn: conn,
	}
}

func (r *dashboardRepository) Create(dashboard *domain.Dashboard) (*domain.Dashboard, error) {
	query, args, err := squirrel.
		Insert(dashboardsTable).
		Columns("user_id", "name", "config").
		Values(dashboard.UserID, dashboard.Name, []byte(dashboard.Config)).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&dashboard.ID, &dashboard.CreatedAt, &dashboard.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar dashboard: %w", err)
	}

	return dashboard, nil
}

func (r *dashboardRepository) ListByUser(userID int) ([]*domain.Dashboard, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "name", "config", "share_token", "created_at", "updated_at").
		From(dashboardsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("updated_at DESC").
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

	dashboards := make([]*domain.Dashboard, 0)
	for rows.Next() {
		dashboard, err := scanDashboard(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear dashboards: %w", err)
		}
		dashboards = append(dashboards, dashboard)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return dashboards, nil
}

func (r *dashboardRepository) GetByID(id, userID int) (*domain.Dashboard, error) {
	return r.getOne(squirrel.Eq{"id": id, "user_id": userID})
}

func (r *dashboardRepository) GetByShareToken(token string) (*domain.Dashboard, error) {
	return r.getOne(squirrel.Eq{"share_token": token})
}

func (r *dashboardRepository) getOne(where squirrel.Eq) (*domain.Dashboard, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "name", "config", "share_token", "created_at", "updated_at").
		From(dashboardsTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	dashboard := &domain.Dashboard{}
	var config []byte
	err = r.conn.QueryRow(query, args...).Scan(
		&dashboard.ID,
		&dashboard.UserID,
		&dashboard.Name,
		&config,
		&dashboard.ShareToken,
		&dashboard.CreatedAt,
		&dashboard.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar dashboard: %w", err)
	}
	dashboard.Config = config

	return dashboard, nil
}

func (r *dashboardRepository) Update(dashboard *domain.Dashboard) error {
	query, args, err := squirrel.
		Update(dashboardsTable).
		Set("name", dashboard.Name).
		Set("config", []byte(dashboard.Config)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": dashboard.ID, "user_id": dashboard.UserID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar dashboard: %w", err)
	}

	return nil
}

func (r *dashboardRepository) Delete(id, userID int) (bool, error) {
	query, args, err := squirrel.
		Delete(dashboardsTable).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao remover dashboard: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return affected > 0, nil
}

func (r *dashboardRepository) SetShareToken(id, userID int, token string) error {
	query, args, err := squirrel.
		Update(dashboardsTable).
		Set("share_token", token).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao gravar token de compartilhamento: %w", err)
	}

	return nil
}

func scanDashboard(rows *sql.Rows) (*domain.Dashboard, error) {
	dashboard := &domain.Dashboard{}
	var config []byte

	err := rows.Scan(
		&dashboard.ID,
		&dashboard.UserID,
		&dashboard.Name,
		&config,
		&dashboard.ShareToken,
		&dashboard.CreatedAt,
		&dashboard.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	dashboard.Config = config

	return dashboard, nil
}
