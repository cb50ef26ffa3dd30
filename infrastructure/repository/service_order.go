package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vlima/reforma-manager-api/infrastructure/database/postgres"
	"github.com/vlima/reforma-manager-api/internal/domain"
)

const serviceOrdersTable = "service_orders so"

// ServiceOrderRepository dá acesso de leitura às ordens de serviço
type ServiceOrderRepository interface {
	ListOrders(ctx context.Context) ([]*domain.ServiceOrder, error)
}

type serviceOrderRepository struct {
	conn *postgres.Connection
}

func NewServiceOrderRepository(conn *postgres.Connection) ServiceOrderRepository {
	return &serviceOrderRepository{conn: conn}
}

func (r *serviceOrderRepository) ListOrders(ctx context.Context) ([]*domain.ServiceOrder, error) {
	query, args, err := squirrel.
		Select("so.id, so.client_name, so.service_type, so.neighborhood, so.city, so.created_at, so.follow_up_count, so.status").
		From(serviceOrdersTable).
		OrderBy("so.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	orders := make([]*domain.ServiceOrder, 0)
	for rows.Next() {
		order := &domain.ServiceOrder{}
		var neighborhood, city sql.NullString

		err := rows.Scan(
			&order.ID,
			&order.ClientName,
			&order.ServiceType,
			&neighborhood,
			&city,
			&order.CreatedAt,
			&order.FollowUpCount,
			&order.Status,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear ordem de serviço")
		}

		order.Neighborhood = neighborhood.String
		order.City = city.String

		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return orders, nil
}
