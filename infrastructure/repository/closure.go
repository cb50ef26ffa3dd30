package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vlima/reforma-manager-api/infrastructure/database/postgres"
	"github.com/vlima/reforma-manager-api/internal/domain"
)

const financialClosuresTable = "financial_closures fc"

// ClosureRepository dá acesso de leitura aos fechamentos financeiros. O motor
// de análise lê a coleção completa uma vez por requisição e filtra em memória.
type ClosureRepository interface {
	ListClosures(ctx context.Context) ([]*domain.FinancialClosure, error)
}

type closureRepository struct {
	conn *postgres.Connection
}

func NewClosureRepository(conn *postgres.Connection) ClosureRepository {
	return &closureRepository{conn: conn}
}

func (r *closureRepository) ListClosures(ctx context.Context) ([]*domain.FinancialClosure, error) {
	query, args, err := squirrel.
		Select("fc.id, fc.service_order_id, fc.created_at, fc.amount_received, fc.distributor_cost, fc.installer_cost, fc.extra_costs, fc.notes, fc.final_profit").
		From(financialClosuresTable).
		OrderBy("fc.created_at ASC").
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

	closures := make([]*domain.FinancialClosure, 0)
	for rows.Next() {
		closure := &domain.FinancialClosure{}
		var notes sql.NullString

		err := rows.Scan(
			&closure.ID,
			&closure.ServiceOrderID,
			&closure.CreatedAt,
			&closure.AmountReceived,
			&closure.DistributorCost,
			&closure.InstallerCost,
			&closure.ExtraCosts,
			&notes,
			&closure.FinalProfit,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear fechamento")
		}

		if notes.Valid {
			closure.Notes = &notes.String
		}

		closures = append(closures, closure)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return closures, nil
}
