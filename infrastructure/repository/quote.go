package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vlima/reforma-manager-api/infrastructure/database/postgres"
	"github.com/vlima/reforma-manager-api/internal/domain"
)

const quotesTable = "quotes q"

// QuoteRepository dá acesso de leitura aos orçamentos
type QuoteRepository interface {
	ListQuotes(ctx context.Context) ([]*domain.Quote, error)
}

type quoteRepository struct {
	conn *postgres.Connection
}

func NewQuoteRepository(conn *postgres.Connection) QuoteRepository {
	return &quoteRepository{conn: conn}
}

func (r *quoteRepository) ListQuotes(ctx context.Context) ([]*domain.Quote, error) {
	query, args, err := squirrel.
		Select("q.id, q.service_order_id, q.status, q.total_value, q.payment_method, q.created_at").
		From(quotesTable).
		OrderBy("q.created_at ASC").
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

	quotes := make([]*domain.Quote, 0)
	for rows.Next() {
		quote := &domain.Quote{}
		var paymentMethod sql.NullString

		err := rows.Scan(
			&quote.ID,
			&quote.ServiceOrderID,
			&quote.Status,
			&quote.TotalValue,
			&paymentMethod,
			&quote.CreatedAt,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear orçamento")
		}

		// Forma de pagamento ausente cai no padrão à vista
		quote.PaymentMethod = domain.PaymentMethod(paymentMethod.String)
		if quote.PaymentMethod == "" {
			quote.PaymentMethod = domain.PaymentMethodCash
		}

		quotes = append(quotes, quote)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return quotes, nil
}
