package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vlima/reforma-manager-api/infrastructure/database/postgres"
)

const engineStateTable = "engine_state es"

// EngineStateRepository persiste o estado chave-valor de posse do motor de
// análise: a entrada de cache dos insights de inferência e o marcador de
// rate-limit. O formato dos valores é opaco para o repositório.
type EngineStateRepository interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

type engineStateRepository struct {
	conn *postgres.Connection
}

func NewEngineStateRepository(conn *postgres.Connection) EngineStateRepository {
	return &engineStateRepository{conn: conn}
}

func (r *engineStateRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args, err := squirrel.
		Select("es.value").
		From(engineStateTable).
		Where(squirrel.Eq{"es.key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, false, errors.Wrap(err, "erro ao construir a query")
	}

	var value []byte
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, errors.Wrap(err, "erro ao ler estado do motor")
	}

	return value, true, nil
}

func (r *engineStateRepository) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("engine_state").
		Columns("key", "value").
		Values(key, value).
		Suffix(`
			ON CONFLICT (key) DO UPDATE SET
				value = EXCLUDED.value,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return errors.Wrapf(pqErr, "erro no banco de dados (código: %s)", pqErr.Code)
		}
		return errors.Wrap(err, "erro ao gravar estado do motor")
	}

	return nil
}
