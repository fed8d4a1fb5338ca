package sequence_repo

import (
	"context"
	"errors"

	"slot_reel/internal/model"
	"slot_reel/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table      = "reel_sequences"
	colName    = "name"
	colSymbols = "symbols"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewSequenceRepository(dbc *pgxpool.Pool) repository.SequenceRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// GetSequence - лента барабана по имени
func (r *repo) GetSequence(ctx context.Context, name string) ([]int, error) {
	query := psql.Select(colSymbols).
		From(table).
		Where(sq.Eq{colName: name})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var raw []int32
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	symbols := make([]int, len(raw))
	for i, v := range raw {
		symbols[i] = int(v)
	}
	return symbols, nil
}

// SaveSequence - вставка или замена ленты
func (r *repo) SaveSequence(ctx context.Context, seq model.ReelSequence) error {
	raw := make([]int32, len(seq.Symbols))
	for i, v := range seq.Symbols {
		raw[i] = int32(v)
	}

	query := psql.Insert(table).
		Columns(colName, colSymbols).
		Values(seq.Name, raw).
		Suffix("ON CONFLICT (" + colName + ") DO UPDATE SET " + colSymbols + " = EXCLUDED." + colSymbols)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}
