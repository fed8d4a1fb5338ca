package spin_repo

import (
	"context"
	"errors"

	"slot_reel/internal/model"
	"slot_reel/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "spins"
	colID          = "id"
	colUserID      = "user_id"
	colBet         = "bet"
	colWin         = "win"
	colWinReported = "win_reported"
	colCreatedAt   = "created_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewSpinRepository(dbc *pgxpool.Pool) repository.SpinRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateSpin - записывает подтверждённый спин
func (r *repo) CreateSpin(ctx context.Context, spin *model.Spin) error {
	query := psql.Insert(table).
		Columns(colID, colUserID, colBet, colWin, colWinReported, colCreatedAt).
		Values(spin.ID, spin.UserID, int64(spin.Bet), int64(spin.Win), spin.WinReported, spin.CreatedAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// GetSpinForUpdate - спин по ID с блокировкой строки
func (r *repo) GetSpinForUpdate(ctx context.Context, id uuid.UUID) (*model.Spin, error) {
	query := psql.Select(colID, colUserID, colBet, colWin, colWinReported, colCreatedAt).
		From(table).
		Where(sq.Eq{colID: id.String()}).
		Suffix("FOR UPDATE")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		spin     model.Spin
		bet, win int64
	)
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&spin.ID, &spin.UserID, &bet, &win, &spin.WinReported, &spin.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	spin.Bet = int(bet)
	spin.Win = int(win)
	return &spin, nil
}

// SetWin - фиксирует выигрыш, повторно не вызывается
func (r *repo) SetWin(ctx context.Context, id uuid.UUID, win int) error {
	query := psql.Update(table).
		Set(colWin, int64(win)).
		Set(colWinReported, true).
		Where(sq.Eq{colID: id.String()})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
