package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/zjm/league_manager/model"
)

const bidColumns = `id, player_id, team_id, amount, expires_at, status, finalized, created`

func (db *postgresDB) GetBid(ctx context.Context, id string) (*model.Bid, error) {
	query := fmt.Sprintf(`SELECT %s FROM bids WHERE id=@id`, bidColumns)

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	b, err := scanBid(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBidNotFound
		}
		return nil, fmt.Errorf("error scanning bid %s: %w", id, err)
	}
	return b, nil
}

func (db *postgresDB) AddBid(ctx context.Context, b *model.Bid) error {
	const query = `INSERT INTO bids(id, player_id, team_id, amount, expires_at, status, finalized, created)
					VALUES(@id, @playerID, @teamID, @amount, @expiresAt, @status, @finalized, @created)`

	args := pgx.NamedArgs{
		"id":        b.ID,
		"playerID":  b.PlayerID,
		"teamID":    b.TeamID,
		"amount":    b.Amount,
		"expiresAt": b.ExpiresAt,
		"status":    string(b.Status),
		"finalized": b.Finalized,
		"created":   b.Created,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error inserting bid: %w", err)
	}
	return nil
}

func (db *postgresDB) CancelBid(ctx context.Context, id string) error {
	// Conditional on the bid still being active so a cancel can never pull
	// a bid back out of a terminal status.
	const query = `UPDATE bids SET status='cancelled', finalized=true
					WHERE id=@id AND status='active' AND finalized=false`

	tag, err := db.pool.Exec(ctx, query, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("error cancelling bid %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrBidAlreadyFinalized
	}
	return nil
}

func (db *postgresDB) ListBids(ctx context.Context, status model.BidStatus) ([]model.Bid, error) {
	query := fmt.Sprintf(`SELECT %s FROM bids WHERE status LIKE @status ORDER BY created, id`, bidColumns)

	statusQ := "%"
	if status != "" {
		statusQ = string(status)
	}

	return db.queryBids(ctx, query, pgx.NamedArgs{"status": statusQ})
}

func (db *postgresDB) ListBidsForPlayer(ctx context.Context, playerID string) ([]model.Bid, error) {
	query := fmt.Sprintf(`SELECT %s FROM bids WHERE player_id=@playerID ORDER BY created, id`, bidColumns)
	return db.queryBids(ctx, query, pgx.NamedArgs{"playerID": playerID})
}

func (db *postgresDB) ListActiveBidsForPlayer(ctx context.Context, playerID string) ([]model.Bid, error) {
	query := fmt.Sprintf(`SELECT %s FROM bids
					WHERE player_id=@playerID AND status='active' AND finalized=false
					ORDER BY created, id`, bidColumns)
	return db.queryBids(ctx, query, pgx.NamedArgs{"playerID": playerID})
}

func (db *postgresDB) ListExpiredActiveBids(ctx context.Context, now time.Time) ([]model.Bid, error) {
	query := fmt.Sprintf(`SELECT %s FROM bids
					WHERE expires_at <= @now AND status='active' AND finalized=false
					ORDER BY created, id`, bidColumns)
	return db.queryBids(ctx, query, pgx.NamedArgs{"now": now})
}

func (db *postgresDB) CommitTransfer(ctx context.Context, r model.BidResolution) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error beginning transfer transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// The conditional update is the concurrency guard: if another run
	// already finalized this bid, zero rows are affected and this run's
	// settlement result is discarded.
	const finalizeWinner = `UPDATE bids SET status='finalized', finalized=true
							WHERE id=@id AND finalized=false`
	tag, err := tx.Exec(ctx, finalizeWinner, pgx.NamedArgs{"id": r.WinningBidID})
	if err != nil {
		return fmt.Errorf("error finalizing winning bid %s: %w", r.WinningBidID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrBidAlreadyFinalized
	}

	const assignPlayer = `UPDATE players SET team_id=@teamID, salary=@salary, updated=@now
							WHERE id=@playerID`
	args := pgx.NamedArgs{
		"teamID":   r.WinningTeamID,
		"salary":   r.Amount,
		"now":      db.clock.Now().UTC(),
		"playerID": r.PlayerID,
	}
	if _, err := tx.Exec(ctx, assignPlayer, args); err != nil {
		return fmt.Errorf("error assigning player %s to team %d: %w", r.PlayerID, r.WinningTeamID, err)
	}

	if len(r.LosingBidIDs) > 0 {
		const markOutbid = `UPDATE bids SET status='outbid', finalized=true
							WHERE id = ANY(@ids) AND finalized=false`
		if _, err := tx.Exec(ctx, markOutbid, pgx.NamedArgs{"ids": r.LosingBidIDs}); err != nil {
			return fmt.Errorf("error marking losing bids for player %s: %w", r.PlayerID, err)
		}
	}

	return tx.Commit(ctx)
}

func (db *postgresDB) queryBids(ctx context.Context, query string, args pgx.NamedArgs) ([]model.Bid, error) {
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error querying bids: %w", err)
	}
	defer rows.Close()

	results := make([]model.Bid, 0, 8)
	for rows.Next() {
		b, err := scanBid(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *b)
	}

	return results, rows.Err()
}

func scanBid(row pgx.Row) (*model.Bid, error) {
	var b model.Bid
	var status string
	var expiresAt, created pgtype.Timestamptz

	err := row.Scan(
		&b.ID,
		&b.PlayerID,
		&b.TeamID,
		&b.Amount,
		&expiresAt,
		&status,
		&b.Finalized,
		&created)
	if err != nil {
		return nil, err
	}

	b.Status = model.ParseBidStatus(status)
	b.ExpiresAt = expiresAt.Time
	b.Created = created.Time

	return &b, nil
}
