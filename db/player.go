package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/zjm/league_manager/model"
)

func (db *postgresDB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	const query = `SELECT id, name_first, name_last, position, team_id, salary, active, created, updated
					FROM players WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	p, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("error scanning player %s: %w", id, err)
	}
	return p, nil
}

func (db *postgresDB) ListPlayers(ctx context.Context) ([]model.Player, error) {
	const query = `SELECT id, name_first, name_last, position, team_id, salary, active, created, updated
					FROM players WHERE active ORDER BY name_last, name_first`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing players: %w", err)
	}
	defer rows.Close()

	results := make([]model.Player, 0, 64)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *p)
	}

	return results, rows.Err()
}

func (db *postgresDB) SavePlayer(ctx context.Context, p *model.Player) error {
	const query = `INSERT INTO players(id, name_first, name_last, position, team_id, salary, active, created, updated)
					VALUES(@id, @first, @last, @position, @teamID, @salary, @active, @now, @now)
					ON CONFLICT (id) DO UPDATE
						SET name_first=EXCLUDED.name_first,
							name_last=EXCLUDED.name_last,
							position=EXCLUDED.position,
							team_id=EXCLUDED.team_id,
							salary=EXCLUDED.salary,
							active=EXCLUDED.active,
							updated=EXCLUDED.updated`

	args := pgx.NamedArgs{
		"id":       p.ID,
		"first":    p.FirstName,
		"last":     p.LastName,
		"position": p.Position,
		"teamID":   p.TeamID,
		"salary":   p.Salary,
		"active":   p.Active,
		"now":      db.clock.Now().UTC(),
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving player %s: %w", p.ID, err)
	}
	return nil
}

func scanPlayer(row pgx.Row) (*model.Player, error) {
	var p model.Player
	var position sql.NullString
	var teamID sql.NullInt32
	var created, updated pgtype.Timestamptz

	err := row.Scan(
		&p.ID,
		&p.FirstName,
		&p.LastName,
		&position,
		&teamID,
		&p.Salary,
		&p.Active,
		&created,
		&updated)
	if err != nil {
		return nil, err
	}

	p.Position = valueOrEmpty(position)
	if teamID.Valid {
		id := teamID.Int32
		p.TeamID = &id
	}
	p.Created = created.Time
	p.Updated = updated.Time

	return &p, nil
}
