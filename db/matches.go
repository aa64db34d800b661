package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/zjm/league_manager/model"
)

func (db *postgresDB) ListMatches(ctx context.Context, seasonID int32, status model.MatchStatus) ([]model.Match, error) {
	const query = `SELECT id, season_id, home_team_id, away_team_id, home_score, away_score,
						overtime, status, played_at, created, updated
					FROM matches
					WHERE season_id=@seasonID AND status LIKE @status
					ORDER BY played_at, id`

	statusQ := "%"
	if status != "" {
		statusQ = string(status)
	}

	args := pgx.NamedArgs{
		"seasonID": seasonID,
		"status":   statusQ,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error listing matches: %w", err)
	}
	defer rows.Close()

	results := make([]model.Match, 0, 32)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *m)
	}

	return results, rows.Err()
}

func (db *postgresDB) GetMatch(ctx context.Context, id int32) (*model.Match, error) {
	const query = `SELECT id, season_id, home_team_id, away_team_id, home_score, away_score,
						overtime, status, played_at, created, updated
					FROM matches WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	m, err := scanMatch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("error scanning match %d: %w", id, err)
	}
	return m, nil
}

func (db *postgresDB) SaveMatch(ctx context.Context, m *model.Match) error {
	// The upsert leaves completed matches alone so a schedule re-import can
	// never clobber a recorded result.
	const query = `INSERT INTO matches(id, season_id, home_team_id, away_team_id, home_score,
						away_score, overtime, status, played_at, created, updated)
					VALUES(@id, @seasonID, @homeTeamID, @awayTeamID, @homeScore,
						@awayScore, @overtime, @status, @playedAt, @now, @now)
					ON CONFLICT (id) DO UPDATE
						SET home_team_id=EXCLUDED.home_team_id,
							away_team_id=EXCLUDED.away_team_id,
							home_score=EXCLUDED.home_score,
							away_score=EXCLUDED.away_score,
							overtime=EXCLUDED.overtime,
							status=EXCLUDED.status,
							played_at=EXCLUDED.played_at,
							updated=EXCLUDED.updated
						WHERE matches.status != 'completed'`

	args := pgx.NamedArgs{
		"id":         m.ID,
		"seasonID":   m.SeasonID,
		"homeTeamID": m.HomeTeamID,
		"awayTeamID": m.AwayTeamID,
		"homeScore":  m.HomeScore,
		"awayScore":  m.AwayScore,
		"overtime":   m.Overtime,
		"status":     string(m.Status),
		"playedAt":   m.PlayedAt,
		"now":        db.clock.Now().UTC(),
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving match %d: %w", m.ID, err)
	}
	return nil
}

func scanMatch(row pgx.Row) (*model.Match, error) {
	var m model.Match
	var status string
	var playedAt, created, updated pgtype.Timestamptz

	err := row.Scan(
		&m.ID,
		&m.SeasonID,
		&m.HomeTeamID,
		&m.AwayTeamID,
		&m.HomeScore,
		&m.AwayScore,
		&m.Overtime,
		&status,
		&playedAt,
		&created,
		&updated)
	if err != nil {
		return nil, err
	}

	m.Status = model.ParseMatchStatus(status)
	m.PlayedAt = playedAt.Time
	m.Created = created.Time
	m.Updated = updated.Time

	return &m, nil
}
