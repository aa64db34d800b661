package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zjm/league_manager/model"
)

var (
	ErrTeamNotFound       error = errors.New("team not found")
	ErrConferenceNotFound error = errors.New("conference not found")
	ErrMatchNotFound      error = errors.New("match not found")
	ErrPlayerNotFound     error = errors.New("player not found")
	ErrBidNotFound        error = errors.New("bid not found")
	ErrUserNotFound       error = errors.New("user not found")
	// ErrBidAlreadyFinalized means another settlement run won the race for
	// this player. The caller's result is advisory and must be discarded.
	ErrBidAlreadyFinalized error = errors.New("bid already finalized")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func (db *postgresDB) ListTeams(ctx context.Context) ([]model.Team, error) {
	const query = `SELECT t.id, t.name, t.logo_url, c.id, c.name, c.color
					FROM teams t
					LEFT JOIN conferences c ON t.conference_id = c.id
					ORDER BY t.id`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing teams: %w", err)
	}
	defer rows.Close()

	results := make([]model.Team, 0, 16)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *t)
	}

	return results, rows.Err()
}

func (db *postgresDB) GetTeam(ctx context.Context, id int32) (*model.Team, error) {
	const query = `SELECT t.id, t.name, t.logo_url, c.id, c.name, c.color
					FROM teams t
					LEFT JOIN conferences c ON t.conference_id = c.id
					WHERE t.id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	t, err := scanTeam(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("error scanning team %d: %w", id, err)
	}
	return t, nil
}

func (db *postgresDB) AddTeam(ctx context.Context, t *model.Team) error {
	const query = `INSERT INTO teams(name, logo_url, conference_id, created, updated)
					VALUES(@name, @logoURL, @conferenceID, @now, @now)
					RETURNING id`

	var conferenceID *int32
	if t.Conference != nil {
		conferenceID = &t.Conference.ID
	}

	args := pgx.NamedArgs{
		"name":         t.Name,
		"logoURL":      t.LogoURL,
		"conferenceID": conferenceID,
		"now":          db.clock.Now().UTC(),
	}
	if err := db.pool.QueryRow(ctx, query, args).Scan(&t.ID); err != nil {
		return fmt.Errorf("error inserting team: %w", err)
	}
	return nil
}

func (db *postgresDB) GetConference(ctx context.Context, id int32) (*model.Conference, error) {
	const query = `SELECT id, name, color FROM conferences WHERE id=@id`

	var c model.Conference
	err := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id}).Scan(&c.ID, &c.Name, &c.Color)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrConferenceNotFound
		}
		return nil, fmt.Errorf("error scanning conference %d: %w", id, err)
	}
	return &c, nil
}

func (db *postgresDB) AddConference(ctx context.Context, c *model.Conference) error {
	const query = `INSERT INTO conferences(name, color) VALUES(@name, @color) RETURNING id`

	args := pgx.NamedArgs{
		"name":  c.Name,
		"color": c.Color,
	}
	if err := db.pool.QueryRow(ctx, query, args).Scan(&c.ID); err != nil {
		return fmt.Errorf("error inserting conference: %w", err)
	}
	return nil
}

func (db *postgresDB) ListConferences(ctx context.Context) ([]model.Conference, error) {
	const query = `SELECT id, name, color FROM conferences ORDER BY name`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing conferences: %w", err)
	}
	defer rows.Close()

	results := make([]model.Conference, 0, 4)
	for rows.Next() {
		var c model.Conference
		if err := rows.Scan(&c.ID, &c.Name, &c.Color); err != nil {
			return nil, err
		}
		results = append(results, c)
	}

	return results, rows.Err()
}

func (db *postgresDB) GetUser(ctx context.Context, username string) (*model.User, error) {
	const query = `SELECT id, username, role FROM users WHERE username=@username`

	var u model.User
	var role string
	err := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"username": username}).Scan(&u.ID, &u.Username, &role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error scanning user %s: %w", username, err)
	}

	u.Role = model.ParseRole(role)
	return &u, nil
}

func (db *postgresDB) AddUser(ctx context.Context, username string, role model.Role) error {
	const query = `INSERT INTO users(username, role) VALUES(@username, @role)
					ON CONFLICT (username) DO UPDATE SET role=EXCLUDED.role`

	args := pgx.NamedArgs{
		"username": username,
		"role":     string(role),
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving user %s: %w", username, err)
	}
	return nil
}

func scanTeam(row pgx.Row) (*model.Team, error) {
	var t model.Team
	var confID sql.NullInt32
	var confName, confColor sql.NullString

	err := row.Scan(&t.ID, &t.Name, &t.LogoURL, &confID, &confName, &confColor)
	if err != nil {
		return nil, err
	}

	if confID.Valid {
		t.Conference = &model.Conference{
			ID:    confID.Int32,
			Name:  confName.String,
			Color: confColor.String,
		}
	}

	return &t, nil
}

func valueOrEmpty(v sql.NullString) string {
	if v.Valid {
		return v.String
	}
	return ""
}
