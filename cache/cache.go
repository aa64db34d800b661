package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/zjm/league_manager/model"
)

func Connect(addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}

// Standings caches computed standings snapshots in Redis. Every operation is
// best-effort: an unreachable Redis degrades to computing standings on every
// request, never to an error surfaced to the caller.
type Standings struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStandings(rdb *redis.Client, ttl time.Duration) *Standings {
	return &Standings{rdb: rdb, ttl: ttl}
}

func standingsKey(seasonID int32) string {
	return fmt.Sprintf("standings:%d", seasonID)
}

func (c *Standings) Get(ctx context.Context, seasonID int32) ([]model.TeamStanding, bool) {
	data, err := c.rdb.Get(ctx, standingsKey(seasonID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("error reading standings cache: %v", err)
		}
		return nil, false
	}

	var standings []model.TeamStanding
	if err := json.Unmarshal(data, &standings); err != nil {
		log.Printf("error unmarshaling cached standings: %v", err)
		return nil, false
	}
	return standings, true
}

func (c *Standings) Set(ctx context.Context, seasonID int32, standings []model.TeamStanding) {
	data, err := json.Marshal(standings)
	if err != nil {
		log.Printf("error marshaling standings for cache: %v", err)
		return
	}
	if err := c.rdb.Set(ctx, standingsKey(seasonID), data, c.ttl).Err(); err != nil {
		log.Printf("error writing standings cache: %v", err)
	}
}

func (c *Standings) Invalidate(ctx context.Context, seasonID int32) {
	if err := c.rdb.Del(ctx, standingsKey(seasonID)).Err(); err != nil {
		log.Printf("error invalidating standings cache: %v", err)
	}
}

// Noop is used when no Redis address is configured.
type Noop struct{}

func (Noop) Get(_ context.Context, _ int32) ([]model.TeamStanding, bool) {
	return nil, false
}

func (Noop) Set(_ context.Context, _ int32, _ []model.TeamStanding) {}

func (Noop) Invalidate(_ context.Context, _ int32) {}
