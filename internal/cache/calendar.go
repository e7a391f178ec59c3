package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/redsource-ph/redsource-api/internal/config"
	domain "github.com/redsource-ph/redsource-api/internal/domain/transaction"
	"github.com/redsource-ph/redsource-api/internal/timezone"
)

// Calendar is a read-through cache for the per-hospital month view. A
// redis outage degrades to cache misses, never to request failures.
type Calendar struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCalendar(cfg *config.Config) *Calendar {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	return &Calendar{
		rdb: rdb,
		ttl: 5 * time.Minute,
	}
}

func calendarKey(hospitalID uint, year, month int) string {
	return fmt.Sprintf("calendar:%d:%04d-%02d", hospitalID, year, month)
}

func (c *Calendar) Get(ctx context.Context, hospitalID uint, year, month int) (domain.Calendar, bool) {
	raw, err := c.rdb.Get(ctx, calendarKey(hospitalID, year, month)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Debug().Err(err).Msg("calendar cache read failed")
		}
		return nil, false
	}

	var cal domain.Calendar
	if err := json.Unmarshal(raw, &cal); err != nil {
		return nil, false
	}
	return cal, true
}

func (c *Calendar) Set(ctx context.Context, hospitalID uint, year, month int, cal domain.Calendar) {
	raw, err := json.Marshal(cal)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, calendarKey(hospitalID, year, month), raw, c.ttl).Err(); err != nil {
		log.Debug().Err(err).Msg("calendar cache write failed")
	}
}

// Invalidate drops the month bucket the given appointment time falls in,
// using the portal timezone so the key matches what readers compute.
func (c *Calendar) Invalidate(ctx context.Context, hospitalID uint, at time.Time) {
	local := at.In(timezone.Manila())
	key := calendarKey(hospitalID, local.Year(), int(local.Month()))

	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		log.Debug().Err(err).Msg("calendar cache invalidate failed")
	}
}
