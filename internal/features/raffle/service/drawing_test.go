package service

import (
	"context"
	"math/rand"
	"path"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loyalty-raffle-backend/internal/common/cache"
	ledgermodels "loyalty-raffle-backend/internal/features/ledger/models"
	"loyalty-raffle-backend/internal/features/raffle/models"
)

// memRedis backs the cache service with a plain map for tests.
type memRedis struct {
	store map[string]string
}

func (m *memRedis) Ping(ctx context.Context) *goredis.StatusCmd {
	cmd := goredis.NewStatusCmd(ctx)
	cmd.SetVal("PONG")
	return cmd
}

func (m *memRedis) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *goredis.StatusCmd {
	m.store[key] = value.(string)
	cmd := goredis.NewStatusCmd(ctx)
	cmd.SetVal("OK")
	return cmd
}

func (m *memRedis) Get(ctx context.Context, key string) *goredis.StringCmd {
	cmd := goredis.NewStringCmd(ctx)
	if v, ok := m.store[key]; ok {
		cmd.SetVal(v)
	} else {
		cmd.SetErr(goredis.Nil)
	}
	return cmd
}

func (m *memRedis) Del(ctx context.Context, keys ...string) *goredis.IntCmd {
	cmd := goredis.NewIntCmd(ctx)
	var deleted int64
	for _, key := range keys {
		if _, ok := m.store[key]; ok {
			delete(m.store, key)
			deleted++
		}
	}
	cmd.SetVal(deleted)
	return cmd
}

func (m *memRedis) Keys(ctx context.Context, pattern string) *goredis.StringSliceCmd {
	cmd := goredis.NewStringSliceCmd(ctx)
	var keys []string
	for key := range m.store {
		if ok, _ := path.Match(pattern, key); ok {
			keys = append(keys, key)
		}
	}
	cmd.SetVal(keys)
	return cmd
}

func (m *memRedis) Close() error { return nil }

func TestDraw(t *testing.T) {
	svc, repo, ledger := newTestRaffleService(map[string]int{"acc-a": 0, "acc-b": 0})
	ctx := context.Background()

	repo.entries["2026-07"] = map[string]int{"acc-a": 3, "acc-b": 1}

	// Offsets 0..2 belong to acc-a, offset 3 to acc-b.
	svc.randIntn = func(n int) int {
		require.Equal(t, 4, n)
		return 3
	}

	resp, err := svc.Draw(ctx, "2026-07")
	require.NoError(t, err)

	assert.Equal(t, "2026-07", resp.Period)
	assert.Equal(t, "acc-b", resp.Winner.AccountID)
	assert.Equal(t, 1, resp.Winner.TicketsHeld)
	assert.Equal(t, 2, resp.Stats.TotalEntries)
	assert.Equal(t, 4, resp.Stats.TotalTickets)
	assert.Equal(t, "25.00", resp.Stats.WinningOdds)

	winner := repo.winners["2026-07"]
	require.NotNil(t, winner)
	assert.Equal(t, "acc-b", winner.AccountID)
	assert.Equal(t, "seoul_trip", winner.PrizeType)
	assert.False(t, winner.Claimed)

	// Winner bonus goes through the ledger, keyed by the winner record so a
	// replayed draw cannot double-award.
	assert.Equal(t, 1000, ledger.balances["acc-b"])
	require.Len(t, ledger.earns, 1)
	assert.Equal(t, ledgermodels.ActionRaffleWinner, ledger.earns[0].Action)
	assert.Equal(t, winner.ID, ledger.earns[0].ReferenceID)
}

func TestDraw_FirstTicketWins(t *testing.T) {
	svc, repo, _ := newTestRaffleService(map[string]int{"acc-a": 0, "acc-b": 0})

	repo.entries["2026-07"] = map[string]int{"acc-a": 3, "acc-b": 1}
	svc.randIntn = func(n int) int { return 0 }

	resp, err := svc.Draw(context.Background(), "2026-07")
	require.NoError(t, err)
	assert.Equal(t, "acc-a", resp.Winner.AccountID)
}

func TestDraw_SecondDrawRejected(t *testing.T) {
	svc, repo, ledger := newTestRaffleService(map[string]int{"acc-a": 0})
	ctx := context.Background()

	repo.entries["2026-07"] = map[string]int{"acc-a": 2}

	_, err := svc.Draw(ctx, "2026-07")
	require.NoError(t, err)

	_, err = svc.Draw(ctx, "2026-07")
	assert.ErrorIs(t, err, ErrAlreadyDrawn)

	// Bonus was awarded exactly once.
	assert.Equal(t, 1000, ledger.balances["acc-a"])
}

func TestDraw_ConcurrentInsertLosesGracefully(t *testing.T) {
	svc, repo, ledger := newTestRaffleService(map[string]int{"acc-a": 0})
	ctx := context.Background()

	repo.entries["2026-07"] = map[string]int{"acc-a": 2}

	// A competing draw inserts its winner after our fast-path check passed.
	repo.onListEntries = func() {
		racer := &models.RaffleWinner{ID: "w-race", AccountID: "acc-z", Period: "2026-07"}
		repo.winners["2026-07"] = racer
		repo.byID["w-race"] = racer
	}

	_, err := svc.Draw(ctx, "2026-07")
	assert.ErrorIs(t, err, ErrAlreadyDrawn)

	// The racer's winner stands and we awarded no bonus.
	assert.Equal(t, "acc-z", repo.winners["2026-07"].AccountID)
	assert.Empty(t, ledger.earns)
}

func TestDraw_SweepsStatsCache(t *testing.T) {
	svc, repo, _ := newTestRaffleService(map[string]int{"acc-a": 0})
	redis := &memRedis{store: make(map[string]string)}
	svc.cache = cache.NewCacheService(redis)
	ctx := context.Background()

	repo.entries["2026-07"] = map[string]int{"acc-a": 2}

	// Populate cached stats for two periods.
	_, _, err := svc.periodStats(ctx, "2026-06")
	require.NoError(t, err)
	_, _, err = svc.periodStats(ctx, "2026-07")
	require.NoError(t, err)
	require.Contains(t, redis.store, statsCacheKey("2026-06"))
	require.Contains(t, redis.store, statsCacheKey("2026-07"))

	_, err = svc.Draw(ctx, "2026-07")
	require.NoError(t, err)

	assert.NotContains(t, redis.store, statsCacheKey("2026-06"))
	assert.NotContains(t, redis.store, statsCacheKey("2026-07"))
}

func TestDraw_NoEntries(t *testing.T) {
	svc, _, _ := newTestRaffleService(map[string]int{})

	_, err := svc.Draw(context.Background(), "2026-07")
	assert.ErrorIs(t, err, ErrNoEntries)
}

func TestDraw_InvalidPeriod(t *testing.T) {
	svc, _, _ := newTestRaffleService(map[string]int{})

	_, err := svc.Draw(context.Background(), "july")
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestPickWeighted_ProportionalToTickets(t *testing.T) {
	svc, _, _ := newTestRaffleService(map[string]int{})

	rng := rand.New(rand.NewSource(42))
	svc.randIntn = rng.Intn

	entries := []models.RaffleEntry{
		{AccountID: "acc-a", TicketCount: 3},
		{AccountID: "acc-b", TicketCount: 1},
	}

	const draws = 10000
	wins := map[string]int{}
	for i := 0; i < draws; i++ {
		entry, total := svc.pickWeighted(entries)
		assert.Equal(t, 4, total)
		wins[entry.AccountID]++
	}

	// acc-a holds 75% of the tickets; allow a generous band for a seeded RNG.
	ratio := float64(wins["acc-a"]) / draws
	assert.InDelta(t, 0.75, ratio, 0.02)
	assert.Equal(t, draws, wins["acc-a"]+wins["acc-b"])
}

func TestPickWeighted_SingleEntry(t *testing.T) {
	svc, _, _ := newTestRaffleService(map[string]int{})
	svc.randIntn = rand.New(rand.NewSource(7)).Intn

	entries := []models.RaffleEntry{{AccountID: "acc-a", TicketCount: 5}}
	entry, total := svc.pickWeighted(entries)
	assert.Equal(t, "acc-a", entry.AccountID)
	assert.Equal(t, 5, total)
}
