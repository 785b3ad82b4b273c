package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	drepo "StockCast/internal/domain/repository"
)

// RedisWatchlist stores per-user watchlists as Redis sets keyed
// watchlist:<user>.
type RedisWatchlist struct {
	cli *redis.Client
}

func NewRedisWatchlist(cli *redis.Client) *RedisWatchlist {
	return &RedisWatchlist{cli: cli}
}

func watchlistKey(user string) string { return "watchlist:" + user }

func (r *RedisWatchlist) Add(ctx context.Context, user, symbol string) error {
	if err := r.cli.SAdd(ctx, watchlistKey(user), symbol).Err(); err != nil {
		return fmt.Errorf("watchlist add: %w", err)
	}
	return nil
}

func (r *RedisWatchlist) Remove(ctx context.Context, user, symbol string) error {
	if err := r.cli.SRem(ctx, watchlistKey(user), symbol).Err(); err != nil {
		return fmt.Errorf("watchlist remove: %w", err)
	}
	return nil
}

func (r *RedisWatchlist) List(ctx context.Context, user string) ([]string, error) {
	symbols, err := r.cli.SMembers(ctx, watchlistKey(user)).Result()
	if err != nil {
		return nil, fmt.Errorf("watchlist list: %w", err)
	}
	sort.Strings(symbols)
	return symbols, nil
}

var _ drepo.WatchlistStore = (*RedisWatchlist)(nil)
