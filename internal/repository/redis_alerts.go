package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"StockCast/internal/domain/models"
	drepo "StockCast/internal/domain/repository"
)

const alertUsersKey = "alerts:users"

// RedisAlerts stores per-user price alerts as Redis hashes keyed
// alerts:<user> (field = alert id, value = JSON). A side set alerts:users
// tracks which users have alerts so the watcher can sweep without SCAN.
type RedisAlerts struct {
	cli *redis.Client
}

func NewRedisAlerts(cli *redis.Client) *RedisAlerts {
	return &RedisAlerts{cli: cli}
}

func alertsKey(user string) string { return "alerts:" + user }

func (r *RedisAlerts) Create(ctx context.Context, user string, alert models.Alert) error {
	b, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("alert marshal: %w", err)
	}
	pipe := r.cli.TxPipeline()
	pipe.HSet(ctx, alertsKey(user), alert.ID, b)
	pipe.SAdd(ctx, alertUsersKey, user)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("alert create: %w", err)
	}
	return nil
}

func (r *RedisAlerts) Delete(ctx context.Context, user, id string) error {
	removed, err := r.cli.HDel(ctx, alertsKey(user), id).Result()
	if err != nil {
		return fmt.Errorf("alert delete: %w", err)
	}
	if removed == 0 {
		return fmt.Errorf("alert %s not found", id)
	}
	if n, err := r.cli.HLen(ctx, alertsKey(user)).Result(); err == nil && n == 0 {
		_ = r.cli.SRem(ctx, alertUsersKey, user).Err()
	}
	return nil
}

func (r *RedisAlerts) List(ctx context.Context, user string) ([]models.Alert, error) {
	raw, err := r.cli.HGetAll(ctx, alertsKey(user)).Result()
	if err != nil {
		return nil, fmt.Errorf("alert list: %w", err)
	}
	alerts := make([]models.Alert, 0, len(raw))
	for _, v := range raw {
		var a models.Alert
		if err := json.Unmarshal([]byte(v), &a); err != nil {
			continue // skip corrupt entries rather than failing the whole list
		}
		alerts = append(alerts, a)
	}
	return alerts, nil
}

func (r *RedisAlerts) ListActive(ctx context.Context) ([]models.UserAlert, error) {
	users, err := r.cli.SMembers(ctx, alertUsersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("alert users: %w", err)
	}
	var active []models.UserAlert
	for _, user := range users {
		alerts, err := r.List(ctx, user)
		if err != nil {
			return nil, err
		}
		for _, a := range alerts {
			if !a.Triggered {
				active = append(active, models.UserAlert{User: user, Alert: a})
			}
		}
	}
	return active, nil
}

func (r *RedisAlerts) MarkTriggered(ctx context.Context, user, id string, at time.Time) error {
	raw, err := r.cli.HGet(ctx, alertsKey(user), id).Result()
	if err != nil {
		return fmt.Errorf("alert get: %w", err)
	}
	var a models.Alert
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		return fmt.Errorf("alert unmarshal: %w", err)
	}
	a.Triggered = true
	a.TriggeredAt = &at
	b, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("alert marshal: %w", err)
	}
	if err := r.cli.HSet(ctx, alertsKey(user), id, b).Err(); err != nil {
		return fmt.Errorf("alert update: %w", err)
	}
	return nil
}

var _ drepo.AlertStore = (*RedisAlerts)(nil)
