package models

import "time"

// AlertCondition is the direction a price alert fires on.
type AlertCondition string

const (
	AlertAbove AlertCondition = "above"
	AlertBelow AlertCondition = "below"
)

// Alert is a per-user price alert. Persisted until deleted by the user;
// Triggered flips once and the alert is then skipped by the watcher.
type Alert struct {
	ID          string         `json:"id"`
	Symbol      string         `json:"symbol"`
	Condition   AlertCondition `json:"condition"`
	Target      float64        `json:"target"`
	CreatedAt   time.Time      `json:"createdAt"`
	Triggered   bool           `json:"triggered"`
	TriggeredAt *time.Time     `json:"triggeredAt,omitempty"`
}

// Matches reports whether the alert fires at the given price.
func (a Alert) Matches(price float64) bool {
	switch a.Condition {
	case AlertAbove:
		return price >= a.Target
	case AlertBelow:
		return price <= a.Target
	default:
		return false
	}
}

// UserAlert pairs an alert with its owner for watcher sweeps.
type UserAlert struct {
	User  string
	Alert Alert
}

// AlertEvent is published when an alert triggers.
type AlertEvent struct {
	AlertID   string         `json:"alert_id"`
	User      string         `json:"user"`
	Symbol    string         `json:"symbol"`
	Condition AlertCondition `json:"condition"`
	Target    float64        `json:"target"`
	Price     float64        `json:"price"`
	At        time.Time      `json:"at"`
}
