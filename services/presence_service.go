package services

import (
	"context"
	"fmt"
	"time"

	"ripple_server/models"
)

// PresenceService tracks per-user heartbeats. Like typing, staleness is
// computed at read time: an online flag older than PresenceExpiryMillis
// counts as offline, which covers tabs that died without an offline signal.
type PresenceService struct {
	Dynamo DynamoAPI
}

// UpdatePresence records a heartbeat: online now.
func (ps *PresenceService) UpdatePresence(ctx context.Context, userID string) error {
	presence := models.Presence{
		UserID:   userID,
		LastSeen: time.Now().UnixMilli(),
		IsOnline: true,
	}
	if err := ps.Dynamo.PutItem(ctx, models.PresenceTable, presence); err != nil {
		return fmt.Errorf("failed to update presence: %w", err)
	}
	return nil
}

// SetOffline records an explicit offline signal (tab close/hide).
func (ps *PresenceService) SetOffline(ctx context.Context, userID string) error {
	presence := models.Presence{
		UserID:   userID,
		LastSeen: time.Now().UnixMilli(),
		IsOnline: false,
	}
	if err := ps.Dynamo.PutItem(ctx, models.PresenceTable, presence); err != nil {
		return fmt.Errorf("failed to set offline: %w", err)
	}
	return nil
}

// GetAllPresence returns every presence row with the effective-online
// computation applied at read time.
func (ps *PresenceService) GetAllPresence(ctx context.Context) ([]models.PresenceStatus, error) {
	var rows []models.Presence
	if err := ps.Dynamo.ScanWithFilter(ctx, models.PresenceTable, nil, nil, &rows); err != nil {
		return nil, fmt.Errorf("failed to list presence: %w", err)
	}

	now := time.Now().UnixMilli()
	statuses := make([]models.PresenceStatus, 0, len(rows))
	for _, row := range rows {
		statuses = append(statuses, models.PresenceStatus{
			Presence: row,
			Online:   row.EffectiveOnline(now),
		})
	}
	return statuses, nil
}
