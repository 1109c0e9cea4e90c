package models

// Presence is the heartbeat record for one user. IsOnline is advisory: a
// crashed tab never sends an offline signal, so readers also require the
// last heartbeat to be fresh.
type Presence struct {
	UserID   string `dynamodbav:"userId" json:"userId"`
	LastSeen int64  `dynamodbav:"lastSeen" json:"lastSeen"`
	IsOnline bool   `dynamodbav:"isOnline" json:"isOnline"`
}

// PresenceStatus is a presence row plus the read-time effective-online
// computation.
type PresenceStatus struct {
	Presence
	Online bool `dynamodbav:"-" json:"online"`
}

// EffectiveOnline reports whether the record counts as online at nowMillis.
func (p Presence) EffectiveOnline(nowMillis int64) bool {
	return p.IsOnline && nowMillis-p.LastSeen < PresenceExpiryMillis
}

// PresenceTable is the DynamoDB table name for presence records
const PresenceTable = "Presence"

// PresenceExpiryMillis is the staleness threshold after which a heartbeat no
// longer counts as online, even without an explicit offline signal.
const PresenceExpiryMillis int64 = 20000
