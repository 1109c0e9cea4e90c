package controllers

// Broadcaster pushes live updates to sockets joined to a room. Rooms are
// conversation ids, except PresenceRoom which every roster view joins.
// Broadcasting is best-effort and never fails a write.
type Broadcaster interface {
	BroadcastTo(room, event string, data interface{})
}

// PresenceRoom is the shared room for presence updates.
const PresenceRoom = "presence"
