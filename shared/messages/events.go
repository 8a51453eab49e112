package messages

import "github.com/automoto/kamatayan/shared/netconfig"

// HuntEvent is broadcast when something happens in the hunt that clients
// should react to at once rather than on the next snapshot.
type HuntEvent struct {
	Kind      netconfig.HuntEventKind
	EnemyID   uint // NetworkId of the enemy, 0 for player events
	Lives     int
	Elapsed   float64
	Timestamp int64 // Server timestamp (Unix ms)
}
