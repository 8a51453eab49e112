package systems

import (
	"github.com/automoto/kamatayan/shared/netconfig"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// HuntEvent reports a gameplay moment other parts of the program care about,
// such as a network broadcast or a log line.
type HuntEvent struct {
	Kind       netconfig.HuntEventKind
	Enemy      donburi.Entity  // Zero for player events
	EnemyNetID esync.NetworkId // Zero when the enemy is not synced
	Lives      int
}

var HuntEvents = events.NewEventType[HuntEvent]()

func publish(w donburi.World, ev HuntEvent) {
	HuntEvents.Publish(w, ev)
}

// enemyEvent names the enemy by entity and by network id. The id is read
// when the event is raised; a restart may remove the enemy before delivery.
func enemyEvent(w donburi.World, kind netconfig.HuntEventKind, enemy donburi.Entity) HuntEvent {
	ev := HuntEvent{Kind: kind, Enemy: enemy}
	if enemy == donburi.Null || !w.Valid(enemy) {
		return ev
	}
	if nid := esync.GetNetworkId(w.Entry(enemy)); nid != nil {
		ev.EnemyNetID = *nid
	}
	return ev
}

// ProcessEvents delivers the events queued during this tick. It runs last.
func ProcessEvents(ecs *ecs.ECS) {
	HuntEvents.ProcessEvents(ecs.World)
}
