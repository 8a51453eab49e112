package network

import (
	"fmt"
	"sort"
	"strings"

	"github.com/automoto/kamatayan/shared/netcomponents"
	"github.com/automoto/kamatayan/shared/netconfig"
	"github.com/leap-fish/necs/esync"
)

// SnapshotSummary is a readable digest of one world snapshot.
type SnapshotSummary struct {
	Entities int
	Enemies  map[netconfig.StateID]int
	Player   *netcomponents.NetPlayerStateData
	Game     *netcomponents.NetGameStateData
	Lighting *netcomponents.NetLightingData
}

// Summarize decodes a snapshot's components. Components that fail to decode
// are skipped.
func Summarize(snapshot esync.WorldSnapshot) SnapshotSummary {
	sum := SnapshotSummary{Enemies: make(map[netconfig.StateID]int)}
	for _, ent := range snapshot {
		sum.Entities++
		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				continue
			}
			sum.add(instance)
		}
	}
	return sum
}

func (s *SnapshotSummary) add(data any) {
	switch v := data.(type) {
	case netcomponents.NetEnemyData:
		s.Enemies[v.State]++
	case netcomponents.NetPlayerStateData:
		s.Player = &v
	case netcomponents.NetGameStateData:
		s.Game = &v
	case netcomponents.NetLightingData:
		s.Lighting = &v
	}
}

func (s SnapshotSummary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "entities=%d", s.Entities)

	states := make([]netconfig.StateID, 0, len(s.Enemies))
	for id := range s.Enemies {
		states = append(states, id)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
	for _, id := range states {
		fmt.Fprintf(&b, " %s=%d", id, s.Enemies[id])
	}

	if s.Player != nil {
		fmt.Fprintf(&b, " player=%s lives=%d/%d stamina=%.1f", s.Player.StateID, s.Player.Lives, s.Player.MaxLives, s.Player.Stamina)
	}
	if s.Game != nil {
		fmt.Fprintf(&b, " session=%s t=%.1fs", s.Game.Session, s.Game.Elapsed)
	}
	if s.Lighting != nil {
		fmt.Fprintf(&b, " light=%s", s.Lighting.Preset)
	}
	return b.String()
}
