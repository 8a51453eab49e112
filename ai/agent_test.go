package ai

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/kamatayan/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingVictim struct {
	hits    int
	amounts []float64
}

func (v *recordingVictim) ApplyDamage(amount float64) {
	v.hits++
	v.amounts = append(v.amounts, amount)
}

type fixedTarget struct {
	pos     gamemath.Vec3
	present bool
}

func (t *fixedTarget) TargetPosition() (gamemath.Vec3, bool) {
	return t.pos, t.present
}

func testConfig() Config {
	return Config{
		SearchRange:  15,
		AttackRange:  2,
		MoveSpeed:    4,
		SearchSpeed:  2,
		WaitAtPoint:  3,
		AttackDamage: 10,
		FieldOfView:  120,
	}
}

func vp(x, y, z float64) *gamemath.Vec3 {
	v := gamemath.V3(x, y, z)
	return &v
}

func TestNewPlacement(t *testing.T) {
	points := []gamemath.Vec3{gamemath.V3(3, 0, 4), gamemath.V3(-3, 0, 4)}

	a := New(testConfig(), points)
	assert.Equal(t, points[0], a.Position())
	assert.Equal(t, Searching, a.State())
	assert.Equal(t, 0, a.SearchIndex())

	bare := New(testConfig(), nil)
	assert.Equal(t, gamemath.Vec3{}, bare.Position())
	assert.False(t, bare.HasSearchPoints())

	placed := New(testConfig(), points, WithPosition(gamemath.V3(7, 0, 7)))
	assert.Equal(t, gamemath.V3(7, 0, 7), placed.Position())
}

func TestNewCopiesSearchPoints(t *testing.T) {
	points := []gamemath.Vec3{gamemath.V3(1, 0, 0)}
	a := New(testConfig(), points)
	points[0] = gamemath.V3(99, 0, 0)

	got := a.SearchPoints()
	assert.Equal(t, gamemath.V3(1, 0, 0), got[0])
}

func TestWalksToSearchPointThenWaits(t *testing.T) {
	cfg := testConfig()
	a := New(cfg, []gamemath.Vec3{gamemath.V3(10, 0, 0)}, WithPosition(gamemath.V3(0, 0, 0)))

	for i := 1; i <= 4; i++ {
		a.Tick(1, nil)
		assert.Equal(t, Searching, a.State(), "tick %d", i)
		assert.InDelta(t, float64(2*i), a.Position().X, 1e-9, "tick %d", i)
	}

	a.Tick(1, nil)
	assert.Equal(t, Waiting, a.State())
	assert.InDelta(t, 10.0, a.Position().X, 1e-9)
	assert.InDelta(t, 3.0, a.WaitTimer(), 1e-9)
	assert.InDelta(t, 1.0, a.Facing().X, 1e-9)

	a.Tick(1, nil)
	assert.Equal(t, Waiting, a.State())
	assert.InDelta(t, 2.0, a.WaitTimer(), 1e-9)

	a.Tick(1, nil)
	assert.InDelta(t, 1.0, a.WaitTimer(), 1e-9)

	a.Tick(1, nil)
	assert.Equal(t, Searching, a.State())
	assert.Equal(t, 0, a.SearchIndex(), "single point wraps to itself")
}

func TestSearchIndexCycles(t *testing.T) {
	cfg := testConfig()
	cfg.WaitAtPoint = 1
	points := []gamemath.Vec3{
		gamemath.V3(0, 0, 0),
		gamemath.V3(4, 0, 0),
		gamemath.V3(4, 0, 4),
	}
	a := New(cfg, points)

	var arrivals, departures []int
	prev := a.State()
	for i := 0; i < 400; i++ {
		a.Tick(0.5, nil)
		if prev != Waiting && a.State() == Waiting {
			arrivals = append(arrivals, a.SearchIndex())
		}
		if prev == Waiting && a.State() == Searching {
			departures = append(departures, a.SearchIndex())
		}
		prev = a.State()
	}

	require.GreaterOrEqual(t, len(arrivals), 7)
	require.GreaterOrEqual(t, len(departures), 6)
	for i, idx := range arrivals {
		assert.Equal(t, i%3, idx, "arrival %d", i)
	}
	for i, idx := range departures {
		assert.Equal(t, (arrivals[i]+1)%3, idx, "departure %d", i)
	}
}

func TestArrivalThreshold(t *testing.T) {
	distances := []float64{0.5, 0.75, 1, 7.25, 33.3}
	speeds := []float64{0.1, 1.3, 3, 50}

	for _, d := range distances {
		for _, speed := range speeds {
			cfg := testConfig()
			cfg.SearchSpeed = speed
			point := gamemath.V3(d, 0, 0)
			a := New(cfg, []gamemath.Vec3{point}, WithPosition(gamemath.Vec3{}))

			arrived := false
			for i := 0; i < 100000 && !arrived; i++ {
				before := gamemath.Distance(a.Position(), point)
				a.Tick(0.1, nil)
				after := gamemath.Distance(a.Position(), point)
				if a.State() == Waiting {
					arrived = true
					assert.GreaterOrEqual(t, before, ArrivalThreshold, "d=%v speed=%v", d, speed)
					assert.Less(t, after, ArrivalThreshold, "d=%v speed=%v", d, speed)
				} else {
					assert.GreaterOrEqual(t, after, ArrivalThreshold, "d=%v speed=%v", d, speed)
				}
			}
			assert.True(t, arrived, "d=%v speed=%v never arrived", d, speed)
		}
	}
}

func TestTargetInsideAttackRangeAttacksImmediately(t *testing.T) {
	victim := &recordingVictim{}
	a := New(testConfig(), []gamemath.Vec3{gamemath.V3(0, 0, 0), gamemath.V3(10, 0, 0)}, WithVictim(victim))

	a.Tick(0.016, vp(0, 0, 1))

	assert.Equal(t, Attacking, a.State())
	assert.Equal(t, 1, victim.hits)
	assert.Equal(t, []float64{10}, victim.amounts)
	assert.InDelta(t, 1.0, a.Facing().Z, 1e-9)
	assert.Equal(t, gamemath.V3(0, 0, 0), a.Position(), "attacking does not move")

	a.Tick(0.016, vp(0, 0, 1))
	a.Tick(0.016, vp(0, 0, 1))
	assert.Equal(t, 3, victim.hits, "no cooldown between strikes")
}

func TestAttackGating(t *testing.T) {
	victim := &recordingVictim{}
	a := New(testConfig(), nil, WithVictim(victim))

	a.Tick(0, vp(2, 0, 0))
	assert.Equal(t, Attacking, a.State())
	assert.Equal(t, 1, victim.hits)

	a.Tick(0, vp(2.0001, 0, 0))
	assert.Equal(t, Hunting, a.State())
	assert.Equal(t, 1, victim.hits)
}

func TestHuntingMovesTowardTarget(t *testing.T) {
	a := New(testConfig(), nil)

	a.Tick(0.5, vp(0, 0, 10))
	assert.Equal(t, Hunting, a.State())
	assert.InDelta(t, 2.0, a.Position().Z, 1e-9)
	assert.InDelta(t, 1.0, a.Facing().Z, 1e-9)
	assert.InDelta(t, 10.0, a.LastDistance(), 1e-9)
	assert.True(t, a.TargetVisible())
}

func TestTargetOutOfRangeIsIgnored(t *testing.T) {
	victim := &recordingVictim{}
	points := []gamemath.Vec3{gamemath.V3(0, 0, 0), gamemath.V3(0, 0, -10)}
	a := New(testConfig(), points, WithVictim(victim))

	a.Tick(1, vp(10, 0, 0))
	require.Equal(t, Hunting, a.State())

	start := a.Position()
	a.Tick(1, vp(start.X+20, 0, 0))

	assert.False(t, a.TargetVisible())
	assert.False(t, a.State().Engaged())
	assert.Equal(t, 0, victim.hits)
	assert.InDelta(t, 20.0, a.LastDistance(), 1e-9)
	assert.LessOrEqual(t, a.Position().X, start.X, "never steps toward an undetected target")
}

func TestDetectionIsNotStickyAndResumesSearchIndex(t *testing.T) {
	cfg := testConfig()
	cfg.WaitAtPoint = 0.5
	points := []gamemath.Vec3{gamemath.V3(0, 0, 0), gamemath.V3(6, 0, 0)}
	a := New(cfg, points)

	for i := 0; i < 20 && a.SearchIndex() != 1; i++ {
		a.Tick(0.5, nil)
	}
	require.Equal(t, 1, a.SearchIndex())
	require.Equal(t, Searching, a.State())

	for i := 0; i < 3; i++ {
		a.Tick(0.1, vp(0, 0, 12))
		assert.Equal(t, Hunting, a.State())
	}

	a.Tick(0.1, vp(0, 0, 100))
	assert.Equal(t, Searching, a.State())
	assert.Equal(t, 1, a.SearchIndex(), "search resumes where it left off")
}

func TestWaitTimerSurvivesAnInterruption(t *testing.T) {
	victim := &recordingVictim{}
	a := New(testConfig(), []gamemath.Vec3{gamemath.V3(0, 0, 0), gamemath.V3(5, 0, 0)}, WithVictim(victim))

	a.Tick(1, nil)
	require.Equal(t, Waiting, a.State())
	a.Tick(1, nil)
	require.InDelta(t, 2.0, a.WaitTimer(), 1e-9)

	a.Tick(1, vp(1, 0, 0))
	a.Tick(1, vp(1, 0, 0))
	require.Equal(t, Attacking, a.State())
	assert.Equal(t, 2, victim.hits)

	a.Tick(1, nil)
	assert.Equal(t, Waiting, a.State())
	assert.InDelta(t, 1.0, a.WaitTimer(), 1e-9)
	assert.Equal(t, 0, a.SearchIndex())
}

func TestWaitingAgentDraggedAwayWalksBack(t *testing.T) {
	a := New(testConfig(), []gamemath.Vec3{gamemath.V3(0, 0, 0), gamemath.V3(5, 0, 0)})

	a.Tick(1, nil)
	require.Equal(t, Waiting, a.State())

	a.Tick(1, vp(0, 0, 10))
	require.Equal(t, Hunting, a.State())
	require.InDelta(t, 4.0, a.Position().Z, 1e-9)

	a.Tick(1, nil)
	assert.Equal(t, Searching, a.State())
	assert.Equal(t, 0, a.SearchIndex())
	assert.InDelta(t, 2.0, a.Position().Z, 1e-9)
}

func TestMissingTargetAndVictimAreNormal(t *testing.T) {
	a := New(testConfig(), nil)
	for i := 0; i < 10; i++ {
		a.Tick(1, nil)
		assert.Equal(t, Searching, a.State())
		assert.Equal(t, gamemath.Vec3{}, a.Position())
	}
	assert.True(t, math.IsInf(a.LastDistance(), 1))

	assert.NotPanics(t, func() { a.Tick(1, vp(0, 0, 1)) })
	assert.Equal(t, Attacking, a.State())
}

func TestUpdatePollsProvider(t *testing.T) {
	target := &fixedTarget{pos: gamemath.V3(0, 0, 5)}
	victim := &recordingVictim{}
	a := New(testConfig(), nil, WithTarget(target), WithVictim(victim))

	a.Update(0.1)
	assert.Equal(t, Searching, a.State(), "absent provider result means no target")

	target.present = true
	a.Update(0.1)
	assert.Equal(t, Hunting, a.State())

	target.pos = a.Position()
	a.Update(0.1)
	assert.Equal(t, Attacking, a.State())
	assert.Equal(t, 1, victim.hits)

	a.Attach(nil, nil)
	a.Update(0.1)
	assert.Equal(t, Searching, a.State())
}

func TestReset(t *testing.T) {
	points := []gamemath.Vec3{gamemath.V3(1, 0, 1), gamemath.V3(8, 0, 1)}
	a := New(testConfig(), points)
	for i := 0; i < 10; i++ {
		a.Tick(0.5, nil)
	}
	a.Tick(0.5, vp(3, 0, 3))

	a.Reset()
	assert.Equal(t, points[0], a.Position())
	assert.Equal(t, Searching, a.State())
	assert.Equal(t, 0, a.SearchIndex())
	assert.Zero(t, a.WaitTimer())
	assert.Equal(t, gamemath.Forward, a.Facing())
}

func TestNegativeDeltaIsClamped(t *testing.T) {
	a := New(testConfig(), []gamemath.Vec3{gamemath.V3(10, 0, 0)}, WithPosition(gamemath.Vec3{}))
	a.Tick(-1, nil)
	assert.Equal(t, gamemath.Vec3{}, a.Position())
}

func TestInvariantsUnderRandomTarget(t *testing.T) {
	cfg := Config{SearchRange: 8, AttackRange: 2, MoveSpeed: 4, SearchSpeed: 2, WaitAtPoint: 1, AttackDamage: 1}
	points := []gamemath.Vec3{
		gamemath.V3(-6, 0, -6),
		gamemath.V3(6, 0, -6),
		gamemath.V3(6, 0, 6),
		gamemath.V3(-6, 0, 6),
	}
	victim := &recordingVictim{}
	a := New(cfg, points, WithVictim(victim))

	rng := rand.New(rand.NewSource(7))
	target := gamemath.V3(15, 0, 15)
	attacks := 0

	for i := 0; i < 5000; i++ {
		target.X = gamemath.Clamp(target.X+rng.Float64()*2-1, -20, 20)
		target.Z = gamemath.Clamp(target.Z+rng.Float64()*2-1, -20, 20)

		var tp *gamemath.Vec3
		if rng.Float64() > 0.05 {
			tp = &target
		}

		before := a.Position()
		a.Tick(0.1, tp)

		if tp == nil {
			assert.False(t, a.State().Engaged(), "tick %d", i)
		} else {
			d := gamemath.Distance(before, target)
			assert.Equal(t, d <= cfg.SearchRange, a.State().Engaged(), "tick %d", i)
			if a.State() == Attacking {
				assert.LessOrEqual(t, d, cfg.AttackRange, "tick %d", i)
			}
		}

		if a.State() == Attacking {
			attacks++
		}
		if a.State() == Waiting {
			point, ok := a.CurrentSearchPoint()
			require.True(t, ok)
			assert.GreaterOrEqual(t, a.WaitTimer(), 0.0, "tick %d", i)
			assert.Less(t, gamemath.Distance(a.Position(), point), ArrivalThreshold, "tick %d", i)
		}
		assert.GreaterOrEqual(t, a.SearchIndex(), 0)
		assert.Less(t, a.SearchIndex(), len(points))
	}

	assert.Equal(t, attacks, victim.hits)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Searching", Searching.String())
	assert.Equal(t, "Waiting", Waiting.String())
	assert.Equal(t, "Hunting", Hunting.String())
	assert.Equal(t, "Attacking", Attacking.String())
	assert.Equal(t, "Unknown", State(42).String())
}
