package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/kamatayan/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

const vaultTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="8" tilewidth="4" tileheight="4" infinite="0" nextlayerid="5" nextobjectid="10">
 <objectgroup id="1" name="Walls">
  <object id="1" x="0" y="0" width="40" height="4"/>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="2" x="20" y="8"><point/></object>
  <object id="3" x="4" y="8"><point/></object>
 </objectgroup>
 <objectgroup id="3" name="EnemySpawn">
  <object id="4" x="32" y="24">
   <properties><property name="searchPath" value="loop"/></properties>
   <point/>
  </object>
  <object id="5" x="12" y="24"><point/></object>
 </objectgroup>
 <objectgroup id="4" name="SearchPaths">
  <object id="6" name="loop" x="32" y="24">
   <properties><property name="height" type="float" value="2"/></properties>
   <polyline points="0,0 -8,0 -8,-8"/>
  </object>
 </objectgroup>
</map>
`

const brokenTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="4" tileheight="4" infinite="0" nextlayerid="2" nextobjectid="2">
 <objectgroup id="1" name="EnemySpawn">
  <object id="1" x="4" y="4">
   <properties><property name="searchPath" value="missing"/></properties>
   <point/>
  </object>
 </objectgroup>
</map>
`

func TestLoadLevel(t *testing.T) {
	fsys := fstest.MapFS{"maps/vault.tmx": {Data: []byte(vaultTMX)}}

	level, err := LoadLevel(fsys, "maps/vault.tmx", 4)
	require.NoError(t, err)

	assert.Equal(t, "vault", level.Name)
	assert.Equal(t, 10.0, level.Width)
	assert.Equal(t, 8.0, level.Depth)
	assert.Equal(t, []Wall{{X: 0, Z: 0, Width: 10, Depth: 1}}, level.Walls)

	require.Len(t, level.PlayerSpawns, 2)
	assert.Equal(t, math.Vec2{X: 1, Y: 2}, level.PlayerSpawns[0], "sorted left to right")
	assert.Equal(t, gamemath.V3(1, 0, 2), level.PlayerSpawn())

	require.Len(t, level.EnemySpawns, 2)
	points, err := level.SearchPointsFor(level.EnemySpawns[0])
	require.NoError(t, err)
	assert.Equal(t, []gamemath.Vec3{
		gamemath.V3(8, 2, 6),
		gamemath.V3(6, 2, 6),
		gamemath.V3(6, 2, 4),
	}, points)

	points, err = level.SearchPointsFor(level.EnemySpawns[1])
	require.NoError(t, err)
	assert.Empty(t, points)

	_, err = level.SearchPointsFor(EnemySpawn{SearchPath: "nowhere"})
	assert.ErrorIs(t, err, ErrUnknownSearchPath)
}

func TestLoadLevelRejectsUnknownSearchPath(t *testing.T) {
	fsys := fstest.MapFS{"broken.tmx": {Data: []byte(brokenTMX)}}
	_, err := LoadLevel(fsys, "broken.tmx", 1)
	assert.ErrorIs(t, err, ErrUnknownSearchPath)
}

func TestLoadAllLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/vault.tmx":  {Data: []byte(vaultTMX)},
		"levels/notes.txt":  {Data: []byte("not a level")},
		"levels/annex.tmx":  {Data: []byte(vaultTMX)},
		"other/ignored.tmx": {Data: []byte(brokenTMX)},
	}

	levels, names, err := LoadAllLevels(fsys, "levels", 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"annex", "vault"}, names)
	assert.Len(t, levels, 2)

	_, _, err = LoadAllLevels(fsys, "empty", 4)
	assert.ErrorIs(t, err, ErrNoLevels)
}

func TestPlayerSpawnFallsBackToCenter(t *testing.T) {
	level := &Level{Width: 10, Depth: 6}
	assert.Equal(t, gamemath.V3(5, 0, 3), level.PlayerSpawn())
}
