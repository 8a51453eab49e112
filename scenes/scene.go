// Package scenes assembles the hunt world and the menu it returns to.
package scenes

// Scene is advanced once per simulation tick with the tick's delta.
type Scene interface {
	Update(dt float64)
}

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}
