package components

import "github.com/yohamta/donburi"

type LivesData struct {
	Lives    int
	MaxLives int
}

// Attempt is the 1-based number of the attempt in progress.
func (l *LivesData) Attempt() int {
	return l.MaxLives - l.Lives + 1
}

func (l *LivesData) Dead() bool {
	return l.Lives <= 0
}

var Lives = donburi.NewComponentType[LivesData]()
