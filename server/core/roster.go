package core

import (
	"errors"
	"slices"
)

var errServerFull = errors.New("server full")

// roster tracks who is connected. One client controls the player, the rest
// watch in join order.
type roster struct {
	controller    string
	spectators    []string
	maxSpectators int
}

func newRoster(maxSpectators int) *roster {
	return &roster{maxSpectators: maxSpectators}
}

// join adds a client and reports whether it got the player.
func (r *roster) join(id string, spectate bool) (bool, error) {
	if r.controller == id {
		return true, nil
	}
	if slices.Contains(r.spectators, id) {
		return false, nil
	}
	if !spectate && r.controller == "" {
		r.controller = id
		return true, nil
	}
	if len(r.spectators) >= r.maxSpectators {
		return false, errServerFull
	}
	r.spectators = append(r.spectators, id)
	return false, nil
}

// leave removes a client and reports whether it was the controller. A
// departing controller hands the player to the longest-waiting spectator,
// whose id is returned.
func (r *roster) leave(id string) (bool, string) {
	if r.controller != id || id == "" {
		r.spectators = slices.DeleteFunc(r.spectators, func(s string) bool { return s == id })
		return false, ""
	}
	r.controller = ""
	if len(r.spectators) == 0 {
		return true, ""
	}
	r.controller = r.spectators[0]
	r.spectators = r.spectators[1:]
	return true, r.controller
}

func (r *roster) isController(id string) bool {
	return id != "" && r.controller == id
}

func (r *roster) hasController() bool {
	return r.controller != ""
}

func (r *roster) size() int {
	n := len(r.spectators)
	if r.hasController() {
		n++
	}
	return n
}
