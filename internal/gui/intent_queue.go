package gui

import "github.com/appengine-ltd/secret-cult/internal/game"

type ActionSink interface {
	EnqueueAction(game.Action)
}

// actionQueue buffers actions picked during a frame; the frame loop drains
// them after input handling so clicks and typed commands resolve in order.
type actionQueue struct {
	ch chan game.Action
}

func newActionQueue(size int) *actionQueue {
	if size < 1 {
		size = 16
	}
	return &actionQueue{ch: make(chan game.Action, size)}
}

func (q *actionQueue) EnqueueAction(a game.Action) {
	if q == nil {
		return
	}
	select {
	case q.ch <- a:
	default:
		// Drop only when the queue is saturated.
	}
}

func (q *actionQueue) Dequeue() (game.Action, bool) {
	if q == nil {
		return "", false
	}
	select {
	case a := <-q.ch:
		return a, true
	default:
		return "", false
	}
}

// Drain discards everything queued and reports how many were dropped.
func (q *actionQueue) Drain() int {
	n := 0
	for {
		if _, ok := q.Dequeue(); !ok {
			return n
		}
		n++
	}
}
