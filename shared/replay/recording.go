// Package replay records the move intents of a session tick by tick so the
// session can be run again headlessly. The resolver is integer only, so a
// replay of the same level reaches the same positions on every machine.
package replay

import "sync"

// Intent is the velocity requested for one actor on one tick.
type Intent struct {
	Actor    int32  `msgpack:"a"`
	Sequence uint32 `msgpack:"s"`
	X, Y, Z  int32
}

// Frame is every intent applied on one tick.
type Frame struct {
	Tick    uint64   `msgpack:"t"`
	Intents []Intent `msgpack:"i"`
}

// Actor is a player that joined during the recording. It is spawned before
// the step of tick Joined and, when Gone, removed before the step of tick
// Left.
type Actor struct {
	ID         int32  `msgpack:"id"`
	SpawnIndex int    `msgpack:"spawn"`
	Joined     uint64 `msgpack:"joined"`
	Left       uint64 `msgpack:"left"`
	Gone       bool   `msgpack:"gone"`
}

type Recording struct {
	Level    string  `msgpack:"level"`
	TickRate int     `msgpack:"rate"`
	Ticks    uint64  `msgpack:"ticks"`
	Actors   []Actor `msgpack:"actors"`
	Frames   []Frame `msgpack:"frames"`
}

// Recorder collects frames from the game loop. It is safe for concurrent use.
type Recorder struct {
	mu  sync.Mutex
	rec Recording
}

func NewRecorder(level string, tickRate int) *Recorder {
	return &Recorder{rec: Recording{Level: level, TickRate: tickRate}}
}

// AddActor registers a player spawned before the step of tick.
func (r *Recorder) AddActor(id int32, spawnIndex int, tick uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rec.Actors = append(r.rec.Actors, Actor{ID: id, SpawnIndex: spawnIndex, Joined: tick})
}

// RemoveActor marks a player removed before the step of tick.
func (r *Recorder) RemoveActor(id int32, tick uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rec.Actors {
		if a := &r.rec.Actors[i]; a.ID == id && !a.Gone {
			a.Left, a.Gone = tick, true
		}
	}
}

// Record stores the intents applied on tick. Ticks without intents only
// advance the length of the recording.
func (r *Recorder) Record(tick uint64, intents []Intent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tick+1 > r.rec.Ticks {
		r.rec.Ticks = tick + 1
	}
	if len(intents) == 0 {
		return
	}
	r.rec.Frames = append(r.rec.Frames, Frame{
		Tick:    tick,
		Intents: append([]Intent(nil), intents...),
	})
}

// Recording returns a copy of what has been recorded so far.
func (r *Recorder) Recording() *Recording {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.rec
	out.Actors = append([]Actor(nil), r.rec.Actors...)
	out.Frames = append([]Frame(nil), r.rec.Frames...)
	return &out
}
