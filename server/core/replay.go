package core

import (
	"fmt"
	"sort"

	"github.com/automoto/collide/shared/leveldata"
	"github.com/automoto/collide/shared/replay"
	"github.com/automoto/collide/systems"
)

// Replay runs a recording on its level without a network and returns the
// bodies as they stand after the last tick.
func Replay(l *leveldata.Level, rec *replay.Recording) ([]systems.BodyState, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	if rec.Level != l.Name {
		return nil, fmt.Errorf("replay: recording is for level %q, got %q", rec.Level, l.Name)
	}

	sim := NewSimulation(l, rec.TickRate)

	actors := append([]replay.Actor(nil), rec.Actors...)
	sort.SliceStable(actors, func(i, j int) bool { return actors[i].Joined < actors[j].Joined })

	ids := make(map[int32]int32, len(actors))
	nextActor, nextFrame := 0, 0
	for tick := uint64(0); tick < rec.Ticks; tick++ {
		for ; nextActor < len(actors) && actors[nextActor].Joined == tick; nextActor++ {
			a := actors[nextActor]
			_, id, err := sim.SpawnPlayer(fmt.Sprintf("replay-%d", a.ID), a.SpawnIndex)
			if err != nil {
				return nil, fmt.Errorf("replay: spawn actor %d: %w", a.ID, err)
			}
			ids[a.ID] = id
		}
		for _, a := range actors {
			if a.Gone && a.Left == tick {
				if id, ok := ids[a.ID]; ok {
					sim.RemoveActor(id)
				}
			}
		}
		if nextFrame < len(rec.Frames) && rec.Frames[nextFrame].Tick == tick {
			sim.Apply(remap(rec.Frames[nextFrame].Intents, ids))
			nextFrame++
		}
		sim.Step()
	}
	return sim.Snapshot(), nil
}

func remap(intents []replay.Intent, ids map[int32]int32) []replay.Intent {
	out := make([]replay.Intent, 0, len(intents))
	for _, in := range intents {
		id, ok := ids[in.Actor]
		if !ok {
			continue
		}
		in.Actor = id
		out = append(out, in)
	}
	return out
}
