package core

import (
	"os"
	"path/filepath"
	"reflect"
	"sync/atomic"
	"testing"
	"time"

	"github.com/automoto/collide/components"
	"github.com/automoto/collide/shared/collision"
	"github.com/automoto/collide/shared/gamemath"
	"github.com/automoto/collide/shared/replay"
	"github.com/yohamta/donburi"
)

const levelsDir = "../../shared/leveldata/testdata/levels"

func loadLevels(t *testing.T) *Levels {
	t.Helper()
	ls, err := LoadLevels(levelsDir)
	if err != nil {
		t.Fatalf("LoadLevels: %v", err)
	}
	return ls
}

func TestLevels(t *testing.T) {
	ls := loadLevels(t)
	if got := ls.Names(); !reflect.DeepEqual(got, []string{"keep", "yard"}) {
		t.Errorf("names = %v", got)
	}
	l, err := ls.Get("")
	if err != nil || l.Name != "keep" {
		t.Errorf("default level = %v, %v", l, err)
	}
	if _, err := ls.Get("moon"); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestSimulationSpawnAndMove(t *testing.T) {
	l, _ := loadLevels(t).Get("keep")
	sim := NewSimulation(l, 60)

	entry, id, err := sim.SpawnPlayer("c1", 0)
	if err != nil {
		t.Fatalf("SpawnPlayer: %v", err)
	}
	body := components.Body.Get(entry)
	if body.Position != gamemath.V3(64, 64, 0) || body.Sector != 0 {
		t.Fatalf("spawned at %v sector %d", body.Position, body.Sector)
	}

	// walk west into the hall's outer wall
	for i := 0; i < 60; i++ {
		sim.Apply([]replay.Intent{{Actor: id, X: -256}})
		sim.Step()
	}
	if body.Position.X != 16 {
		t.Errorf("x = %d, want 16 against the wall", body.Position.X)
	}
	if hit := components.Physics.Get(entry).LastHit; hit.Kind != collision.KindFace {
		t.Errorf("last hit = %v", hit)
	}
	if sim.Tick() != 60 {
		t.Errorf("tick = %d, want 60", sim.Tick())
	}

	sim.RemoveActor(id)
	if _, ok := sim.Actor(id); ok {
		t.Error("actor still present")
	}
}

func TestSimulationSwapLevel(t *testing.T) {
	ls := loadLevels(t)
	keep, _ := ls.Get("keep")
	yard, _ := ls.Get("yard")
	sim := NewSimulation(keep, 60)
	entry, _, _ := sim.SpawnPlayer("c1", 0)

	sim.SwapLevel(yard)
	if sim.LevelData().Level != yard {
		t.Fatal("level not swapped")
	}
	if s := components.Body.Get(entry).Sector; s != -1 {
		t.Errorf("sector = %d outdoors, want -1", s)
	}

	n := 0
	components.Body.Each(sim.World(), func(*donburi.Entry) { n++ })
	// the player and the yard's tree
	if n != 2 {
		t.Errorf("bodies = %d, want 2", n)
	}
}

func TestReplayIsDeterministic(t *testing.T) {
	l, _ := loadLevels(t).Get("keep")

	rec := replay.NewRecorder("keep", 60)
	rec.AddActor(1, 0, 0)
	rec.AddActor(2, 1, 10)
	rec.Record(0, []replay.Intent{{Actor: 1, X: -100, Y: 150}})
	rec.Record(12, []replay.Intent{{Actor: 2, X: 190, Y: -80}})
	rec.Record(90, []replay.Intent{{Actor: 1, X: -30, Y: 250}, {Actor: 2}})
	rec.RemoveActor(2, 150)
	rec.Record(239, nil)

	first, err := Replay(l, rec.Recording())
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	second, err := Replay(l, rec.Recording())
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("replays differ:\n%v\n%v", first, second)
	}

	// actor 2 left, so the guard and actor 1 remain in handle order
	if len(first) != 2 {
		t.Fatalf("bodies = %v", first)
	}
	if first[1].Position == gamemath.V3(64, 64, 0) {
		t.Error("actor 1 never moved")
	}
}

func TestReplayRejectsOtherLevel(t *testing.T) {
	l, _ := loadLevels(t).Get("keep")
	if _, err := Replay(l, &replay.Recording{Level: "yard", TickRate: 60}); err == nil {
		t.Error("expected an error for a recording of another level")
	}
}

type countingTicker struct{ n atomic.Int32 }

func (c *countingTicker) Tick() { c.n.Add(1) }

func TestGameLoop(t *testing.T) {
	target := &countingTicker{}
	loop := NewGameLoop(target, 200)
	loop.sync = nil

	done := make(chan struct{})
	go func() {
		loop.Run()
		close(done)
	}()
	time.Sleep(100 * time.Millisecond)
	loop.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}
	if target.n.Load() == 0 {
		t.Error("loop never ticked")
	}
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	level := filepath.Join(dir, "keep.tmx")
	if err := os.WriteFile(level, []byte("<map/>"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if got != level {
			t.Errorf("event for %s, want %s", got, level)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event for the level file")
	}

	_ = w.Close()
	for range w.Events {
	}
}
