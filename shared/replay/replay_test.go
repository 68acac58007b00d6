package replay

import (
	"bytes"
	"errors"
	"testing"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder("keep", 60)
	r.AddActor(1, 0, 0)
	r.Record(0, []Intent{{Actor: 1, X: 100}})
	r.Record(1, nil)
	r.Record(5, []Intent{{Actor: 1}})

	rec := r.Recording()
	if rec.Ticks != 6 || len(rec.Frames) != 2 || len(rec.Actors) != 1 {
		t.Fatalf("recording = %+v", rec)
	}

	r.RemoveActor(1, 7)
	if a := r.Recording().Actors[0]; !a.Gone || a.Left != 7 {
		t.Errorf("actor = %+v, want gone at 7", a)
	}
	if rec.Actors[0].Gone {
		t.Error("recording shares actors with the recorder")
	}

	// the copy does not change with the recorder
	r.Record(6, []Intent{{Actor: 1, Y: 3}})
	if len(rec.Frames) != 2 {
		t.Error("recording shares frames with the recorder")
	}
}

func TestEncodeDecode(t *testing.T) {
	r := NewRecorder("yard", 30)
	r.AddActor(2, 1, 3)
	r.Record(3, []Intent{{Actor: 2, X: -5, Y: 7, Z: 0}})
	r.Record(9, nil)

	var buf bytes.Buffer
	if err := Encode(&buf, r.Recording()); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Level != "yard" || got.TickRate != 30 || got.Ticks != 10 {
		t.Errorf("header = %s/%d/%d", got.Level, got.TickRate, got.Ticks)
	}
	if len(got.Frames) != 1 || got.Frames[0].Tick != 3 || got.Frames[0].Intents[0] != (Intent{Actor: 2, X: -5, Y: 7}) {
		t.Errorf("frames = %+v", got.Frames)
	}
	if len(got.Actors) != 1 || got.Actors[0] != (Actor{ID: 2, SpawnIndex: 1, Joined: 3}) {
		t.Errorf("actors = %+v", got.Actors)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		rec  Recording
		ok   bool
	}{
		{"valid", Recording{Level: "a", TickRate: 60, Ticks: 3, Frames: []Frame{{Tick: 0}, {Tick: 2}}}, true},
		{"no level", Recording{TickRate: 60}, false},
		{"no tick rate", Recording{Level: "a"}, false},
		{"out of order", Recording{Level: "a", TickRate: 60, Ticks: 9, Frames: []Frame{{Tick: 4}, {Tick: 4}}}, false},
		{"past the end", Recording{Level: "a", TickRate: 60, Ticks: 2, Frames: []Frame{{Tick: 2}}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.rec.Validate(); (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%t", err, tt.ok)
			}
		})
	}
}

func TestUnmarshalEmpty(t *testing.T) {
	if _, err := Unmarshal(nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("err = %v, want ErrEmpty", err)
	}
	if _, err := Unmarshal([]byte{0xc1}); err == nil {
		t.Error("expected an error for garbage input")
	}
}
