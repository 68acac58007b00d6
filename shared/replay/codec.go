package replay

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

var ErrEmpty = errors.New("replay: empty recording")

// Encode writes rec as msgpack.
func Encode(w io.Writer, rec *Recording) error {
	if err := msgpack.NewEncoder(w).Encode(rec); err != nil {
		return fmt.Errorf("replay: encode: %w", err)
	}
	return nil
}

// Decode reads a msgpack recording and checks it is usable.
func Decode(r io.Reader) (*Recording, error) {
	var rec Recording
	if err := msgpack.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("replay: decode: %w", err)
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return &rec, nil
}

func Marshal(rec *Recording) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, rec); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Unmarshal(data []byte) (*Recording, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	return Decode(bytes.NewReader(data))
}

// Validate checks the recording names a level, has a tick rate and keeps
// its frames in tick order.
func (rec *Recording) Validate() error {
	if rec.Level == "" {
		return fmt.Errorf("replay: recording has no level")
	}
	if rec.TickRate <= 0 {
		return fmt.Errorf("replay: tick rate must be positive, got %d", rec.TickRate)
	}
	for i := 1; i < len(rec.Frames); i++ {
		if rec.Frames[i].Tick <= rec.Frames[i-1].Tick {
			return fmt.Errorf("replay: frame %d (tick %d) out of order", i, rec.Frames[i].Tick)
		}
	}
	if n := len(rec.Frames); n > 0 && rec.Frames[n-1].Tick >= rec.Ticks {
		return fmt.Errorf("replay: frame at tick %d past the end (%d ticks)", rec.Frames[n-1].Tick, rec.Ticks)
	}
	return nil
}
