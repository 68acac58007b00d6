package spatial

import (
	"github.com/automoto/collide/shared/collision"
	"github.com/automoto/collide/shared/gamemath"
	"github.com/automoto/collide/tags"
)

// Bodies is a population of moving bodies keyed by handle.
type Bodies struct {
	index   *Index
	entries map[collision.Handle]*Entry
}

func NewBodies(bounds gamemath.BBox, cellSize int32) *Bodies {
	return &Bodies{
		index:   NewIndex(bounds, cellSize),
		entries: make(map[collision.Handle]*Entry),
	}
}

// Set inserts b or moves it to its current bounds. The body is stored by
// value so later changes to b need another Set.
func (bs *Bodies) Set(b collision.Body) *Entry {
	if e, ok := bs.entries[b.Handle]; ok {
		*e.Value.(*collision.Body) = b
		bs.index.Move(e, b.Bounds())
		return e
	}
	stored := b
	e := bs.index.Insert(b.Bounds(), &stored, tagFor(b.Handle.Kind))
	bs.entries[b.Handle] = e
	return e
}

func (bs *Bodies) Remove(h collision.Handle) {
	if e, ok := bs.entries[h]; ok {
		bs.index.Remove(e)
		delete(bs.entries, h)
	}
}

func (bs *Bodies) Len() int { return len(bs.entries) }

func (bs *Bodies) Body(h collision.Handle) *collision.Body {
	if e, ok := bs.entries[h]; ok {
		return e.Value.(*collision.Body)
	}
	return nil
}

func (bs *Bodies) BodiesNear(box gamemath.BBox) []*collision.Body {
	var out []*collision.Body
	for _, e := range bs.index.Query(box, tags.ResolvBodies...) {
		out = append(out, e.Value.(*collision.Body))
	}
	return out
}

func tagFor(k collision.Kind) string {
	switch k {
	case collision.KindParty:
		return tags.ResolvParty
	case collision.KindSprite:
		return tags.ResolvSprite
	default:
		return tags.ResolvActor
	}
}
