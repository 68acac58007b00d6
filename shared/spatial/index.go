// Package spatial is the broad phase: a resolv space in world units that
// answers box and grid-cell queries for models, decorations and bodies.
package spatial

import (
	"math"
	"sort"

	"github.com/automoto/collide/shared/gamemath"
	"github.com/solarlune/resolv"
)

// margin is the number of cells added around the indexed bounds so bodies
// can step past the level edge without falling out of the space.
const margin = 2

// Entry is what an indexed resolv object carries in its Data field.
type Entry struct {
	Box   gamemath.BBox
	Value any

	seq uint64
	obj *resolv.Object
}

func (e *Entry) Object() *resolv.Object { return e.obj }

// Index maps world boxes onto a resolv.Space. Resolv cells only cover
// non-negative coordinates, so the world is shifted by an origin aligned to
// the cell size. Queries add and remove a probe object, so an Index is not
// safe for concurrent use.
type Index struct {
	space    *resolv.Space
	origin   gamemath.Vec3
	cellSize int32
	seq      uint64
	count    int
}

// NewIndex covers bounds (plus a margin) with square cells of cellSize.
func NewIndex(bounds gamemath.BBox, cellSize int32) *Index {
	if cellSize <= 0 {
		cellSize = 64
	}
	if bounds.IsEmpty() {
		bounds = gamemath.BBox{}
	}
	minX := floorDiv(bounds.Min.X, cellSize) - margin
	minY := floorDiv(bounds.Min.Y, cellSize) - margin
	maxX := floorDiv(bounds.Max.X, cellSize) + margin
	maxY := floorDiv(bounds.Max.Y, cellSize) + margin

	cs := int(cellSize)
	return &Index{
		space:    resolv.NewSpace(int(maxX-minX+1)*cs, int(maxY-minY+1)*cs, cs, cs),
		origin:   gamemath.V3(minX*cellSize, minY*cellSize, 0),
		cellSize: cellSize,
	}
}

func (ix *Index) CellSize() int32 { return ix.cellSize }

func (ix *Index) Len() int { return ix.count }

// Insert adds a box carrying value under the given resolv tags.
func (ix *Index) Insert(box gamemath.BBox, value any, tags ...string) *Entry {
	x, y, w, h := ix.rect(box)
	obj := resolv.NewObject(x, y, w, h, tags...)
	ix.seq++
	e := &Entry{Box: box, Value: value, seq: ix.seq, obj: obj}
	obj.Data = e
	ix.space.Add(obj)
	ix.count++
	return e
}

// Move relocates an entry to a new box.
func (ix *Index) Move(e *Entry, box gamemath.BBox) {
	if e == nil || e.obj == nil {
		return
	}
	e.Box = box
	e.obj.X, e.obj.Y, e.obj.W, e.obj.H = ix.rect(box)
	e.obj.Update()
}

func (ix *Index) Remove(e *Entry) {
	if e == nil || e.obj == nil {
		return
	}
	ix.space.Remove(e.obj)
	e.obj = nil
	ix.count--
}

// Query returns the entries with one of the tags whose boxes intersect box,
// in insertion order.
func (ix *Index) Query(box gamemath.BBox, tags ...string) []*Entry {
	if box.IsEmpty() {
		return nil
	}
	x, y, w, h := ix.rect(box)
	probe := resolv.NewObject(x, y, w, h)
	ix.space.Add(probe)
	defer ix.space.Remove(probe)

	check := probe.Check(0, 0, tags...)
	if check == nil {
		return nil
	}
	return collect(check.Objects, box)
}

// CellOf returns the world grid cell holding p.
func (ix *Index) CellOf(p gamemath.Vec3) (x, y int) {
	return int(floorDiv(p.X, ix.cellSize)), int(floorDiv(p.Y, ix.cellSize))
}

// Cell returns the entries whose box touches world cell (x, y).
func (ix *Index) Cell(x, y int, tags ...string) []*Entry {
	cs := ix.cellSize
	lo := gamemath.V3(int32(x)*cs, int32(y)*cs, math.MinInt32)
	hi := gamemath.V3(lo.X+cs-1, lo.Y+cs-1, math.MaxInt32)
	return ix.Query(gamemath.BBox{Min: lo, Max: hi}, tags...)
}

func (ix *Index) rect(box gamemath.BBox) (x, y, w, h float64) {
	return float64(box.Min.X - ix.origin.X),
		float64(box.Min.Y - ix.origin.Y),
		float64(box.Max.X - box.Min.X + 1),
		float64(box.Max.Y - box.Min.Y + 1)
}

func collect(objects []*resolv.Object, box gamemath.BBox) []*Entry {
	var out []*Entry
	seen := make(map[*Entry]struct{}, len(objects))
	for _, o := range objects {
		e, ok := o.Data.(*Entry)
		if !ok || e.obj == nil {
			continue
		}
		if _, dup := seen[e]; dup || !e.Box.Intersects(box) {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

func floorDiv(v, size int32) int32 {
	q := v / size
	if v%size != 0 && v < 0 {
		q--
	}
	return q
}
