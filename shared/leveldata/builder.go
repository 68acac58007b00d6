package leveldata

import (
	"fmt"

	"github.com/automoto/collide/shared/collision"
	"github.com/automoto/collide/shared/gamemath"
)

// DefaultCellSize is the outdoor grid cell size when none is given.
const DefaultCellSize = 512

type sectorDef struct {
	footprint      []Point2
	floor, ceiling int32
}

type modelDef struct {
	name       string
	footprint  []Point2
	floor, top int32
	flags      collision.FaceFlags
}

type decorationDef struct {
	position gamemath.Vec3
	radius   int32
	height   int32
	passable bool
}

type edgeKey struct{ a, b Point2 }

func keyOf(a, b Point2) edgeKey {
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// Builder assembles a Level from floor plans. Indoor sectors are extruded
// between a floor and a ceiling; an edge shared by two sectors becomes a
// portal joining them. Outdoor models are extruded prisms.
type Builder struct {
	name     string
	kind     Kind
	cellSize int32

	sectors     []sectorDef
	closed      map[edgeKey]bool
	models      []modelDef
	decorations []decorationDef
	actors      []ActorSpawn
	spawns      []SpawnPoint
}

func NewBuilder(name string, kind Kind) *Builder {
	return &Builder{
		name:     name,
		kind:     kind,
		cellSize: DefaultCellSize,
		closed:   map[edgeKey]bool{},
	}
}

func (b *Builder) SetCellSize(size int32) {
	if size > 0 {
		b.cellSize = size
	}
}

// AddSector returns the id the sector will have.
func (b *Builder) AddSector(footprint []Point2, floor, ceiling int32) int32 {
	b.sectors = append(b.sectors, sectorDef{footprint: footprint, floor: floor, ceiling: ceiling})
	return int32(len(b.sectors) - 1)
}

// CloseEdge turns the portal on the shared edge a-c into a closed one.
func (b *Builder) CloseEdge(a, c Point2) {
	b.closed[keyOf(a, c)] = true
}

func (b *Builder) AddModel(name string, footprint []Point2, floor, top int32, flags collision.FaceFlags) int32 {
	b.models = append(b.models, modelDef{name: name, footprint: footprint, floor: floor, top: top, flags: flags})
	return int32(len(b.models) - 1)
}

func (b *Builder) AddDecoration(position gamemath.Vec3, radius, height int32, passable bool) int32 {
	b.decorations = append(b.decorations, decorationDef{position, radius, height, passable})
	return int32(len(b.decorations) - 1)
}

func (b *Builder) AddActor(a ActorSpawn) { b.actors = append(b.actors, a) }

func (b *Builder) AddSpawn(s SpawnPoint) { b.spawns = append(b.spawns, s) }

// Build computes planes, projection axes, bounds, portals and sector
// membership.
func (b *Builder) Build() (*Level, error) {
	l := &Level{
		Name:     b.name,
		Kind:     b.kind,
		CellSize: b.cellSize,
		Bounds:   gamemath.EmptyBox(),
	}

	if err := b.buildSectors(l); err != nil {
		return nil, err
	}
	if err := b.buildModels(l); err != nil {
		return nil, err
	}

	for i, d := range b.decorations {
		if d.radius <= 0 {
			return nil, fmt.Errorf("leveldata: %s: decoration %d has radius %d", b.name, i, d.radius)
		}
		body := collision.Body{
			Handle:   collision.DecorationHandle(int32(i)),
			Position: d.position,
			Radius:   d.radius,
			Height:   d.height,
			Passable: d.passable,
		}
		l.Decorations = append(l.Decorations, body)
		l.Bounds = l.Bounds.Union(body.Bounds())
		if s := l.SectorAt(d.position); s >= 0 {
			l.Sectors[s].Decorations = append(l.Sectors[s].Decorations, int32(i))
		}
	}

	for _, a := range b.actors {
		a.Sector = l.SectorAt(a.Position)
		l.Actors = append(l.Actors, a)
	}
	for _, s := range b.spawns {
		s.Sector = l.SectorAt(s.Position)
		l.Spawns = append(l.Spawns, s)
	}
	return l, nil
}

type edgeOwner struct {
	sector int32
	a, b   Point2
}

func (b *Builder) buildSectors(l *Level) error {
	edges := map[edgeKey][]edgeOwner{}
	var order []edgeKey

	for i, def := range b.sectors {
		id := int32(i)
		if def.ceiling <= def.floor {
			return fmt.Errorf("leveldata: %s: sector %d ceiling %d is not above floor %d", b.name, id, def.ceiling, def.floor)
		}
		fp, err := counterClockwise(def.footprint)
		if err != nil {
			return fmt.Errorf("leveldata: %s: sector %d: %w", b.name, id, err)
		}
		b.sectors[i].footprint = fp

		l.Sectors = append(l.Sectors, collision.Sector{ID: id, Bounds: gamemath.EmptyBox()})

		floor := make([]gamemath.Vec3, len(fp))
		ceiling := make([]gamemath.Vec3, len(fp))
		for j, p := range fp {
			floor[j] = gamemath.V3(p.X, p.Y, def.floor)
			ceiling[len(fp)-1-j] = gamemath.V3(p.X, p.Y, def.ceiling)
		}
		floorID := l.addFace(id, gamemath.V3(0, 0, gamemath.One), floor, 0)
		l.addFace(id, gamemath.V3(0, 0, -gamemath.One), ceiling, 0)
		l.floors = append(l.floors, sectorSpan{floorFace: floorID, floor: def.floor, ceiling: def.ceiling})

		for j := range fp {
			a, c := fp[j], fp[(j+1)%len(fp)]
			k := keyOf(a, c)
			if _, ok := edges[k]; !ok {
				order = append(order, k)
			}
			edges[k] = append(edges[k], edgeOwner{sector: id, a: a, b: c})
		}
	}

	for _, k := range order {
		owners := edges[k]
		switch len(owners) {
		case 1:
			o := owners[0]
			def := b.sectors[o.sector]
			l.addWall(o.sector, o.a, o.b, def.floor, def.ceiling)
		case 2:
			b.joinSectors(l, owners[0], owners[1], b.closed[k])
		default:
			return fmt.Errorf("leveldata: %s: edge %v-%v is shared by %d sectors", b.name, k.a, k.b, len(owners))
		}
	}
	return nil
}

// joinSectors makes the vertical overlap of two sectors along a shared edge
// a portal and walls off the rest on each side.
func (b *Builder) joinSectors(l *Level, front, back edgeOwner, closed bool) {
	fd, bd := b.sectors[front.sector], b.sectors[back.sector]
	lo := gamemath.Max32(fd.floor, bd.floor)
	hi := gamemath.Min32(fd.ceiling, bd.ceiling)
	if hi <= lo {
		l.addWall(front.sector, front.a, front.b, fd.floor, fd.ceiling)
		l.addWall(back.sector, back.a, back.b, bd.floor, bd.ceiling)
		return
	}

	flags := collision.FacePortal
	if closed {
		flags |= collision.FaceClosed
	}
	verts := quad(front.a, front.b, lo, hi)
	id := l.addFace(front.sector, inwardNormal(front.a, front.b), verts, flags)
	l.Faces[id].BackSector = back.sector
	l.Sectors[front.sector].Portals = append(l.Sectors[front.sector].Portals, id)
	l.Sectors[back.sector].Portals = append(l.Sectors[back.sector].Portals, id)

	for _, o := range []edgeOwner{front, back} {
		def := b.sectors[o.sector]
		if def.floor < lo {
			l.addWall(o.sector, o.a, o.b, def.floor, lo)
		}
		if def.ceiling > hi {
			l.addWall(o.sector, o.a, o.b, hi, def.ceiling)
		}
	}
}

func (b *Builder) buildModels(l *Level) error {
	for i, def := range b.models {
		if def.top <= def.floor {
			return fmt.Errorf("leveldata: %s: model %q top %d is not above floor %d", b.name, def.name, def.top, def.floor)
		}
		fp, err := counterClockwise(def.footprint)
		if err != nil {
			return fmt.Errorf("leveldata: %s: model %q: %w", b.name, def.name, err)
		}

		n := int32(len(fp))
		m := collision.Model{Index: int32(i), Name: def.name}
		for _, p := range fp {
			m.Vertices = append(m.Vertices, gamemath.V3(p.X, p.Y, def.floor))
		}
		for _, p := range fp {
			m.Vertices = append(m.Vertices, gamemath.V3(p.X, p.Y, def.top))
		}

		top := make([]int32, n)
		bottom := make([]int32, n)
		for j := int32(0); j < n; j++ {
			top[j] = n + j
			bottom[j] = n - 1 - j
		}
		addModelFace(&m, gamemath.V3(0, 0, gamemath.One), top, def.flags)
		addModelFace(&m, gamemath.V3(0, 0, -gamemath.One), bottom, def.flags)
		for j := int32(0); j < n; j++ {
			k := (j + 1) % n
			addModelFace(&m, inwardNormal(fp[j], fp[k]).Neg(), []int32{j, k, n + k, n + j}, def.flags)
		}

		m.Bounds = gamemath.BoundsOf(m.Vertices...)
		l.Bounds = l.Bounds.Union(m.Bounds)
		l.Models = append(l.Models, m)
	}
	return nil
}

func (l *Level) addFace(sector int32, normal gamemath.Vec3, verts []gamemath.Vec3, flags collision.FaceFlags) int32 {
	id := int32(len(l.Faces))
	bounds := gamemath.BoundsOf(verts...)
	l.Faces = append(l.Faces, collision.Face{
		ID:         id,
		Plane:      collision.PlaneFrom(normal, verts[0]),
		Axis:       collision.DominantAxis(normal),
		Vertices:   verts,
		Flags:      flags,
		Bounds:     bounds,
		Sector:     sector,
		BackSector: -1,
	})
	s := &l.Sectors[sector]
	if !flags.Has(collision.FacePortal) {
		s.Faces = append(s.Faces, id)
	}
	s.Bounds = s.Bounds.Union(bounds)
	l.Bounds = l.Bounds.Union(bounds)
	return id
}

func (l *Level) addWall(sector int32, a, b Point2, lo, hi int32) {
	l.addFace(sector, inwardNormal(a, b), quad(a, b, lo, hi), 0)
}

func addModelFace(m *collision.Model, normal gamemath.Vec3, idx []int32, flags collision.FaceFlags) {
	verts := make([]gamemath.Vec3, len(idx))
	for i, v := range idx {
		verts[i] = m.Vertices[v]
	}
	m.Faces = append(m.Faces, collision.ModelFace{
		Normal:   normal,
		Vertices: idx,
		Flags:    flags,
		Bounds:   gamemath.BoundsOf(verts...),
	})
}

func quad(a, b Point2, lo, hi int32) []gamemath.Vec3 {
	return []gamemath.Vec3{
		gamemath.V3(a.X, a.Y, lo),
		gamemath.V3(b.X, b.Y, lo),
		gamemath.V3(b.X, b.Y, hi),
		gamemath.V3(a.X, a.Y, hi),
	}
}

// inwardNormal is the left normal of the edge a->b, which points into a
// counter-clockwise polygon.
func inwardNormal(a, b Point2) gamemath.Vec3 {
	return gamemath.V3(-(b.Y - a.Y), b.X-a.X, 0).Normalize()
}

func counterClockwise(fp []Point2) ([]Point2, error) {
	if len(fp) < 3 {
		return nil, fmt.Errorf("footprint has %d points", len(fp))
	}
	var area int64
	for i := range fp {
		j := (i + 1) % len(fp)
		area += int64(fp[i].X)*int64(fp[j].Y) - int64(fp[j].X)*int64(fp[i].Y)
	}
	if area == 0 {
		return nil, fmt.Errorf("footprint has zero area")
	}
	out := make([]Point2, len(fp))
	copy(out, fp)
	if area < 0 {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out, nil
}
