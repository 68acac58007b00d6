// Package leveldata turns TMX floor plans into the 3D geometry the collision
// resolver walks: sectors joined by portals for indoor levels, extruded
// models for outdoor ones, plus decorations and spawn points.
package leveldata

import (
	"github.com/automoto/collide/shared/collision"
	"github.com/automoto/collide/shared/gamemath"
)

// Kind selects which geometry representation a level uses.
type Kind uint8

const (
	KindIndoor Kind = iota
	KindOutdoor
)

func (k Kind) String() string {
	if k == KindOutdoor {
		return "outdoor"
	}
	return "indoor"
}

// Point2 is a footprint vertex in the horizontal plane.
type Point2 struct {
	X, Y int32
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	Position gamemath.Vec3
	Index    int
	Sector   int32
}

// ActorSpawn places a non-player actor when the level starts.
type ActorSpawn struct {
	Name     string
	Position gamemath.Vec3
	Radius   int32
	Height   int32
	Sector   int32
}

// Level holds everything the resolver needs about one map. It is read-only
// once built.
type Level struct {
	Name     string
	Kind     Kind
	CellSize int32

	Faces       []collision.Face
	Sectors     []collision.Sector
	Models      []collision.Model
	Decorations []collision.Body
	Actors      []ActorSpawn
	Spawns      []SpawnPoint
	Bounds      gamemath.BBox

	// per sector: floor face id and vertical span, for SectorAt
	floors []sectorSpan
}

type sectorSpan struct {
	floorFace      int32
	floor, ceiling int32
}
