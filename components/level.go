package components

import (
	"github.com/automoto/collide/shared/collision"
	"github.com/automoto/collide/shared/leveldata"
	"github.com/automoto/collide/shared/spatial"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level    *leveldata.Level
	Bodies   *spatial.Bodies
	Resolver *collision.Resolver
	TickRate int
	Tick     uint64

	// NextID numbers actor and sprite handles in spawn order.
	NextID int32
}

// Allocate returns the next free handle index.
func (l *LevelData) Allocate() int32 {
	l.NextID++
	return l.NextID
}

var Level = donburi.NewComponentType[LevelData]()
