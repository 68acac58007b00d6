package components

import (
	"github.com/automoto/collide/shared/spatial"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its broad-phase entry.
type ObjectData struct {
	*spatial.Entry
}

var Object = donburi.NewComponentType[ObjectData]()
