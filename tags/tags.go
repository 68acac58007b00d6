package tags

import "github.com/yohamta/donburi"

var (
	Actor      = donburi.NewTag().SetName("Actor")
	Party      = donburi.NewTag().SetName("Party")
	Decoration = donburi.NewTag().SetName("Decoration")
	Sprite     = donburi.NewTag().SetName("Sprite")
	Player     = donburi.NewTag().SetName("Player")
)

// Resolv tags for the broad phase
const (
	ResolvActor      = "actor"
	ResolvParty      = "party"
	ResolvDecoration = "decoration"
	ResolvModel      = "model"
	ResolvSprite     = "sprite"
)

// ResolvBodies lists every tag carried by a moving body.
var ResolvBodies = []string{ResolvActor, ResolvParty, ResolvSprite}
