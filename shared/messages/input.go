package messages

// MoveIntent is sent from client to server with the velocity the player
// wants, in world units per second. The server clamps it to the actor's top
// speed and resolves it against the level on the next tick.
type MoveIntent struct {
	Sequence uint32 // Incrementing ID, echoed back in NetBodyState
	X, Y, Z  int32
}
