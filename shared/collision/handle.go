package collision

import "fmt"

// Kind tags what a Handle points at.
type Kind uint8

const (
	KindNone Kind = iota
	KindActor
	KindDecoration
	KindSprite
	KindParty
	KindFace      // indoor face, Index is the face id
	KindModelFace // outdoor face, Model is the model index
)

func (k Kind) String() string {
	switch k {
	case KindActor:
		return "actor"
	case KindDecoration:
		return "decoration"
	case KindSprite:
		return "sprite"
	case KindParty:
		return "party"
	case KindFace:
		return "face"
	case KindModelFace:
		return "model_face"
	default:
		return "none"
	}
}

// Handle identifies a collidable object. Handles are comparable and the
// zero value means "nothing".
type Handle struct {
	Kind  Kind
	Model int32
	Index int32
}

var NoHandle = Handle{}

func ActorHandle(i int32) Handle      { return Handle{Kind: KindActor, Index: i} }
func DecorationHandle(i int32) Handle { return Handle{Kind: KindDecoration, Index: i} }
func SpriteHandle(i int32) Handle     { return Handle{Kind: KindSprite, Index: i} }
func PartyHandle() Handle             { return Handle{Kind: KindParty} }
func FaceHandle(id int32) Handle      { return Handle{Kind: KindFace, Index: id} }

func ModelFaceHandle(model, face int32) Handle {
	return Handle{Kind: KindModelFace, Model: model, Index: face}
}

func (h Handle) IsNone() bool { return h.Kind == KindNone }

// IsBody reports whether the handle names a cylinder body rather than a face.
func (h Handle) IsBody() bool {
	switch h.Kind {
	case KindActor, KindDecoration, KindSprite, KindParty:
		return true
	}
	return false
}

func (h Handle) String() string {
	switch h.Kind {
	case KindNone:
		return "none"
	case KindModelFace:
		return fmt.Sprintf("model_face(%d/%d)", h.Model, h.Index)
	case KindParty:
		return "party"
	default:
		return fmt.Sprintf("%s(%d)", h.Kind, h.Index)
	}
}
