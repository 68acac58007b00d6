package leveldata

import (
	"os"
	"testing"

	"github.com/automoto/collide/shared/collision"
	"github.com/automoto/collide/shared/gamemath"
)

func TestLoadLevelIndoor(t *testing.T) {
	l, err := LoadLevel(os.DirFS("testdata"), "levels/keep.tmx")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}

	if l.Name != "keep" || l.Kind != KindIndoor {
		t.Errorf("name/kind = %s/%s", l.Name, l.Kind)
	}
	if len(l.Sectors) != 3 {
		t.Fatalf("sectors = %d, want 3", len(l.Sectors))
	}

	hallToCorridor := l.Face(l.Sector(0).Portals[0])
	if hallToCorridor.Flags.Has(collision.FaceClosed) {
		t.Error("hall/corridor portal should be open")
	}

	var door *collision.Face
	for _, id := range l.Sector(2).Portals {
		door = l.Face(id)
	}
	if door == nil || !door.Flags.Has(collision.FaceClosed) {
		t.Error("vault portal should be closed by the door")
	}

	if len(l.Decorations) != 2 || !l.Decorations[1].Passable {
		t.Errorf("decorations = %+v", l.Decorations)
	}
	if l.Decorations[0].Radius != 16 || l.Decorations[0].Height != 128 {
		t.Errorf("pillar = %+v", l.Decorations[0])
	}

	if len(l.Actors) != 1 || l.Actors[0].Name != "guard" || l.Actors[0].Sector != 1 {
		t.Errorf("actors = %+v", l.Actors)
	}
	if l.Actors[0].Radius != 12 || l.Actors[0].Height != defaultActorHeight {
		t.Errorf("guard body = %d/%d", l.Actors[0].Radius, l.Actors[0].Height)
	}

	if len(l.Spawns) != 2 || l.Spawns[0].Index != 0 || l.Spawns[0].Position != gamemath.V3(64, 64, 0) {
		t.Errorf("spawns = %+v", l.Spawns)
	}
}

func TestLoadLevelOutdoor(t *testing.T) {
	l, err := LoadLevel(os.DirFS("testdata"), "levels/yard.tmx")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if l.Kind != KindOutdoor {
		t.Fatalf("kind = %s, want outdoor", l.Kind)
	}
	if len(l.Models) != 2 || l.Models[0].Name != "crate" {
		t.Fatalf("models = %d", len(l.Models))
	}
	if l.Models[0].Bounds.Max.Z != 64 {
		t.Errorf("crate top = %d, want 64", l.Models[0].Bounds.Max.Z)
	}
	if !l.Models[1].Faces[0].Flags.Has(collision.FaceEthereal) {
		t.Error("hedge should be ethereal")
	}

	x, y := l.GridCell(gamemath.V3(600, 600, 0))
	if got := l.DecorationsInCell(x, y); len(got) != 1 {
		t.Errorf("decorations in the tree's cell = %d, want 1", len(got))
	}
	if got := l.ModelsNear(gamemath.BoundsOf(gamemath.V3(90, 90, 0), gamemath.V3(110, 110, 10))); len(got) != 1 {
		t.Errorf("models near the crate = %d, want 1", len(got))
	}
}

func TestLoadAllLevels(t *testing.T) {
	levels, names, err := LoadAllLevels(os.DirFS("testdata"), "levels")
	if err != nil {
		t.Fatalf("LoadAllLevels: %v", err)
	}
	if len(names) != 2 || names[0] != "keep" || names[1] != "yard" {
		t.Errorf("names = %v", names)
	}
	if levels["yard"] == nil || levels["keep"] == nil {
		t.Error("missing level")
	}

	if _, _, err := LoadAllLevels(os.DirFS("testdata"), "nowhere"); err == nil {
		t.Error("expected an error for a directory without levels")
	}
}
