package leveldata

import (
	"fmt"
	"io/fs"
	"math"
	"path"
	"sort"
	"strings"

	"github.com/automoto/collide/shared/collision"
	"github.com/automoto/collide/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// Object group names read from TMX files.
const (
	GroupSectors     = "Sectors"
	GroupDoors       = "Doors"
	GroupModels      = "Models"
	GroupDecorations = "Decorations"
	GroupActors      = "Actors"
	GroupSpawns      = "PlayerSpawn"
)

// Defaults for objects that leave a property out.
const (
	defaultCeiling          = 128
	defaultDecorationRadius = 8
	defaultDecorationHeight = 32
	defaultActorRadius      = 16
	defaultActorHeight      = 64
)

type properties interface {
	GetInt(name string) int
}

// LoadLevel parses a TMX file into a Level. Maps with a Models group and no
// Sectors group are outdoor, everything else is indoor. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("leveldata: load TMX %s: %w", tmxPath, err)
	}

	name := strings.TrimSuffix(path.Base(tmxPath), ".tmx")
	b := NewBuilder(name, levelKind(levelMap))

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupSectors:
			for _, o := range og.Objects {
				fp := footprint(o)
				ceiling := intProp(o.Properties, "ceiling", defaultCeiling)
				b.AddSector(fp, int32(o.Properties.GetInt("floor")), ceiling)
			}
		case GroupDoors:
			for _, o := range og.Objects {
				if len(o.PolyLines) == 0 {
					continue
				}
				polyline := o.PolyLines[0]
				if polyline.Points == nil || len(*polyline.Points) < 2 {
					continue
				}
				pts := *polyline.Points
				a := point(o.X+pts[0].X, o.Y+pts[0].Y)
				c := point(o.X+pts[1].X, o.Y+pts[1].Y)
				b.CloseEdge(a, c)
			}
		case GroupModels:
			for _, o := range og.Objects {
				floor := int32(o.Properties.GetInt("floor"))
				height := intProp(o.Properties, "height", defaultCeiling)
				var flags collision.FaceFlags
				if o.Properties.GetBool("ethereal") {
					flags |= collision.FaceEthereal
				}
				b.AddModel(o.Name, footprint(o), floor, floor+height, flags)
			}
		case GroupDecorations:
			for _, o := range og.Objects {
				b.AddDecoration(
					objectPosition(o),
					intProp(o.Properties, "radius", defaultDecorationRadius),
					intProp(o.Properties, "height", defaultDecorationHeight),
					o.Properties.GetBool("passable"),
				)
			}
		case GroupActors:
			for _, o := range og.Objects {
				b.AddActor(ActorSpawn{
					Name:     o.Name,
					Position: objectPosition(o),
					Radius:   intProp(o.Properties, "radius", defaultActorRadius),
					Height:   intProp(o.Properties, "height", defaultActorHeight),
				})
			}
		case GroupSpawns:
			for _, o := range og.Objects {
				b.AddSpawn(SpawnPoint{
					Position: objectPosition(o),
					Index:    o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	level, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("leveldata: build %s: %w", tmxPath, err)
	}

	// Sort spawns for consistent assignment
	sort.Slice(level.Spawns, func(i, j int) bool {
		return level.Spawns[i].Index < level.Spawns[j].Index
	})
	return level, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads
// each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("leveldata: glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("leveldata: no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, match := range matches {
		level, err := LoadLevel(fsys, match)
		if err != nil {
			return nil, nil, err
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

func levelKind(m *tiled.Map) Kind {
	var sectors, models bool
	for _, og := range m.ObjectGroups {
		sectors = sectors || og.Name == GroupSectors
		models = models || og.Name == GroupModels
	}
	if models && !sectors {
		return KindOutdoor
	}
	return KindIndoor
}

// footprint returns the absolute outline of a polygon or rectangle object.
func footprint(o *tiled.Object) []Point2 {
	if len(o.Polygons) > 0 && o.Polygons[0].Points != nil {
		var fp []Point2
		for _, p := range *o.Polygons[0].Points {
			fp = append(fp, point(o.X+p.X, o.Y+p.Y))
		}
		return fp
	}
	return []Point2{
		point(o.X, o.Y),
		point(o.X+o.Width, o.Y),
		point(o.X+o.Width, o.Y+o.Height),
		point(o.X, o.Y+o.Height),
	}
}

func objectPosition(o *tiled.Object) gamemath.Vec3 {
	p := point(o.X, o.Y)
	return gamemath.V3(p.X, p.Y, int32(o.Properties.GetInt("z")))
}

func point(x, y float64) Point2 {
	return Point2{X: int32(math.Round(x)), Y: int32(math.Round(y))}
}

func intProp(p properties, name string, fallback int32) int32 {
	if v := p.GetInt(name); v != 0 {
		return int32(v)
	}
	return fallback
}
