package core

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/collide/shared/leveldata"
)

// Levels is the set of levels a server can run, loaded from one directory.
type Levels struct {
	dir    string
	fsys   fs.FS
	byName map[string]*leveldata.Level
	names  []string
}

// LoadLevels loads every .tmx file in dir.
func LoadLevels(dir string) (*Levels, error) {
	fsys := os.DirFS(dir)
	byName, names, err := leveldata.LoadAllLevels(fsys, ".")
	if err != nil {
		return nil, err
	}
	return &Levels{dir: dir, fsys: fsys, byName: byName, names: names}, nil
}

func (ls *Levels) Dir() string { return ls.dir }

func (ls *Levels) Names() []string { return ls.names }

// Get returns the named level, or the first one by name when name is empty.
func (ls *Levels) Get(name string) (*leveldata.Level, error) {
	if name == "" {
		name = ls.names[0]
	}
	l, ok := ls.byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown level %q (have %s)", name, strings.Join(ls.names, ", "))
	}
	return l, nil
}

// Reload parses one changed file again and returns the new level.
func (ls *Levels) Reload(path string) (*leveldata.Level, error) {
	l, err := leveldata.LoadLevel(ls.fsys, filepath.Base(path))
	if err != nil {
		return nil, err
	}
	if _, known := ls.byName[l.Name]; !known {
		ls.names = append(ls.names, l.Name)
	}
	ls.byName[l.Name] = l
	return l, nil
}
