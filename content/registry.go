package content

import (
	"fmt"
	"path/filepath"

	"github.com/folio-cli/folio/config"
	"github.com/folio-cli/folio/filesystem"
	"github.com/folio-cli/folio/key"
	"github.com/folio-cli/folio/util"
	"github.com/folio-cli/folio/where"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// Available returns the names of every selectable source: the Sanity
// backend followed by the Lua scripts in the sources directory.
func Available() ([]string, error) {
	scripts, err := Scripts()
	if err != nil {
		return nil, err
	}
	names := lo.Keys(scripts)
	slices.Sort(names)
	return append([]string{SanityName}, names...), nil
}

// Scripts maps Lua source names to their paths.
func Scripts() (map[string]string, error) {
	files, err := filesystem.API().ReadDir(where.Sources())
	if err != nil {
		return nil, err
	}

	scripts := make(map[string]string)
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".lua" {
			continue
		}
		scripts[util.FileStem(f.Name())] = filepath.Join(where.Sources(), f.Name())
	}
	return scripts, nil
}

// Open returns the source with the given name.
func Open(name string) (Source, error) {
	if name == SanityName {
		return NewSanity()
	}

	scripts, err := Scripts()
	if err != nil {
		return nil, err
	}

	path, ok := scripts[name]
	if !ok {
		return nil, fmt.Errorf("source %q not found, see \"folio sources list\"", name)
	}
	return LoadLua(path)
}

// Default opens the configured source wrapped in the tag cache.
func Default() (*Cached, error) {
	src, err := Open(viper.GetString(key.ContentSource))
	if err != nil {
		return nil, err
	}
	return NewCached(src, config.Seconds(key.ContentRevalidate)), nil
}
