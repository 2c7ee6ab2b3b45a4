package inline

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/folio-cli/folio/content"
	"github.com/folio-cli/folio/media"
	"github.com/folio-cli/folio/preload"
	"github.com/folio-cli/folio/util"
	"github.com/samber/mo"
)

// Picker selects a subset of the fetched items of one kind.
type Picker func([]*media.Item) []*media.Item

type Options struct {
	Out    io.Writer
	Source content.Source
	Kinds  []media.Kind
	Query  string
	Picker mo.Option[Picker]
	Json   bool
	// Check preloads every picked item and reports whether it loads.
	Check  bool
	Loader preload.Loader
	ctx    context.Context
}

// ParsePicker understands "first", "last", "all", an index ("3")
// and an inclusive range ("1-5"). Indices start at 0.
func ParsePicker(description string) (Picker, error) {
	switch description {
	case "first":
		return func(items []*media.Item) []*media.Item {
			return items[:util.Min(1, len(items))]
		}, nil
	case "last":
		return func(items []*media.Item) []*media.Item {
			return items[util.Max(0, len(items)-1):]
		}, nil
	case "all":
		return func(items []*media.Item) []*media.Item {
			return items
		}, nil
	}

	if from, to, ok := strings.Cut(description, "-"); ok {
		start, err1 := strconv.ParseUint(from, 10, 16)
		end, err2 := strconv.ParseUint(to, 10, 16)
		if err1 == nil && err2 == nil {
			return func(items []*media.Item) []*media.Item {
				s := util.Min(int(start), len(items))
				e := util.Min(int(end)+1, len(items))
				if s > e {
					return []*media.Item{}
				}
				return items[s:e]
			}, nil
		}
	}

	if idx, err := strconv.ParseUint(description, 10, 16); err == nil {
		return func(items []*media.Item) []*media.Item {
			if uint64(len(items)) <= idx {
				return []*media.Item{}
			}
			return items[idx : idx+1]
		}, nil
	}

	return nil, fmt.Errorf("invalid item selector: %s", description)
}
