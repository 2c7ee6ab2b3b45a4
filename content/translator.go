package content

import (
	"errors"
	"strconv"

	"github.com/folio-cli/folio/media"
	"github.com/samber/mo"
	lua "github.com/yuin/gopher-lua"
)

func getString(table *lua.LTable, key string) string {
	val := table.RawGetString(key)
	if val.Type() == lua.LTString {
		return val.String()
	}
	return ""
}

func getNumber(table *lua.LTable, key string) (float64, bool) {
	val := table.RawGetString(key)
	switch val.Type() {
	case lua.LTNumber:
		return float64(val.(lua.LNumber)), true
	case lua.LTString:
		n, err := strconv.ParseFloat(val.String(), 64)
		return n, err == nil
	default:
		return 0, false
	}
}

func getImages(table *lua.LTable, key string) []media.Image {
	val, ok := table.RawGetString(key).(*lua.LTable)
	if !ok {
		return nil
	}

	var images []media.Image
	val.ForEach(func(_, v lua.LValue) {
		switch v := v.(type) {
		case lua.LString:
			images = append(images, media.Image{URL: string(v)})
		case *lua.LTable:
			if url := getString(v, "url"); url != "" {
				images = append(images, media.Image{URL: url, Alt: getString(v, "alt")})
			}
		}
	})
	return images
}

// itemFromTable converts one entry returned by a script.
// The array position is used as order when the entry has none.
func itemFromTable(table *lua.LTable, kind media.Kind, position int) (*media.Item, error) {
	url := getString(table, "url")
	if url == "" {
		return nil, errors.New("item must have url")
	}

	id := getString(table, "id")
	if id == "" {
		id = url
	}

	order, ok := getNumber(table, "order")
	if !ok {
		order = float64(position)
	}

	item := &media.Item{
		ID:          id,
		Kind:        kind,
		Title:       getString(table, "title"),
		URL:         url,
		Slug:        getString(table, "slug"),
		Order:       order,
		Thumbnail:   getString(table, "thumbnail"),
		Preview:     getString(table, "preview"),
		Byline:      getString(table, "byline"),
		Description: getString(table, "description"),
		Images:      getImages(table, "images"),
	}

	if caption := getString(table, "caption"); caption != "" {
		item.Caption = mo.Some(caption)
	}

	return item, nil
}
