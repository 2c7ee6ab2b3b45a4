// Package inline prints portfolio content without the interactive interface.
package inline

import (
	"context"
	"fmt"
	"os"

	"github.com/folio-cli/folio/key"
	"github.com/folio-cli/folio/log"
	"github.com/folio-cli/folio/media"
	"github.com/folio-cli/folio/preload"
	"github.com/folio-cli/folio/util"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}
	if len(options.Kinds) == 0 {
		options.Kinds = media.Kinds()
	}
	if options.ctx == nil {
		options.ctx = context.Background()
	}

	output := &Output{Source: options.Source.Name(), Query: options.Query}

	for _, kind := range options.Kinds {
		items, err := options.Source.FetchAll(options.ctx, kind)
		if err != nil {
			return err
		}

		items = media.Filter(items, options.Query)
		if picker, ok := options.Picker.Get(); ok {
			items = picker(items)
		}

		log.Infof("inline: %s selected", util.Quantify(len(items), string(kind), kind.Plural()))
		output.Result = append(output.Result, lo.Map(items, func(item *media.Item, _ int) *Entry {
			return &Entry{Kind: kind, Item: item}
		})...)
	}

	if options.Check {
		check(options, output.Result)
	}

	if options.Json {
		return writeJson(options.Out, output)
	}

	for _, e := range output.Result {
		line := e.Item.URL
		if e.Status != "" {
			line = fmt.Sprintf("%s\t%s", e.Status, line)
		}
		if _, err := fmt.Fprintln(options.Out, line); err != nil {
			return err
		}
	}
	return nil
}

func check(options *Options, entries []*Entry) {
	loader := options.Loader
	if loader == nil {
		loader = preload.NewHTTPLoader()
	}

	urls := lo.Map(entries, func(e *Entry, _ int) string { return e.Item.URL })
	results := preload.Warm(options.ctx, loader, urls, viper.GetInt(key.PreloadConcurrency))
	for i, r := range results {
		entries[i].Status = r.Status.String()
		if r.Err != nil {
			entries[i].Error = r.Err.Error()
		}
	}
}
