package cmd

import (
	"encoding/json"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/folio-cli/folio/content"
	"github.com/folio-cli/folio/filesystem"
	"github.com/folio-cli/folio/inline"
	"github.com/folio-cli/folio/media"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringSliceP("kind", "k", []string{}, "Media kinds to print (video, photo)")
	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("kind", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(media.Kinds(), func(k media.Kind, _ int) string { return string(k) }), cobra.ShellCompDirectiveNoFileComp
	}))
	inlineCmd.Flags().StringP("query", "q", "", "Keep only items whose title fuzzy-matches the query")
	inlineCmd.Flags().StringP("pick", "p", "", "Select items: first, last, all, an index or a range like 1-5")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	inlineCmd.Flags().BoolP("check", "c", false, "Preload every item and report whether it loads")
	inlineCmd.Flags().StringP("output", "o", "", "Write the output to a file")
}

var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Print portfolio content without the interactive interface",
	Long: `Print portfolio content for scripts and pipelines.

Item selectors:
  first - first item of each kind
  last - last item of each kind
  all - every item
  [number] - select item by index (starting from 0)
  [from]-[to] - select items by range`,
	Example: "  folio inline --kind photo --query harbor --json",
	Run: func(cmd *cobra.Command, args []string) {
		src, err := content.Default()
		handleErr(err)

		var kinds []media.Kind
		for _, k := range lo.Must(cmd.Flags().GetStringSlice("kind")) {
			kind, err := media.ParseKind(k)
			handleErr(err)
			kinds = append(kinds, kind)
		}

		picker := mo.None[inline.Picker]()
		if pick := lo.Must(cmd.Flags().GetString("pick")); pick != "" {
			fn, err := inline.ParsePicker(pick)
			handleErr(err)
			picker = mo.Some(fn)
		}

		var writer io.Writer = os.Stdout
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			f, err := filesystem.API().Create(output)
			handleErr(err)
			defer f.Close()
			writer = f
		}

		handleErr(inline.Run(&inline.Options{
			Out:    writer,
			Source: src,
			Kinds:  kinds,
			Query:  lo.Must(cmd.Flags().GetString("query")),
			Picker: picker,
			Json:   lo.Must(cmd.Flags().GetBool("json")),
			Check:  lo.Must(cmd.Flags().GetBool("check")),
		}))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)

	inlineSchemaCmd.Flags().BoolP("library", "l", false, "Generate the schema of a full content library instead")
}

var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of the inline output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "item", "image", "entry", "output", "library":
				return t.PkgPath()[strings.LastIndex(t.PkgPath(), "/")+1:] + "." + name
			}
			return name
		}

		var schema *jsonschema.Schema
		if lo.Must(cmd.Flags().GetBool("library")) {
			schema = reflector.Reflect(&content.Library{})
		} else {
			schema = reflector.Reflect(&inline.Output{})
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
