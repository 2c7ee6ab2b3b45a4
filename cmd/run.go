package cmd

import (
	"context"
	"encoding/json"
	"os"

	"github.com/folio-cli/folio/content"
	"github.com/folio-cli/folio/media"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("kind", "k", string(media.Video), "Media kind passed to FetchAll")
}

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Lua content script and print what it returns",
	Long: `Load a Lua content script, call its FetchAll function and print the items as JSON.
Useful while writing a new source.`,
	Args:    cobra.ExactArgs(1),
	Example: "  folio run ./portfolio.lua --kind photo",
	Run: func(cmd *cobra.Command, args []string) {
		kind, err := media.ParseKind(lo.Must(cmd.Flags().GetString("kind")))
		handleErr(err)

		src, err := content.LoadLua(args[0])
		handleErr(err)
		defer src.Close()

		items, err := src.FetchAll(context.Background(), kind)
		handleErr(err)

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(items))
	},
}
