package cmd

import (
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/folio-cli/folio/color"
	"github.com/folio-cli/folio/constant"
	"github.com/folio-cli/folio/style"
	"github.com/folio-cli/folio/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Print the version number only")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and platform",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		defer version.Notify()

		versionInfo := struct {
			Version string
			App     string
			OS      string
			Arch    string
			Go      string
		}{
			Version: constant.Version,
			App:     constant.Folio,
			OS:      runtime.GOOS,
			Arch:    runtime.GOARCH,
			Go:      strings.TrimPrefix(runtime.Version(), "go"),
		}

		t, err := template.New("version").Funcs(map[string]any{
			"faint":  style.Faint,
			"bold":   style.Bold,
			"accent": style.Fg(color.Purple),
		}).Parse(`{{ accent "▇▇▇" }} {{ accent .App }}

  {{ faint "Version" }}   {{ bold .Version }}
  {{ faint "Go" }}        {{ bold .Go }}
  {{ faint "Platform" }}  {{ bold .OS }}/{{ bold .Arch }}
`)
		handleErr(err)
		handleErr(t.Execute(cmd.OutOrStdout(), versionInfo))
	},
}
