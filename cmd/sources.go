package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/user"
	"path"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/folio-cli/folio/color"
	"github.com/folio-cli/folio/constant"
	"github.com/folio-cli/folio/content"
	"github.com/folio-cli/folio/filesystem"
	"github.com/folio-cli/folio/icon"
	"github.com/folio-cli/folio/internal/scraper"
	"github.com/folio-cli/folio/key"
	"github.com/folio-cli/folio/style"
	"github.com/folio-cli/folio/util"
	"github.com/folio-cli/folio/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const luaExtension = ".lua"

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Manage content sources",
}

func init() {
	sourcesCmd.AddCommand(sourcesListCmd)

	sourcesListCmd.Flags().BoolP("raw", "r", false, "Print names only")
	sourcesListCmd.SetOut(os.Stdout)
}

var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available content sources",
	Run: func(cmd *cobra.Command, args []string) {
		names, err := content.Available()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("raw")) {
			for _, name := range names {
				cmd.Println(name)
			}
			return
		}

		current := viper.GetString(key.ContentSource)
		for _, name := range names {
			kind := icon.Get(icon.Lua)
			if name == content.SanityName {
				kind = icon.Get(icon.Sanity)
			}

			line := fmt.Sprintf("%s %s", kind, name)
			if name == current {
				line = style.Fg(color.Green)(line + " (active)")
			}
			cmd.Println(line)
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesNewCmd)

	sourcesNewCmd.Flags().StringP("name", "n", "", "Name of the new source")
	sourcesNewCmd.Flags().StringP("url", "u", "", "Base URL of the backend the script reads from")

	lo.Must0(sourcesNewCmd.MarkFlagRequired("name"))
	lo.Must0(sourcesNewCmd.MarkFlagRequired("url"))
}

var sourcesNewCmd = &cobra.Command{
	Use:     "new",
	Aliases: []string{"gen"},
	Short:   "Scaffold a Lua content script",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SetOut(os.Stdout)

		author := "Anonymous"
		if usr, err := user.Current(); err == nil {
			author = usr.Username
		}

		s := struct {
			Name       string
			URL        string
			FetchAllFn string
			Author     string
		}{
			Name:       lo.Must(cmd.Flags().GetString("name")),
			URL:        lo.Must(cmd.Flags().GetString("url")),
			FetchAllFn: constant.FetchAllFn,
			Author:     author,
		}

		funcMap := template.FuncMap{
			"repeat": strings.Repeat,
			"plus":   func(a, b int) int { return a + b },
			"max":    util.Max[int],
		}

		tmpl, err := template.New("source").Funcs(funcMap).Parse(constant.SourceTemplate)
		handleErr(err)

		target := filepath.Join(where.Sources(), util.Slugify(s.Name)+luaExtension)
		f, err := filesystem.API().Create(target)
		handleErr(err)
		defer f.Close()

		handleErr(tmpl.Execute(f, s))
		cmd.Println(target)
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesInstallCmd)

	sourcesInstallCmd.Flags().StringP("name", "n", "", "Install under this name instead of the file name of the URL")
}

var sourcesInstallCmd = &cobra.Command{
	Use:   "install [url]",
	Short: "Install or update a Lua content script from a URL",
	Long: `Download a Lua content script into the sources directory.
Running it again updates the script when the remote copy changed.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		remote, err := url.Parse(args[0])
		handleErr(err)

		name := lo.Must(cmd.Flags().GetString("name"))
		if name == "" {
			name = util.FileStem(path.Base(remote.Path))
		}
		target := filepath.Join(where.Sources(), util.Slugify(name)+luaExtension)

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		erase := util.PrintErasable(fmt.Sprintf("%s Downloading %s...", icon.Get(icon.Loading), remote))
		changed, err := scraper.Install(ctx, remote.String(), target)
		erase()
		handleErr(err)

		if changed {
			fmt.Printf("%s installed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(target))
		} else {
			fmt.Printf("%s %s is up to date\n", icon.Get(icon.Success), style.Fg(color.Yellow)(target))
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesRemoveCmd)

	sourcesRemoveCmd.Flags().StringArrayP("name", "n", []string{}, "Name of the Lua source to remove")
	lo.Must0(sourcesRemoveCmd.RegisterFlagCompletionFunc("name", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		scripts, err := content.Scripts()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return lo.Keys(scripts), cobra.ShellCompDirectiveNoFileComp
	}))
}

var sourcesRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove installed Lua sources",
	Run: func(cmd *cobra.Command, args []string) {
		scripts, err := content.Scripts()
		handleErr(err)

		for _, name := range lo.Must(cmd.Flags().GetStringArray("name")) {
			p, ok := scripts[name]
			if !ok {
				handleErr(fmt.Errorf("source %s not found", name))
			}
			handleErr(filesystem.API().Remove(p))
			fmt.Printf("%s removed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
		}
	},
}
