// Package cmd implements the folio command-line interface.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/folio-cli/folio/color"
	"github.com/folio-cli/folio/constant"
	"github.com/folio-cli/folio/content"
	"github.com/folio-cli/folio/icon"
	"github.com/folio-cli/folio/key"
	"github.com/folio-cli/folio/log"
	"github.com/folio-cli/folio/style"
	"github.com/folio-cli/folio/tui"
	"github.com/folio-cli/folio/util"
	"github.com/folio-cli/folio/version"
	"github.com/folio-cli/folio/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the icon variant (emoji, nerd, plain, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("source", "S", "", "Content source to read from")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("source", completionSources))
	lo.Must0(viper.BindPFlag(key.ContentSource, rootCmd.PersistentFlags().Lookup("source")))

	rootCmd.Flags().Bool("no-splash", false, "Skip the splash screen")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	go func() {
		_ = util.Delete(where.Temp())
	}()
}

func completionSources(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	names, err := content.Available()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

var rootCmd = &cobra.Command{
	Use:   constant.Folio,
	Short: "A video and photo portfolio for the web and the terminal",
	Long: constant.Banner + "\n" +
		style.New().Italic(true).Foreground(color.Muted).Render("    - A video and photo portfolio for the web and the terminal"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if lo.Must(cmd.Flags().GetBool("no-splash")) {
			viper.Set(key.SplashEnable, false)
		}

		handleErr(tui.Run(&tui.Options{}))
	},
}

// Execute runs the command selected by the process arguments.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
