package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/folio-cli/folio/color"
	"github.com/folio-cli/folio/contact"
	"github.com/folio-cli/folio/content"
	"github.com/folio-cli/folio/icon"
	"github.com/folio-cli/folio/key"
	"github.com/folio-cli/folio/server"
	"github.com/folio-cli/folio/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("addr", "a", "", "Address to listen on")
	lo.Must0(viper.BindPFlag(key.ServerAddr, serveCmd.Flags().Lookup("addr")))

	serveCmd.Flags().Bool("h2c", false, "Serve HTTP/2 over cleartext")
	lo.Must0(viper.BindPFlag(key.ServerH2C, serveCmd.Flags().Lookup("h2c")))

	serveCmd.Flags().IntP("revalidate", "r", 0, "Seconds content stays cached")
	lo.Must0(viper.BindPFlag(key.ContentRevalidate, serveCmd.Flags().Lookup("revalidate")))
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio website",
	Long: `Serve the portfolio website: video and photo grids, lightboxes and the contact form.
The server stops gracefully on SIGINT or SIGTERM.`,
	Run: func(cmd *cobra.Command, args []string) {
		src, err := content.Default()
		handleErr(err)

		srv := server.New(server.Options{
			Content:   src,
			Submitter: contact.Default(),
		})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		addr := viper.GetString(key.ServerAddr)
		fmt.Printf("%s serving %s on %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(src.Name()),
			style.Fg(color.Yellow)(addr),
		)

		handleErr(srv.ListenAndServe(ctx, addr, viper.GetBool(key.ServerH2C)))
	},
}
