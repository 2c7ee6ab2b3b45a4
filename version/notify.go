package version

import (
	"context"
	"fmt"
	"time"

	"github.com/folio-cli/folio/color"
	"github.com/folio-cli/folio/constant"
	"github.com/folio-cli/folio/icon"
	"github.com/folio-cli/folio/key"
	"github.com/folio-cli/folio/style"
	"github.com/folio-cli/folio/util"
	"github.com/spf13/viper"
)

// Notify prints a notice when a newer release is available.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) || !util.IsTerminal() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Loading)))
	latest, err := Latest(ctx)
	erase()
	if err != nil {
		return
	}
	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/folio-cli/folio/releases/tag/v"+latest),
	)
}
