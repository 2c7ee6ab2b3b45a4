package main

import (
	"github.com/folio-cli/folio/cmd"
	"github.com/folio-cli/folio/config"
	"github.com/folio-cli/folio/internal/cache"
	"github.com/folio-cli/folio/log"
	"github.com/folio-cli/folio/where"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	go cache.CollectGarbage(where.Content(), cache.TTL)

	cmd.Execute()
}
