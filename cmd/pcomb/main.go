// Command pcomb parses inputs with the bundled parser combinator grammars.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/apstndb/pcomb/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Main(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
