// main is the entry point for the bizdash CLI.
package main

import (
	"fmt"
	"os"

	"github.com/rushiraj-gohil/bizdash/cmd"
	"github.com/rushiraj-gohil/bizdash/internal/iocache"
)

func main() {
	cmd.SetCacheManager(iocache.Manager)
	defer iocache.CloseStores()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		iocache.CloseStores()
		os.Exit(1)
	}
}
