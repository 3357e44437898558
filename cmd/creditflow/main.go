// Command creditflow routes payments over a mutual-credit network.
//
//	creditflow route   --from alice --to carol --amount 40 [--network net.yaml]
//	creditflow maxflow --from alice --to carol [--ignore-balances]
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := execute(context.Background(), newApp(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "creditflow:", err)
		os.Exit(1)
	}
}
