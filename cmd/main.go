package main

import (
	"fmt"
	"os"

	"github.com/quotelab/swapsim/cmd/swapsim"
)

func main() {
	rootCmd := swapsim.BuildSwapSimCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
