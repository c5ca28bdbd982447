package main

import (
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/sahmed95/cnfgen/cmd/root"
)

func main() {
	defer glog.Flush()
	rootCmd := root.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
