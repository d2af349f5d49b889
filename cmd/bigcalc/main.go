// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Command bigcalc evaluates arbitrary-precision decimal expressions.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/avdva/bignum/cmd/bigcalc/cli"
)

func main() {
	root := cli.NewRootCommand()
	// glog flags.
	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	// avoid glog's "logging before flag.Parse" complaint, cobra parses the real arguments.
	args := os.Args[:]
	os.Args = os.Args[:1]
	flag.Parse()
	os.Args = args

	err := root.Execute()
	if err != nil && !errors.Is(err, cli.ErrFailed) {
		// evaluation errors are already printed.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	glog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
