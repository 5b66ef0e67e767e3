// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/btcsuite/ordset/internal/version"
)

// versionCmd defines the configuration options for the version command.
type versionCmd struct{}

// versionCfg defines the configuration options for the command.
var versionCfg = versionCmd{}

// writeVersion writes the application name and version along with the Go
// runtime details.
func writeVersion(w io.Writer, appName string) {
	fmt.Fprintf(w, "%s version %s (Go version %s %s/%s)\n", appName,
		version.String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *versionCmd) Execute(args []string) error {
	writeVersion(os.Stdout, filepath.Base(os.Args[0]))
	return nil
}
