// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btclog"
	"github.com/btcsuite/ordset/internal/limits"
	"github.com/btcsuite/ordset/internal/log"
	flags "github.com/jessevdk/go-flags"
)

// ctlLog is the logger for the utility.
var ctlLog btclog.Logger = log.CtlLog

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain() error {
	defer os.Stdout.Sync()
	defer log.CloseLogRotator()

	// Setup the parser options and commands.
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	parserFlags := flags.Options(flags.HelpFlag | flags.PassDoubleDash)
	parser := flags.NewNamedParser(appName, parserFlags)
	parser.AddGroup("Global Options", "", cfg)
	parser.AddCommand("script",
		"Run set commands against an empty set",
		"Run set commands read from a file or stdin against an empty "+
			"set of int or string keys.  One command per line: "+
			commandSummary, &scriptCfg)
	parser.AddCommand("load",
		"Load the keys of a database and query them",
		"Load every key of an existing leveldb or pebble database "+
			"into a set of hex keys and run set commands read "+
			"from a file or stdin against it.  The database is "+
			"opened read-only.", &loadCfg)
	parser.AddCommand("version", "Display version information",
		"Display version information and exit.", &versionCfg)

	// Parse command line and invoke the Execute function for the specified
	// command.
	if _, err := parser.Parse(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		} else {
			ctlLog.Error(err)
		}

		return err
	}

	return nil
}

func main() {
	// Databases with many table files need more descriptors than some
	// systems allow by default.
	if err := limits.SetLimits(); err != nil {
		ctlLog.Errorf("Failed to raise file descriptor limit: %v", err)
		os.Exit(1)
	}

	// Work around defer not working after os.Exit()
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
