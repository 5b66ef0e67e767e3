// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/btcsuite/ordset/keysource"
)

// loadCmd defines the configuration options for the load command.
type loadCmd struct {
	DbType string `long:"dbtype" description:"Database backend {leveldb, pebble}"`
	DbPath string `long:"dbpath" description:"Path to the existing database"`
	File   string `short:"f" long:"file" description:"File to read commands from instead of stdin"`
}

var (
	// loadCfg defines the configuration options for the command.
	loadCfg = loadCmd{
		DbType: keysource.TypeLevelDB,
	}
)

// hexCodec handles raw byte keys written as hex.
var hexCodec = keyCodec[[]byte]{
	parse:  hex.DecodeString,
	format: hex.EncodeToString,
}

// runLoad loads every key of the database and runs the commands read from r
// against the resulting set.
func runLoad(dbType, dbPath string, r io.Reader, w io.Writer) error {
	src, err := keysource.Open(dbType, dbPath)
	if err != nil {
		return err
	}
	defer src.Close()

	start := time.Now()
	set, err := keysource.Load(src, setOptions()...)
	if err != nil {
		return err
	}
	ctlLog.Infof("Loaded %d keys in %v", set.Len(),
		time.Since(start).Round(time.Millisecond))

	return newInterpreter(set, hexCodec, w).run(r)
}

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *loadCmd) Execute(args []string) error {
	// Setup the global config options and ensure they are valid.
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	if cmd.DbPath == "" {
		return errors.New("the database path must be specified with --dbpath")
	}
	if !fileExists(cmd.DbPath) {
		return fmt.Errorf("the database %s does not exist", cmd.DbPath)
	}

	input, err := openInput(cmd.File)
	if err != nil {
		return err
	}
	defer input.Close()

	return runLoad(cmd.DbType, cmd.DbPath, input, os.Stdout)
}

// Usage overrides the usage display for the command.
func (cmd *loadCmd) Usage() string {
	return "--dbpath=path [--dbtype=leveldb|pebble] [--file=path]"
}
