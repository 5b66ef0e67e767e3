// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/btcsuite/ordset/treap"
)

const (
	keyTypeInt    = "int"
	keyTypeString = "string"
)

// scriptCmd defines the configuration options for the script command.
type scriptCmd struct {
	KeyType string `long:"keytype" description:"Type of the keys {int, string}"`
	File    string `short:"f" long:"file" description:"File to read commands from instead of stdin"`
}

var (
	// scriptCfg defines the configuration options for the command.
	scriptCfg = scriptCmd{
		KeyType: keyTypeInt,
	}
)

// intCodec handles signed 64-bit integer keys.
var intCodec = keyCodec[int64]{
	parse: func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	},
	format: func(k int64) string {
		return strconv.FormatInt(k, 10)
	},
}

// stringCodec handles keys that are taken verbatim.
var stringCodec = keyCodec[string]{
	parse:  func(s string) (string, error) { return s, nil },
	format: func(k string) string { return k },
}

// runScript runs the commands read from r against a new empty set with keys of
// the given type.
func runScript(keyType string, r io.Reader, w io.Writer) error {
	opts := setOptions()
	switch keyType {
	case keyTypeInt:
		return newInterpreter(treap.NewSet[int64](opts...), intCodec, w).run(r)
	case keyTypeString:
		return newInterpreter(treap.NewSet[string](opts...), stringCodec, w).run(r)
	}
	return fmt.Errorf("the specified key type [%v] is invalid -- "+
		"supported types [%v %v]", keyType, keyTypeInt, keyTypeString)
}

// openInput returns the named file, or stdin when the name is empty.
func openInput(name string) (io.ReadCloser, error) {
	if name == "" {
		return io.NopCloser(os.Stdin), nil
	}
	if !fileExists(name) {
		return nil, fmt.Errorf("the command file %s does not exist", name)
	}
	return os.Open(name)
}

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *scriptCmd) Execute(args []string) error {
	// Setup the global config options and ensure they are valid.
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	input, err := openInput(cmd.File)
	if err != nil {
		return err
	}
	defer input.Close()

	return runScript(cmd.KeyType, input, os.Stdout)
}

// Usage overrides the usage display for the command.
func (cmd *scriptCmd) Usage() string {
	return "[--keytype=int|string] [--file=path]"
}
