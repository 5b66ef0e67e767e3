// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/ordset/internal/log"
	"github.com/btcsuite/ordset/internal/version"
	"github.com/btcsuite/ordset/treap"
)

const (
	defaultLogLevel    = "info"
	defaultLogFilename = "treapctl.log"
)

var (
	// Default global config.
	cfg = &config{
		DebugLevel: defaultLogLevel,
	}
)

// config defines the global configuration options.
type config struct {
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
	LogDir     string `long:"logdir" description:"Directory to write a rotated log file to in addition to stdout"`
	Seed       int64  `long:"seed" description:"Seed for the priority generator; 0 seeds from the clock"`
}

// setupGlobalConfig examine the global configuration options for any conditions
// which are invalid as well as performs any addition setup necessary after the
// initial parse.
func setupGlobalConfig() error {
	// Validate the debug level.
	if !log.ValidLogLevel(cfg.DebugLevel) {
		str := "the specified debug level [%v] is invalid"
		return fmt.Errorf(str, cfg.DebugLevel)
	}
	log.SetLogLevels(cfg.DebugLevel)
	ctlLog.Debugf("Version %s", version.String())

	if cfg.Seed < 0 {
		return errors.New("the seed must not be negative")
	}

	// Write to a rotated log file as well when a directory is given.
	if cfg.LogDir != "" {
		logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
		if err := log.InitLogRotator(logFile); err != nil {
			return err
		}
	}

	return nil
}

// setOptions returns the options used to create sets according to the global
// config.
func setOptions() []treap.SetOption {
	if cfg.Seed == 0 {
		return nil
	}
	ctlLog.Debugf("Using priority seed %d", cfg.Seed)
	return []treap.SetOption{treap.WithSeed(cfg.Seed)}
}

// fileExists reports whether the named file or directory exists.
func fileExists(name string) bool {
	if _, err := os.Stat(name); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}
