// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/btcsuite/ordset/treap"
	"github.com/davecgh/go-spew/spew"
)

// commandSummary describes the commands understood by the interpreter.
const commandSummary = "add <key>..., insert <key> <priority>, " +
	"remove <key>..., has <key>, next <key>, prev <key>, kth <rank>, " +
	"rank <key>, len, min, max, height, keys, dump.  Blank lines and " +
	"lines starting with # are ignored."

// keyCodec converts keys to and from their textual form.
type keyCodec[K any] struct {
	parse  func(s string) (K, error)
	format func(k K) string
}

// interpreter runs set commands and writes their results.
type interpreter[K any] struct {
	set   *treap.Set[K]
	codec keyCodec[K]
	w     io.Writer
}

// newInterpreter returns an interpreter operating on the passed set.
func newInterpreter[K any](set *treap.Set[K], codec keyCodec[K], w io.Writer) *interpreter[K] {
	return &interpreter[K]{set: set, codec: codec, w: w}
}

// run executes every command read from r.  It stops at the first invalid
// command and reports its line number.
func (in *interpreter[K]) run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	var lineNum int
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := in.exec(strings.Fields(line)); err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
	}
	return scanner.Err()
}

// parseKeys parses every argument as a key.
func (in *interpreter[K]) parseKeys(args []string) ([]K, error) {
	keys := make([]K, 0, len(args))
	for _, arg := range args {
		key, err := in.codec.parse(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid key %q: %w", arg, err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// printKey writes the key when ok is set and "none" otherwise.
func (in *interpreter[K]) printKey(key K, ok bool) {
	if !ok {
		fmt.Fprintln(in.w, "none")
		return
	}
	fmt.Fprintln(in.w, in.codec.format(key))
}

// exec executes a single command.
func (in *interpreter[K]) exec(fields []string) error {
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	// Check the argument counts up front.
	var wantArgs int
	switch cmd {
	case "add", "remove":
		if len(args) == 0 {
			return fmt.Errorf("%s: at least one key is required", cmd)
		}
		wantArgs = len(args)
	case "insert":
		wantArgs = 2
	case "has", "next", "prev", "kth", "rank":
		wantArgs = 1
	case "len", "min", "max", "height", "keys", "dump":
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	if len(args) != wantArgs {
		return fmt.Errorf("%s: got %d arguments, want %d", cmd,
			len(args), wantArgs)
	}

	switch cmd {
	case "add":
		keys, err := in.parseKeys(args)
		if err != nil {
			return err
		}
		for _, key := range keys {
			if !in.set.Add(key) {
				ctlLog.Debugf("Key %s already present",
					in.codec.format(key))
			}
		}

	case "insert":
		keys, err := in.parseKeys(args[:1])
		if err != nil {
			return err
		}
		priority, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid priority %q: %w", args[1], err)
		}
		in.set.Insert(keys[0], priority)

	case "remove":
		keys, err := in.parseKeys(args)
		if err != nil {
			return err
		}
		for _, key := range keys {
			if !in.set.Remove(key) {
				ctlLog.Debugf("Key %s not present",
					in.codec.format(key))
			}
		}

	case "has", "next", "prev", "rank":
		keys, err := in.parseKeys(args)
		if err != nil {
			return err
		}
		switch cmd {
		case "has":
			fmt.Fprintln(in.w, in.set.Has(keys[0]))
		case "next":
			in.printKey(in.set.Next(keys[0]))
		case "prev":
			in.printKey(in.set.Prev(keys[0]))
		case "rank":
			fmt.Fprintln(in.w, in.set.Rank(keys[0]))
		}

	case "kth":
		rank, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid rank %q: %w", args[0], err)
		}
		in.printKey(in.set.Kth(rank))

	case "len":
		fmt.Fprintln(in.w, in.set.Len())

	case "min":
		in.printKey(in.set.Min())

	case "max":
		in.printKey(in.set.Max())

	case "height":
		fmt.Fprintln(in.w, in.set.Height())

	case "keys":
		keys := in.set.Keys()
		strs := make([]string, 0, len(keys))
		for _, key := range keys {
			strs = append(strs, in.codec.format(key))
		}
		fmt.Fprintln(in.w, strings.Join(strs, " "))

	case "dump":
		fmt.Fprint(in.w, spew.Sdump(in.set.Keys()))
	}

	return nil
}
