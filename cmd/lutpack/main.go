// Command lutpack converts between the binary lookup table format and a
// plain-text listing, and verifies existing files.
//
//	lutpack pack -in listing.txt -out blz.lut [-info "Bundesbank 2024-06-03"]
//	lutpack dump -in blz.lut
//	lutpack verify blz.lut [more.lut ...]
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"blzcheck/internal/kontocheck"
	"blzcheck/internal/logging"
	"blzcheck/internal/lut"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	logger := logging.Init("lutpack", "info")

	var err error
	switch os.Args[1] {
	case "pack":
		err = runPack(os.Args[2:])
	case "dump":
		err = runDump(os.Args[2:])
	case "verify":
		err = runVerify(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		logger.Fatal().Err(err).Str("command", os.Args[1]).Msg("lutpack failed")
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: lutpack pack|dump|verify [flags]")
}

func runPack(args []string) error {
	fs := flag.NewFlagSet("pack", flag.ExitOnError)
	in := fs.String("in", "", "Input listing, one 'blz method' pair per line (required)")
	out := fs.String("out", "blz.lut", "Output lookup table file")
	info := fs.String("info", "", "Info line stored after the file header")
	fs.Parse(args)

	if *in == "" {
		fs.Usage()
		return fmt.Errorf("-in flag is required")
	}

	entries, err := readListing(*in)
	if err != nil {
		return err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].BLZ < entries[j].BLZ })

	data, err := lut.Encode(*info, entries)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", *out, err)
	}

	fmt.Printf("packed %d entries into %s (%d bytes)\n", len(entries), *out, len(data))
	return nil
}

// readListing parses lines of the form "37040044 06". Blank lines and
// '#' comments are skipped; "FF" marks a deleted routing number.
func readListing(path string) ([]lut.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open listing %s: %w", path, err)
	}
	defer f.Close()

	var entries []lut.Entry
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%s:%d: expected 'blz method', got %q", path, line, text)
		}

		var method byte
		if fields[1] == "FF" {
			method = 0xFF
		} else {
			id, ok := kontocheck.ParseMethodID(fields[1])
			if !ok {
				return nil, fmt.Errorf("%s:%d: unknown method %q", path, line, fields[1])
			}
			method = id
		}

		entries = append(entries, lut.Entry{BLZ: fields[0], Method: method})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading listing %s: %w", path, err)
	}

	return entries, nil
}

func runDump(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	in := fs.String("in", "", "Lookup table file to dump (required)")
	fs.Parse(args)

	if *in == "" {
		fs.Usage()
		return fmt.Errorf("-in flag is required")
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", *in, err)
	}
	table, err := lut.Decode(data)
	if err != nil {
		return fmt.Errorf("%s: %w", *in, err)
	}

	blzs := make([]string, 0, len(table))
	for blz := range table {
		blzs = append(blzs, blz)
	}
	sort.Strings(blzs)

	for _, blz := range blzs {
		fmt.Printf("%s %s\n", blz, kontocheck.FormatMethodID(table[blz]))
	}
	return nil
}

func runVerify(paths []string) error {
	if len(paths) == 0 {
		return fmt.Errorf("verify needs at least one file")
	}

	var g errgroup.Group
	for _, path := range paths {
		path := path
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			table, err := lut.Decode(data)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			fmt.Printf("%s: ok, %d entries\n", path, len(table))
			return nil
		})
	}
	return g.Wait()
}
