package lut

import (
	"fmt"
	"os"
	"sync"
)

// Source supplies the raw lookup table bytes. A local file, an embedded
// copy or the result of an earlier download all fit behind it.
type Source func() ([]byte, error)

// FileSource reads the table from path when the directory first loads.
func FileSource(path string) Source {
	return func() ([]byte, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read lookup table: %w", err)
		}
		return data, nil
	}
}

// Directory serves routing-number lookups from a table that is decoded at
// most once per process. A failed load is remembered: every subsequent
// lookup misses and the source is not consulted again.
type Directory struct {
	source Source

	once  sync.Once
	table map[string]byte
	err   error
}

// NewDirectory returns an empty directory backed by source. Nothing is
// read until the first lookup.
func NewDirectory(source Source) *Directory {
	return &Directory{source: source}
}

func (d *Directory) load() {
	data, err := d.source()
	if err != nil {
		d.err = err
		return
	}
	table, err := Decode(data)
	if err != nil {
		d.err = fmt.Errorf("decode lookup table: %w", err)
		return
	}
	d.table = table
}

// Lookup returns the check-digit method identifier registered for blz.
func (d *Directory) Lookup(blz string) (byte, bool) {
	d.once.Do(d.load)
	method, ok := d.table[blz]
	return method, ok
}

// Loaded reports whether the table decoded successfully, triggering the
// load if it has not run yet.
func (d *Directory) Loaded() bool {
	d.once.Do(d.load)
	return d.table != nil
}

// Len returns the number of routing numbers in the table.
func (d *Directory) Len() int {
	d.once.Do(d.load)
	return len(d.table)
}

// Err returns the load failure, or nil after a successful load.
func (d *Directory) Err() error {
	d.once.Do(d.load)
	return d.err
}
