// Command blzdb rebuilds the bank metadata database from a lookup table
// file, optionally joined with a bank directory listing for names, cities
// and BICs.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"sort"

	"blzcheck/internal/bankdir"
	"blzcheck/internal/logging"
	"blzcheck/internal/lut"
)

func main() {
	lutPath := flag.String("lut", "", "Path to the lookup table file (required)")
	dbPath := flag.String("db", "./banks.db", "Path to the SQLite database to (re)build")
	listingPath := flag.String("banks", "", "Optional bank listing CSV (blz;name;city;bic)")
	flag.Parse()

	logger := logging.Init("blzdb", "info")

	if *lutPath == "" {
		flag.Usage()
		logger.Fatal().Msg("-lut flag is required")
	}

	data, err := os.ReadFile(*lutPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("read lookup table")
	}
	table, err := lut.Decode(data)
	if err != nil {
		logger.Fatal().Err(err).Str("path", *lutPath).Msg("decode lookup table")
	}
	logger.Info().Int("entries", len(table)).Msg("lookup table decoded")

	listing := map[string]bankdir.Bank{}
	if *listingPath != "" {
		listing, err = loadListing(*listingPath)
		if err != nil {
			logger.Fatal().Err(err).Msg("read bank listing")
		}
		logger.Info().Int("banks", len(listing)).Msg("bank listing loaded")
	}

	banks := make([]bankdir.Bank, 0, len(table))
	for blz, method := range table {
		b := listing[blz]
		b.BLZ = blz
		b.Method = method
		banks = append(banks, b)
	}
	sort.Slice(banks, func(i, j int) bool { return banks[i].BLZ < banks[j].BLZ })

	db, err := bankdir.InitDB(*dbPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()

	// Rebuild from scratch so removed banks disappear as well.
	if _, err := db.Exec(`DROP TABLE IF EXISTS banks`); err != nil {
		logger.Fatal().Err(err).Msg("drop banks table")
	}
	if err := bankdir.CreateSchema(db); err != nil {
		logger.Fatal().Err(err).Msg("create schema")
	}
	if err := bankdir.UpsertBanks(db, banks); err != nil {
		logger.Fatal().Err(err).Msg("insert banks")
	}

	logger.Info().Int("banks", len(banks)).Str("path", *dbPath).Msg("database rebuilt")
}

// loadListing reads a semicolon-separated bank directory listing keyed by
// routing number. Short rows only fill the columns they carry.
func loadListing(path string) (map[string]bankdir.Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bank listing %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse bank listing %s: %w", path, err)
	}

	listing := make(map[string]bankdir.Bank, len(records))
	for _, rec := range records {
		if len(rec) == 0 || rec[0] == "" {
			continue
		}
		b := bankdir.Bank{BLZ: rec[0]}
		if len(rec) > 1 {
			b.Name = rec[1]
		}
		if len(rec) > 2 {
			b.City = rec[2]
		}
		if len(rec) > 3 {
			b.BIC = rec[3]
		}
		listing[b.BLZ] = b
	}
	return listing, nil
}
