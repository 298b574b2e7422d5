package main

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

//go:embed data/airports.json
var airportData []byte

// AirportDirectory resolves airport codes to reference records stored in
// sqlite. Lookups are cached since the same pair of airports is resolved on
// every session start.
type AirportDirectory struct {
	db    *sql.DB
	cache *expirable.LRU[string, AirportRef]
}

func NewAirportDirectory(db *sql.DB) *AirportDirectory {
	return &AirportDirectory{
		db:    db,
		cache: expirable.NewLRU[string, AirportRef](128, nil, time.Hour),
	}
}

// Seed inserts the bundled airports when the table is empty.
func (d *AirportDirectory) Seed() error {
	var n int
	if err := d.db.QueryRow(`SELECT COUNT(*) FROM airports`).Scan(&n); err != nil {
		return fmt.Errorf("count airports: %w", err)
	}
	if n > 0 {
		return nil
	}

	var refs []AirportRef
	if err := json.Unmarshal(airportData, &refs); err != nil {
		return fmt.Errorf("parse bundled airports: %w", err)
	}
	for _, ref := range refs {
		if err := d.Upsert(ref); err != nil {
			return err
		}
	}
	slog.Info("seeded airport directory", "count", len(refs))
	return nil
}

func (d *AirportDirectory) Upsert(ref AirportRef) error {
	code := normalizeCode(ref.Code)
	if code == "" {
		return fmt.Errorf("airport code is empty")
	}

	var lat, lon sql.NullFloat64
	if ref.Location != nil {
		lat = sql.NullFloat64{Float64: ref.Location.Latitude, Valid: true}
		lon = sql.NullFloat64{Float64: ref.Location.Longitude, Valid: true}
	}

	_, err := d.db.Exec(
		`INSERT INTO airports (code, name, latitude, longitude) VALUES (?, ?, ?, ?)
		ON CONFLICT(code) DO UPDATE SET name = excluded.name, latitude = excluded.latitude, longitude = excluded.longitude`,
		code, ref.Name, lat, lon,
	)
	if err != nil {
		return fmt.Errorf("upsert airport %s: %w", code, err)
	}
	d.cache.Remove(code)
	return nil
}

func (d *AirportDirectory) Lookup(code string) (AirportRef, error) {
	code = normalizeCode(code)
	if ref, ok := d.cache.Get(code); ok {
		return ref, nil
	}

	var name string
	var lat, lon sql.NullFloat64
	err := d.db.QueryRow(`SELECT name, latitude, longitude FROM airports WHERE code = ?`, code).
		Scan(&name, &lat, &lon)
	if errors.Is(err, sql.ErrNoRows) {
		return AirportRef{}, fmt.Errorf("%s: %w", code, ErrAirportNotFound)
	}
	if err != nil {
		return AirportRef{}, fmt.Errorf("query airport %s: %w", code, err)
	}

	ref := AirportRef{Code: code, Name: name}
	if lat.Valid && lon.Valid {
		ref.Location = &GeoPoint{Latitude: lat.Float64, Longitude: lon.Float64}
	}
	d.cache.Add(code, ref)
	return ref, nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
