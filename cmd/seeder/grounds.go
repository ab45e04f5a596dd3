package main

import (
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// groundColumns is the COPY column order; CSV headers use the same names
var groundColumns = []string{
	"ground", "ground_long", "country", "width", "height", "rounded_rect", "odi_only",
	"batting_record_name", "batting_record_country", "batting_record_against",
	"batting_record_score", "batting_record_date",
	"bowling_record_name", "bowling_record_country", "bowling_record_against",
	"bowling_record_figures", "bowling_record_date",
	"measurement_url", "notes",
}

var recordColumns = groundColumns[7:17]

type ground struct {
	Ground      string
	GroundLong  sql.NullString
	Country     string
	Width       sql.NullFloat64
	Height      sql.NullFloat64
	RoundedRect bool
	OdiOnly     bool
	Records     [10]sql.NullString
	Measurement sql.NullString
	Notes       sql.NullString
}

func (g ground) values() []any {
	v := []any{g.Ground, g.GroundLong, g.Country, g.Width, g.Height, g.RoundedRect, g.OdiOnly}
	for _, r := range g.Records {
		v = append(v, r)
	}
	return append(v, g.Measurement, g.Notes)
}

type skippedRow struct {
	Line   int
	Reason string
}

// parseGrounds reads a header-first CSV. Unknown columns are ignored; rows
// without a ground name or country are skipped.
func parseGrounds(r io.Reader) ([]ground, []skippedRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"ground", "country"} {
		if _, ok := index[required]; !ok {
			return nil, nil, fmt.Errorf("missing required column %q", required)
		}
	}

	var grounds []ground
	var skipped []skippedRow
	for line := 2; ; line++ {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", line, err)
		}

		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		g := ground{
			Ground:      field("ground"),
			GroundLong:  nullString(field("ground_long")),
			Country:     field("country"),
			RoundedRect: parseBool(field("rounded_rect")),
			OdiOnly:     parseBool(field("odi_only")),
			Measurement: nullString(field("measurement_url")),
			Notes:       nullString(field("notes")),
		}
		if g.Ground == "" || g.Country == "" {
			skipped = append(skipped, skippedRow{Line: line, Reason: "missing ground or country"})
			continue
		}

		if g.Width, err = nullFloat(field("width")); err != nil {
			skipped = append(skipped, skippedRow{Line: line, Reason: "invalid width"})
			continue
		}
		if g.Height, err = nullFloat(field("height")); err != nil {
			skipped = append(skipped, skippedRow{Line: line, Reason: "invalid height"})
			continue
		}
		for i, col := range recordColumns {
			g.Records[i] = nullString(field(col))
		}

		grounds = append(grounds, g)
	}

	return grounds, skipped, nil
}

func parseBool(s string) bool {
	return s == "1" || strings.EqualFold(s, "true")
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullFloat(s string) (sql.NullFloat64, error) {
	if s == "" {
		return sql.NullFloat64{}, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return sql.NullFloat64{}, fmt.Errorf("invalid number %q", s)
	}
	return sql.NullFloat64{Float64: f, Valid: true}, nil
}
