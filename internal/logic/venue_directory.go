package logic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/cricketiq/prediction-api/internal/models"
)

const groundColumns = `
	id::text, ground, COALESCE(ground_long, ''), country,
	COALESCE(width, 0), COALESCE(height, 0),
	COALESCE(rounded_rect, false), COALESCE(odi_only, false),
	batting_record_name, batting_record_country, batting_record_against,
	batting_record_score, batting_record_date,
	bowling_record_name, bowling_record_country, bowling_record_against,
	bowling_record_figures, bowling_record_date,
	COALESCE(measurement_url, ''), COALESCE(notes, '')`

type venueDirectory struct {
	pg PgPool
}

// NewVenueDirectory creates a venue directory backed by the cricket_grounds table
func NewVenueDirectory(pg PgPool) VenueDirectory {
	return &venueDirectory{pg: pg}
}

// Lookup finds a ground by case-insensitive substring of its name, preferring
// an exact (case-insensitive) match.
func (d *venueDirectory) Lookup(ctx context.Context, name string) (*models.VenueProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNotFound
	}

	row := d.pg.QueryRow(ctx, `
		SELECT `+groundColumns+`
		FROM cricket_grounds
		WHERE ground ILIKE $1 ESCAPE '\'
		ORDER BY (lower(ground) = lower($2)) DESC, ground ASC
		LIMIT 1
	`, "%"+escapeLike(name)+"%", name)

	venue, err := scanGround(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up ground %q: %w", name, err)
	}
	return venue, nil
}

// List returns grounds ordered by name, optionally filtered by country
func (d *venueDirectory) List(ctx context.Context, country string) ([]models.VenueProfile, error) {
	query := `SELECT ` + groundColumns + ` FROM cricket_grounds`
	var args []any
	if country = strings.TrimSpace(country); country != "" {
		query += ` WHERE country = $1`
		args = append(args, country)
	}
	query += ` ORDER BY ground ASC`

	rows, err := d.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list grounds: %w", err)
	}
	defer rows.Close()

	venues := []models.VenueProfile{}
	for rows.Next() {
		venue, err := scanGround(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ground: %w", err)
		}
		venues = append(venues, *venue)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate grounds: %w", err)
	}
	return venues, nil
}

func scanGround(row pgx.Row) (*models.VenueProfile, error) {
	var v models.VenueProfile
	var bat, bowl [5]*string
	err := row.Scan(
		&v.ID, &v.Name, &v.LongName, &v.Country,
		&v.WidthMeters, &v.HeightMeters, &v.RoundedRect, &v.OdiOnly,
		&bat[0], &bat[1], &bat[2], &bat[3], &bat[4],
		&bowl[0], &bowl[1], &bowl[2], &bowl[3], &bowl[4],
		&v.MeasurementURL, &v.Notes,
	)
	if err != nil {
		return nil, err
	}
	v.BattingRecord = venueRecord(bat)
	v.BowlingRecord = venueRecord(bowl)
	return &v, nil
}

// venueRecord builds a record from nullable name, country, against, result
// and date columns. A record without a player is treated as absent.
func venueRecord(cols [5]*string) *models.VenueRecord {
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	if deref(cols[0]) == "" {
		return nil
	}
	return &models.VenueRecord{
		Player:  deref(cols[0]),
		Country: deref(cols[1]),
		Against: deref(cols[2]),
		Result:  deref(cols[3]),
		Date:    deref(cols[4]),
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
