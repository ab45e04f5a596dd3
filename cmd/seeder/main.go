package main

import (
	"context"
	"database/sql"
	_ "embed"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/cricketiq/prediction-api/internal/logic"
)

//go:embed schema.sql
var schema string

func main() {
	var (
		dsn      = flag.String("db", os.Getenv("POSTGRES_URL"), "PostgreSQL connection string")
		file     = flag.String("grounds", "", "CSV file of cricket grounds to import")
		truncate = flag.Bool("truncate", false, "Remove existing grounds before importing")
		teams    = flag.Bool("teams", false, "Seed team_stats with the season baseline")
	)
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()
	log := logger.Sugar()

	if *dsn == "" {
		log.Fatal("missing database: set POSTGRES_URL or pass -db")
	}

	db, err := sql.Open("postgres", *dsn)
	if err != nil {
		log.Fatalw("failed to open database", "error", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		log.Fatalw("failed to apply schema", "error", err)
	}
	log.Info("schema ready")

	if *teams {
		n, err := seedTeams(ctx, db)
		if err != nil {
			log.Fatalw("failed to seed teams", "error", err)
		}
		log.Infow("seeded team stats", "teams", n)
	}

	if *file == "" {
		return
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalw("failed to open grounds file", "file", *file, "error", err)
	}
	defer f.Close()

	grounds, skipped, err := parseGrounds(f)
	if err != nil {
		log.Fatalw("failed to parse grounds", "file", *file, "error", err)
	}
	for _, s := range skipped {
		log.Warnw("skipped row", "line", s.Line, "reason", s.Reason)
	}

	n, err := importGrounds(ctx, db, grounds, *truncate)
	if err != nil {
		log.Fatalw("failed to import grounds", "error", err)
	}
	log.Infow("imported grounds", "rows", n, "skipped", len(skipped))
}

// importGrounds bulk-loads grounds with COPY in a single transaction
func importGrounds(ctx context.Context, db *sql.DB, grounds []ground, truncate bool) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if truncate {
		if _, err := tx.ExecContext(ctx, "TRUNCATE cricket_grounds"); err != nil {
			return 0, err
		}
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("cricket_grounds", groundColumns...))
	if err != nil {
		return 0, err
	}

	for _, g := range grounds {
		if _, err := stmt.ExecContext(ctx, g.values()...); err != nil {
			stmt.Close()
			return 0, fmt.Errorf("copy %q: %w", g.Ground, err)
		}
	}
	if _, err := stmt.ExecContext(ctx); err != nil {
		stmt.Close()
		return 0, err
	}
	if err := stmt.Close(); err != nil {
		return 0, err
	}

	return len(grounds), tx.Commit()
}

func seedTeams(ctx context.Context, db *sql.DB) (int, error) {
	baseline := logic.BaselineTeamStats()
	for _, t := range baseline {
		_, err := db.ExecContext(ctx, `
			INSERT INTO team_stats (team, recent_wins, batting_avg, bowling_avg, updated_at)
			VALUES ($1, $2, $3, $4, now())
			ON CONFLICT (team) DO UPDATE SET
				recent_wins = EXCLUDED.recent_wins,
				batting_avg = EXCLUDED.batting_avg,
				bowling_avg = EXCLUDED.bowling_avg,
				updated_at  = EXCLUDED.updated_at
		`, t.Team, t.Stats.RecentWins, t.Stats.BattingAvg, t.Stats.BowlingAvg)
		if err != nil {
			return 0, fmt.Errorf("seed %s: %w", t.Team, err)
		}
	}
	return len(baseline), nil
}
