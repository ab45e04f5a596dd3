package worker

import (
	"context"
	_ "embed"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"go.uber.org/zap"
)

//go:embed predictions.sql
var predictionsSchema string

// EnsureSchema creates the prediction log database and table if missing
func EnsureSchema(ctx context.Context, conn driver.Conn, logger *zap.Logger) error {
	log := logger.Sugar()

	// ClickHouse driver often prefers individual statements for complex DDL
	for _, stmt := range strings.Split(predictionsSchema, ";") {
		trimmed := strings.TrimSpace(stmt)
		if trimmed == "" {
			continue
		}

		if err := conn.Exec(ctx, trimmed); err != nil {
			log.Warnw("statement execution warning", "db", "ClickHouse", "error", err, "statement", trimmed[:min(len(trimmed), 50)]+"...")
			return err
		}
	}

	log.Infow("prediction log schema ready", "db", "ClickHouse")
	return nil
}
