package worker

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestEnsureSchema(t *testing.T) {
	conn := &MockClickHouseConn{}

	if err := EnsureSchema(context.Background(), conn, zap.NewNop()); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	if len(conn.Executed) != 2 {
		t.Fatalf("Expected 2 statements, got %d: %v", len(conn.Executed), conn.Executed)
	}
	if conn.Executed[0] != "CREATE DATABASE IF NOT EXISTS cricket" {
		t.Errorf("Unexpected first statement %q", conn.Executed[0])
	}
	if !strings.HasPrefix(conn.Executed[1], "CREATE TABLE IF NOT EXISTS cricket.predictions") {
		t.Errorf("Unexpected second statement %q", conn.Executed[1])
	}

	// Every column the insert writes must exist in the table
	for _, col := range []string{"prediction_id", "match_id", "team1_score", "weather_fetched", "factors"} {
		if !strings.Contains(conn.Executed[1], col) {
			t.Errorf("Table definition is missing column %s", col)
		}
	}
}

func TestEnsureSchema_Error(t *testing.T) {
	execErr := errors.New("access denied")
	conn := &MockClickHouseConn{ExecErr: execErr}

	if err := EnsureSchema(context.Background(), conn, zap.NewNop()); !errors.Is(err, execErr) {
		t.Errorf("Expected %v, got %v", execErr, err)
	}
}
