package worker

import (
	"context"
	"errors"
	"sync"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// MockClickHouseConn implements driver.Conn for testing
type MockClickHouseConn struct {
	driver.Conn

	mu         sync.Mutex
	Batches    []*MockBatch
	PrepareErr error
	SendErr    error
	Executed   []string
	ExecErr    error
}

func (m *MockClickHouseConn) Exec(ctx context.Context, query string, args ...any) error {
	if m.ExecErr != nil {
		return m.ExecErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Executed = append(m.Executed, query)
	return nil
}

func (m *MockClickHouseConn) PrepareBatch(ctx context.Context, query string, opts ...driver.PrepareBatchOption) (driver.Batch, error) {
	if m.PrepareErr != nil {
		return nil, m.PrepareErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	b := &MockBatch{Query: query, sendErr: m.SendErr, mu: &m.mu}
	m.Batches = append(m.Batches, b)
	return b, nil
}

// SentRows returns every appended row of every batch that was sent
func (m *MockClickHouseConn) SentRows() [][]any {
	m.mu.Lock()
	defer m.mu.Unlock()

	var rows [][]any
	for _, b := range m.Batches {
		if b.Sent {
			rows = append(rows, b.Appended...)
		}
	}
	return rows
}

// MockBatch records appended rows
type MockBatch struct {
	driver.Batch

	Query    string
	Appended [][]any
	Sent     bool
	sendErr  error
	mu       *sync.Mutex
}

func (m *MockBatch) Append(v ...any) error {
	if len(v) == 0 {
		return errors.New("empty row")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Appended = append(m.Appended, v)
	return nil
}

func (m *MockBatch) Send() error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = true
	return nil
}
