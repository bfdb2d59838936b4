package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("MIGRATIONS_DIR", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, StorageDriverPostgres, cfg.StorageDriver)
	assert.Equal(t, "migrations", cfg.MigrationsDir)
	assert.Contains(t, cfg.DatabaseDSN, "dbname=belimbing_ledger")
	assert.Contains(t, cfg.DatabaseDSN, "sslmode=disable")
}

func TestLoadMemoryDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Memory")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StorageDriverMemory, cfg.StorageDriver)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")

	_, err := Load()
	assert.Error(t, err)
}

func TestNormalizeConnectionString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "keyword dsn passes through",
			input:    "host=db port=5432 dbname=ledger user=app password=secret",
			expected: "host=db port=5432 dbname=ledger user=app password=secret",
		},
		{
			name:     "url dsn passes through",
			input:    "postgres://app:secret@db:5432/ledger?sslmode=require",
			expected: "postgres://app:secret@db:5432/ledger?sslmode=require",
		},
		{
			name:     "semicolon dsn is rewritten",
			input:    "Host=db;Port=5432;Database=ledger;Username=app;Password=secret",
			expected: "host=db port=5432 dbname=ledger user=app password=secret sslmode=disable",
		},
		{
			name:     "timeouts are mapped",
			input:    "Host=db;Database=ledger;Timeout=30;CommandTimeout=30",
			expected: "host=db dbname=ledger connect_timeout=30 statement_timeout=30s sslmode=disable",
		},
		{
			name:     "explicit sslmode is kept",
			input:    "Host=db;Database=ledger;SslMode=require",
			expected: "host=db dbname=ledger sslmode=require",
		},
		{
			name:     "empty segments are skipped",
			input:    "Host=db;;Database=ledger;",
			expected: "host=db dbname=ledger sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeConnectionString(tt.input))
		})
	}
}
