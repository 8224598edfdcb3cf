package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name     string
		config   models.DatabaseConfig
		expected string
	}{
		{
			name: "Local database",
			config: models.DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				Username: "cab",
				Password: "secret",
				Database: "cabbooking",
				SSLMode:  "disable",
			},
			expected: "host=localhost port=5432 user=cab password=secret dbname=cabbooking sslmode=disable",
		},
		{
			name: "SSL enabled",
			config: models.DatabaseConfig{
				Host:     "prod-db.example.com",
				Port:     6432,
				Username: "produser",
				Password: "p@ssw0rd!",
				Database: "proddb",
				SSLMode:  "require",
			},
			expected: "host=prod-db.example.com port=6432 user=produser password=p@ssw0rd! dbname=proddb sslmode=require",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildDSN(tt.config))
		})
	}
}

func TestPostgresClient_GetDB(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	client := NewPostgresClientFromDB(sqlxDB)

	assert.Equal(t, sqlxDB, client.GetDB())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresClient_Close(t *testing.T) {
	t.Run("Close open connection", func(t *testing.T) {
		mockDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		mock.ExpectClose()

		client := NewPostgresClientFromDB(sqlx.NewDb(mockDB, "sqlmock"))
		client.Close()

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Close client with nil database", func(t *testing.T) {
		client := &PostgresClient{}
		assert.NotPanics(t, func() {
			client.Close()
		})
	})
}
