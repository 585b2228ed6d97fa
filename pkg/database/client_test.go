package database

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/monadical-sas/reflector/ent"
)

// newTestClient creates a test database client with CI/local environment detection.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
func newTestClient(t *testing.T) *Client {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	ctx := context.Background()

	var connStr string
	if ciDatabaseURL := os.Getenv("CI_DATABASE_URL"); ciDatabaseURL != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		connStr = ciDatabaseURL
	} else {
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:17-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Auto-migration for tests; production startup uses the SQL migrations.
	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)

	err = CreateGINIndexes(ctx, drv)
	require.NoError(t, err)
	err = CreatePartialUniqueIndexes(ctx, drv)
	require.NoError(t, err)

	client := NewClientFromEnt(entClient, db)
	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := client.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestFullTextSearch(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	tr1, err := client.Transcript.Create().
		SetID("tr-1").
		SetName("weekly sync").
		SetTitle("Production incident review").
		SetShortSummary("Postmortem of the storage outage with action items").
		Save(ctx)
	require.NoError(t, err)

	tr2, err := client.Transcript.Create().
		SetID("tr-2").
		SetName("planning").
		SetTitle("Quarterly roadmap planning").
		Save(ctx)
	require.NoError(t, err)

	rows, err := client.DB().QueryContext(ctx,
		`SELECT transcript_id FROM transcripts
		WHERE to_tsvector('english',
			COALESCE(title, '') || ' ' || COALESCE(short_summary, '') || ' ' || COALESCE(long_summary, ''))
			@@ to_tsquery('english', $1)`,
		"storage & outage",
	)
	require.NoError(t, err)
	defer rows.Close()

	var results []string
	for rows.Next() {
		var id string
		require.NoError(t, rows.Scan(&id))
		results = append(results, id)
	}
	require.NoError(t, rows.Err())

	assert.Len(t, results, 1)
	assert.Equal(t, tr1.ID, results[0])

	rows2, err := client.DB().QueryContext(ctx,
		`SELECT transcript_id FROM transcripts
		WHERE to_tsvector('english',
			COALESCE(title, '') || ' ' || COALESCE(short_summary, '') || ' ' || COALESCE(long_summary, ''))
			@@ to_tsquery('english', $1)`,
		"roadmap",
	)
	require.NoError(t, err)
	defer rows2.Close()

	results = results[:0]
	for rows2.Next() {
		var id string
		require.NoError(t, rows2.Scan(&id))
		results = append(results, id)
	}
	require.NoError(t, rows2.Err())

	assert.Len(t, results, 1)
	assert.Equal(t, tr2.ID, results[0])
}

func TestPartialUniqueIndex_ParticipantPlatformID(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.Transcript.Create().SetID("tr-p").SetName("n").Save(ctx)
	require.NoError(t, err)

	_, err = client.Participant.Create().
		SetID("p-0").SetTranscriptID("tr-p").SetSpeakerIndex(0).
		SetDisplayName("Ada").SetPlatformID("plat-1").
		Save(ctx)
	require.NoError(t, err)

	// Same platform participant twice in one transcript: rejected.
	_, err = client.Participant.Create().
		SetID("p-1").SetTranscriptID("tr-p").SetSpeakerIndex(1).
		SetDisplayName("Ada again").SetPlatformID("plat-1").
		Save(ctx)
	require.Error(t, err)

	// Anonymous participants (no platform id) are unconstrained.
	_, err = client.Participant.Create().
		SetID("p-2").SetTranscriptID("tr-p").SetSpeakerIndex(2).
		SetDisplayName("Speaker 2").
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Participant.Create().
		SetID("p-3").SetTranscriptID("tr-p").SetSpeakerIndex(3).
		SetDisplayName("Speaker 3").
		Save(ctx)
	require.NoError(t, err)
}

func TestLoadConfigFromEnv(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		wantErr     bool
		errContains string
	}{
		{
			name: "valid config with defaults",
			envVars: map[string]string{
				"DATABASE_URL": "postgres://u:p@localhost:5432/reflector",
			},
		},
		{
			name: "custom pool sizes",
			envVars: map[string]string{
				"DATABASE_URL":      "postgres://u:p@localhost:5432/reflector",
				"DB_MAX_OPEN_CONNS": "50",
				"DB_MAX_IDLE_CONNS": "20",
			},
		},
		{
			name:        "missing url",
			envVars:     map[string]string{},
			wantErr:     true,
			errContains: "DATABASE_URL is required",
		},
		{
			name: "invalid max open conns",
			envVars: map[string]string{
				"DATABASE_URL":      "postgres://u:p@localhost:5432/reflector",
				"DB_MAX_OPEN_CONNS": "not_a_number",
			},
			wantErr:     true,
			errContains: "invalid DB_MAX_OPEN_CONNS",
		},
		{
			name: "idle above open",
			envVars: map[string]string{
				"DATABASE_URL":      "postgres://u:p@localhost:5432/reflector",
				"DB_MAX_OPEN_CONNS": "5",
				"DB_MAX_IDLE_CONNS": "10",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", "")
			t.Setenv("DB_MAX_OPEN_CONNS", "")
			t.Setenv("DB_MAX_IDLE_CONNS", "")
			for key, val := range tt.envVars {
				t.Setenv(key, val)
			}

			cfg, err := LoadConfigFromEnv()
			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "postgres://u:p@localhost:5432/reflector", cfg.URL)
			if tt.name == "valid config with defaults" {
				assert.Equal(t, 25, cfg.MaxOpenConns)
				assert.Equal(t, 10, cfg.MaxIdleConns)
			}
		})
	}
}

func TestDatabaseName(t *testing.T) {
	assert.Equal(t, "reflector", databaseName("postgres://u:p@host:5432/reflector?sslmode=disable"))
	assert.Equal(t, "postgres", databaseName("postgres://u:p@host:5432/"))
	assert.Equal(t, "postgres", databaseName("://not-a-url"))
}

func TestHealthStatus_JSONMilliseconds(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	health, err := client.Health(ctx)
	require.NoError(t, err)
	require.NotNil(t, health)

	assert.GreaterOrEqual(t, health.ResponseTime, int64(0))
	assert.Less(t, health.ResponseTime, int64(1000), "local ping should be under a second")

	jsonBytes, err := json.Marshal(health)
	require.NoError(t, err)

	var jsonData map[string]interface{}
	require.NoError(t, json.Unmarshal(jsonBytes, &jsonData))

	// Durations serialize as milliseconds, not nanoseconds.
	responseTime, ok := jsonData["response_time_ms"].(float64)
	require.True(t, ok, "response_time_ms should be a number")
	assert.Less(t, responseTime, float64(1000000))

	waitDuration, ok := jsonData["wait_duration_ms"].(float64)
	require.True(t, ok, "wait_duration_ms should be a number")
	assert.GreaterOrEqual(t, waitDuration, float64(0))
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid",
			cfg: Config{
				URL:          "postgres://u:p@localhost/db",
				MaxOpenConns: 10,
				MaxIdleConns: 5,
			},
		},
		{
			name:    "missing url",
			cfg:     Config{MaxOpenConns: 10, MaxIdleConns: 5},
			wantErr: true,
		},
		{
			name: "zero max open conns",
			cfg: Config{
				URL:          "postgres://u:p@localhost/db",
				MaxOpenConns: 0,
			},
			wantErr: true,
		},
		{
			name: "idle conns exceed max conns",
			cfg: Config{
				URL:          "postgres://u:p@localhost/db",
				MaxOpenConns: 5,
				MaxIdleConns: 10,
			},
			wantErr: true,
		},
		{
			name: "negative idle conns",
			cfg: Config{
				URL:          "postgres://u:p@localhost/db",
				MaxOpenConns: 10,
				MaxIdleConns: -1,
			},
			wantErr: true,
		},
		{
			name: "idle equal to open is fine",
			cfg: Config{
				URL:          "postgres://u:p@localhost/db",
				MaxOpenConns: 10,
				MaxIdleConns: 10,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
