package contract

import (
	"testing"

	"github.com/rushiraj-gohil/bizdash/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns a raw input that passes validation, for tests to break
// one field at a time.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Limit:        DefaultResultLimit,
		Precision:    DefaultPrecision,
		Output:       "text",
		CacheBackend: string(schema.SQLiteBackend),
		Color:        "yes",
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError bool
	}{
		{"valid minimal config", func(*ConfigRawInput) {}, false},
		{"zero limit", func(in *ConfigRawInput) { in.Limit = 0 }, true},
		{"limit above maximum", func(in *ConfigRawInput) { in.Limit = MaxResultLimit + 1 }, true},
		{"precision zero", func(in *ConfigRawInput) { in.Precision = 0 }, true},
		{"precision three", func(in *ConfigRawInput) { in.Precision = 3 }, true},
		{"precision two", func(in *ConfigRawInput) { in.Precision = 2 }, false},
		{"invalid output mode", func(in *ConfigRawInput) { in.Output = "xml" }, true},
		{"uppercase output mode", func(in *ConfigRawInput) { in.Output = "JSON" }, false},
		{"parquet without output file", func(in *ConfigRawInput) { in.Output = "parquet" }, true},
		{"parquet with output file", func(in *ConfigRawInput) {
			in.Output = "parquet"
			in.OutputFile = "out.parquet"
		}, false},
		{"negative max anomalies", func(in *ConfigRawInput) { in.MaxAnomalies = -1 }, true},
		{"invalid color", func(in *ConfigRawInput) { in.Color = "maybe" }, true},
		{"invalid cache backend", func(in *ConfigRawInput) { in.CacheBackend = "oracle" }, true},
		{"none cache backend", func(in *ConfigRawInput) { in.CacheBackend = "none" }, false},
		{"mysql cache backend without conn string", func(in *ConfigRawInput) {
			in.CacheBackend = string(schema.MySQLBackend)
		}, true},
		{"mysql cache backend with conn string", func(in *ConfigRawInput) {
			in.CacheBackend = string(schema.MySQLBackend)
			in.CacheDBConnect = "user:pass@tcp(localhost:3306)/bizdash"
		}, false},
		{"postgres history backend without conn string", func(in *ConfigRawInput) {
			in.HistoryBackend = string(schema.PostgreSQLBackend)
		}, true},
		{"postgres history backend with conn string", func(in *ConfigRawInput) {
			in.HistoryBackend = string(schema.PostgreSQLBackend)
			in.HistoryDBConnect = "host=localhost port=5432 user=postgres dbname=bizdash"
		}, false},
		{"invalid history backend", func(in *ConfigRawInput) { in.HistoryBackend = "redis" }, true},
		{"empty history backend disables tracking", func(in *ConfigRawInput) { in.HistoryBackend = "" }, false},
		{"sqlite cache and history on same file", func(in *ConfigRawInput) {
			in.HistoryBackend = string(schema.SQLiteBackend)
			in.CacheDBConnect = "/tmp/same.db"
			in.HistoryDBConnect = "/tmp/same.db"
		}, true},
		{"sqlite cache and history on different files", func(in *ConfigRawInput) {
			in.HistoryBackend = string(schema.SQLiteBackend)
			in.CacheDBConnect = "/tmp/cache.db"
			in.HistoryDBConnect = "/tmp/history.db"
		}, false},
		{"archive URL with bad scheme", func(in *ConfigRawInput) { in.ArchiveURLStr = "ftp://example.com/data.zip" }, true},
		{"archive URL without host", func(in *ConfigRawInput) { in.ArchiveURLStr = "https:///data.zip" }, true},
		{"explicit https archive URL", func(in *ConfigRawInput) { in.ArchiveURLStr = "https://example.com/data.zip" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)

			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validInput()))

	assert.Equal(t, DefaultArchiveURL, cfg.ArchiveURL)
	assert.Equal(t, DefaultResultLimit, cfg.ResultLimit)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.SQLiteBackend, cfg.CacheBackend)
	assert.True(t, cfg.UseColors)
}

func TestProcessAndValidatePositionalURL(t *testing.T) {
	input := validInput()
	input.ArchiveURLStr = "https://data.example.com/archive/cleaned_data.zip"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, input.ArchiveURLStr, cfg.ArchiveURL)
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{ArchiveURL: "https://example.com/data.zip", ResultLimit: 10}
	clone := cfg.Clone()

	clone.ResultLimit = 99
	assert.Equal(t, 10, cfg.ResultLimit, "mutating a clone should not touch the original")
	assert.Equal(t, cfg.ArchiveURL, clone.ArchiveURL)
}

func TestConfigParams(t *testing.T) {
	cfg := &Config{
		ArchiveURL:  "https://example.com/data.zip",
		ResultLimit: 50,
		Output:      schema.JSONOut,
		Precision:   2,
		Refresh:     true,
	}

	params := cfg.Params()
	assert.Equal(t, "https://example.com/data.zip", params["archive_url"])
	assert.Equal(t, 50, params["limit"])
	assert.Equal(t, "json", params["output"])
	assert.Equal(t, 2, params["precision"])
	assert.Equal(t, true, params["refresh"])
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	tests := []struct {
		name        string
		backend     schema.DatabaseBackend
		connStr     string
		expectError bool
	}{
		{"sqlite ignores conn string", schema.SQLiteBackend, "", false},
		{"none ignores conn string", schema.NoneBackend, "", false},
		{"mysql valid", schema.MySQLBackend, "u:p@tcp(db:3306)/name", false},
		{"mysql empty", schema.MySQLBackend, "", true},
		{"mysql missing tcp", schema.MySQLBackend, "u:p@db/name", true},
		{"postgres valid", schema.PostgreSQLBackend, "host=db port=5432 user=u dbname=n", false},
		{"postgres empty", schema.PostgreSQLBackend, "", true},
		{"postgres missing dbname", schema.PostgreSQLBackend, "host=db user=u", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tt.backend, tt.connStr)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
