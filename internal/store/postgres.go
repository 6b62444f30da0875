package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rvale/lazygrid/internal/models"
)

// PostgresConfig describes an optional external Postgres table source
type PostgresConfig struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
	SSLMode  string
	Schema   string
}

// PostgresSource materializes table snapshots from a live Postgres
// database so they can be browsed like local workspace tables. It is
// read-only: the emitted query language is never executed here.
type PostgresSource struct {
	pool   *pgxpool.Pool
	schema string
}

// OpenPostgres connects a table source
func OpenPostgres(ctx context.Context, cfg PostgresConfig) (*PostgresSource, error) {
	poolConfig, err := pgxpool.ParseConfig(connectionString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection config: %w", err)
	}
	poolConfig.MaxConns = 3
	poolConfig.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	schema := cfg.Schema
	if schema == "" {
		schema = "public"
	}
	return &PostgresSource{pool: pool, schema: schema}, nil
}

// Close releases the connection pool
func (s *PostgresSource) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// TableNames lists tables in the configured schema
func (s *PostgresSource) TableNames(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = $1 AND table_type = 'BASE TABLE'
		ORDER BY table_name`, s.schema)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// FetchTable loads a table snapshot: declared columns mapped onto the grid
// type system, plus at most limit rows.
func (s *PostgresSource) FetchTable(ctx context.Context, table string, limit int) (*models.Table, error) {
	result := &models.Table{Name: table}

	colRows, err := s.pool.Query(ctx, `
		SELECT column_name, data_type
		FROM information_schema.columns
		WHERE table_schema = $1 AND table_name = $2
		ORDER BY ordinal_position`, s.schema, table)
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}
	defer colRows.Close()

	for colRows.Next() {
		var name, dataType string
		if err := colRows.Scan(&name, &dataType); err != nil {
			return nil, err
		}
		result.Columns = append(result.Columns, models.Column{
			Name: name,
			Type: mapPostgresType(dataType),
		})
	}
	if err := colRows.Err(); err != nil {
		return nil, err
	}
	if len(result.Columns) == 0 {
		return nil, fmt.Errorf("unknown table: %s.%s", s.schema, table)
	}

	if limit <= 0 {
		limit = 100
	}
	dataRows, err := s.pool.Query(ctx,
		fmt.Sprintf(`SELECT * FROM %q.%q LIMIT %d`, s.schema, table, limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query table data: %w", err)
	}
	defer dataRows.Close()

	fields := dataRows.FieldDescriptions()
	position := 0
	for dataRows.Next() {
		values, err := dataRows.Values()
		if err != nil {
			return nil, err
		}
		data := make(map[string]any, len(fields))
		for i, fd := range fields {
			data[string(fd.Name)] = toScalar(values[i])
		}
		result.Rows = append(result.Rows, models.Row{
			ID:   fmt.Sprintf("%s:%d", table, position),
			Data: data,
		})
		position++
	}
	return result, dataRows.Err()
}

// mapPostgresType folds Postgres data types onto the grid's four-type
// system. Anything unrecognized browses as text.
func mapPostgresType(dataType string) models.ColumnType {
	switch {
	case strings.Contains(dataType, "int"),
		strings.Contains(dataType, "numeric"),
		strings.Contains(dataType, "decimal"),
		strings.Contains(dataType, "real"),
		strings.Contains(dataType, "double"):
		return models.TypeNumber
	case strings.Contains(dataType, "bool"):
		return models.TypeBoolean
	case strings.Contains(dataType, "date"), strings.Contains(dataType, "timestamp"):
		return models.TypeDate
	default:
		return models.TypeText
	}
}

// toScalar reduces pgx values to the scalar set the core understands
func toScalar(value any) any {
	switch v := value.(type) {
	case nil:
		return nil
	case string, bool, float64:
		return v
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case float32:
		return float64(v)
	case time.Time:
		return v.Format("2006-01-02")
	default:
		return fmt.Sprintf("%v", v)
	}
}

func connectionString(cfg PostgresConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "prefer"
	}
	port := cfg.Port
	if port == 0 {
		port = 5432
	}

	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s database=%s sslmode=%s",
		cfg.Host, port, cfg.User, cfg.Database, sslMode,
	)
	if cfg.Password != "" {
		connStr += fmt.Sprintf(" password=%s", cfg.Password)
	}
	return connStr
}
