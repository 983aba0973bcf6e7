package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"time"

	"jobboard/internal/adapters/out/postgres/jobrepo"
	"jobboard/internal/adapters/out/postgres/userrepo"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// ErrDatabaseUnreachable covers refused connections, timeouts and servers
	// that are not accepting connections yet.
	ErrDatabaseUnreachable = errors.New("database is unreachable")

	// ErrDatabaseAuth is returned when the server rejects the credentials.
	ErrDatabaseAuth = errors.New("database rejected credentials")

	// ErrDatabaseMissing is returned when the configured database does not exist.
	ErrDatabaseMissing = errors.New("database does not exist")
)

// Settings are the connection parameters of the job board database.
type Settings struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN renders the settings as a postgres URL.
func (s Settings) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(s.User, s.Password),
		Host:   net.JoinHostPort(s.Host, strconv.Itoa(s.Port)),
		Path:   s.Name,
	}
	if s.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {s.SSLMode}}.Encode()
	}
	return u.String()
}

// Connect opens the pool and pings it within ctx. The first failed ping is
// returned, classified as one of the ErrDatabase* sentinels.
func Connect(ctx context.Context, dsn string, log *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger:               newGormLogger(log),
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err = sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, classify(err)
	}

	log.InfoContext(ctx, "database connected")
	return db, nil
}

// Migrate creates or alters the jobs and users tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&jobrepo.JobDTO{}, &userrepo.UserDTO{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Close releases the pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgerrcode.IsInvalidAuthorizationSpecification(pgErr.Code):
			return fmt.Errorf("%w: %w", ErrDatabaseAuth, err)
		case pgerrcode.IsInvalidCatalogName(pgErr.Code):
			return fmt.Errorf("%w: %w", ErrDatabaseMissing, err)
		case pgErr.Code == pgerrcode.CannotConnectNow,
			pgErr.Code == pgerrcode.TooManyConnections,
			pgerrcode.IsConnectionException(pgErr.Code):
			return fmt.Errorf("%w: %w", ErrDatabaseUnreachable, err)
		}
		return fmt.Errorf("failed to ping database: %w", err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return fmt.Errorf("%w: %w", ErrDatabaseUnreachable, err)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return fmt.Errorf("%w: %w", ErrDatabaseUnreachable, err)
	}

	return fmt.Errorf("failed to ping database: %w", err)
}

func newGormLogger(log *slog.Logger) logger.Interface {
	return logger.New(
		slog.NewLogLogger(log.With("component", "gorm").Handler(), slog.LevelWarn),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)
}
