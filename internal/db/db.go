package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	mysqldriver "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"
)

var ErrNotFound = errors.New("record not found")
var ErrConstraint = errors.New("constraint violation")

type GormDB struct {
	DB *gorm.DB
}

// NewSQLiteDB opens (creating if needed) the database file at path through the
// pure Go modernc driver and hands the connection to gorm. Foreign keys stay
// declared but unenforced, which is SQLite's default.
func NewSQLiteDB(path string, logs *zap.SugaredLogger, debug bool) (*GormDB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}

	sqlDB, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(0)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// single user, single writer
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	gdb, err := gorm.Open(gormsqlite.New(gormsqlite.Config{Conn: sqlDB}), gormConfig(logs, debug))
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &GormDB{DB: gdb}, nil
}

func NewPostgresDB(dsn string, logs *zap.SugaredLogger, debug bool) (*GormDB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), gormConfig(logs, debug))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &GormDB{DB: gdb}, nil
}

func NewMySQLDB(dsn string, logs *zap.SugaredLogger, debug bool) (*GormDB, error) {
	dsn, err := mysqlDSN(dsn)
	if err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(mysql.Open(dsn), gormConfig(logs, debug))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mysql: %w", err)
	}

	return &GormDB{DB: gdb}, nil
}

// mysqlDSN makes the server report matched rather than changed rows, so an
// UPDATE that rewrites identical values still counts the row.
func mysqlDSN(dsn string) (string, error) {
	cfg, err := mysqldriver.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ClientFoundRows = true

	return cfg.FormatDSN(), nil
}

func gormConfig(logs *zap.SugaredLogger, debug bool) *gorm.Config {
	level := logger.Silent
	if debug {
		level = logger.Info
	}

	return &gorm.Config{
		Logger:         NewGormLogger(logs, level),
		TranslateError: true,
	}
}

func (f *GormDB) Close() error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}

func (f *GormDB) MigrateTable(ctx context.Context, tbl ...any) error {
	err := f.DB.WithContext(ctx).AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// SaveToTable inserts records, which must be a pointer to a model or to a
// slice of models. Generated keys are written back into records.
func (f *GormDB) SaveToTable(ctx context.Context, records any) error {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr {
		return fmt.Errorf("records type must be a pointer: %T", records)
	}

	if v.Elem().Kind() == reflect.Slice && v.Elem().Len() == 0 {
		return nil
	}

	if err := f.DB.WithContext(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", translate(err))
	}

	return nil
}

func (f *GormDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

// GetAllBy fills entities with every row whose column equals value, in
// primary key order. No match leaves an empty slice and no error.
func (f *GormDB) GetAllBy(ctx context.Context, column string, value any, entities any) error {
	query := fmt.Sprintf("%s = ?", column)
	tx := f.DB.WithContext(ctx).Where(query, value).Order("id").Find(entities)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

// UpdateBy sets fields on the rows of model's table whose column equals value
// and returns how many rows matched.
func (f *GormDB) UpdateBy(ctx context.Context, column string, value any, model any, fields map[string]any) (int64, error) {
	query := fmt.Sprintf("%s = ?", column)
	tx := f.DB.WithContext(ctx).Model(model).Where(query, value).Updates(fields)
	if tx.Error != nil {
		return 0, fmt.Errorf("updating records by %q: %w", column, translate(tx.Error))
	}
	return tx.RowsAffected, nil
}

// DeleteBy removes the rows of model's table whose column equals value and
// returns how many were removed.
func (f *GormDB) DeleteBy(ctx context.Context, column string, value any, model any) (int64, error) {
	query := fmt.Sprintf("%s = ?", column)
	tx := f.DB.WithContext(ctx).Where(query, value).Delete(model)
	if tx.Error != nil {
		return 0, fmt.Errorf("deleting records by %q: %w", column, tx.Error)
	}
	return tx.RowsAffected, nil
}

// translate marks unique and foreign key violations with ErrConstraint.
// Postgres and MySQL errors arrive already translated by gorm; modernc errors carry
// extended result codes.
func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %w", ErrConstraint, err)
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlitelib.SQLITE_CONSTRAINT,
			sqlitelib.SQLITE_CONSTRAINT_UNIQUE,
			sqlitelib.SQLITE_CONSTRAINT_PRIMARYKEY,
			sqlitelib.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%w: %w", ErrConstraint, err)
		}
	}

	return err
}
