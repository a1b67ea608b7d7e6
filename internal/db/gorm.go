package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

type GormDB struct {
	db *gorm.DB
}

// NewPostgresDB opens a pooled postgres connection. Driver errors are
// translated so that unique violations surface as ErrDuplicate.
func NewPostgresDB(dsn string) (*GormDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return NewGormDB(db), nil
}

func NewGormDB(db *gorm.DB) *GormDB {
	return &GormDB{
		db: db,
	}
}

func (f *GormDB) MigrateTables(models ...any) error {
	err := f.db.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *GormDB) Create(ctx context.Context, record any) error {
	err := f.db.WithContext(ctx).Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("insert to table: %w", ErrDuplicate)
		}
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *GormDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.db.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

// GetAllBy loads every row matching column = value into entities, a pointer
// to a slice. orderBy is passed to ORDER BY verbatim and may be empty.
func (f *GormDB) GetAllBy(ctx context.Context, column string, value any, orderBy string, entities any) error {
	tx := f.db.WithContext(ctx).Where(fmt.Sprintf("%s = ?", column), value)
	if orderBy != "" {
		tx = tx.Order(orderBy)
	}

	if err := tx.Find(entities).Error; err != nil {
		return fmt.Errorf("getting records by %q: %w", column, err)
	}
	return nil
}

// DeleteWhere deletes the rows of model's table matching every condition and
// reports how many were removed.
func (f *GormDB) DeleteWhere(ctx context.Context, model any, conditions map[string]any) (int64, error) {
	if len(conditions) == 0 {
		return 0, errors.New("delete without conditions")
	}

	tx := f.db.WithContext(ctx).Where(conditions).Delete(model)
	if tx.Error != nil {
		return 0, fmt.Errorf("delete from table: %w", tx.Error)
	}

	return tx.RowsAffected, nil
}
