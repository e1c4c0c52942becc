package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sandeepkv93/taskcal/internal/model"
	"go.uber.org/zap"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewSQLite(db *sql.DB, logger *zap.Logger) (*SQLite, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	return &SQLite{db: db, logger: orNop(logger)}, nil
}

func OpenSQLite(path string, logger *zap.Logger) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	repo, err := NewSQLite(db, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLite) Close() error {
	return r.db.Close()
}

func (r *SQLite) Load(ctx context.Context) ([]model.Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, date, title, description, completed
		FROM tasks ORDER BY position ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		rec, scanErr := scanRecord(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return fromRecords(records, r.logger), nil
}

func (r *SQLite) Save(ctx context.Context, tasks []model.Task) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tasks (id, position, date, title, description, completed)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range tasks {
		if _, err := stmt.ExecContext(ctx, int64(t.ID), i, t.Date, t.Title, t.Description, boolInt(t.Completed)); err != nil {
			return fmt.Errorf("insert task %d: %w", t.ID, err)
		}
	}
	return tx.Commit()
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (Record, error) {
	var out Record
	var completed int
	if err := s.Scan(&out.ID, &out.Date, &out.Title, &out.Description, &completed); err != nil {
		return Record{}, err
	}
	out.Completed = completed == 1
	return out, nil
}
