package mcp

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SchemaRepo lists the columns of the tables the assistant may reason about.
type SchemaRepo interface {
	GetColumns(ctx context.Context) ([]SchemaColumn, error)
}

// SchemaColumn is one information_schema.columns row; field order matches the select list.
type SchemaColumn struct {
	TableSchema string
	TableName   string
	ColumnName  string
	DataType    string
	IsNullable  string
	ColumnDef   *string
}

// app_user holds credentials and is never exposed.
var exposedTables = []string{
	"hevy_connection",
	"workout",
	"daily_aggregate",
	"pr_event",
	"exercise_record",
	"weight_log",
	"exercise_type_template",
}

type pgSchemaRepo struct {
	db *pgxpool.Pool
}

func NewPoolSchemaRepo(db *pgxpool.Pool) SchemaRepo {
	return &pgSchemaRepo{db: db}
}

func (r *pgSchemaRepo) GetColumns(ctx context.Context) ([]SchemaColumn, error) {
	rows, err := r.db.Query(ctx, `
		SELECT table_schema, table_name, column_name, data_type, is_nullable, column_default
		FROM information_schema.columns
		WHERE table_schema = current_schema() AND table_name = ANY($1)
		ORDER BY table_name, ordinal_position`,
		exposedTables,
	)
	if err != nil {
		return nil, fmt.Errorf("query columns: %w", err)
	}

	cols, err := pgx.CollectRows(rows, pgx.RowToStructByPos[SchemaColumn])
	if err != nil {
		return nil, fmt.Errorf("collect columns: %w", err)
	}
	return cols, nil
}
