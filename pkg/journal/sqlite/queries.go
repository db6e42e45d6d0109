package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Action struct {
	ID        int64
	Session   string
	Seat      string
	Action    string
	Arg       string
	CreatedAt int64
}

type InsertActionParams struct {
	Session   string
	Seat      string
	Action    string
	Arg       string
	CreatedAt int64
}

const insertAction = `
insert into actions (session, seat, action, arg, created_at)
values (?, ?, ?, ?, ?)
`

func (q *Queries) InsertAction(ctx context.Context, arg InsertActionParams) error {
	_, err := q.db.ExecContext(ctx, insertAction, arg.Session, arg.Seat, arg.Action, arg.Arg, arg.CreatedAt)
	return err
}

const recentActions = `
select id, session, seat, action, arg, created_at
from actions
order by id desc
limit ?
`

func (q *Queries) RecentActions(ctx context.Context, limit int64) ([]Action, error) {
	rows, err := q.db.QueryContext(ctx, recentActions, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Action
	for rows.Next() {
		var i Action
		if err := rows.Scan(&i.ID, &i.Session, &i.Seat, &i.Action, &i.Arg, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const dumpTables = `
select sql from sqlite_master
where type = 'table' and name not like 'sqlite_%'
order by name
`

func (q *Queries) DumpTables(ctx context.Context) ([]*string, error) {
	return q.dump(ctx, dumpTables)
}

const dumpRest = `
select sql from sqlite_master
where type != 'table' and name not like 'sqlite_%'
order by name
`

func (q *Queries) DumpRest(ctx context.Context) ([]*string, error) {
	return q.dump(ctx, dumpRest)
}

func (q *Queries) dump(ctx context.Context, query string) ([]*string, error) {
	rows, err := q.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query sqlite_master: %w", err)
	}
	defer rows.Close()

	var items []*string
	for rows.Next() {
		var stmt sql.NullString
		if err := rows.Scan(&stmt); err != nil {
			return nil, err
		}
		if !stmt.Valid {
			items = append(items, nil)
			continue
		}
		s := stmt.String
		items = append(items, &s)
	}
	return items, rows.Err()
}
