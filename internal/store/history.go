package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

var (
	ErrQuery = errors.New("history query failed")
	ErrSave  = errors.New("failed to save history")
)

// Visit is the most recent view of a sign.
type Visit struct {
	Sign      string
	VisitedOn time.Time
}

// SignStats summarises the views of a single sign.
type SignStats struct {
	Sign         string
	Count        int
	FirstVisited time.Time
	LastVisited  time.Time
}

// History records which sign detail pages have been viewed.
type History struct {
	db  DBTX
	now func() time.Time
}

func NewHistory(db DBTX) *History {
	return &History{db: db, now: time.Now}
}

// WithClock replaces the time source, which is mostly useful for tests.
func (h *History) WithClock(now func() time.Time) *History {
	h.now = now

	return h
}

func (h *History) Record(ctx context.Context, sign string) error {
	const query = `INSERT INTO sign_visit (sign, visited_on) VALUES (?, ?)`

	if _, err := h.db.ExecContext(ctx, query, sign, h.now().UnixMilli()); err != nil {
		return errors.Join(err, ErrSave)
	}

	return nil
}

// Recent returns up to limit distinct signs, most recently viewed first.
func (h *History) Recent(ctx context.Context, limit int) ([]Visit, error) {
	const query = `
		SELECT sign, MAX(visited_on) AS last_visit
		FROM sign_visit
		GROUP BY sign
		ORDER BY last_visit DESC, MAX(sign_visit_id) DESC
		LIMIT ?`

	if limit <= 0 {
		return []Visit{}, nil
	}

	rows, errRows := h.db.QueryContext(ctx, query, limit)
	if errRows != nil {
		return nil, errors.Join(errRows, ErrQuery)
	}

	defer rows.Close()

	visits := []Visit{}
	for rows.Next() {
		var (
			visit  Visit
			millis int64
		)

		if err := rows.Scan(&visit.Sign, &millis); err != nil {
			return nil, errors.Join(err, ErrQuery)
		}

		visit.VisitedOn = time.UnixMilli(millis)
		visits = append(visits, visit)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Join(err, ErrQuery)
	}

	return visits, nil
}

// Stats returns the view count of a sign. Signs that were never viewed have a zero Count.
func (h *History) Stats(ctx context.Context, sign string) (SignStats, error) {
	const query = `SELECT COUNT(*), MIN(visited_on), MAX(visited_on) FROM sign_visit WHERE sign = ?`

	var (
		stats       = SignStats{Sign: sign}
		first, last sql.NullInt64
	)

	if err := h.db.QueryRowContext(ctx, query, sign).Scan(&stats.Count, &first, &last); err != nil {
		return SignStats{}, errors.Join(err, ErrQuery)
	}

	if first.Valid {
		stats.FirstVisited = time.UnixMilli(first.Int64)
	}

	if last.Valid {
		stats.LastVisited = time.UnixMilli(last.Int64)
	}

	return stats, nil
}
