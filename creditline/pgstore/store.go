// Package pgstore serves credit lines from PostgreSQL.
//
// Expected table:
//
//	CREATE TABLE credit_lines (
//	    id            text PRIMARY KEY,
//	    owner_alias   text NOT NULL,
//	    partner_alias text NOT NULL,
//	    credit_limit  numeric NULL,  -- NULL = unlimited
//	    balance       numeric NOT NULL DEFAULT 0
//	);
package pgstore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/katalvlaran/creditflow/creditline"
)

// Querier is the subset of *pgxpool.Pool used by Store.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Numerics are read as text so NULL and arbitrary precision survive without
// float conversion; an empty limit denotes NULL.
const outgoingQuery = `SELECT id, owner_alias, partner_alias,
		COALESCE(credit_limit::text, ''), balance::text
	FROM credit_lines WHERE owner_alias = $1 ORDER BY id`

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// Store implements creditline.Store on top of a pgx connection pool.
type Store struct {
	db  Querier
	log *zap.Logger
}

var _ creditline.Store = (*Store)(nil)

// New wraps db.
func New(db Querier, opts ...Option) *Store {
	s := &Store{db: db, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// OutgoingCreditLines returns alias's lines ordered by id.
func (s *Store) OutgoingCreditLines(ctx context.Context, alias string) ([]creditline.CreditLine, error) {
	rows, err := s.db.Query(ctx, outgoingQuery, alias)
	if err != nil {
		return nil, fmt.Errorf("pgstore: query credit lines: %w", err)
	}
	defer rows.Close()

	var lines []creditline.CreditLine
	for rows.Next() {
		var (
			l              creditline.CreditLine
			limit, balance string
		)
		if err := rows.Scan(&l.ID, &l.Owner, &l.Partner, &limit, &balance); err != nil {
			return nil, fmt.Errorf("pgstore: scan credit line: %w", err)
		}
		if limit != "" {
			d, err := decimal.NewFromString(limit)
			if err != nil {
				return nil, fmt.Errorf("pgstore: credit line %s: limit %q: %w", l.ID, limit, err)
			}
			l.Limit = decimal.NewNullDecimal(d)
		}
		if l.Balance, err = decimal.NewFromString(balance); err != nil {
			return nil, fmt.Errorf("pgstore: credit line %s: balance %q: %w", l.ID, balance, err)
		}
		if err := l.Validate(); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgstore: iterate credit lines: %w", err)
	}

	s.log.Debug("credit lines loaded", zap.String("alias", alias), zap.Int("count", len(lines)))

	return lines, nil
}

// Connect opens and pings a pool for dsn.
func Connect(ctx context.Context, dsn string, log *zap.Logger) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("pgstore: parse dsn: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pgstore: create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pgstore: ping: %w", err)
	}
	if log != nil {
		log.Info("postgres pool established",
			zap.String("host", cfg.ConnConfig.Host),
			zap.String("database", cfg.ConnConfig.Database),
			zap.Int32("max_conns", cfg.MaxConns),
		)
	}

	return pool, nil
}
