package roster

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound = errors.New("roster member not found")
	ErrExists   = errors.New("roster member already exists")
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) List(ctx context.Context) ([]Member, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT name, hourly_rate, created_at
    FROM roster_members
    ORDER BY created_at ASC, name ASC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []Member{}
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.Name, &m.HourlyRate, &m.CreatedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (s *Store) Get(ctx context.Context, name string) (Member, error) {
	var m Member
	err := s.DB.QueryRow(ctx, `
    SELECT name, hourly_rate, created_at
    FROM roster_members
    WHERE name = $1
  `, name).Scan(&m.Name, &m.HourlyRate, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Member{}, ErrNotFound
	}
	return m, err
}

func (s *Store) Create(ctx context.Context, name string, hourlyRate float64) error {
	tag, err := s.DB.Exec(ctx, `
    INSERT INTO roster_members (name, hourly_rate)
    VALUES ($1, $2)
    ON CONFLICT (name) DO NOTHING
  `, name, hourlyRate)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExists
	}
	return nil
}

func (s *Store) UpdateRate(ctx context.Context, name string, hourlyRate float64) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE roster_members
    SET hourly_rate = $2
    WHERE name = $1
  `, name, hourlyRate)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, name string) error {
	tag, err := s.DB.Exec(ctx, `
    DELETE FROM roster_members
    WHERE name = $1
  `, name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
