package persistence

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/user"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/infrastructure/persistence/models"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/pkg/composables"
)

var ErrUserNotFound = errors.New("user not found")

const (
	userFindByEmailQuery = `
		SELECT id, name, email, password, role, created_at, updated_at
		FROM users
		WHERE email = $1`

	userInsertQuery = `
		INSERT INTO users (id, name, email, password, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		RETURNING created_at, updated_at`

	userCountQuery = `SELECT COUNT(id) FROM users`

	userNamesQuery = `SELECT name FROM users ORDER BY created_at`
)

type PgUserRepository struct{}

func NewUserRepository() user.Repository {
	return &PgUserRepository{}
}

func (r *PgUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	var m models.User
	if err := tx.QueryRow(ctx, userFindByEmailQuery, email).Scan(
		&m.ID, &m.Name, &m.Email, &m.Password, &m.Role, &m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "failed to get user by email")
	}
	return ToDomainUser(&m), nil
}

func (r *PgUserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	created := *u
	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}
	if err := tx.QueryRow(ctx, userInsertQuery,
		created.ID, created.Name, created.Email, created.Password, created.Role,
	).Scan(&created.CreatedAt, &created.UpdatedAt); err != nil {
		return nil, errors.Wrapf(err, "failed to create user %s", u.Email)
	}
	return &created, nil
}

func (r *PgUserRepository) Count(ctx context.Context) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := tx.QueryRow(ctx, userCountQuery).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}
	return count, nil
}

func (r *PgUserRepository) Names(ctx context.Context) ([]string, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, userNamesQuery)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user names")
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
