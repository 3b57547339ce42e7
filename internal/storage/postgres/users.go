package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"ats-api/internal/models"
	"ats-api/internal/storage"
	"ats-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// UserRepo implements the storage.UserRepository interface using PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db Querier) *UserRepo {
	return &UserRepo{db: db}
}

var _ storage.UserRepository = (*UserRepo)(nil)

const userColumns = `id, name, email, password_hash, phone, role, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID retrieves a single user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting user by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, err)
	}
	return user, nil
}

// GetByEmail retrieves a single user by email, including the password hash.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	email = normalizeEmail(email)
	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("User not found with email: %s\n", email)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting user by email %s: %v\n", email, err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// Create hashes the password and inserts a new user with the given role.
func (r *UserRepo) Create(ctx context.Context, req *dto.CreateUserRequest, role models.Role) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password for email %s: %v\n", req.Email, err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	query := `
		INSERT INTO users (id, name, email, password_hash, phone, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query,
		uuid.New(),
		strings.TrimSpace(req.Name),
		normalizeEmail(req.Email),
		string(hashedPassword),
		strings.TrimSpace(req.Phone),
		role,
	))
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			log.Printf("Attempted to create user with duplicate email %s\n", req.Email)
			return nil, storage.ErrDuplicateEmail
		}
		log.Printf("Error creating user with email %s: %v\n", req.Email, err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("User created successfully with ID: %s (role %s)", user.ID, user.Role)
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
