package services

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
	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	repo   storage.UserRepository
	tokens TokenIssuer
	store  storage.Pinger
}

// NewUserService creates a new instance of UserService. store is pinged
// before each login; a nil store skips the check.
func NewUserService(repo storage.UserRepository, tokens TokenIssuer, store storage.Pinger) UserService {
	return &userService{
		repo:   repo,
		tokens: tokens,
		store:  store,
	}
}

func (s *userService) Signup(ctx context.Context, req *dto.SignupRequest) (*models.User, string, error) {
	if strings.TrimSpace(req.Role) != "" {
		if role, ok := models.ParseRole(req.Role); !ok || role != models.RoleStudent {
			return nil, "", fmt.Errorf("%w: only students can sign up", ErrValidation)
		}
	}

	user, err := s.repo.Create(ctx, &dto.CreateUserRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	}, models.RoleStudent)
	if err != nil {
		return nil, "", MapRepoError(err, "creating student")
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		log.Printf("UserService: Error issuing token for user %s: %v", user.ID, err)
		return nil, "", fmt.Errorf("failed to generate signup token: %w", err)
	}
	return user, token, nil
}

func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error) {
	if s.store != nil {
		if err := s.store.Ping(ctx); err != nil {
			log.Printf("UserService: Store unreachable during login: %v", err)
			return nil, "", fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}

	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		log.Printf("Login attempt failed: missing email or password")
		return nil, "", ErrInvalidCredentials
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Login attempt failed for email %s: user not found", req.Email)
			return nil, "", ErrInvalidCredentials
		}
		log.Printf("Error fetching user by email %s during login: %v", req.Email, err)
		return nil, "", fmt.Errorf("internal error during login: %w", err)
	}

	if role, ok := models.ParseRole(req.Role); !ok || role != user.Role {
		log.Printf("Login attempt failed for email %s: role mismatch", req.Email)
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Printf("Login attempt failed for email %s: invalid password", req.Email)
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		log.Printf("Error generating token for user %s: %v", user.Email, err)
		return nil, "", fmt.Errorf("failed to generate login token: %w", err)
	}
	return user, token, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("fetching user %s", id))
	}
	return user, nil
}

// CreateByAdmin provisions recruiter and admin accounts. Students sign up themselves.
func (s *userService) CreateByAdmin(ctx context.Context, req *dto.AdminCreateUserRequest) (*models.User, error) {
	role, ok := models.ParseRole(req.Role)
	if !ok || role == models.RoleStudent {
		return nil, fmt.Errorf("%w: role must be recruiter or admin", ErrValidation)
	}

	user, err := s.repo.Create(ctx, &dto.CreateUserRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	}, role)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("creating %s", role))
	}
	log.Printf("UserService: Created %s account %s", role, user.ID)
	return user, nil
}
