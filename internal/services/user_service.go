package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"townhubBack/internal/models"
	"townhubBack/internal/repositories"
	"townhubBack/utils"
)

const (
	accessTokenTTL  = 20 * time.Hour
	refreshTokenTTL = 24 * 30 * 2 * time.Hour
)

type UserService struct {
	UserRepo     *repositories.UserRepository
	TokenManager *utils.Manager
	BanCache     *BanCache
	SigningKey   string
}

func (s *UserService) SignUp(ctx context.Context, user models.User) (models.User, error) {
	if user.Email == "" || user.Password == "" {
		return models.User{}, models.ErrValidation
	}
	if user.Role == "" {
		user.Role = "user"
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	user.Password = string(hashedPassword)

	return s.UserRepo.CreateUser(ctx, user)
}

func (s *UserService) SignIn(ctx context.Context, email, password string) (models.Tokens, models.User, error) {
	user, err := s.UserRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return models.Tokens{}, models.User{}, models.ErrInvalidCredentials
		}
		return models.Tokens{}, models.User{}, err
	}
	if user.IsBanned {
		return models.Tokens{}, models.User{}, models.ErrUserBanned
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.Tokens{}, models.User{}, models.ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.Claims{
		UserID: uint(user.ID),
		Role:   user.Role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(accessTokenTTL).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	})
	accessToken, err := token.SignedString([]byte(s.SigningKey))
	if err != nil {
		log.Printf("Error signing token: %v", err)
		return models.Tokens{}, models.User{}, err
	}

	tokens, err := s.createSession(ctx, user, accessToken)
	if err != nil {
		return models.Tokens{}, models.User{}, err
	}

	user.Password = ""
	return tokens, user, nil
}

func (s *UserService) createSession(ctx context.Context, user models.User, accessToken string) (models.Tokens, error) {
	res := models.Tokens{AccessToken: accessToken}

	res.RefreshToken = uuid.New().String()
	if s.TokenManager != nil {
		var err error
		res.RefreshToken, err = s.TokenManager.NewRefreshToken()
		if err != nil {
			return res, err
		}
	}

	session := models.Session{
		UserID:       user.ID,
		Role:         user.Role,
		RefreshToken: res.RefreshToken,
		ExpiresAt:    time.Now().Add(refreshTokenTTL),
	}
	if err := s.UserRepo.CreateSession(ctx, session); err != nil {
		return res, err
	}
	return res, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (models.User, error) {
	return s.UserRepo.GetUserByID(ctx, id)
}

func (s *UserService) GetUsers(ctx context.Context, page, pageSize int) ([]models.User, error) {
	return s.UserRepo.GetUsers(ctx, page, pageSize)
}

func (s *UserService) UpdateUser(ctx context.Context, user models.User) error {
	return s.UserRepo.UpdateUser(ctx, user)
}

func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	if err := s.UserRepo.DeleteSession(ctx, id); err != nil {
		return err
	}
	return s.UserRepo.DeleteUser(ctx, id)
}

// BanUser flags the account and drops its sessions; the ban cache is
// refreshed so the middleware rejects in-flight tokens immediately.
func (s *UserService) BanUser(ctx context.Context, id int) error {
	if err := s.UserRepo.SetBanned(ctx, id, true); err != nil {
		return err
	}
	if err := s.UserRepo.DeleteSession(ctx, id); err != nil {
		return err
	}
	if s.BanCache != nil {
		if err := s.BanCache.Ban(ctx, id); err != nil {
			log.Printf("ban cache: failed to add user %d: %v", id, err)
		}
	}
	return nil
}

func (s *UserService) UnbanUser(ctx context.Context, id int) error {
	if err := s.UserRepo.SetBanned(ctx, id, false); err != nil {
		return err
	}
	if s.BanCache != nil {
		if err := s.BanCache.Unban(ctx, id); err != nil {
			log.Printf("ban cache: failed to remove user %d: %v", id, err)
		}
	}
	return nil
}

// IsBanned consults the redis cache first and falls back to the users table
// when the cache is unavailable.
func (s *UserService) IsBanned(ctx context.Context, id int) (bool, error) {
	if s.BanCache != nil {
		banned, err := s.BanCache.IsBanned(ctx, id)
		if err == nil {
			return banned, nil
		}
		log.Printf("ban cache: lookup failed for user %d: %v", id, err)
	}
	user, err := s.UserRepo.GetUserByID(ctx, id)
	if err != nil {
		return false, err
	}
	return user.IsBanned, nil
}
