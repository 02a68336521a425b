package services

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"staff-attendance/internal/models"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthServiceInterface provides login/logout against the single built-in
// admin credential pair. This is not real authentication: there is exactly
// one account, fixed at startup.
type AuthServiceInterface interface {
	Login(email, password string) (string, models.User, error)
	Logout()
	ResetPassword(email string)
	CurrentUser() (models.User, bool)
}

// AuthService implements AuthServiceInterface. At most one user is logged
// in at a time; Login replaces it, Logout clears it.
type AuthService struct {
	mu           sync.Mutex
	adminEmail   string
	passwordHash []byte
	jwtSecret    string
	currentUser  *models.User
}

// NewAuthService hashes the configured admin password and returns the
// service.
func NewAuthService(adminEmail, adminPassword, jwtSecret string) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		adminEmail:   adminEmail,
		passwordHash: hash,
		jwtSecret:    jwtSecret,
	}, nil
}

// Login checks the credentials against the built-in pair. On success it
// sets the current user to the fixed admin identity and returns a signed
// token for the HTTP layer; on failure the current user is left unset.
func (s *AuthService) Login(email, password string) (string, models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if email != s.adminEmail {
		return "", models.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", models.User{}, ErrInvalidCredentials
	}

	user := models.User{ID: "1", Email: email, Role: models.RoleAdmin}

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"email":    user.Email,
		"is_admin": true,
		"exp":      time.Now().Add(72 * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", models.User{}, errors.New("generating session token")
	}

	s.currentUser = &user
	return tokenString, user, nil
}

// Logout clears the current user. It cannot fail.
func (s *AuthService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUser = nil
}

// ResetPassword acknowledges the request without changing any credential.
func (s *AuthService) ResetPassword(email string) {
	log.Printf("password reset requested for %s", email)
}

// CurrentUser returns the logged-in user, if any.
func (s *AuthService) CurrentUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUser == nil {
		return models.User{}, false
	}
	return *s.currentUser, true
}
