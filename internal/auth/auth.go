package auth

import (
	"errors"
	"strconv"
	"time"

	"boardlink/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned for an unknown email and for a
	// wrong password alike; the two cases must not be distinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUnauthenticated covers every token failure: missing, malformed,
	// bad signature, expired.
	ErrUnauthenticated = errors.New("unauthenticated")
)

// IdentityStore is the lookup the verifier needs from the identity layer.
type IdentityStore interface {
	UserByEmail(email string) (*models.User, error)
	UserByID(id uint) (*models.User, error)
}

// Service verifies credentials and issues/validates bearer tokens. The
// signing key and TTL are fixed at construction and never mutated.
type Service struct {
	users  IdentityStore
	secret []byte
	ttl    time.Duration
}

func NewService(users IdentityStore, secret []byte, ttl time.Duration) *Service {
	return &Service{users: users, secret: secret, ttl: ttl}
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify checks a presented password against the stored hash for the given
// email. Lookup miss and hash mismatch yield the identical error.
func (s *Service) Verify(email, password string) (*models.User, error) {
	user, err := s.users.UserByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// IssueToken signs a time-bounded HS256 assertion of the user's identity.
func (s *Service) IssueToken(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Authenticate validates signature and expiry and resolves the subject
// against the identity store, so a token for a deleted user is rejected.
func (s *Service) Authenticate(token string) (*models.User, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnauthenticated
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrUnauthenticated
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil, ErrUnauthenticated
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	user, err := s.users.UserByID(uint(id))
	if err != nil {
		return nil, ErrUnauthenticated
	}
	return user, nil
}
