package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/docmanpro/docman/internal"
)

// CredentialStore is the slice of the user store the resolver needs.
type CredentialStore interface {
	GetCredentials(username string) (userID, roleID int64, passwordHash string, err error)
}

// Service validates login credentials and bearer tokens.
type Service struct {
	credentials    CredentialStore
	tokenGenerator TokenGenerator
	bcryptCost     int
}

func NewService(credentials CredentialStore, tokenGen TokenGenerator, bcryptCost int) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		credentials:    credentials,
		tokenGenerator: tokenGen,
		bcryptCost:     bcryptCost,
	}
}

func NewJWTTokenGenerator(secret string, ttl time.Duration) *JWTTokenGenerator {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTTokenGenerator{
		Secret:   []byte(secret),
		TokenTTL: ttl,
	}
}

// Authenticate checks username/password and issues a token carrying the
// user's id and role id.
func (s *Service) Authenticate(dto LoginDTO) (string, *Identity, error) {
	if err := dto.Validate(); err != nil {
		return "", nil, err
	}

	userID, roleID, storedHash, err := s.credentials.GetCredentials(dto.Username)
	if err != nil {
		return "", nil, internal.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(dto.Password)); err != nil {
		return "", nil, internal.ErrInvalidCredentials
	}

	token, err := s.tokenGenerator.GenerateToken(userID, roleID)
	if err != nil {
		return "", nil, internal.NewInternalError("failed to sign token", err)
	}

	return token, &Identity{UserID: userID, RoleID: roleID}, nil
}

// Resolve validates a bearer credential and returns the caller's identity.
// An empty credential means the caller never signed in; a credential that
// fails verification is reported separately so the boundary can answer 403
// instead of 401.
func (s *Service) Resolve(credential string) (*Identity, error) {
	if credential == "" {
		return nil, internal.ErrNotSignedIn
	}

	claims, err := s.tokenGenerator.ValidateToken(credential)
	if err != nil {
		return nil, internal.ErrTokenAuthFailed
	}

	return &Identity{UserID: claims.UserID, RoleID: claims.RoleID}, nil
}

// HashPassword creates a bcrypt hash for storage at signup.
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (j *JWTTokenGenerator) GenerateToken(userID, roleID int64) (string, error) {
	now := time.Now()

	claims := &Claims{
		UserID: userID,
		RoleID: roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   fmt.Sprintf("%d", userID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.Secret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrTokenInvalidClaims
}
