package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mobilityworks/roadnet/internal/config"
	"github.com/mobilityworks/roadnet/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenPair is the result of a successful authentication.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
}

// Authenticate verifies the credentials and returns the matching user.
// Returns ErrInvalidCredentials when the user is unknown or the password
// does not match, ErrInactiveAccount when the account is deactivated.
func Authenticate(db *gorm.DB, username, password string) (*models.User, error) {
	var user models.User
	err := db.Where("username = ?", strings.ToLower(username)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrInactiveAccount
	}

	return &user, nil
}

// IssueTokens mints the access and refresh tokens for a user.
func IssueTokens(cfg *config.Config, user *models.User) (*TokenPair, error) {
	access, err := createToken(cfg, user, cfg.JWTAccessTokenTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := createToken(cfg, user, cfg.JWTRefreshTokenTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		UserID:       user.ID,
	}, nil
}

// createToken signs a token carrying the user id and an expiry.
func createToken(cfg *config.Config, user *models.User, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"exp":     jwt.NewNumericDate(time.Now().Add(ttl)),
	})
	return token.SignedString([]byte(cfg.JWTSecretKey))
}

// ResolveUser verifies a token and loads the user it identifies. Expired
// tokens return ErrTokenExpired; any other verification failure, including
// an unresolvable user id, returns ErrInvalidToken.
func ResolveUser(cfg *config.Config, db *gorm.DB, tokenString string) (*models.User, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.JWTSecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, ErrInvalidToken
	}

	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	return &user, nil
}

// RegisterUser hashes the password and creates the user record, stamping
// the audit fields with the registering admin. Uniqueness violations map to
// ErrDuplicateUser, an unknown customer to ErrInvalidCustomer.
func RegisterUser(db *gorm.DB, user *models.User, password string, admin *models.User) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Username = strings.ToLower(user.Username)
	user.HashedPassword = string(hash)
	user.IsActive = true
	user.CreatedBy = &admin.ID
	user.UpdatedBy = &admin.ID

	if err := db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateUser
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrInvalidCustomer
		}
		return err
	}

	return nil
}
