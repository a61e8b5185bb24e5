package services

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/medconnect/telemed-backend/internal/config"
	"github.com/medconnect/telemed-backend/internal/identity"
	"github.com/medconnect/telemed-backend/internal/metrics"
	"github.com/medconnect/telemed-backend/internal/models"
	"gorm.io/gorm"
)

var ErrSessionIDRequired = errors.New("session id is required")

// AuthService owns session exchange against the identity provider and
// token resolution for the request gate.
type AuthService struct {
	db       *gorm.DB
	cfg      *config.Config
	verifier identity.Verifier
	metrics  *metrics.Collector
}

func NewAuthService(db *gorm.DB, cfg *config.Config, verifier identity.Verifier, collector *metrics.Collector) *AuthService {
	return &AuthService{db: db, cfg: cfg, verifier: verifier, metrics: collector}
}

// ProcessSession exchanges an external session id for a local session.
// The provider's token is adopted verbatim as the bearer credential and
// returned to the caller for the cookie; only its hash is persisted.
// Prior sessions of the user are replaced atomically with the new one.
func (s *AuthService) ProcessSession(ctx context.Context, sessionID string) (*models.User, string, error) {
	if sessionID == "" {
		return nil, "", ErrSessionIDRequired
	}

	start := time.Now()
	ident, err := s.verifier.Verify(ctx, sessionID)
	s.metrics.RecordVerifyLatency(time.Since(start))
	if err != nil {
		s.metrics.RecordAuthFailure("verify")
		return nil, "", err
	}

	var user models.User
	err = s.db.Where("email = ?", ident.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			ID:      uuid.New(),
			Email:   ident.Email,
			Name:    ident.Name,
			Picture: ident.Picture,
			Role:    models.RolePatient,
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, "", fmt.Errorf("failed to create user: %w", err)
		}
	} else if err != nil {
		return nil, "", fmt.Errorf("user lookup failed: %w", err)
	}

	session := models.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: hashToken(ident.SessionToken),
		ExpiresAt: time.Now().Add(s.cfg.SessionTTL),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Session{}).Error; err != nil {
			return err
		}
		return tx.Create(&session).Error
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to replace session: %w", err)
	}

	s.metrics.RecordSessionCreated()
	return &user, ident.SessionToken, nil
}

// ResolveUser maps a bearer token to its user. Absent, expired and
// orphaned sessions all come back as (nil, nil); callers cannot tell
// them apart.
func (s *AuthService) ResolveUser(token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}

	var session models.Session
	err := s.db.Where("token_hash = ? AND expires_at > ?", hashToken(token), time.Now()).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session lookup failed: %w", err)
	}

	var user models.User
	err = s.db.First(&user, "id = ?", session.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}

	return &user, nil
}

// Logout deletes any session matching the presented token. A token that
// matches nothing is still a successful logout.
func (s *AuthService) Logout(token string) error {
	if token == "" {
		return nil
	}
	return s.db.Where("token_hash = ?", hashToken(token)).Delete(&models.Session{}).Error
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
