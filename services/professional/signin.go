// File: services/professional/signin.go
package professional

import (
	"context"
	"fmt"
	"strings"

	"agendly/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Authenticate verifies credentials and rotates the stored token hash. The
// previous token stops working the moment a new one is issued.
func (s *DefaultProfessionalService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	rec, err := s.Repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		utils.GetLogger().Error("failed to fetch professional for signin", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if rec == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(rec.ID, rec.Email, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if err := s.Repo.UpdateTokenHash(ctx, rec.ID, utils.HashToken(token)); err != nil {
		utils.GetLogger().Error("failed to rotate token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	s.invalidateAuthCache(ctx, rec.TokenHash)

	utils.GetLogger().Info("professional signed in", zap.String("professionalID", rec.ID))
	return &AuthResponse{
		ID:    rec.ID,
		Slug:  rec.Slug,
		Token: token,
		Name:  rec.Name,
		Email: rec.Email,
	}, nil
}

// SignOut clears the stored token hash, invalidating the current token.
func (s *DefaultProfessionalService) SignOut(ctx context.Context, professionalID string) error {
	rec, err := s.Repo.GetByID(ctx, professionalID)
	if err != nil {
		return fmt.Errorf("failed to sign out: %w", err)
	}
	if err := s.Repo.UpdateTokenHash(ctx, professionalID, ""); err != nil {
		return fmt.Errorf("failed to sign out: %w", err)
	}
	if rec != nil {
		s.invalidateAuthCache(ctx, rec.TokenHash)
	}
	return nil
}

// invalidateAuthCache evicts the cache entry for a retired token. The auth
// middleware caches under the token hash, so revocation must delete that key;
// otherwise the old token keeps riding the cache fast path until its TTL.
func (s *DefaultProfessionalService) invalidateAuthCache(ctx context.Context, tokenHash string) {
	if s.AuthCache == nil || tokenHash == "" {
		return
	}
	if err := s.AuthCache.Invalidate(ctx, tokenHash); err != nil {
		utils.GetLogger().Warn("failed to invalidate auth cache", zap.Error(err))
	}
}
