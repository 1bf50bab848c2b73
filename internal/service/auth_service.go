package service

import (
	"net/http"
	"time"

	"github.com/FDead21/afc-web/internal/repositories"
	"github.com/FDead21/afc-web/models"
	"github.com/FDead21/afc-web/pkg/logger"
)

type AuthServiceInterface interface {
	SessionFromRequest(r *http.Request) *models.Session
	SignOut(w http.ResponseWriter, r *http.Request) Result
}

// AuthService resolves the session cookie set by the hosted auth
// service. Authentication is binary: any valid session is fully
// privileged (models.RoleAdmin).
type AuthService struct {
	sessionRepo repositories.SessionRepositoryInterface
	cookieName  string
	logger      *logger.Logger
}

func NewAuthService(sessionRepo repositories.SessionRepositoryInterface, cookieName string, logger *logger.Logger) *AuthService {
	return &AuthService{
		sessionRepo: sessionRepo,
		cookieName:  cookieName,
		logger:      logger.WithComponent("auth_service"),
	}
}

// SessionFromRequest returns the caller's session, or nil when the
// cookie is absent, unknown, or expired. Callers treat nil as
// unauthorized; no error distinction is made.
func (s *AuthService) SessionFromRequest(r *http.Request) *models.Session {
	cookie, err := r.Cookie(s.cookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	session, err := s.sessionRepo.GetByToken(cookie.Value)
	if err != nil {
		s.logger.Debug("Session lookup failed", "error", err)
		return nil
	}

	if session.Expired(time.Now()) {
		s.logger.Debug("Session expired", "user_id", session.UserID)
		return nil
	}

	return session
}

// SignOut deletes the caller's session row and expires the cookie.
func (s *AuthService) SignOut(w http.ResponseWriter, r *http.Request) Result {
	cookie, err := r.Cookie(s.cookieName)
	if err == nil && cookie.Value != "" {
		if err := s.sessionRepo.Delete(cookie.Value); err != nil {
			s.logger.Warn("Failed to delete session on sign out", "error", err)
			return errorResult(err.Error())
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	s.logger.Info("Signed out")
	return successResult("Signed out.")
}
