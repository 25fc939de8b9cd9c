// Package auth handles the GitHub OAuth login flow and DB-backed sessions.
// Everything downstream only sees the resolved user on the request context.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v80/github"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	githuboauth "golang.org/x/oauth2/github"

	"github.com/just-nibble/standup-service/internal/domain"
	"github.com/just-nibble/standup-service/internal/repository"
	"github.com/just-nibble/standup-service/pkg/errcodes"
	"github.com/just-nibble/standup-service/pkg/response"
)

const (
	SessionCookie = "standup_session"
	stateCookie   = "standup_oauth_state"
)

var oauthScopes = []string{"read:user", "user:email", "read:org", "repo"}

type contextKey struct{}

var userKey = contextKey{}

// Service implements the login flow and session resolution
type Service struct {
	oauth      *oauth2.Config
	userStore  repository.UserStore
	sessions   repository.SessionStore
	sessionTTL time.Duration
}

func NewService(clientID, clientSecret string, userStore repository.UserStore, sessions repository.SessionStore, sessionTTL time.Duration) *Service {
	return &Service{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     githuboauth.Endpoint,
			Scopes:       oauthScopes,
		},
		userStore:  userStore,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// HandleLogin redirects to GitHub's consent page
func (s *Service) HandleLogin(w http.ResponseWriter, r *http.Request) {
	state, err := randomToken()
	if err != nil {
		response.ErrorResponse(w, http.StatusInternalServerError, "Failed to start login")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int((10 * time.Minute).Seconds()),
	})
	http.Redirect(w, r, s.oauth.AuthCodeURL(state), http.StatusFound)
}

// HandleCallback exchanges the code, upserts the user and opens a session
func (s *Service) HandleCallback(w http.ResponseWriter, r *http.Request) {
	stateParam := r.URL.Query().Get("state")
	cookie, err := r.Cookie(stateCookie)
	if err != nil || stateParam == "" || cookie.Value != stateParam {
		response.ErrorResponse(w, http.StatusBadRequest, "Invalid OAuth state")
		return
	}

	token, err := s.oauth.Exchange(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		log.Error().Err(err).Msg("oauth code exchange failed")
		response.ErrorResponse(w, http.StatusBadGateway, "Login failed")
		return
	}

	user, err := s.fetchIdentity(r.Context(), token.AccessToken)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch github identity")
		response.ErrorResponse(w, http.StatusBadGateway, "Login failed")
		return
	}

	saved, err := s.userStore.UpsertByGithubID(r.Context(), *user)
	if err != nil {
		response.ErrorResponse(w, http.StatusInternalServerError, "Login failed")
		return
	}

	sessionToken, err := randomToken()
	if err != nil {
		response.ErrorResponse(w, http.StatusInternalServerError, "Login failed")
		return
	}
	_, err = s.sessions.Create(r.Context(), domain.Session{
		Token:     sessionToken,
		UserID:    saved.ID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	})
	if err != nil {
		response.ErrorResponse(w, http.StatusInternalServerError, "Login failed")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sessionToken,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(s.sessionTTL.Seconds()),
	})
	http.Redirect(w, r, "/", http.StatusFound)
}

// HandleLogout tears the session down
func (s *Service) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if token := sessionToken(r); token != "" {
		_ = s.sessions.Delete(r.Context(), token)
	}
	http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: "", Path: "/", MaxAge: -1})
	response.SuccessResponse(w, http.StatusOK, map[string]bool{"success": true})
}

// Middleware resolves the session and injects the user into the request
// context. Anything without a valid session gets a 401.
func (s *Service) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := sessionToken(r)
		if token == "" {
			response.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		session, err := s.sessions.GetByToken(r.Context(), token)
		if err != nil || session.ExpiresAt.Before(time.Now()) {
			response.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := s.userStore.GetByID(r.Context(), session.UserID)
		if err != nil {
			if !errors.Is(err, errcodes.ErrNoRecordFound) {
				log.Error().Err(err).Uint("user_id", session.UserID).Msg("session user lookup failed")
			}
			response.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

// WithUser stores the resolved user on the context
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the user resolved by Middleware
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok
}

func (s *Service) fetchIdentity(ctx context.Context, accessToken string) (*domain.User, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	client := github.NewClient(oauth2.NewClient(ctx, ts))

	ghUser, _, err := client.Users.Get(ctx, "")
	if err != nil {
		return nil, err
	}

	email := ghUser.GetEmail()
	if email == "" {
		// Profile email can be private; take the primary verified one
		emails, _, err := client.Users.ListEmails(ctx, nil)
		if err == nil {
			for _, e := range emails {
				if e.GetPrimary() {
					email = e.GetEmail()
					break
				}
			}
		}
	}

	return &domain.User{
		GithubID:    ghUser.GetID(),
		Login:       ghUser.GetLogin(),
		Name:        ghUser.GetName(),
		Email:       email,
		AvatarURL:   ghUser.GetAvatarURL(),
		AccessToken: accessToken,
	}, nil
}

func sessionToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}

func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
