package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/fc-ladder/internal/auth"
	"github.com/mauv0809/fc-ladder/internal/metrics"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string    `json:"message"`
	User    loginUser `json:"user"`
	Token   string    `json:"token"`
}

type loginUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func LoginHandler(svc *auth.Service, sessions *auth.Manager, m metrics.Metrics, cookie SessionCookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Username == "" || req.Password == "" {
			writeMessage(w, http.StatusBadRequest, "Username and password are required")
			return
		}

		admin, err := svc.Login(req.Username, req.Password)
		if errors.Is(err, auth.ErrInvalidCredentials) {
			m.IncLogins(metrics.LoginFailure)
			log.Warn("Failed login attempt", "username", req.Username)
			writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		if err != nil {
			internalError(w, "Login error", err)
			return
		}

		token, claims, err := sessions.Issue(admin)
		if err != nil {
			internalError(w, "Failed to issue session", err)
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     cookie.Name,
			Value:    token,
			Path:     "/",
			Expires:  claims.ExpiresAt.Time,
			MaxAge:   int(sessions.TTL() / time.Second),
			HttpOnly: true,
			Secure:   cookie.Secure,
			SameSite: http.SameSiteLaxMode,
		})
		m.IncLogins(metrics.LoginSuccess)
		log.Info("Admin logged in", "username", admin.Username)

		writeJSON(w, http.StatusOK, loginResponse{
			Message: "Login successful",
			User:    loginUser{ID: admin.ID, Username: admin.Username},
			Token:   token,
		})
	}
}

func LogoutHandler(sessions *auth.Manager, cookie SessionCookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if token := SessionToken(r, cookie.Name); token != "" {
			if claims, err := sessions.Verify(r.Context(), token); err == nil {
				if err := sessions.Revoke(r.Context(), claims); err != nil {
					log.Error("Failed to revoke session", "error", err)
					writeMessage(w, http.StatusInternalServerError, "Failed to logout")
					return
				}
				log.Info("Admin logged out", "username", claims.Username)
			}
		}
		http.SetCookie(w, &http.Cookie{
			Name:     cookie.Name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   cookie.Secure,
			SameSite: http.SameSiteLaxMode,
		})
		writeMessage(w, http.StatusOK, "Logged out successfully")
	}
}

func MeHandler(sessions *auth.Manager, cookie SessionCookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := SessionToken(r, cookie.Name)
		if token != "" {
			if claims, err := sessions.Verify(r.Context(), token); err == nil {
				writeJSON(w, http.StatusOK, map[string]any{"isAdmin": true, "userId": claims.Subject})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]any{"isAdmin": false})
	}
}
