package fakebackend

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// CSRFCookieHandler sets a fresh XSRF-TOKEN cookie, the way Sanctum does.
func (s *Server) CSRFCookieHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.bootstraps.Add(1)
		token := uuid.New().String()

		s.csrfLock.Lock()
		s.csrfTokens[token] = struct{}{}
		s.csrfLock.Unlock()

		http.SetCookie(w, &http.Cookie{
			Name:     cookieXSRFToken,
			Value:    token,
			Path:     "/",
			SameSite: http.SameSiteLaxMode,
		})
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) knownCSRFToken(token string) bool {
	s.csrfLock.Lock()
	defer s.csrfLock.Unlock()
	_, ok := s.csrfTokens[token]
	return ok
}

type loginRequest struct {
	Email        string `json:"email"`
	MatricNumber string `json:"matric_number"`
	Password     string `json:"password"`
}

// LoginHandler answers admins with the token inside the envelope and
// students with a bare {access_token, user} body; the real backend does the
// same.
func (s *Server) LoginHandler(role string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decodeBody(r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, "Malformed request body.")
			return
		}

		login := strings.TrimSpace(req.Email)
		if login == "" && role == roleStudent {
			login = strings.TrimSpace(req.MatricNumber)
		}
		invalid := map[string]string{}
		if login == "" {
			invalid["email"] = "The email field is required."
		}
		if req.Password == "" {
			invalid["password"] = "The password field is required."
		}
		if len(invalid) > 0 {
			writeValidation(w, invalid)
			return
		}

		s.lock.Lock()
		acc := s.accounts.find(role, login)
		s.lock.Unlock()
		if acc == nil || !checkPasswordHash(req.Password, acc.PasswordHash) {
			writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		if !acc.Active {
			writeMessage(w, http.StatusForbidden, "Account is disabled")
			return
		}

		token, err := s.tokens.Create(acc.ID, acc.Role)
		if err != nil {
			logError(r.Method, r.URL.Path, err)
			writeMessage(w, http.StatusInternalServerError, "Server Error")
			return
		}

		if role == roleStudent {
			writeJSON(w, http.StatusOK, map[string]any{
				"access_token": token,
				"token_type":   "Bearer",
				"user":         acc.studentJSON(),
			})
			return
		}
		writeData(w, map[string]any{
			"token": token,
			"admin": acc.adminJSON(),
		})
	}
}

func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)
		s.tokens.Revoke(sess.claims)
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Logged out"})
	}
}

func (s *Server) ProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.lock.Lock()
		defer s.lock.Unlock()
		writeProfile(w, sessionFrom(r).account)
	}
}

type profileUpdate struct {
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Phone      *string `json:"phone"`
	Department *string `json:"department"`
	Level      *string `json:"level"`
}

func (s *Server) UpdateProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req profileUpdate
		if err := decodeBody(r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, "Malformed request body.")
			return
		}

		s.lock.Lock()
		defer s.lock.Unlock()
		acc := sessionFrom(r).account
		for dst, src := range map[*string]*string{
			&acc.FirstName:  req.FirstName,
			&acc.LastName:   req.LastName,
			&acc.Phone:      req.Phone,
			&acc.Department: req.Department,
			&acc.Level:      req.Level,
		} {
			if src != nil {
				*dst = *src
			}
		}
		writeProfile(w, acc)
	}
}

type passwordChange struct {
	CurrentPassword      string `json:"current_password"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

func (s *Server) ChangePasswordHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req passwordChange
		if err := decodeBody(r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, "Malformed request body.")
			return
		}
		if len(req.Password) < 8 {
			writeValidation(w, map[string]string{"password": "The password must be at least 8 characters."})
			return
		}
		if req.Password != req.PasswordConfirmation {
			writeValidation(w, map[string]string{"password": "The password confirmation does not match."})
			return
		}

		s.lock.Lock()
		defer s.lock.Unlock()
		acc := sessionFrom(r).account
		if !checkPasswordHash(req.CurrentPassword, acc.PasswordHash) {
			writeValidation(w, map[string]string{"current_password": "The current password is incorrect."})
			return
		}
		hash, err := hashPassword(req.Password)
		if err != nil {
			logError(r.Method, r.URL.Path, err)
			writeMessage(w, http.StatusInternalServerError, "Server Error")
			return
		}
		acc.PasswordHash = hash
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Password changed"})
	}
}

func writeProfile(w http.ResponseWriter, acc *account) {
	if acc.Role == roleStudent {
		writeData(w, map[string]any{"student": acc.studentJSON()})
		return
	}
	writeData(w, map[string]any{"user": acc.adminJSON()})
}
