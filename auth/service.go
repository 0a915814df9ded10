package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/jrsteele09/hostel-admin/apiclient"
	apperrors "github.com/jrsteele09/hostel-admin/internal/errors"
	"github.com/jrsteele09/hostel-admin/storage"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// API is what the auth service needs from the HTTP client.
type API interface {
	apiclient.Requester
	FetchCSRFToken(ctx context.Context) (string, error)
}

// Credentials for a login. Students may log in with a matric number instead
// of an email address.
type Credentials struct {
	Email        string `json:"email,omitempty"`
	MatricNumber string `json:"matric_number,omitempty"`
	Password     string `json:"password"`
}

// StudentSession is the result of a matric number login.
type StudentSession struct {
	AccessToken string  `json:"accessToken"`
	Student     Profile `json:"student"`
}

type loginPayload struct {
	AccessToken  string          `json:"access_token"`
	Token        string          `json:"token"`
	RefreshToken string          `json:"refresh_token"`
	User         json.RawMessage `json:"user"`
	Admin        json.RawMessage `json:"admin"`
	Student      json.RawMessage `json:"student"`
}

func (p loginPayload) accessToken() string {
	if p.AccessToken != "" {
		return p.AccessToken
	}
	return p.Token
}

func (p loginPayload) user() json.RawMessage {
	for _, raw := range []json.RawMessage{p.User, p.Admin, p.Student} {
		if len(raw) > 0 && string(raw) != "null" {
			return raw
		}
	}
	return nil
}

// loginResponse accepts the token at the top level or inside "data".
type loginResponse struct {
	loginPayload
	Success *bool         `json:"success"`
	Message string        `json:"message"`
	Data    *loginPayload `json:"data"`
}

// Service logs one actor kind in and out and keeps its token and profile in
// storage. It holds no session state of its own.
type Service struct {
	api     API
	store   *storage.Accessor
	kind    ActorKind
	nowTime func() time.Time
}

// ServiceOption defines a function type to modify the Service instance.
type ServiceOption func(*Service)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) ServiceOption {
	return func(s *Service) {
		s.nowTime = nowFunc
	}
}

// NewService creates the auth service for one actor kind.
func NewService(api API, store *storage.Accessor, kind ActorKind, options ...ServiceOption) (*Service, error) {
	if api == nil {
		return nil, errors.New("[NewService] api is required")
	}
	if kind.TokenKey == "" || kind.ProfileKey == "" || kind.LoginPath == "" {
		return nil, errors.New("[NewService] actor kind is incomplete")
	}

	s := &Service{
		api:     api,
		store:   store,
		kind:    kind,
		nowTime: time.Now,
	}
	for _, opt := range options {
		opt(s)
	}
	return s, nil
}

// Kind returns the actor kind this service was built for.
func (s *Service) Kind() ActorKind {
	return s.kind
}

// Login posts the credentials, then stores the returned token and the
// normalized profile.
func (s *Service) Login(ctx context.Context, creds Credentials) (*Profile, error) {
	if _, err := s.api.FetchCSRFToken(ctx); err != nil {
		log.Warn().Err(err).Str("actor", s.kind.Name).Msg("csrf bootstrap failed before login")
	}

	var resp loginResponse
	if err := s.api.DoRaw(ctx, http.MethodPost, s.kind.LoginPath, apiclient.RequestOptions{Body: creds}, &resp); err != nil {
		return nil, loginError(err)
	}
	if resp.Success != nil && !*resp.Success {
		return nil, errors.Wrap(apperrors.ErrInvalidCredentials, resp.Message)
	}

	payload := resp.loginPayload
	if payload.accessToken() == "" && resp.Data != nil {
		payload = *resp.Data
	}
	token := payload.accessToken()
	if token == "" {
		return nil, errors.Wrap(apperrors.ErrInvalidCredentials, "[Service.Login] response has no access token")
	}

	raw := payload.user()
	if raw == nil {
		// Token only; the profile request needs it stored for the bearer header.
		s.storeTokens(ctx, token, payload.RefreshToken)
		profile, err := s.GetProfile(ctx)
		if err != nil {
			s.clear(ctx)
			return nil, errors.Wrap(err, "[Service.Login] fetch profile")
		}
		return profile, nil
	}
	user, err := decodeUser(raw)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.Login] decode user")
	}
	profile := user.normalize(s.kind)
	s.storeTokens(ctx, token, payload.RefreshToken)
	s.store.SetJSON(ctx, s.kind.ProfileKey, profile)
	return &profile, nil
}

func (s *Service) storeTokens(ctx context.Context, token, refreshToken string) {
	s.store.Set(ctx, s.kind.TokenKey, token)
	if refreshToken != "" {
		s.store.Set(ctx, storage.KeyRefreshToken, refreshToken)
	}
}

// LoginWithMatric logs a student in with a matric number.
func (s *Service) LoginWithMatric(ctx context.Context, matricNumber, password string) (*StudentSession, error) {
	if s.kind.Name != Student.Name {
		return nil, errors.Wrap(apperrors.ErrWrongActorKind, "[Service.LoginWithMatric]")
	}
	profile, err := s.Login(ctx, Credentials{MatricNumber: matricNumber, Password: password})
	if err != nil {
		return nil, err
	}
	return &StudentSession{AccessToken: s.Token(ctx), Student: *profile}, nil
}

// Logout tells the backend the session is over and always clears the stored
// token and profile, even when that call fails.
func (s *Service) Logout(ctx context.Context) error {
	if s.Token(ctx) != "" {
		if err := s.api.Do(ctx, http.MethodPost, s.kind.LogoutPath, apiclient.RequestOptions{}, nil); err != nil {
			log.Warn().Err(err).Str("actor", s.kind.Name).Msg("logout request failed, clearing local session anyway")
		}
	}
	s.clear(ctx)
	return nil
}

// GetProfile fetches the current user and refreshes the cached profile.
func (s *Service) GetProfile(ctx context.Context) (*Profile, error) {
	var raw json.RawMessage
	if err := s.api.Do(ctx, http.MethodGet, s.kind.ProfilePath, apiclient.RequestOptions{}, &raw); err != nil {
		return nil, errors.Wrap(err, "[Service.GetProfile]")
	}
	return s.storeProfile(ctx, raw)
}

// UpdateProfile sends the changed fields and caches the result.
func (s *Service) UpdateProfile(ctx context.Context, update ProfileUpdate) (*Profile, error) {
	var raw json.RawMessage
	if err := s.api.Do(ctx, http.MethodPut, s.kind.ProfilePath, apiclient.RequestOptions{Body: update}, &raw); err != nil {
		return nil, errors.Wrap(err, "[Service.UpdateProfile]")
	}
	return s.storeProfile(ctx, raw)
}

// ChangePassword changes the signed in user's password.
func (s *Service) ChangePassword(ctx context.Context, current, next string) error {
	body := map[string]string{
		"current_password":      current,
		"password":              next,
		"password_confirmation": next,
	}
	if err := s.api.Do(ctx, http.MethodPost, s.kind.PasswordPath, apiclient.RequestOptions{Body: body}, nil); err != nil {
		return errors.Wrap(err, "[Service.ChangePassword]")
	}
	return nil
}

// IsAuthenticated only looks at storage; the token is not checked with the
// backend. A JWT whose exp has passed counts as absent.
func (s *Service) IsAuthenticated(ctx context.Context) bool {
	token := s.Token(ctx)
	if token == "" {
		return false
	}
	return !tokenExpired(token, s.nowTime())
}

// GetStoredProfile returns the cached profile or nil.
func (s *Service) GetStoredProfile(ctx context.Context) *Profile {
	var profile Profile
	if !s.store.GetJSON(ctx, s.kind.ProfileKey, &profile) {
		return nil
	}
	return &profile
}

// Token returns the stored access token for this actor kind.
func (s *Service) Token(ctx context.Context) string {
	token, _ := s.store.Get(ctx, s.kind.TokenKey)
	return token
}

// HandleSessionError clears the local session when err is a 401 and returns
// ErrSessionExpired wrapping the backend's message. Any other error yields
// nil. Callers use it to send the user back to login.
func (s *Service) HandleSessionError(ctx context.Context, err error) error {
	if !apiclient.IsUnauthorized(err) {
		return nil
	}
	log.Info().Str("actor", s.kind.Name).Msg("session rejected by backend, clearing stored credentials")
	s.clear(ctx)
	return errors.Wrapf(apperrors.ErrSessionExpired, "[Service.HandleSessionError] %s: %s", s.kind.Name, apiclient.MessageOf(err))
}

func (s *Service) storeProfile(ctx context.Context, raw json.RawMessage) (*Profile, error) {
	user, err := decodeUser(raw)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.storeProfile] decode user")
	}
	profile := user.normalize(s.kind)
	s.store.SetJSON(ctx, s.kind.ProfileKey, profile)
	return &profile, nil
}

func (s *Service) clear(ctx context.Context) {
	s.store.Remove(ctx, s.kind.TokenKey)
	s.store.Remove(ctx, s.kind.ProfileKey)
	s.store.Remove(ctx, storage.KeyRefreshToken)
}

// loginError maps rejected credentials to ErrInvalidCredentials and leaves
// transport failures as they are.
func loginError(err error) error {
	var backendErr *apiclient.BackendError
	if errors.As(err, &backendErr) {
		return errors.Wrap(apperrors.ErrInvalidCredentials, apiclient.MessageOf(err))
	}
	switch apiclient.StatusOf(err) {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound, http.StatusUnprocessableEntity:
		return errors.Wrap(apperrors.ErrInvalidCredentials, apiclient.MessageOf(err))
	}
	return errors.Wrap(err, "[Service.Login]")
}
