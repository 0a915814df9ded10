// Package fakebackend is an in-process stand-in for the hostel REST backend.
// It implements the contract the client relies on: cookie CSRF bootstrap,
// 419 on a missing or stale CSRF header, bearer JWT sessions for admins and
// students, both pagination shapes and the envelope.
package fakebackend

import (
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jrsteele09/hostel-admin/internal/config"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	roleAdmin      = "admin"
	roleSuperAdmin = "super_admin"
	roleStudent    = "student"

	DefaultTokenExpiry = time.Hour
)

type Options struct {
	Env         string // Environment; route logging only in DEV
	Secret      string // HMAC key for access tokens
	TokenExpiry time.Duration
	Cors        config.CorsConfig
	Now         func() time.Time
}

type Server struct {
	env    string
	mux    *http.ServeMux
	routes []string
	cors   config.CorsConfig
	tokens *tokenManager
	now    func() time.Time

	csrfLock   sync.Mutex
	csrfTokens map[string]struct{}
	bootstraps atomic.Int64

	lock     sync.Mutex
	accounts accounts
	data     *dataset
}

func New(opts Options) (*Server, error) {
	if opts.Secret == "" {
		return nil, errors.New("[fakebackend.New] secret is required")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.TokenExpiry == 0 {
		opts.TokenExpiry = DefaultTokenExpiry
	}
	if opts.Cors == nil {
		opts.Cors = config.Cors{}
	}

	s := &Server{
		env:        strings.ToUpper(opts.Env),
		mux:        http.NewServeMux(),
		cors:       opts.Cors,
		tokens:     newTokenManager(opts.Secret, "hostel-fakebackend", opts.TokenExpiry, opts.Now),
		now:        opts.Now,
		csrfTokens: make(map[string]struct{}),
		data:       seedDataset(),
	}
	if err := s.seedAccounts(); err != nil {
		return nil, errors.Wrap(err, "[fakebackend.New] seed accounts")
	}

	s.initRoutes()
	s.logRoutes()
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// CSRFBootstraps returns how many times the CSRF cookie endpoint was hit.
func (s *Server) CSRFBootstraps() int {
	return int(s.bootstraps.Load())
}

func (s *Server) RegisterRouteFunc(pattern string, handler http.HandlerFunc) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) seedAccounts() error {
	seeds := []struct {
		account  account
		password string
	}{
		{account{ID: "1", Email: SeedAdminEmail, FirstName: "Grace", LastName: "Okafor", Role: roleSuperAdmin, Active: true}, SeedAdminPassword},
		{account{ID: "2", Email: "warden@hostel.example.edu", FirstName: "Musa", LastName: "Bello", Role: roleAdmin, Active: true}, SeedAdminPassword},
		{account{ID: "s-1", Email: SeedStudentEmail, MatricNumber: SeedStudentMatric, FirstName: "Ada", LastName: "Obi", Role: roleStudent, Department: "Computer Science", Level: "300", Active: true}, SeedStudentPassword},
	}
	for _, seed := range seeds {
		hash, err := hashPassword(seed.password)
		if err != nil {
			return err
		}
		a := seed.account
		a.PasswordHash = hash
		s.accounts.byID = append(s.accounts.byID, &a)
	}
	return nil
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return
	}
	for _, route := range s.routes {
		method, path, ok := strings.Cut(route, " ")
		if !ok {
			method, path = "", route
		}
		logRoute(method, path)
	}
}

func logRoute(method, path string) {
	color, ok := methodColors[method]
	if !ok {
		color = Gray
	}
	log.Info().Msgf("[%s%-7s%s] %s", color, method, ResetColor, path)
}

func logError(method, path string, err error) {
	log.Error().Err(err).Msgf("[%-7s] %s", method, path)
}
