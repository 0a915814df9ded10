package fakebackend

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Seeded credentials, for local development and tests.
const (
	SeedAdminEmail      = "admin@hostel.example.edu"
	SeedAdminPassword   = "Admin123!"
	SeedStudentEmail    = "ada.obi@student.example.edu"
	SeedStudentMatric   = "2021/123456"
	SeedStudentPassword = "Student123!"
)

type account struct {
	ID           string
	Email        string
	MatricNumber string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         string
	Phone        string
	Department   string
	Level        string
	Active       bool
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func checkPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// adminJSON is the snake_case shape admin endpoints answer with.
func (a *account) adminJSON() map[string]any {
	return map[string]any{
		"id":         a.ID,
		"email":      a.Email,
		"first_name": a.FirstName,
		"last_name":  a.LastName,
		"role":       a.Role,
		"is_active":  a.Active,
		"phone":      a.Phone,
	}
}

// studentJSON is the camelCase shape student endpoints answer with.
func (a *account) studentJSON() map[string]any {
	status := "inactive"
	if a.Active {
		status = "active"
	}
	return map[string]any{
		"id":           a.ID,
		"email":        a.Email,
		"firstName":    a.FirstName,
		"lastName":     a.LastName,
		"matricNumber": a.MatricNumber,
		"department":   a.Department,
		"level":        a.Level,
		"phone":        a.Phone,
		"status":       status,
	}
}

type accounts struct {
	byID []*account
}

func (s *accounts) find(role, login string) *account {
	login = strings.TrimSpace(login)
	for _, a := range s.byID {
		if a.Role != role && !(role == roleAdmin && a.Role == roleSuperAdmin) {
			continue
		}
		if strings.EqualFold(a.Email, login) || (a.MatricNumber != "" && a.MatricNumber == login) {
			return a
		}
	}
	return nil
}

func (s *accounts) get(id string) *account {
	for _, a := range s.byID {
		if a.ID == id {
			return a
		}
	}
	return nil
}
