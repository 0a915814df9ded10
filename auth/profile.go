package auth

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/jrsteele09/hostel-admin/internal/utils"
)

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
	RoleStudent    = "student"
)

// Profile is the normalized user record cached next to the access token.
type Profile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	IsActive  bool   `json:"isActive"`
	Phone     string `json:"phone,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`

	// Student only
	MatricNumber string `json:"matricNumber,omitempty"`
	Department   string `json:"department,omitempty"`
	Level        string `json:"level,omitempty"`
}

// FullName joins first and last name.
func (p Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// ProfileUpdate holds the fields a user may change. Empty fields are not sent.
type ProfileUpdate struct {
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Department string `json:"department,omitempty"`
	Level      string `json:"level,omitempty"`
}

// flexString decodes a JSON string or number into a string.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// backendUser accepts both camelCase and snake_case field names.
type backendUser struct {
	ID                flexString `json:"id"`
	Email             string     `json:"email"`
	Name              string     `json:"name"`
	FirstName         string     `json:"firstName"`
	FirstNameSnake    string     `json:"first_name"`
	LastName          string     `json:"lastName"`
	LastNameSnake     string     `json:"last_name"`
	Role              string     `json:"role"`
	Status            string     `json:"status"`
	IsActive          *bool      `json:"isActive"`
	IsActiveSnake     *bool      `json:"is_active"`
	Phone             string     `json:"phone"`
	PhoneNumber       string     `json:"phone_number"`
	CreatedAt         string     `json:"createdAt"`
	CreatedAtSnake    string     `json:"created_at"`
	UpdatedAt         string     `json:"updatedAt"`
	UpdatedAtSnake    string     `json:"updated_at"`
	MatricNumber      string     `json:"matricNumber"`
	MatricNumberSnake string     `json:"matric_number"`
	Department        string     `json:"department"`
	Level             flexString `json:"level"`
}

func (u backendUser) normalize(kind ActorKind) Profile {
	nameFirst, nameRest, _ := strings.Cut(strings.TrimSpace(u.Name), " ")

	return Profile{
		ID:           string(u.ID),
		Email:        u.Email,
		FirstName:    utils.FirstNonEmpty(u.FirstName, u.FirstNameSnake, nameFirst, utils.EmailLocalPart(u.Email)),
		LastName:     utils.FirstNonEmpty(u.LastName, u.LastNameSnake, strings.TrimSpace(nameRest)),
		Role:         utils.FirstNonEmpty(u.Role, kind.Role),
		IsActive:     u.active(),
		Phone:        utils.FirstNonEmpty(u.Phone, u.PhoneNumber),
		CreatedAt:    utils.FirstNonEmpty(u.CreatedAt, u.CreatedAtSnake),
		UpdatedAt:    utils.FirstNonEmpty(u.UpdatedAt, u.UpdatedAtSnake),
		MatricNumber: utils.FirstNonEmpty(u.MatricNumber, u.MatricNumberSnake),
		Department:   u.Department,
		Level:        string(u.Level),
	}
}

// active defaults to true when the backend says nothing about status.
func (u backendUser) active() bool {
	switch {
	case u.IsActive != nil:
		return *u.IsActive
	case u.IsActiveSnake != nil:
		return *u.IsActiveSnake
	case u.Status != "":
		return strings.EqualFold(u.Status, "active")
	}
	return true
}

// decodeUser reads a user that is either the object itself or nested under
// "user", "admin" or "student".
func decodeUser(raw json.RawMessage) (*backendUser, error) {
	var wrapped struct {
		User    *backendUser `json:"user"`
		Admin   *backendUser `json:"admin"`
		Student *backendUser `json:"student"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, err
	}
	for _, u := range []*backendUser{wrapped.User, wrapped.Admin, wrapped.Student} {
		if u != nil {
			return u, nil
		}
	}
	var user backendUser
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
