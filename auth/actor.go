package auth

import "github.com/jrsteele09/hostel-admin/storage"

// ActorKind is the set of storage keys and backend paths for one identity
// class. Admins and students share the Service and differ only here.
type ActorKind struct {
	Name         string
	Role         string
	TokenKey     string
	ProfileKey   string
	LoginPath    string
	LogoutPath   string
	ProfilePath  string
	PasswordPath string
}

var (
	Admin = ActorKind{
		Name:         "admin",
		Role:         RoleAdmin,
		TokenKey:     storage.KeyAdminToken,
		ProfileKey:   storage.KeyAdminProfile,
		LoginPath:    "/admin/auth/login",
		LogoutPath:   "/admin/auth/logout",
		ProfilePath:  "/admin/auth/profile",
		PasswordPath: "/admin/auth/change-password",
	}

	Student = ActorKind{
		Name:         "student",
		Role:         RoleStudent,
		TokenKey:     storage.KeyStudentToken,
		ProfileKey:   storage.KeyStudentProfile,
		LoginPath:    "/student/auth/login",
		LogoutPath:   "/student/auth/logout",
		ProfilePath:  "/student/auth/profile",
		PasswordPath: "/student/auth/change-password",
	}
)

// ActorKindByName returns Admin or Student.
func ActorKindByName(name string) (ActorKind, bool) {
	switch name {
	case Admin.Name:
		return Admin, true
	case Student.Name:
		return Student, true
	}
	return ActorKind{}, false
}
