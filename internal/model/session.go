package model

// Session binds an authenticated user to their bearer token. It lives
// until an explicit logout or a failed verification.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Credential carries a login attempt. Ephemeral: never persisted in
// clear form beyond the bundled demo list.
type Credential struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// DemoUser is an entry of the bundled offline credential list. The
// plaintext password exists only for the disconnected demo mode and is
// stripped before the user is exposed or persisted.
type DemoUser struct {
	User
	Password string
}

// Permission names a capability checked against the session role.
type Permission string

const (
	// PermissionAdmin requires the ADMIN role.
	PermissionAdmin Permission = "admin"
	// PermissionTeacher requires ADMIN or TEACHER.
	PermissionTeacher Permission = "teacher"
)
