package model

// Role determines how much of the catalog a session may observe.
type Role string

const (
	// RoleAdmin has full access to every collection and operation.
	RoleAdmin Role = "ADMIN"
	// RoleTeacher is scoped to the classes listed in AssignedClasses.
	RoleTeacher Role = "TEACHER"
	// RoleGuest is a read-only minimal role.
	RoleGuest Role = "GUEST"
)

// ClassAll is the sentinel entry in AssignedClasses granting access to
// every class.
const ClassAll = "ALL"

// User represents an account on the backend.
type User struct {
	ID              string   `json:"id"`
	Email           string   `json:"email"`
	FullName        string   `json:"fullName"`
	Role            Role     `json:"role"`
	AssignedClasses []string `json:"assignedClasses"`
}

// CanAccessClass reports whether the user may observe the given class.
// Admins and users holding the ALL sentinel see everything.
func (u User) CanAccessClass(classID string) bool {
	if u.Role == RoleAdmin {
		return true
	}

	for _, id := range u.AssignedClasses {
		if id == ClassAll || id == classID {
			return true
		}
	}

	return false
}
