package model

// Role describes the privilege level of a signed-in identity.
type Role string

const (
	// RoleOwner is the single full-privilege identity per installation.
	RoleOwner Role = "owner"
	// RoleCollaborator is a delegated identity sharing one fixed secret.
	// Collaborators cannot see activity logs or run danger-zone actions.
	RoleCollaborator Role = "collaborator"
)

// User is a login identity. The password is the plain demo credential the
// mock account system compares against; there is no hashing by design.
type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     Role   `json:"role"`
}

// Profile is display and contact metadata, persisted independently of the
// login credential.
type Profile struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
}

// DefaultProfile returns the profile used before the user customizes one.
func DefaultProfile(name, email string) Profile {
	if name == "" {
		name = "Default User"
	}
	if email == "" {
		email = "user@example.com"
	}
	return Profile{Name: name, Email: email}
}
