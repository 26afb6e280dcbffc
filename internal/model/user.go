package model

// Role identifies which part of the workflow a user belongs to.
type Role string

const (
	RoleStudent    Role = "Student"
	RoleModerator  Role = "Moderator"
	RoleGatekeeper Role = "Gatekeeper"
)

// User represents an identity record in the datastore. Passwords are stored
// and compared as plaintext; credential security is out of scope for this
// system.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// PublicUser is the login response view of a user, without the password.
type PublicUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// Public strips the password from a user record.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Role: u.Role}
}
