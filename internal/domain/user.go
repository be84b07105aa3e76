package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role is the privilege flag stored on a user document. The zero value means a regular user.
type Role string

const (
	RoleAdmin Role = "admin"
)

// IsAdmin reports whether the role grants administrative access.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
	Photo string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role  Role               `bson:"role,omitempty" json:"role,omitempty"`
}
