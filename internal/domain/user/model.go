package user

import "github.com/caredesk/caredesk/internal/platform/normalize"

// User is the caller-facing view of a backend user account.
type User struct {
	UserID    int    `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

func fromWire(raw map[string]any) User {
	name := normalize.Str(raw, "name")
	if name == "" {
		name = normalize.FullName(raw, "firstName", "lastName")
	}
	return User{
		UserID:    normalize.Int(raw, "id"),
		Name:      name,
		Email:     normalize.Str(raw, "email"),
		Role:      normalize.Str(raw, "role"),
		CreatedAt: normalize.Str(raw, "createdAt"),
	}
}
