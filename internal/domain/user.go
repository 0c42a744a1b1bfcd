package domain

import "time"

type Role string

const (
	RoleRequester Role = "requester"
	RoleCollector Role = "collector"
	RoleAdmin     Role = "admin"
)

// ParseRole maps a wire-level role string onto the closed role set.
// An empty string defaults to requester; anything else unknown is rejected.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleRequester, RoleCollector, RoleAdmin:
		return Role(s), nil
	case "":
		return RoleRequester, nil
	}
	return "", ErrInvalidInput
}

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Mobile       string    `json:"mobile"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
