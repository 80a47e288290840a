package domains

import (
	"time"
)

type User struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Password  string    `json:"password,omitempty"`
	Premium   bool      `json:"premium"`
	CreatedAt time.Time `json:"created_at"`
}
