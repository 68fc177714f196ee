package domain

import "time"

// User models a registered driver. Deleting a user is a hard removal from
// the collection, blocking is a soft flag toggled by the admin.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Plate     string    `json:"plate,omitempty"`
	Blocked   bool      `json:"blocked"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserPatch carries a partial update for a user. Nil fields are left untouched.
type UserPatch struct {
	Name    *string
	Email   *string
	Phone   *string
	Plate   *string
	Blocked *bool
}

// Apply merges the patch into the user.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Plate != nil {
		u.Plate = *p.Plate
	}
	if p.Blocked != nil {
		u.Blocked = *p.Blocked
	}
}

// UserStats summarises the directory.
type UserStats struct {
	Total   int `json:"total"`
	Blocked int `json:"blocked"`
	Active  int `json:"active"`
}
