// Package model defines domain entities for the application.
package model

// User represents a gateway user.
// The ID is issued by the gateway and only carried forward between calls.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	LastName    string `json:"lastName"`
	FirstName   string `json:"firstName"`
	MiddleName  string `json:"middleName"`
	PhoneNumber string `json:"phoneNumber"`
}

// FullName joins the name parts the way card holders are printed.
func (u *User) FullName() string {
	name := u.FirstName
	if u.MiddleName != "" {
		name += " " + u.MiddleName
	}
	if u.LastName != "" {
		name += " " + u.LastName
	}
	return name
}
