package schema

import (
	"github.com/gatewayperf/gatewayperf/internal/fakers"
	"github.com/gatewayperf/gatewayperf/internal/model"
)

// User is the user shape returned by /api/v1/users.
type User struct {
	ID          string `json:"id" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	LastName    string `json:"lastName"`
	FirstName   string `json:"firstName"`
	MiddleName  string `json:"middleName"`
	PhoneNumber string `json:"phoneNumber"`
}

// ToModel converts the payload to the domain entity.
func (u User) ToModel() model.User {
	return model.User{
		ID:          u.ID,
		Email:       u.Email,
		LastName:    u.LastName,
		FirstName:   u.FirstName,
		MiddleName:  u.MiddleName,
		PhoneNumber: u.PhoneNumber,
	}
}

// CreateUserRequest is the body of POST /api/v1/users.
type CreateUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	LastName    string `json:"lastName"`
	FirstName   string `json:"firstName"`
	MiddleName  string `json:"middleName"`
	PhoneNumber string `json:"phoneNumber"`
}

// NewCreateUserRequest fills every field with fake data.
func NewCreateUserRequest(fake *fakers.Fake) CreateUserRequest {
	return CreateUserRequest{
		Email:       fake.Email(),
		LastName:    fake.LastName(),
		FirstName:   fake.FirstName(),
		MiddleName:  fake.MiddleName(),
		PhoneNumber: fake.PhoneNumber(),
	}
}

// CreateUserResponse is the body returned by POST /api/v1/users.
type CreateUserResponse struct {
	User User `json:"user"`
}

// GetUserResponse is the body returned by GET /api/v1/users/{user_id}.
type GetUserResponse struct {
	User User `json:"user"`
}

// UserFromModel converts a domain user to its payload.
func UserFromModel(u model.User) User {
	return User{
		ID:          u.ID,
		Email:       u.Email,
		LastName:    u.LastName,
		FirstName:   u.FirstName,
		MiddleName:  u.MiddleName,
		PhoneNumber: u.PhoneNumber,
	}
}

// ToModel converts the request to a user without an id.
func (r CreateUserRequest) ToModel() model.User {
	return model.User{
		Email:       r.Email,
		LastName:    r.LastName,
		FirstName:   r.FirstName,
		MiddleName:  r.MiddleName,
		PhoneNumber: r.PhoneNumber,
	}
}
