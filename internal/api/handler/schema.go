package handler

import "time"

// --- Request types ---

type signupRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

type createTodoRequest struct {
	Title       string `json:"title"       validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"max=500"`
	Status      string `json:"status"      validate:"omitempty,oneof=pending completed"`
}

// updateTodoRequest uses pointers so an absent field is distinguishable
// from an empty one.
type updateTodoRequest struct {
	Title       *string `json:"title"       validate:"omitnil,min=3,max=100"`
	Description *string `json:"description" validate:"omitnil,max=500"`
	Status      *string `json:"status"      validate:"omitnil,oneof=pending completed"`
}

// --- Response types ---
// Response-only types owned by the transport layer so the JSON contract is
// not coupled to domain changes.

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type authData struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

type authResponse struct {
	Message string   `json:"message"`
	Data    authData `json:"data"`
}

type todoResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	OwnerID     string    `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type todoEnvelope struct {
	Data todoResponse `json:"data"`
}

type todoListEnvelope struct {
	Data []todoResponse `json:"data"`
}

type messageResponse struct {
	Message string `json:"message"`
}
