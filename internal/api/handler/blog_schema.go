package handler

import (
	"encoding/json"
	"time"
)

// --- Request types ---

type registerRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// loginRequest carries the login name, which may be a username or an email.
type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createBlogRequest struct {
	Title       string  `json:"title"       validate:"required,min=3,max=200"`
	Description string  `json:"description" validate:"required,min=10"`
	Category    string  `json:"category"    validate:"omitempty,oneof=General Technology Lifestyle Travel Food Health Education Business Entertainment Tutorial Sports"`
	Image       *string `json:"image"`
}

// updateBlogRequest is a partial edit. Every field is optional; for the
// image the request must distinguish "omitted" (keep) from "null" (remove),
// which encoding/json collapses, so key presence is recorded during
// unmarshalling.
type updateBlogRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=3,max=200"`
	Description *string `json:"description" validate:"omitempty,min=10"`
	Category    *string `json:"category"    validate:"omitempty,oneof=General Technology Lifestyle Travel Food Health Education Business Entertainment Tutorial Sports"`
	Image       *string `json:"image"`

	imageProvided bool
}

func (r *updateBlogRequest) UnmarshalJSON(b []byte) error {
	type plain updateBlogRequest
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*r = updateBlogRequest(p)

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(b, &keys); err != nil {
		return err
	}
	_, r.imageProvided = keys["image"]
	return nil
}

// --- Response types ---
// Transport-owned so the JSON contract is not coupled to internal changes.

type blogResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Author      string    `json:"author"`
	AuthorName  string    `json:"author_name"`
	Image       *string   `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
