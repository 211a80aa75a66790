// Package domain defines the types and interfaces for the enquiries service
package domain

import (
	"context"
	"time"
)

// Enquiry is one stored buyer enquiry
type Enquiry struct {
	ID      string `json:"id"`
	AgentID string `json:"agent_id"`

	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Budget  string `json:"budget,omitempty"`
	Message string `json:"message"`

	CreatedAt time.Time `json:"created_at"`
}

// SubmitInput is a buyer enquiry form payload
type SubmitInput struct {
	AgentID string `json:"agent_id" validate:"required,uuid4"`
	Name    string `json:"name" validate:"required,min=2,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,max=32"`
	Budget  string `json:"budget,omitempty" validate:"omitempty,max=60" example:"$1.2M-$1.5M"`
	Message string `json:"message" validate:"required,min=10,max=4000"`
}

// ListInput lists enquiries for one agent's dashboard
type ListInput struct {
	AgentID string `json:"agent_id" validate:"required,uuid4"`
	Limit   int    `json:"limit,omitempty" validate:"omitempty,min=1,max=200"`
}

// EnquiriesPort is the enquiries surface other modules consume
type EnquiriesPort interface {
	Submit(ctx context.Context, in SubmitInput) (Enquiry, error)
	List(ctx context.Context, in ListInput) ([]Enquiry, error)
}
