package models

import "time"

// LoginToken records an issued session token under the "sessions" key so that
// logout can revoke it before the JWT itself expires.
type LoginToken struct {
	Token          string    `json:"token"`
	Email          string    `json:"email"`
	ExpirationTime time.Time `json:"expirationTime"`
}

// PendingAction remembers what a visitor tried to do before being sent to
// login, so the client can resume it afterwards.
type PendingAction struct {
	Action    string `json:"action"`
	ProductID string `json:"productId"`
	ReturnURL string `json:"returnUrl,omitempty"`
}
