package models

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username, 3-50 characters of letters, digits and underscore
	// required: true
	// example: john_doe
	Username string `json:"username"`

	// Password, at least 6 characters
	// required: true
	// example: secret123
	Password string `json:"password"`

	// Display name, up to 100 characters
	// example: John
	Nickname string `json:"nickname"`
}
