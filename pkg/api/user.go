package api

// UserResponse is the body of GET /api/user.
type UserResponse struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	DateOfBirth string `json:"dateOfBirth"` // ISO date
}

// UpdateProfileRequest is the body of PUT /api/user/profile.
type UpdateProfileRequest struct {
	FullName    string `json:"fullName"`
	DateOfBirth string `json:"dateOfBirth"` // ISO date
}
