package dto

// UpdateProfileRequest covers onboarding step 1 and later profile edits.
type UpdateProfileRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Pronouns  string `json:"pronouns,omitempty" binding:"omitempty,is-pronouns"`
	Gender    string `json:"gender,omitempty"`
	Title     string `json:"title,omitempty"`
	DOB       string `json:"dob,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateAvailabilityRequest covers onboarding step 3 and later edits.
// Availability is an opaque weekly-schedule document.
type UpdateAvailabilityRequest struct {
	Availability map[string][]string `json:"availability" binding:"required"`
}
