// Package dto defines data transfer objects for the onboarding feature's
// HTTP transport layer.
package dto

// CreateOnboardingReq represents the request body for creating an
// onboarding process. Dates travel as "YYYY-MM-DD" strings.
type CreateOnboardingReq struct {
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	TypeID    int    `json:"typeId"`
}

// UpdateOnboardingReq represents the partial update body; absent fields are
// left untouched.
type UpdateOnboardingReq struct {
	Name      *string `json:"name"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	TypeID    *int    `json:"typeId"`
}
