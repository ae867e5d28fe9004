// Package dto defines the request payloads of the assignment endpoints.
package dto

// AssignReq is the request body for POST /employee-onboarding.
// Done is optional and defaults to false.
type AssignReq struct {
	OnboardingID  int    `json:"onboardingId"`
	EmployeeEmail string `json:"employeeEmail"`
	Done          *bool  `json:"done"`
}

// UpdateStatusReq is the request body for
// PATCH /employee-onboarding/:onboardingId/employees/:employeeEmail.
// Done is a pointer so an omitted field is told apart from false.
type UpdateStatusReq struct {
	Done *bool `json:"done"`
}
