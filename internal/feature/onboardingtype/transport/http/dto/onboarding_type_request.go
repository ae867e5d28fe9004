// Package dto defines data transfer objects for the onboardingtype feature's
// HTTP transport layer.
package dto

// TypeReq represents the request body for onboarding type create and update.
type TypeReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
