// Package dto defines data transfer objects for the role feature's HTTP
// transport layer.
package dto

// RoleReq represents the request body for role create and update.
// Field rules are enforced by the usecase validator so the caller receives
// the full list of violations, not just the first binding failure.
type RoleReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
