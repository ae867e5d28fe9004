// Package dto defines data transfer objects for the employee feature's HTTP
// transport layer.
package dto

// RegisterReq represents the request body for POST /employee/register.
// Field rules are enforced by the usecase validator so the caller receives
// the full list of violations, not just the first binding failure.
type RegisterReq struct {
	EmployeeEmail   string `json:"employeeEmail"`
	Name            string `json:"name"`
	Password        string `json:"password"`
	HireDate        string `json:"hireDate"`
	TerminationDate string `json:"terminationDate"`
	RoleID          int    `json:"roleId"`
}

// LoginReq represents the request body for POST /employee/login.
type LoginReq struct {
	EmployeeEmail string `json:"employeeEmail"`
	Password      string `json:"password"`
}

// RefreshReq represents the request body for POST /employee/refresh-token.
type RefreshReq struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// UpdateEmployeeReq represents the partial update body; absent fields are
// left untouched.
type UpdateEmployeeReq struct {
	Name            *string `json:"name"`
	Password        *string `json:"password"`
	HireDate        *string `json:"hireDate"`
	TerminationDate *string `json:"terminationDate"`
	RoleID          *int    `json:"roleId"`
}
