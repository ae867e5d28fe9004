// Package router assembles the HTTP routing table.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	assignmenthandler "onboarding_backend/internal/feature/assignment/transport/handler"
	employeehandler "onboarding_backend/internal/feature/employee/transport/handler"
	onboardinghandler "onboarding_backend/internal/feature/onboarding/transport/handler"
	typehandler "onboarding_backend/internal/feature/onboardingtype/transport/handler"
	rolehandler "onboarding_backend/internal/feature/role/transport/handler"
	"onboarding_backend/internal/platform/config"
	"onboarding_backend/internal/platform/http/handler"
	jwtmw "onboarding_backend/internal/platform/jwt"
)

// Handlers bundles the feature handlers the router mounts.
type Handlers struct {
	Employee   *employeehandler.EmployeeHandler
	Role       *rolehandler.RoleHandler
	Type       *typehandler.TypeHandler
	Onboarding *onboardinghandler.OnboardingHandler
	Assignment *assignmenthandler.AssignmentHandler
}

// New builds the gin engine with CORS, the health endpoint, the public
// authentication routes and the token-gated API surface.
func New(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	if len(cfg.CORS.AllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.CORS.AllowOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	corsCfg.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsCfg))

	// Liveness probe.
	r.GET("/healthz", handler.Health)

	// Registration and the token endpoints stay outside the auth gate.
	r.POST("/employee/register", h.Employee.Register)
	r.POST("/employee/login", h.Employee.Login)
	r.POST("/employee/refresh-token", h.Employee.Refresh)

	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired(cfg.JWT.AccessSecret))
	{
		employee := auth.Group("/employee")
		{
			employee.GET("", h.Employee.List)
			employee.GET("/:employeeEmail", h.Employee.Get)
			employee.PUT("/:employeeEmail", h.Employee.Update)
			employee.DELETE("/:employeeEmail", h.Employee.Delete)
		}

		role := auth.Group("/role")
		{
			role.POST("", h.Role.Create)
			role.GET("", h.Role.List)
			role.PUT("/:roleId", h.Role.Update)
			role.DELETE("/:roleId", h.Role.Delete)
		}

		onboardingType := auth.Group("/onboarding-type")
		{
			onboardingType.POST("", h.Type.Create)
			onboardingType.GET("", h.Type.List)
			onboardingType.GET("/:typeId", h.Type.Get)
			onboardingType.PUT("/:typeId", h.Type.Update)
			onboardingType.DELETE("/:typeId", h.Type.Delete)
		}

		onboarding := auth.Group("/onboarding")
		{
			onboarding.POST("", h.Onboarding.Create)
			onboarding.GET("", h.Onboarding.List)
			onboarding.GET("/:onboardingId", h.Onboarding.Get)
			onboarding.PUT("/:onboardingId", h.Onboarding.Update)
			onboarding.DELETE("/:onboardingId", h.Onboarding.Delete)
		}

		assignment := auth.Group("/employee-onboarding")
		{
			assignment.POST("", h.Assignment.Assign)
			assignment.GET("/employee/:employeeEmail", h.Assignment.ListForEmployee)
			assignment.GET("/onboarding/:onboardingId", h.Assignment.ListForOnboarding)
			assignment.GET("/:onboardingId/employees/:employeeEmail", h.Assignment.Get)
			assignment.PATCH("/:onboardingId/employees/:employeeEmail", h.Assignment.UpdateStatus)
			assignment.DELETE("/:onboardingId/employees/:employeeEmail", h.Assignment.Unassign)
		}
	}

	return r
}
