package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"onboarding_backend/internal/app/router"
	assignmentadapters "onboarding_backend/internal/feature/assignment/adapters"
	assignmenthandler "onboarding_backend/internal/feature/assignment/transport/handler"
	assignmentusecase "onboarding_backend/internal/feature/assignment/usecase"
	employeeadapters "onboarding_backend/internal/feature/employee/adapters"
	employeehandler "onboarding_backend/internal/feature/employee/transport/handler"
	employeeusecase "onboarding_backend/internal/feature/employee/usecase"
	onboardingadapters "onboarding_backend/internal/feature/onboarding/adapters"
	onboardinghandler "onboarding_backend/internal/feature/onboarding/transport/handler"
	onboardingusecase "onboarding_backend/internal/feature/onboarding/usecase"
	typeadapters "onboarding_backend/internal/feature/onboardingtype/adapters"
	typehandler "onboarding_backend/internal/feature/onboardingtype/transport/handler"
	typeusecase "onboarding_backend/internal/feature/onboardingtype/usecase"
	roleadapters "onboarding_backend/internal/feature/role/adapters"
	rolehandler "onboarding_backend/internal/feature/role/transport/handler"
	roleusecase "onboarding_backend/internal/feature/role/usecase"
	"onboarding_backend/internal/platform/config"
	"onboarding_backend/internal/platform/db"
	"onboarding_backend/internal/platform/mailer"
	jwtmw "onboarding_backend/internal/platform/jwt"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config: ", err)
	}

	conn, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatal("database: ", err)
	}
	defer func() {
		if err := db.Close(conn); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	// Repository
	roleRepo := roleadapters.NewRoleRepository(conn)
	employeeRepo := employeeadapters.NewEmployeeRepository(conn)
	typeRepo := typeadapters.NewTypeRepository(conn)
	onboardingRepo := onboardingadapters.NewOnboardingRepository(conn)
	assignmentRepo := assignmentadapters.NewAssignmentRepository(conn)

	tokens := jwtmw.NewGenerator(cfg.JWT)
	mail := mailer.New(cfg.SMTP)

	// Usecase
	roleUC := roleusecase.NewRoleUsecase(roleRepo, employeeRepo)
	employeeUC := employeeusecase.NewEmployeeUsecase(employeeRepo, roleRepo, tokens)
	typeUC := typeusecase.NewTypeUsecase(typeRepo, onboardingRepo)
	onboardingUC := onboardingusecase.NewOnboardingUsecase(onboardingRepo, typeRepo, assignmentRepo)
	assignmentUC := assignmentusecase.NewAssignmentUsecase(assignmentRepo, onboardingRepo, employeeRepo, mail)

	// Handler
	h := router.Handlers{
		Employee:   employeehandler.NewEmployeeHandler(employeeUC),
		Role:       rolehandler.NewRoleHandler(roleUC),
		Type:       typehandler.NewTypeHandler(typeUC),
		Onboarding: onboardinghandler.NewOnboardingHandler(onboardingUC),
		Assignment: assignmenthandler.NewAssignmentHandler(assignmentUC),
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router.New(cfg, h),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server: ", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
