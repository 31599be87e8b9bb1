package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/faena-labs/faena-backend-go/internal/config"
	appHTTP "github.com/faena-labs/faena-backend-go/internal/handler/http"
	"github.com/faena-labs/faena-backend-go/internal/pkg/cron"
	"github.com/faena-labs/faena-backend-go/internal/pkg/database"
	"github.com/faena-labs/faena-backend-go/internal/pkg/jwt"
	"github.com/faena-labs/faena-backend-go/internal/repository/postgresql"
	attendanceService "github.com/faena-labs/faena-backend-go/internal/service/attendance"
	serviceAuth "github.com/faena-labs/faena-backend-go/internal/service/auth"
	serviceCompany "github.com/faena-labs/faena-backend-go/internal/service/company"
	crewService "github.com/faena-labs/faena-backend-go/internal/service/crew"
	harvestService "github.com/faena-labs/faena-backend-go/internal/service/harvest"
	"github.com/faena-labs/faena-backend-go/internal/service/master"
	payrollService "github.com/faena-labs/faena-backend-go/internal/service/payroll"
	reportService "github.com/faena-labs/faena-backend-go/internal/service/report"
	workerService "github.com/faena-labs/faena-backend-go/internal/service/worker"
	"github.com/go-chi/httplog/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.LogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "faena-backend"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	location := cfg.Location()

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	braceletDirectory := postgresql.NewBraceletDirectory(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	braceletRepo := postgresql.NewBraceletRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	contractorRepo := postgresql.NewContractorRepository(db)
	contractRepo := postgresql.NewContractRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	quarterRepo := postgresql.NewQuarterRepository(db)
	crewMemberRepo := postgresql.NewCrewMemberRepository(db)
	crewTaskRepo := postgresql.NewCrewTaskRepository(db)
	crewSummaryReader := postgresql.NewCrewSummaryReader(db)
	processRepo := postgresql.NewProcessRepository(db)
	settlementRepo := postgresql.NewSettlementRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authService := serviceAuth.NewAuthService(db, userRepo, JWTService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, braceletDirectory, location)
	workerSvc := workerService.NewWorkerService(workerRepo, braceletRepo)
	companyService := serviceCompany.NewCompanyService(companyRepo)
	masterService := master.NewMasterService(contractorRepo, contractRepo, assignmentRepo, quarterRepo)
	crewSvc := crewService.NewCrewService(crewMemberRepo, crewTaskRepo, crewSummaryReader)
	harvestSvc := harvestService.NewHarvestService(processRepo, workerRepo, location)
	payrollSvc := payrollService.NewPayrollService(settlementRepo)
	reportSvc := reportService.NewReportService(reportService.Sources{
		Attendance:  attendanceSvc,
		Crews:       crewSvc,
		Companies:   companyRepo,
		Contractors: contractorRepo,
		Contracts:   contractRepo,
		Assignments: assignmentRepo,
		Quarters:    quarterRepo,
		Settlements: settlementRepo,
	}, location)

	router := appHTTP.NewRouter(JWTService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authService),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Worker:     appHTTP.NewWorkerHandler(workerSvc),
		Company:    appHTTP.NewCompanyHandler(companyService),
		Master:     appHTTP.NewMasterHandler(masterService),
		Crew:       appHTTP.NewCrewHandler(crewSvc),
		Harvest:    appHTTP.NewHarvestHandler(harvestSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	}, appHTTP.RouterOptions{
		Logger:         logger,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	scheduler := cron.NewScheduler()
	cron.NewSessionJobs(userRepo).RegisterJobs(scheduler, cfg.App.SessionSweepInterval)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "timezone", location.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
