package http

import (
	"log/slog"

	"github.com/faena-labs/faena-backend-go/internal/handler/http/middleware"
	"github.com/faena-labs/faena-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Worker     WorkerHandler
	Company    CompanyHandler
	Master     MasterHandler
	Crew       CrewHandler
	Harvest    HarvestHandler
	Payroll    PayrollHandler
	Report     ReportHandler
}

type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string
}

func NewRouter(JWTService jwt.Service, h Handlers, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	if opts.Logger != nil {
		r.Use(httplog.RequestLogger(opts.Logger, &httplog.Options{
			Level:  slog.LevelInfo,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/asistencias", func(r chi.Router) {
				r.Post("/", h.Attendance.RecordMark)
				r.Route("/reporte-mensual/{pulsera_uuid}", func(r chi.Router) {
					r.Get("/", h.Attendance.MonthlySummary)
					r.Get("/pdf", h.Report.MonthlyAttendancePDF)
					r.Get("/xlsx", h.Report.MonthlyAttendanceXLSX)
				})
			})

			r.Route("/trabajadores", func(r chi.Router) {
				r.Get("/", h.Worker.ListWorkers)
				r.Get("/pulsera/{uuid}", h.Worker.GetWorkerByBracelet)
				r.Get("/{id}", h.Worker.GetWorker)
				r.With(middleware.RequireStaff).Post("/", h.Worker.CreateWorker)
				r.With(middleware.RequireStaff).Put("/{id}", h.Worker.UpdateWorker)
				r.With(middleware.RequireAdmin).Delete("/{id}", h.Worker.DeleteWorker)
			})

			r.Route("/pulseras", func(r chi.Router) {
				r.Get("/", h.Worker.ListBracelets)
				r.With(middleware.RequireStaff).Post("/", h.Worker.RegisterBracelet)
				r.With(middleware.RequireStaff).Put("/{uuid}/estado", h.Worker.SetBraceletStatus)
			})

			r.Route("/empresas", func(r chi.Router) {
				r.Get("/", h.Company.List)
				r.Get("/exportar/pdf", h.Report.CompaniesPDF)
				r.Get("/{id}", h.Company.GetByID)
				r.With(middleware.RequireStaff).Post("/", h.Company.Create)
				r.With(middleware.RequireStaff).Put("/{id}", h.Company.Update)
				r.With(middleware.RequireAdmin).Delete("/{id}", h.Company.Delete)
			})

			r.Route("/contratistas", func(r chi.Router) {
				r.Get("/", h.Master.ListContractors)
				r.Get("/exportar/pdf", h.Report.ContractorsPDF)
				r.Get("/{id}", h.Master.GetContractor)
				r.With(middleware.RequireStaff).Post("/", h.Master.CreateContractor)
				r.With(middleware.RequireStaff).Put("/{id}", h.Master.UpdateContractor)
				r.With(middleware.RequireAdmin).Delete("/{id}", h.Master.DeleteContractor)
			})

			r.Route("/contratos", func(r chi.Router) {
				r.Get("/", h.Master.ListContracts)
				r.Get("/exportar/pdf", h.Report.ContractsPDF)
				r.Get("/{id}", h.Master.GetContract)
				r.With(middleware.RequireStaff).Post("/", h.Master.CreateContract)
				r.With(middleware.RequireStaff).Put("/{id}", h.Master.UpdateContract)
				r.With(middleware.RequireAdmin).Delete("/{id}", h.Master.DeleteContract)
			})

			r.Route("/contratos-trabajador", func(r chi.Router) {
				r.Get("/", h.Master.ListAssignments)
				r.Get("/exportar/pdf", h.Report.AssignmentsPDF)
				r.Get("/{id}", h.Master.GetAssignment)
				r.With(middleware.RequireStaff).Post("/", h.Master.CreateAssignment)
				r.With(middleware.RequireStaff).Put("/{id}", h.Master.UpdateAssignment)
				r.With(middleware.RequireAdmin).Delete("/{id}", h.Master.DeleteAssignment)
			})

			r.Route("/cuarteles", func(r chi.Router) {
				r.Get("/", h.Master.ListQuarters)
				r.Get("/exportar/pdf", h.Report.QuartersPDF)
				r.Get("/{id}", h.Master.GetQuarter)
				r.With(middleware.RequireStaff).Post("/", h.Master.CreateQuarter)
				r.With(middleware.RequireStaff).Put("/{id}", h.Master.UpdateQuarter)
				r.With(middleware.RequireAdmin).Delete("/{id}", h.Master.DeleteQuarter)
			})

			r.Route("/cuadrilla-trabajador", func(r chi.Router) {
				r.Get("/", h.Crew.ListMembers)
				r.Get("/{id}", h.Crew.GetMember)
				r.With(middleware.RequireStaff).Post("/", h.Crew.CreateMember)
				r.With(middleware.RequireStaff).Put("/{id}", h.Crew.UpdateMember)
				r.With(middleware.RequireAdmin).Delete("/{id}", h.Crew.DeleteMember)
			})

			r.Route("/cuadrilla-trabajo", func(r chi.Router) {
				r.Get("/", h.Crew.ListTasks)
				r.Get("/{id}", h.Crew.GetTask)
				r.With(middleware.RequireStaff).Post("/", h.Crew.CreateTask)
				r.With(middleware.RequireStaff).Put("/{id}", h.Crew.UpdateTask)
				r.With(middleware.RequireAdmin).Delete("/{id}", h.Crew.DeleteTask)
			})

			r.Route("/cuadrillas/{id}/resumen", func(r chi.Router) {
				r.Get("/", h.Crew.Summary)
				r.Get("/pdf", h.Report.CrewSummaryPDF)
			})

			r.Route("/procesos", func(r chi.Router) {
				r.Get("/", h.Harvest.List)
				r.Post("/registrar-desde-pulsera", h.Harvest.RegisterFromBracelet)
				r.Get("/resumen/{pulsera_uuid}", h.Harvest.DailySummary)
				r.Get("/{id}", h.Harvest.GetByID)
				r.With(middleware.RequireStaff).Post("/", h.Harvest.Create)
				r.With(middleware.RequireStaff).Put("/{id}", h.Harvest.Update)
				r.With(middleware.RequireAdmin).Delete("/{id}", h.Harvest.Delete)
			})

			r.Route("/liquidaciones", func(r chi.Router) {
				r.Get("/", h.Payroll.List)
				r.Get("/exportar/pdf", h.Report.WorkerSettlementsPDF)
				r.Get("/{id}", h.Payroll.GetByID)
				r.Get("/{id}/exportar/pdf", h.Report.SettlementPDF)
				r.With(middleware.RequireStaff).Post("/", h.Payroll.Create)
				r.With(middleware.RequireStaff).Put("/{id}", h.Payroll.Update)
				r.With(middleware.RequireAdmin).Delete("/{id}", h.Payroll.Delete)
			})
		})
	})
	return r
}
