package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/user"
	"github.com/TARIFUDDIN/swasthalink/internal/handler/api"
	"github.com/TARIFUDDIN/swasthalink/internal/handler/middleware"
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the API handlers mounted under /api.
type Handlers struct {
	Auth         *api.AuthHandler
	Doctor       *api.DoctorHandler
	Appointment  *api.AppointmentHandler
	HealthRecord *api.HealthRecordHandler
	Pharmacy     *api.PharmacyHandler
	Symptom      *api.SymptomHandler
}

func NewHandlers(
	auth *api.AuthHandler,
	doctor *api.DoctorHandler,
	appointment *api.AppointmentHandler,
	healthRecord *api.HealthRecordHandler,
	pharmacy *api.PharmacyHandler,
	symptom *api.SymptomHandler,
) *Handlers {
	return &Handlers{
		Auth:         auth,
		Doctor:       doctor,
		Appointment:  appointment,
		HealthRecord: healthRecord,
		Pharmacy:     pharmacy,
		Symptom:      symptom,
	}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h *Handlers, authMiddleware *middleware.AuthMiddleware, symptomLimiter *middleware.RateLimiter) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, symptomLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h *Handlers, authMiddleware *middleware.AuthMiddleware, symptomLimiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	doctorOnly := authMiddleware.RequireRole(user.RoleDoctor)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		doctors := apiGroup.Group("/doctors")
		{
			addRoutes(doctors, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Doctor.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Doctor.Get},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Doctor.Availability},
				{Method: http.MethodPut, Path: "/me/availability", Handler: h.Doctor.UpdateMyAvailability, Mw: []gin.HandlerFunc{requireAuth, doctorOnly}},
			})
		}

		appointments := apiGroup.Group("/appointments")
		appointments.Use(requireAuth)
		{
			addRoutes(appointments, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Appointment.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Appointment.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Appointment.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Appointment.Cancel},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Appointment.Complete, Mw: []gin.HandlerFunc{doctorOnly}},
			})
		}

		records := apiGroup.Group("/health-records")
		records.Use(requireAuth)
		{
			addRoutes(records, []route{
				{Method: http.MethodGet, Path: "", Handler: h.HealthRecord.List},
				{Method: http.MethodPost, Path: "", Handler: h.HealthRecord.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.HealthRecord.Get},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/pharmacy/check", Handler: h.Pharmacy.CheckStock, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPost, Path: "/ai-symptoms", Handler: h.Symptom.Analyze, Mw: []gin.HandlerFunc{requireAuth, symptomLimiter.Middleware()}},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
