package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cavilia/internal/handler/api"
	"cavilia/internal/handler/middleware"
	"cavilia/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking         *api.BookingHandler
	Service         *api.ServiceHandler
	ReminderRule    *api.ReminderRuleHandler
	ReminderMessage *api.ReminderMessageHandler
	Subscription    *api.SubscriptionHandler
	Client          *api.ClientHandler
	Schedule        *api.ScheduleHandler
	Cron            *api.CronHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/bookings"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Booking.CreateBooking},
			{Method: http.MethodGet, Path: "", Handler: h.Booking.ListBookings},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.GetBooking},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Booking.UpdateBooking},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.DeleteBooking},
			{Method: http.MethodGet, Path: "/:id/reminders", Handler: h.Booking.ListBookingReminders},
		})

		addRoutes(apiGroup.Group("/services"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Service.ListServices},
			{Method: http.MethodPost, Path: "", Handler: h.Service.CreateService},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Service.GetService},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Service.UpdateService},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Service.DeleteService},
		})

		addRoutes(apiGroup.Group("/reminder-settings"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.ReminderRule.ListRules},
			{Method: http.MethodPost, Path: "", Handler: h.ReminderRule.CreateRule},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.ReminderRule.ToggleRule},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.ReminderRule.DeleteRule},
		})

		addRoutes(apiGroup.Group("/reminder-message"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.ReminderMessage.GetTemplate},
			{Method: http.MethodPut, Path: "", Handler: h.ReminderMessage.SaveTemplate},
		})

		addRoutes(apiGroup.Group("/push"), []route{
			{Method: http.MethodGet, Path: "/public-key", Handler: h.Subscription.GetPublicKey},
			{Method: http.MethodPost, Path: "/subscribe", Handler: h.Subscription.Subscribe},
			{Method: http.MethodDelete, Path: "/subscribe/:phone", Handler: h.Subscription.Unsubscribe},
		})

		addRoutes(apiGroup.Group("/clients"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Client.ListClients},
			{Method: http.MethodGet, Path: "/:phone", Handler: h.Client.GetClient},
		})

		addRoutes(apiGroup.Group("/schedule"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Schedule.GetSchedule},
			{Method: http.MethodPut, Path: "", Handler: h.Schedule.ReplaceSchedule},
		})

		cron := apiGroup.Group("/cron")
		cron.Use(middleware.CronAuth(cfg.Cron))
		addRoutes(cron, []route{
			{Method: http.MethodPost, Path: "/reminders", Handler: h.Cron.DispatchReminders},
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
