package api

import (
	"log"
	stdhttp "net/http"

	intconfig "travelbackend/internal/config"
	h "travelbackend/internal/http/handlers"
	"travelbackend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"message": "route not found",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	secret := []byte(env.JWTSecret)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		api.GET("/business-card", h.DownloadBusinessCard)

		// Notification endpoints used directly by the public site.
		notify := api.Group("/notify")
		notify.POST("/booking", h.NotifyBooking)
		notify.POST("/feedback", h.NotifyFeedback)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/change-password", middleware.RequireAuth(secret), h.ChangePassword)

		// Catalog and feedback, public side
		api.GET("/cars", h.GetCars)
		api.POST("/feedback", h.CreateFeedback)

		// Bookings
		bookings := api.Group("/bookings")
		bookings.POST("", middleware.OptionalAuth(secret), h.CreateBooking)
		bookings.GET("/my", middleware.RequireAuth(secret), h.GetMyBookings)
		bookings.DELETE("/:id", middleware.RequireAuth(secret), h.DeleteBooking)

		// Back office
		admin := api.Group("", middleware.RequireAuth(secret), middleware.RequireAdmin())
		{
			admin.GET("/bookings", h.GetBookings)
			admin.PUT("/bookings/:id/accept", h.AcceptBooking)
			admin.PUT("/bookings/:id/reject", h.RejectBooking)

			admin.GET("/users", h.GetUsers)
			admin.GET("/users/:id", h.GetUserByID)
			admin.PUT("/users/:id/role", h.UpdateUserRole)
			admin.DELETE("/users/:id", h.DeleteUser)

			admin.POST("/cars", h.CreateCar)
			admin.PUT("/cars/:id", h.UpdateCar)
			admin.DELETE("/cars/:id", h.DeleteCar)

			admin.POST("/bills", h.CreateBill)
			admin.GET("/bills", h.GetBills)
			admin.GET("/bills/:id/pdf", h.GetBillPDF)
			admin.GET("/bills/:id/whatsapp", h.GetBillWhatsAppLink)

			admin.GET("/feedback", h.GetFeedback)
			admin.DELETE("/feedback/:id", h.DeleteFeedback)

			admin.GET("/admin/dashboard", h.GetDashboard)
		}
	}

	return r
}
