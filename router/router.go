package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dinebook/controllers"
	"dinebook/middlewares"
)

// SetupRouter merakit seluruh route. Limiter umum dipasang di sini,
// sebelum registrasi route: gin mengikat handler chain saat registrasi,
// Use() setelahnya tidak berlaku untuk route yang sudah terdaftar.
func SetupRouter(db *gorm.DB, limiter *middlewares.RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(limiter.RateLimit())

	// Inisialisasi controller
	userCtrl := controllers.NewUserController(db)
	restaurantCtrl := controllers.NewRestaurantController(db)
	tableCtrl := controllers.NewTableController(db)
	reservationCtrl := controllers.NewReservationController(db)
	reviewCtrl := controllers.NewReviewController(db)
	availabilityCtrl := controllers.NewAvailabilityController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter ketat untuk login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}
	r.POST("/auth/refresh", userCtrl.Refresh)

	// Browsing restoran tanpa login
	r.GET("/restaurants", restaurantCtrl.GetAllRestaurants)
	r.GET("/restaurants/:restaurant_id", restaurantCtrl.GetRestaurantByID)
	r.GET("/tables", tableCtrl.GetAllTables)
	r.GET("/tables/:table_id", tableCtrl.GetTableByID)

	// Cek ketersediaan meja
	r.GET("/availability", availabilityCtrl.CheckAvailability)

	// Review publik (hanya yang approved)
	r.GET("/reviews", reviewCtrl.GetAllReviews)
	r.GET("/reviews/:review_id", reviewCtrl.GetReviewByID)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.POST("/auth/logout", userCtrl.Logout)
		auth.GET("/profile", userCtrl.GetProfile)
		auth.PATCH("/profile", userCtrl.UpdateProfile)

		// Reservasi milik sendiri
		auth.GET("/my/reservations", reservationCtrl.GetMyReservations)
		auth.POST("/reservations", reservationCtrl.CreateReservation)
		auth.GET("/reservations/:reservation_id", reservationCtrl.GetReservationByID)
		auth.PATCH("/reservations/:reservation_id", reservationCtrl.UpdateReservation)
		auth.DELETE("/reservations/:reservation_id", reservationCtrl.CancelReservation)

		// Review (syarat pernah COMPLETED ada di controller)
		auth.POST("/reviews", reviewCtrl.CreateReview)
		auth.PATCH("/reviews/:review_id", reviewCtrl.UpdateReview)
		auth.DELETE("/reviews/:review_id", reviewCtrl.DeleteReview)
	}

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RequireAdmin())
	{
		admin.GET("/users", userCtrl.GetAllUsers)

		admin.POST("/restaurants", restaurantCtrl.CreateRestaurant)
		admin.PATCH("/restaurants/:restaurant_id", restaurantCtrl.UpdateRestaurant)
		admin.DELETE("/restaurants/:restaurant_id", restaurantCtrl.DeleteRestaurant)

		admin.POST("/tables", tableCtrl.CreateTable)
		admin.PATCH("/tables/:table_id", tableCtrl.UpdateTable)
		admin.DELETE("/tables/:table_id", tableCtrl.DeleteTable)

		admin.GET("/reservations", reservationCtrl.GetAllReservations)
	}

	return r
}
