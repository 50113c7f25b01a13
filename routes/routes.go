package routes

import (
	"net/http"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/controllers"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/middlewares"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SetupRouter(svc *services.Services, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestLogger(log), middlewares.Recovery(log))

	h := controllers.NewHandler(svc, log)
	auth := middlewares.AuthMiddleware(svc.Auth.Tokens(), svc.Auth)
	admin := middlewares.AdminMiddleware()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes
	a := r.Group("/auth")
	{
		a.POST("/signup", h.Signup)
		a.POST("/signin", h.Signin)
		a.POST("/refresh", h.RefreshToken)
		a.POST("/logout", auth, h.Logout)
		a.GET("/me", auth, h.Me)
		a.GET("/admin-verify", auth, h.AdminVerify)
		a.POST("/change-password", auth, h.ChangePassword)
	}

	u := r.Group("/user", auth)
	{
		u.GET("/all", admin, h.GetAllUsers)
		u.GET("/:id", h.GetUser)
		u.PATCH("/update/:id", h.UpdateUser)
		u.PATCH("/block/:id", admin, h.BlockUser)
		u.DELETE("/delete/:id", admin, h.DeleteUser)
	}

	room := r.Group("/room")
	{
		room.GET("/all", h.ListRooms)
		room.GET("/search", h.SearchRooms)
		room.GET("/:id", h.GetRoom)
		room.POST("/create", auth, admin, h.CreateRoom)
		room.PATCH("/update/:id", auth, admin, h.UpdateRoom)
		room.PATCH("/status/:id", auth, admin, h.UpdateRoomStatus)
		room.DELETE("/delete/:id", auth, admin, h.DeleteRoom)
	}

	coupon := r.Group("/coupon", auth)
	{
		coupon.POST("/apply", h.ApplyCoupon)
		coupon.POST("/create", admin, h.CreateCoupon)
		coupon.GET("/all", admin, h.ListCoupons)
		coupon.GET("/:id", admin, h.GetCoupon)
		coupon.PATCH("/update/:id", admin, h.UpdateCoupon)
		coupon.DELETE("/delete/:id", admin, h.DeleteCoupon)
	}

	discover := r.Group("/discover")
	{
		discover.GET("/all", h.ListDiscover)
		discover.GET("/:id", h.GetDiscover)
		discover.POST("/create", auth, admin, h.CreateDiscover)
		discover.PATCH("/update/:id", auth, admin, h.UpdateDiscover)
		discover.DELETE("/delete/:id", auth, admin, h.DeleteDiscover)
	}

	booking := r.Group("/booking", auth)
	{
		booking.POST("/create", h.CreateBooking)
		booking.GET("/my", h.GetUserBookings)
		booking.GET("/all", admin, h.GetAllBookings)
		booking.GET("/export", admin, h.ExportBookings)
		booking.GET("/receipt/:id", h.BookingReceipt)
		booking.GET("/:id", h.GetBooking)
		booking.PATCH("/cancel/:id", h.CancelBooking)
		booking.PATCH("/pay/:id", h.PayBooking)
		booking.PATCH("/status/:id", admin, h.UpdateBookingStatus)
		booking.DELETE("/delete/:id", admin, h.DeleteBooking)
	}

	feedback := r.Group("/feedback")
	{
		feedback.GET("/booking-review", h.ListReviews)
		feedback.POST("/booking-review", auth, h.CreateReview)
		feedback.DELETE("/booking-review/:id", auth, admin, h.DeleteReview)
		feedback.POST("/contact", h.CreateContact)
		feedback.GET("/contact", auth, admin, h.ListContacts)
		feedback.PATCH("/contact/read/:id", auth, admin, h.MarkContactRead)
	}

	hk := r.Group("/housekeeping", auth, admin)
	{
		hk.POST("/create", h.CreateHousekeeping)
		hk.GET("/all", h.ListHousekeeping)
		hk.GET("/:id", h.GetHousekeeping)
		hk.PATCH("/update/:id", h.UpdateHousekeeping)
		hk.PATCH("/status/:id", h.UpdateHousekeepingStatus)
		hk.DELETE("/delete/:id", h.DeleteHousekeeping)
	}

	complaint := r.Group("/complaint", auth)
	{
		complaint.POST("/create", h.CreateComplaint)
		complaint.GET("/my", h.GetMyComplaints)
		complaint.GET("/all", admin, h.GetAllComplaints)
		complaint.GET("/:id", h.GetComplaint)
		complaint.PATCH("/respond/:id", admin, h.RespondComplaint)
		complaint.DELETE("/delete/:id", admin, h.DeleteComplaint)
	}

	dashboard := r.Group("/admin", auth, admin)
	{
		dashboard.GET("/stats", h.GetDashboardStats)
		dashboard.GET("/revenue", h.GetDailyRevenue)
	}

	// Fallback for Unknown Routes
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	return r
}
