package routes

import (
	"net/http"

	"hotel-client/controllers"
	middlewares "hotel-client/middleware"
	"hotel-client/services"

	"github.com/gin-gonic/gin"
)

// Controllers are the handlers mounted by SetupRoutes
type Controllers struct {
	Auth     *controllers.AuthController
	Rooms    *controllers.RoomController
	Bookings *controllers.BookingController
}

func SetupRoutes(router *gin.Engine, session *services.Session, ctl Controllers) {
	router.Use(middlewares.RequestID(), middlewares.ErrorHandler())

	user := middlewares.RequireSession(session)
	admin := middlewares.RequireAdmin(session)

	api := router.Group("/api")
	api.POST("/auth/login", ctl.Auth.Login)
	api.POST("/auth/register", ctl.Auth.Register)
	api.DELETE("/auth/logout", ctl.Auth.Logout)
	api.GET("/auth/session", ctl.Auth.Session)

	api.GET("/rooms", user, ctl.Rooms.GetRooms)
	api.GET("/rooms/live", user, ctl.Rooms.LiveStatus)
	api.POST("/rooms/refresh", user, ctl.Rooms.Refresh)
	api.GET("/rooms/:id", user, ctl.Rooms.GetRoom)
	api.GET("/rooms/:id/availability", user, ctl.Rooms.GetAvailability)
	api.POST("/rooms", admin, ctl.Rooms.CreateRoom)
	api.PUT("/rooms/:id", admin, ctl.Rooms.UpdateRoom)
	api.DELETE("/rooms/:id", admin, ctl.Rooms.DeleteRoom)

	api.POST("/bookings", user, ctl.Bookings.BookRoom)
	api.GET("/bookings/mine", user, ctl.Bookings.MyBookings)
	api.PUT("/bookings/:id/cancel", user, ctl.Bookings.ToggleCancel)
	api.GET("/bookings", admin, ctl.Bookings.AllBookings)
	api.PUT("/bookings/:id/status", admin, ctl.Bookings.SetStatus)
	api.PUT("/bookings/:id/confirm/:kind", admin, ctl.Bookings.ToggleAdminConfirm)
	api.DELETE("/bookings/:id", admin, ctl.Bookings.DeleteBooking)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
}
