package router

import (
	bookingHandler "phoenix-booking-service/internal/module/booking/handler"
	maintenanceHandler "phoenix-booking-service/internal/module/maintenance/handler"
	waitlistHandler "phoenix-booking-service/internal/module/waitlist/handler"
	"phoenix-booking-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(app *fiber.App, handlerBooking *bookingHandler.BookingHandler, handlerWaitlist *waitlistHandler.WaitlistHandler, handlerMaintenance *maintenanceHandler.MaintenanceHandler, m *middleware.Middleware) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")
	v1 := Api.Group("/v1")

	// bookings
	v1.Post("/hotels/:hotelId/bookings/payment-intent", handlerBooking.CreatePaymentIntent)
	v1.Post("/hotels/:hotelId/bookings", m.ValidateToken, handlerBooking.CreateBooking)
	v1.Get("/my-bookings", m.ValidateToken, handlerBooking.ShowBookings)
	v1.Get("/bookings/all", m.ValidateToken, m.RequireCapability(middleware.ObjBookings, middleware.ActRead), handlerBooking.AllBookings)
	v1.Get("/bookings/hotel/:hotelId", handlerBooking.HotelBookings)
	v1.Get("/bookings/:bookingId", m.ValidateToken, handlerBooking.GetBooking)
	v1.Patch("/bookings/:bookingId", m.ValidateToken, m.CheckCapability(middleware.ObjBookings, middleware.ActWrite), handlerBooking.UpdateBooking)
	v1.Post("/bookings/:bookingId/cancel", m.ValidateToken, m.CheckCapability(middleware.ObjBookings, middleware.ActWrite), handlerBooking.CancelBooking)

	// waitlist
	v1.Post("/hotels/:hotelId/waitlist", m.ValidateToken, handlerWaitlist.JoinWaitlist)
	v1.Get("/hotels/:hotelId/waitlist", m.ValidateToken, m.RequireCapability(middleware.ObjBookings, middleware.ActRead), handlerWaitlist.ListWaitlist)

	// maintenance
	v1.Get("/maintenance", handlerMaintenance.ListMaintenance)
	v1.Post("/maintenance", m.ValidateToken, m.RequireCapability(middleware.ObjMaintenance, middleware.ActWrite), handlerMaintenance.CreateMaintenance)
	v1.Patch("/maintenance/:maintenanceId", m.ValidateToken, m.RequireCapability(middleware.ObjMaintenance, middleware.ActWrite), handlerMaintenance.UpdateMaintenance)
	v1.Delete("/maintenance/:maintenanceId", m.ValidateToken, m.RequireCapability(middleware.ObjMaintenance, middleware.ActWrite), handlerMaintenance.DeleteMaintenance)

	return app

}
