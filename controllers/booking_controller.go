package controllers

import (
	"hotel-client/dto"
	"hotel-client/models"
	"hotel-client/response"
	"hotel-client/services"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	facade *services.BookingFacade
}

func NewBookingController(facade *services.BookingFacade) *BookingController {
	return &BookingController{facade: facade}
}

func bookingResponses(bookings []*models.Booking) []dto.BookingResponse {
	out := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		if b != nil {
			out = append(out, dto.NewBookingResponse(b))
		}
	}
	return out
}

func (b *BookingController) BookRoom(c *gin.Context) {
	var input dto.BookRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Room, check-in and check-out are required")
		return
	}

	booking, err := b.facade.BookRoom(c.Request.Context(), input)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Created(c, dto.NewBookingResponse(booking))
}

func (b *BookingController) MyBookings(c *gin.Context) {
	bookings, err := b.facade.MyBookings(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	out := bookingResponses(bookings)
	response.SuccessWithTotal(c, out, len(out))
}

func (b *BookingController) ToggleCancel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	booking, err := b.facade.ToggleCancel(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, dto.NewBookingResponse(booking))
}

func (b *BookingController) AllBookings(c *gin.Context) {
	bookings, err := b.facade.AllBookings(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	out := bookingResponses(bookings)
	response.SuccessWithTotal(c, out, len(out))
}

func (b *BookingController) SetStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input dto.BookingStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Status must be PENDING, CONFIRMED or CANCELLED")
		return
	}

	booking, err := b.facade.SetStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, dto.NewBookingResponse(booking))
}

func (b *BookingController) ToggleAdminConfirm(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	booking, err := b.facade.ToggleAdminConfirm(c.Request.Context(), id, c.Param("kind"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, dto.NewBookingResponse(booking))
}

func (b *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := b.facade.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, nil)
}
