package controllers

import (
	"fmt"

	"hotel-client/dto"
	"hotel-client/errors"
	"hotel-client/models"
	"hotel-client/response"
	"hotel-client/services"
	"hotel-client/services/logger"
	"hotel-client/validator"

	"github.com/gin-gonic/gin"
)

type RoomControllerOptions struct {
	Backend *services.BackendClient
	View    *services.RoomView
	Stream  *services.AvailabilityStream
	Logger  logger.Logger
}

type RoomController struct {
	backend *services.BackendClient
	view    *services.RoomView
	stream  *services.AvailabilityStream
	logger  logger.Logger
}

func NewRoomController(opts RoomControllerOptions) *RoomController {
	log := opts.Logger
	if log == nil {
		log = logger.Nop{}
	}
	return &RoomController{
		backend: opts.Backend,
		view:    opts.View,
		stream:  opts.Stream,
		logger:  log,
	}
}

// GetRooms lists the cached rooms with their display pricing
func (r *RoomController) GetRooms(c *gin.Context) {
	rooms := services.NewRoomResponses(r.view.Snapshot())
	response.SuccessWithTotal(c, rooms, len(rooms))
}

func (r *RoomController) GetRoom(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	room, found := r.view.Room(id)
	if !found {
		// not loaded yet, e.g. created since the last refresh
		fetched, err := r.backend.GetRoom(c.Request.Context(), id)
		if err != nil {
			if errors.HasCode(err, errors.ErrCodeNotFound) {
				err = errors.NewAppError(errors.ErrCodeRoomNotFound, fmt.Sprintf("Room %d not found", id), errors.ErrRoomNotFound)
			}
			_ = c.Error(err)
			return
		}
		room = fetched
	}
	response.Success(c, services.NewRoomResponse(room))
}

// GetAvailability asks the backend about a room on ?date=, today if absent
func (r *RoomController) GetAvailability(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var date models.Date
	if raw := c.Query("date"); raw != "" {
		d, err := models.ParseUserDate(raw)
		if err != nil {
			response.BadRequest(c, "Invalid date, use YYYY-MM-DD or DD-MM-YYYY")
			return
		}
		date = d
	}

	out, err := r.backend.GetRoomAvailability(c.Request.Context(), id, date)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, out)
}

// Refresh replaces the cached rooms with a fresh fetch
func (r *RoomController) Refresh(c *gin.Context) {
	if err := r.view.Refresh(c.Request.Context()); err != nil {
		_ = c.Error(err)
		return
	}
	rooms := services.NewRoomResponses(r.view.Snapshot())
	response.SuccessWithTotal(c, rooms, len(rooms))
}

// LiveStatus reports whether the availability stream is open
func (r *RoomController) LiveStatus(c *gin.Context) {
	if r.stream == nil {
		response.Success(c, gin.H{"connected": false})
		return
	}
	response.Success(c, gin.H{
		"connected": r.stream.Running(),
		"stats":     r.stream.Stats(),
	})
}

func (r *RoomController) CreateRoom(c *gin.Context) {
	var input dto.RoomRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid room data")
		return
	}
	if err := validator.ValidateRoomInput(&input); err != nil {
		_ = c.Error(err)
		return
	}

	room, err := r.backend.CreateRoom(c.Request.Context(), input)
	if err != nil {
		_ = c.Error(err)
		return
	}
	r.logger.Info("room %s created", input.RoomNumber)
	r.refresh(c)
	response.Created(c, services.NewRoomResponse(room))
}

func (r *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input dto.RoomRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid room data")
		return
	}
	if err := validator.ValidateRoomInput(&input); err != nil {
		_ = c.Error(err)
		return
	}

	room, err := r.backend.UpdateRoom(c.Request.Context(), id, input)
	if err != nil {
		_ = c.Error(err)
		return
	}
	r.logger.Info("room %d updated", id)
	r.refresh(c)
	response.Success(c, services.NewRoomResponse(room))
}

func (r *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := r.backend.DeleteRoom(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	r.logger.Info("room %d deleted", id)
	r.refresh(c)
	response.Success(c, nil)
}

func (r *RoomController) refresh(c *gin.Context) {
	if err := r.view.Refresh(c.Request.Context()); err != nil {
		r.logger.Error("room refresh after admin change failed: %v", err)
	}
}
