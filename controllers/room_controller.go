package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-ledger/models"
	"hotel-ledger/services"
	"hotel-ledger/utils"
)

type CreateRoomRequest struct {
	RoomNumber  int64   `json:"room_number" binding:"required"`
	RoomType    string  `json:"room_type" binding:"required"`
	NightlyRate float64 `json:"nightly_rate" binding:"gte=0"`
	Capacity    int     `json:"capacity" binding:"required,gt=0"`
	Facilities  string  `json:"facilities"`
}

type RoomController struct {
	RoomSvc    *services.RoomService
	BookingSvc *services.BookingService
}

func NewRoomController(roomSvc *services.RoomService, bookingSvc *services.BookingService) *RoomController {
	return &RoomController{RoomSvc: roomSvc, BookingSvc: bookingSvc}
}

func (ctrl *RoomController) GetRooms(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.RoomSvc.List())
}

func (ctrl *RoomController) GetRoomByNumber(c *gin.Context) {
	roomNumber, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room number")
		return
	}
	room, err := ctrl.RoomSvc.GetByNumber(roomNumber)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	room := models.Room{
		RoomNumber:  req.RoomNumber,
		RoomType:    req.RoomType,
		NightlyRate: req.NightlyRate,
		Capacity:    req.Capacity,
		Facilities:  req.Facilities,
	}
	if err := ctrl.RoomSvc.Create(room); err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// GetAvailableRooms lists room numbers of the requested type free for the
// candidate stay.
func (ctrl *RoomController) GetAvailableRooms(c *gin.Context) {
	roomType := c.Query("type")
	if roomType == "" {
		utils.JSONError(c, http.StatusBadRequest, "type query parameter is required")
		return
	}
	checkIn, err := utils.ParseDate(c.Query("check_in"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid check_in date")
		return
	}
	checkOut, err := utils.ParseDate(c.Query("check_out"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid check_out date")
		return
	}

	available, err := ctrl.RoomSvc.FindAvailable(roomType, checkIn, checkOut)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, available)
}

// DeleteRoom performs the documented room-removal operation, which clears the
// first past-checkout booking held against the room.
func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	roomNumber, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room number")
		return
	}
	if err := ctrl.BookingSvc.RemoveRoom(roomNumber); err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"room_number": roomNumber})
}
