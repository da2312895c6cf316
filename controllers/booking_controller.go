package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-ledger/services"
	"hotel-ledger/utils"
)

type MakeBookingRequest struct {
	RoomType string `json:"room_type" binding:"required"`
	GuestID  uint32 `json:"guest_id" binding:"required"`
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
}

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// GetBookings lists bookings, optionally restricted to stays covering ?date=.
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	if raw := c.Query("date"); raw != "" {
		date, err := utils.ParseDate(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid date")
			return
		}
		utils.JSONSuccess(c, http.StatusOK, ctrl.BookingSvc.ListOnDate(date))
		return
	}
	utils.JSONSuccess(c, http.StatusOK, ctrl.BookingSvc.List())
}

func (ctrl *BookingController) GetBookingByID(c *gin.Context) {
	bookingID, ok := parseBookingID(c)
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.GetByID(bookingID)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var req MakeBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	checkIn, err := utils.ParseDate(req.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid check_in date")
		return
	}
	checkOut, err := utils.ParseDate(req.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid check_out date")
		return
	}

	booking, err := ctrl.BookingSvc.MakeBooking(req.RoomType, req.GuestID, checkIn, checkOut)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

func (ctrl *BookingController) CheckoutBooking(c *gin.Context) {
	bookingID, ok := parseBookingID(c)
	if !ok {
		return
	}
	if err := ctrl.BookingSvc.Checkout(bookingID); err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"booking_id": bookingID})
}

func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	bookingID, ok := parseBookingID(c)
	if !ok {
		return
	}
	refund, err := ctrl.BookingSvc.Cancel(bookingID)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"booking_id": bookingID, "refund": refund})
}

func parseBookingID(c *gin.Context) (uint32, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return 0, false
	}
	return uint32(id), true
}
