package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-ledger/services"
	"hotel-ledger/utils"
)

type CreateGuestRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	VIP       bool   `json:"vip"`
}

type GuestController struct {
	GuestSvc   *services.GuestService
	BookingSvc *services.BookingService
}

func NewGuestController(guestSvc *services.GuestService, bookingSvc *services.BookingService) *GuestController {
	return &GuestController{GuestSvc: guestSvc, BookingSvc: bookingSvc}
}

func (ctrl *GuestController) GetGuests(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.GuestSvc.List())
}

func (ctrl *GuestController) GetGuestByID(c *gin.Context) {
	guestID, ok := parseGuestID(c)
	if !ok {
		return
	}
	guest, err := ctrl.GuestSvc.GetByID(guestID)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

func (ctrl *GuestController) CreateGuest(c *gin.Context) {
	var req CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	guest := ctrl.GuestSvc.AddGuest(req.FirstName, req.LastName, req.VIP)
	utils.JSONSuccess(c, http.StatusCreated, guest)
}

// SearchGuests matches on case-insensitive exact first and last name.
func (ctrl *GuestController) SearchGuests(c *gin.Context) {
	firstName := c.Query("first_name")
	lastName := c.Query("last_name")
	if firstName == "" || lastName == "" {
		utils.JSONError(c, http.StatusBadRequest, "first_name and last_name query parameters are required")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, ctrl.GuestSvc.Search(firstName, lastName))
}

func (ctrl *GuestController) DeleteGuest(c *gin.Context) {
	guestID, ok := parseGuestID(c)
	if !ok {
		return
	}
	if err := ctrl.GuestSvc.RemoveGuest(guestID); err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"guest_id": guestID})
}

func (ctrl *GuestController) GetGuestBookings(c *gin.Context) {
	guestID, ok := parseGuestID(c)
	if !ok {
		return
	}
	bookings, err := ctrl.BookingSvc.ListForGuest(guestID)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

func parseGuestID(c *gin.Context) (uint32, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid guest id")
		return 0, false
	}
	return uint32(id), true
}
