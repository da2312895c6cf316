package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-ledger/services"
	"hotel-ledger/utils"
)

type PaymentController struct {
	LedgerSvc *services.LedgerService
}

func NewPaymentController(svc *services.LedgerService) *PaymentController {
	return &PaymentController{LedgerSvc: svc}
}

// GetPayments lists ledger entries, optionally filtered by ?date= or
// ?guest_id=.
func (ctrl *PaymentController) GetPayments(c *gin.Context) {
	if raw := c.Query("date"); raw != "" {
		date, err := utils.ParseDate(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid date")
			return
		}
		utils.JSONSuccess(c, http.StatusOK, ctrl.LedgerSvc.ListOnDate(date))
		return
	}
	if raw := c.Query("guest_id"); raw != "" {
		guestID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid guest_id")
			return
		}
		utils.JSONSuccess(c, http.StatusOK, ctrl.LedgerSvc.ListForGuest(uint32(guestID)))
		return
	}
	utils.JSONSuccess(c, http.StatusOK, ctrl.LedgerSvc.List())
}
