package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-ledger/services"
	"hotel-ledger/utils"
)

type DataController struct {
	DataSvc *services.DataService
}

func NewDataController(svc *services.DataService) *DataController {
	return &DataController{DataSvc: svc}
}

// SaveData overwrites the data files with the current store contents.
func (ctrl *DataController) SaveData(c *gin.Context) {
	if err := ctrl.DataSvc.Save(); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"saved": true})
}

// ReloadData replaces the store wholesale from the data files. Unsaved
// mutations are discarded.
func (ctrl *DataController) ReloadData(c *gin.Context) {
	if err := ctrl.DataSvc.Load(); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"reloaded": true})
}
