package reports

import (
	"errors"
	"net/http"
	"slices"
	"strconv"
	"time"

	"servihub-backend/db"
	"servihub-backend/models"
	"servihub-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var validReportTypes = []models.ReportType{
	models.ReportTypeReview,
	models.ReportTypeUser,
	models.ReportTypeBusiness,
	models.ReportTypeService,
	models.ReportTypeOther,
}

func parseReportID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.LogError(err, "Invalid report ID in "+c.FullPath())
		utils.SendError(c, http.StatusBadRequest, "Invalid report ID")
		return 0, false
	}
	return id, true
}

// @Summary Submit a report
// @Description Submit a new moderation report
// @Tags reports
// @Accept json
// @Produce json
// @Param report body models.ReportCreate true "Report information"
// @Success 201 {object} utils.Response{data=models.Report}
// @Failure 400 {object} utils.Response "error: Missing required fields"
// @Failure 500 {object} utils.Response "error: Error message"
// @Router /api/reports [post]
func CreateReport(c *gin.Context) {
	var input models.ReportCreate

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.LogError(err, "Missing required fields in CreateReport")
		utils.SendError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	if !slices.Contains(validReportTypes, input.Type) {
		utils.LogError(nil, "Invalid report type in CreateReport")
		utils.SendError(c, http.StatusBadRequest, "Invalid report type")
		return
	}

	submittedBy := input.SubmittedBy
	report := models.Report{
		Type:        input.Type,
		TargetID:    input.TargetID,
		Reason:      input.Reason,
		Description: input.Description,
		SubmittedBy: &submittedBy,
	}

	if err := db.DB.Create(&report).Error; err != nil {
		utils.LogErrorWithUser(strconv.FormatInt(submittedBy, 10), err, "Error creating report in CreateReport")
		utils.SendError(c, http.StatusInternalServerError, "Error creating report: "+err.Error())
		return
	}

	utils.LogSuccessWithUser(strconv.FormatInt(submittedBy, 10), "Report successfully created in CreateReport")
	utils.SendSuccess(c, http.StatusCreated, "Report submitted successfully", report)
}

// @Summary Get all reports
// @Description Get every report with its submitter and resolver
// @Tags reports
// @Produce json
// @Success 200 {object} utils.Response{data=[]models.Report}
// @Failure 500 {object} utils.Response "error: Error message"
// @Router /api/reports [get]
func GetAllReports(c *gin.Context) {
	var reports []models.Report

	if err := db.DB.Preload("Submitter").Preload("Resolver").Order("created_at DESC").Find(&reports).Error; err != nil {
		utils.LogError(err, "Error retrieving reports in GetAllReports")
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving reports: "+err.Error())
		return
	}

	utils.LogSuccess("Reports successfully retrieved in GetAllReports")
	utils.SendSuccess(c, http.StatusOK, "Reports retrieved successfully", reports)
}

// @Summary Get a report by ID
// @Description Get a single report with its submitter and resolver
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} utils.Response{data=models.Report}
// @Failure 400 {object} utils.Response "error: Invalid report ID"
// @Failure 404 {object} utils.Response "error: Report not found"
// @Failure 500 {object} utils.Response "error: Error message"
// @Router /api/reports/{id} [get]
func GetReportByID(c *gin.Context) {
	id, ok := parseReportID(c)
	if !ok {
		return
	}

	var report models.Report
	err := db.DB.Preload("Submitter").Preload("Resolver").First(&report, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.LogError(err, "Report not found in GetReportByID")
			utils.SendError(c, http.StatusNotFound, "Report not found")
			return
		}
		utils.LogError(err, "Error retrieving report in GetReportByID")
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving report: "+err.Error())
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Report retrieved successfully", report)
}

// @Summary Resolve a report
// @Description Mark a report as resolved by the given user. Re-resolving an
// already resolved report overwrites the resolver and timestamp.
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param resolution body models.ReportResolve true "Resolver ID"
// @Success 200 {object} utils.Response{data=models.Report}
// @Failure 400 {object} utils.Response "error: Invalid report ID"
// @Failure 404 {object} utils.Response "error: Report not found"
// @Failure 500 {object} utils.Response "error: Error message"
// @Router /api/reports/{id} [patch]
func ResolveReport(c *gin.Context) {
	id, ok := parseReportID(c)
	if !ok {
		return
	}

	var input models.ReportResolve
	if !utils.ValidateRequestBody(c, &input) {
		utils.LogError(nil, "Missing resolved_by in ResolveReport")
		return
	}

	// resolved_by et resolved_at sont posés ensemble, en un seul UPDATE
	result := db.DB.Model(&models.Report{}).Where("id = ?", id).Updates(map[string]interface{}{
		"resolved_by": input.ResolvedBy,
		"resolved_at": time.Now(),
	})
	if result.Error != nil {
		utils.LogErrorWithUser(strconv.FormatInt(input.ResolvedBy, 10), result.Error, "Error resolving report in ResolveReport")
		utils.SendError(c, http.StatusInternalServerError, "Error resolving report: "+result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.LogError(nil, "Report not found in ResolveReport")
		utils.SendError(c, http.StatusNotFound, "Report not found")
		return
	}

	var report models.Report
	if err := db.DB.Preload("Submitter").Preload("Resolver").First(&report, "id = ?", id).Error; err != nil {
		utils.LogError(err, "Error reloading report in ResolveReport")
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving report: "+err.Error())
		return
	}

	utils.LogSuccessWithUser(strconv.FormatInt(input.ResolvedBy, 10), "Report successfully resolved in ResolveReport")
	utils.SendSuccess(c, http.StatusOK, "Report resolved successfully", report)
}

// @Summary Delete a report
// @Description Permanently remove a report
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} utils.Response "message: Report deleted successfully"
// @Failure 400 {object} utils.Response "error: Invalid report ID"
// @Failure 404 {object} utils.Response "error: Report not found"
// @Failure 500 {object} utils.Response "error: Error message"
// @Router /api/reports/{id} [delete]
func DeleteReport(c *gin.Context) {
	id, ok := parseReportID(c)
	if !ok {
		return
	}

	result := db.DB.Delete(&models.Report{}, id)
	if result.Error != nil {
		utils.LogError(result.Error, "Error deleting report in DeleteReport")
		utils.SendError(c, http.StatusInternalServerError, "Error deleting report: "+result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.LogError(nil, "Report not found in DeleteReport")
		utils.SendError(c, http.StatusNotFound, "Report not found")
		return
	}

	utils.LogSuccess("Report successfully deleted in DeleteReport")
	utils.SendSuccess(c, http.StatusOK, "Report deleted successfully", nil)
}
