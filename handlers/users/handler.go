package users

import (
	"errors"
	"net/http"

	"servihub-backend/db"
	"servihub-backend/models"
	"servihub-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Get all users
// @Description Get every user (used to display submitter and resolver names)
// @Tags users
// @Produce json
// @Success 200 {object} utils.Response{data=[]models.User}
// @Failure 500 {object} utils.Response "error: Error message"
// @Router /api/users [get]
func GetAllUsers(c *gin.Context) {
	var users []models.User

	if err := db.DB.Order("id ASC").Find(&users).Error; err != nil {
		utils.LogError(err, "Error retrieving users in GetAllUsers")
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving users: "+err.Error())
		return
	}

	utils.LogSuccess("Users successfully retrieved in GetAllUsers")
	utils.SendSuccess(c, http.StatusOK, "Users retrieved successfully", users)
}

// @Summary Get a user by email
// @Description Resolve an email address to a user record
// @Tags users
// @Produce json
// @Param email query string true "Email address"
// @Success 200 {object} utils.Response{data=models.User}
// @Failure 400 {object} utils.Response "error: Email parameter is required"
// @Failure 404 {object} utils.Response "error: User not found"
// @Failure 500 {object} utils.Response "error: Error message"
// @Router /api/users/getUserByEmail [get]
func GetUserByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		utils.LogError(nil, "Missing email parameter in GetUserByEmail")
		utils.SendError(c, http.StatusBadRequest, "Email parameter is required")
		return
	}

	var user models.User
	err := db.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.LogError(err, "User not found in GetUserByEmail")
			utils.SendError(c, http.StatusNotFound, "User not found")
			return
		}
		utils.LogError(err, "Error retrieving user in GetUserByEmail")
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving user: "+err.Error())
		return
	}

	utils.SendSuccess(c, http.StatusOK, "User retrieved successfully", user)
}
