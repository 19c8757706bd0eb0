package db

import (
	"servihub-backend/models"
	"servihub-backend/utils"
)

// Seed provisionne les comptes de base et un signalement d'exemple.
// Ne fait rien si des utilisateurs existent déjà.
func Seed() {
	var count int64
	if err := DB.Model(&models.User{}).Count(&count).Error; err != nil {
		utils.LogError(err, "Error counting users during seed")
		return
	}
	if count > 0 {
		return
	}

	adminName := "Admin User"
	admin := models.User{
		Email: "admin@servihub.com",
		Name:  &adminName,
		Role:  models.AdminRole,
	}
	if err := DB.Create(&admin).Error; err != nil {
		utils.LogError(err, "Error seeding admin user")
		return
	}

	userName := "User One"
	user := models.User{
		Email: "user1@servihub.com",
		Name:  &userName,
		Role:  models.UserRole,
	}
	if err := DB.Create(&user).Error; err != nil {
		utils.LogError(err, "Error seeding default user")
		return
	}

	report := models.Report{
		Type:        models.ReportTypeReview,
		TargetID:    101,
		Reason:      "Spam content",
		SubmittedBy: &user.ID,
	}
	if err := DB.Create(&report).Error; err != nil {
		utils.LogError(err, "Error seeding sample report")
		return
	}

	utils.LogSuccess("Database seeded with default users and sample report")
}
