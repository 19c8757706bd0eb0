package routes

import (
	"servihub-backend/handlers/users"

	"github.com/gin-gonic/gin"
)

func UsersRoutes(r *gin.Engine) {
	r.GET("/api/users", users.GetAllUsers)
	r.GET("/api/users/getUserByEmail", users.GetUserByEmail)
}
