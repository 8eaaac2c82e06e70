package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"hrm/constants"
	"hrm/controllers"
	middlewares "hrm/middleware"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, m *melody.Melody) {

	attendanceController := controllers.NewAttendanceController(db, redisCli, m)

	canEdit := middlewares.AuthMiddleware(constants.RoleManager, constants.RoleAdmin)
	canView := middlewares.AuthMiddleware()

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/google", controllers.AuthGoogle)

	v1.GET("/attendance", canView, attendanceController.GetAttendanceEvents)
	v1.POST("/attendance", canEdit, attendanceController.CreateAttendance)
	v1.PUT("/attendanceUpdate", canEdit, attendanceController.UpdateAttendance)
	v1.DELETE("/attendance/:id", canEdit, attendanceController.DeleteAttendance)
	v1.DELETE("/attendance", canEdit, attendanceController.DeleteAttendanceBatch)

	v1.GET("/workers", canView, controllers.GetWorkers)
	v1.GET("/workers/:id", canView, controllers.GetWorkerDetail)

	v1.GET("/jobTypes", canView, controllers.GetJobTypes)

	v1.DELETE("/shifts/:id", canEdit, controllers.DeleteShift)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
