package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"hostel-manager-go/db"
	"hostel-manager-go/handlers"
	"hostel-manager-go/service"
	"hostel-manager-go/store"
)

func main() {
	// .env is optional; environment variables win either way.
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using environment variables")
	}

	// Initialize Redis Client and persistence service
	redisClient := db.InitializeRedisClient()
	redisService := db.NewRedisService(redisClient)

	// Load the startup snapshot into the stores. Missing keys mean a fresh
	// install and an empty state.
	rooms, students, err := redisService.LoadSnapshot()
	if err != nil {
		logrus.Fatalf("Failed to load snapshot: %v", err)
	}

	roomStore := store.NewRoomStore()
	roomStore.Replace(rooms)
	studentStore := store.NewStudentStore()
	studentStore.Replace(students)

	allocator := service.NewAllocator(roomStore, studentStore, redisService)
	statsReporter := service.NewStatsReporter(roomStore, studentStore)

	// Create API Handler (injecting the services)
	apiHandler := handlers.NewAPIHandler(allocator, statsReporter)

	// Initialize Gin router
	router := gin.Default()

	// Setup API routes
	api := router.Group("/api")
	{
		// Room routes
		api.GET("/rooms", apiHandler.GetRooms)
		api.POST("/rooms", apiHandler.CreateRoom)
		api.PUT("/rooms/:roomId", apiHandler.UpdateRoom)
		api.DELETE("/rooms/:roomId", apiHandler.DeleteRoom)

		// Student routes
		api.GET("/students", apiHandler.GetStudents)
		api.POST("/students", apiHandler.CreateStudent)
		api.PUT("/students/:studentId", apiHandler.UpdateStudent)
		api.DELETE("/students/:studentId", apiHandler.DeleteStudent)

		// Assignment routes
		api.POST("/assignments", apiHandler.AssignStudent)
		api.DELETE("/assignments/:studentId", apiHandler.UnassignStudent)

		// Stats and export routes
		api.GET("/stats", apiHandler.GetStats)
		api.GET("/export/csv", apiHandler.ExportCSV)
		api.GET("/export/xlsx", apiHandler.ExportXLSX)

		// Ping route
		api.GET("/ping", handlers.PingHandler)
	}

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatalf("Failed to run server: %v", err)
	}
}
