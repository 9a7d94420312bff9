package routes

import (
	"net/http"
	"time"

	"backend/controllers"
	"backend/middlewares"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})

	// Repositories
	menuRepo := repository.NewMenuRepository(db)
	optionRepo := repository.NewServiceOptionRepository(db)
	requestRepo := repository.NewEventRequestRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Services
	menuSvc := services.NewMenuService(menuRepo, optionRepo, reviewRepo)
	optionSvc := services.NewServiceOptionService(optionRepo, menuRepo)
	requestSvc := services.NewEventRequestService(requestRepo, menuRepo, optionRepo)
	reviewSvc := services.NewReviewService(reviewRepo, menuRepo)

	// Controllers
	menuCtrl := controllers.NewMenuController(menuSvc)
	optionCtrl := controllers.NewServiceOptionController(optionSvc)
	requestCtrl := controllers.NewEventRequestController(requestSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)

	// Menus
	r.POST("/menus", menuCtrl.Create)
	r.GET("/menus", menuCtrl.List)
	r.GET("/menus/:id", menuCtrl.Get)
	r.GET("/menus/:id/service-options", optionCtrl.ListByMenu)
	r.GET("/menus/:id/reviews", reviewCtrl.ListByMenu)

	// Service options
	r.POST("/service-options", optionCtrl.Create)

	// Event requests
	r.POST("/event-requests", requestCtrl.Create)
	r.GET("/event-requests", requestCtrl.List)
	r.GET("/event-requests/:id", requestCtrl.Get)
	r.PATCH("/event-requests/:id/status", requestCtrl.UpdateStatus)

	// Reviews
	r.POST("/reviews", reviewCtrl.Create)
}
