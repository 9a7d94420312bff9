// controllers/review_controller.go
package controllers

import (
	"backend/entity"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Service *services.ReviewService
}

func NewReviewController(s *services.ReviewService) *ReviewController {
	return &ReviewController{Service: s}
}

// POST /reviews
func (ctl *ReviewController) Create(c *gin.Context) {
	var in entity.CreateReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	review, err := ctl.Service.Create(&in)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, review)
}

// GET /menus/:id/reviews
func (ctl *ReviewController) ListByMenu(c *gin.Context) {
	reviews, err := ctl.Service.ListByMenu(pathID(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, reviews)
}
