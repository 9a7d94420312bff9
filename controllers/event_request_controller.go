// controllers/event_request_controller.go
package controllers

import (
	"backend/entity"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type EventRequestController struct {
	Service *services.EventRequestService
}

func NewEventRequestController(s *services.EventRequestService) *EventRequestController {
	return &EventRequestController{Service: s}
}

// POST /event-requests
func (ctl *EventRequestController) Create(c *gin.Context) {
	var in entity.CreateEventRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	request, err := ctl.Service.Create(&in)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, request)
}

// GET /event-requests
func (ctl *EventRequestController) List(c *gin.Context) {
	requests, err := ctl.Service.List()
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, requests)
}

// GET /event-requests/:id
func (ctl *EventRequestController) Get(c *gin.Context) {
	request, err := ctl.Service.Get(pathID(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if request == nil {
		resp.NotFound(c, "event request not found")
		return
	}
	resp.OK(c, request)
}

// PATCH /event-requests/:id/status
func (ctl *EventRequestController) UpdateStatus(c *gin.Context) {
	var in entity.UpdateEventRequestStatusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	in.ID = pathID(c, "id")
	request, err := ctl.Service.UpdateStatus(&in)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, request)
}
