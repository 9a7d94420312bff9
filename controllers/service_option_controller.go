// controllers/service_option_controller.go
package controllers

import (
	"backend/entity"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type ServiceOptionController struct {
	Service *services.ServiceOptionService
}

func NewServiceOptionController(s *services.ServiceOptionService) *ServiceOptionController {
	return &ServiceOptionController{Service: s}
}

// POST /service-options
func (ctl *ServiceOptionController) Create(c *gin.Context) {
	var in entity.CreateServiceOptionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	option, err := ctl.Service.Create(&in)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, option)
}

// GET /menus/:id/service-options
func (ctl *ServiceOptionController) ListByMenu(c *gin.Context) {
	options, err := ctl.Service.ListByMenu(pathID(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, options)
}
