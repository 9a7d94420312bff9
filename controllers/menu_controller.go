// controllers/menu_controller.go
package controllers

import (
	"backend/entity"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Service: s}
}

// POST /menus
func (ctl *MenuController) Create(c *gin.Context) {
	var in entity.CreateMenuInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	menu, err := ctl.Service.Create(&in)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, menu)
}

// GET /menus
func (ctl *MenuController) List(c *gin.Context) {
	menus, err := ctl.Service.List()
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, menus)
}

// GET /menus/:id
func (ctl *MenuController) Get(c *gin.Context) {
	menu, err := ctl.Service.Get(pathID(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if menu == nil {
		resp.NotFound(c, "menu not found")
		return
	}
	resp.OK(c, menu)
}
