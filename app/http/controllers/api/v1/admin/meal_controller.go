package admin

import (
	"errors"

	"github.com/gin-gonic/gin"

	"tcac/app/models/meal"
	"tcac/app/repositories"
	"tcac/pkg/response"
)

// MealController 餐食安排控制器
type MealController struct {
	mealRepo *repositories.MealRepository
}

// NewMealController 创建餐食安排控制器
func NewMealController() *MealController {
	return &MealController{
		mealRepo: repositories.NewMealRepository(),
	}
}

// mealPayload 餐食创建/更新的请求体
type mealPayload struct {
	Name  string `json:"name" binding:"required"`
	Type  string `json:"type" binding:"required,oneof=breakfast lunch dinner"`
	DayID uint64 `json:"day_id"`
	Menu  string `json:"menu"`
}

// Index 获取餐食列表
// GET /api/admin/meals
func (mc *MealController) Index(c *gin.Context) {
	meals, err := mc.mealRepo.List(c.Request.Context())
	if err != nil {
		response.Abort500(c, "获取餐食列表失败")
		return
	}
	response.Data(c, gin.H{"meals": meals})
}

// Store 创建餐食
// POST /api/admin/meals
func (mc *MealController) Store(c *gin.Context) {
	var payload mealPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}

	item := meal.Meal{
		Name:  payload.Name,
		Type:  payload.Type,
		DayID: payload.DayID,
		Menu:  payload.Menu,
	}
	if err := mc.mealRepo.Create(c.Request.Context(), &item); err != nil {
		response.Abort500(c, "创建餐食失败")
		return
	}

	response.Created(c, gin.H{"meal": item})
}

// Update 更新餐食
// PUT /api/admin/meals/:id
func (mc *MealController) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Abort400(c, "无效的餐食 ID")
		return
	}

	var payload mealPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}

	item := meal.Meal{
		Name:  payload.Name,
		Type:  payload.Type,
		DayID: payload.DayID,
		Menu:  payload.Menu,
	}
	updated, err := mc.mealRepo.Update(c.Request.Context(), id, &item)
	if err != nil {
		if errors.Is(err, repositories.ErrMealNotFound) {
			response.Abort404(c, "餐食不存在")
			return
		}
		response.Abort500(c, "更新餐食失败")
		return
	}

	response.Data(c, gin.H{"meal": updated})
}

// Destroy 删除餐食
// DELETE /api/admin/meals/:id
func (mc *MealController) Destroy(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Abort400(c, "无效的餐食 ID")
		return
	}

	if err := mc.mealRepo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrMealNotFound) {
			response.Abort404(c, "餐食不存在")
			return
		}
		response.Abort500(c, "删除餐食失败")
		return
	}

	response.Ok(c)
}
