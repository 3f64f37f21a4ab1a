package admin

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"tcac/app/models/activity"
	"tcac/app/repositories"
	"tcac/pkg/response"
)

// ActivityController 日程活动控制器
type ActivityController struct {
	activityRepo *repositories.ActivityRepository
}

// NewActivityController 创建日程活动控制器
func NewActivityController() *ActivityController {
	return &ActivityController{
		activityRepo: repositories.NewActivityRepository(),
	}
}

// activityPayload 活动创建/更新的请求体
type activityPayload struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	StartAt     *time.Time `json:"start_at"`
	EndAt       *time.Time `json:"end_at"`
}

// Index 获取活动列表
// GET /api/admin/activities
func (ac *ActivityController) Index(c *gin.Context) {
	activities, err := ac.activityRepo.List(c.Request.Context())
	if err != nil {
		response.Abort500(c, "获取活动列表失败")
		return
	}
	response.Data(c, gin.H{"activities": activities})
}

// Store 创建活动
// POST /api/admin/activities
func (ac *ActivityController) Store(c *gin.Context) {
	var payload activityPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}

	item := activity.Activity{
		Name:        payload.Name,
		Description: payload.Description,
		Location:    payload.Location,
		StartAt:     payload.StartAt,
		EndAt:       payload.EndAt,
	}
	if err := ac.activityRepo.Create(c.Request.Context(), &item); err != nil {
		response.Abort500(c, "创建活动失败")
		return
	}

	response.Created(c, gin.H{"activity": item})
}

// Update 更新活动
// PUT /api/admin/activities/:id
func (ac *ActivityController) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Abort400(c, "无效的活动 ID")
		return
	}

	var payload activityPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}

	item := activity.Activity{
		Name:        payload.Name,
		Description: payload.Description,
		Location:    payload.Location,
		StartAt:     payload.StartAt,
		EndAt:       payload.EndAt,
	}
	updated, err := ac.activityRepo.Update(c.Request.Context(), id, &item)
	if err != nil {
		if errors.Is(err, repositories.ErrActivityNotFound) {
			response.Abort404(c, "活动不存在")
			return
		}
		response.Abort500(c, "更新活动失败")
		return
	}

	response.Data(c, gin.H{"activity": updated})
}

// Destroy 删除活动
// DELETE /api/admin/activities/:id
func (ac *ActivityController) Destroy(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Abort400(c, "无效的活动 ID")
		return
	}

	if err := ac.activityRepo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrActivityNotFound) {
			response.Abort404(c, "活动不存在")
			return
		}
		response.Abort500(c, "删除活动失败")
		return
	}

	response.Ok(c)
}

// parseID 解析路径中的数字 ID
func parseID(c *gin.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}
