package admin

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"tcac/app/models/day"
	"tcac/app/repositories"
	"tcac/pkg/response"
)

// DayController 活动日控制器
type DayController struct {
	dayRepo *repositories.DayRepository
}

// NewDayController 创建活动日控制器
func NewDayController() *DayController {
	return &DayController{
		dayRepo: repositories.NewDayRepository(),
	}
}

// dayPayload 活动日创建/更新的请求体
type dayPayload struct {
	Title string     `json:"title" binding:"required"`
	Date  *time.Time `json:"date"`
	Theme string     `json:"theme"`
}

// Index 获取活动日列表
// GET /api/admin/days
func (dc *DayController) Index(c *gin.Context) {
	days, err := dc.dayRepo.List(c.Request.Context())
	if err != nil {
		response.Abort500(c, "获取活动日列表失败")
		return
	}
	response.Data(c, gin.H{"days": days})
}

// Store 创建活动日
// POST /api/admin/days
func (dc *DayController) Store(c *gin.Context) {
	var payload dayPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}

	item := day.Day{
		Title: payload.Title,
		Date:  payload.Date,
		Theme: payload.Theme,
	}
	if err := dc.dayRepo.Create(c.Request.Context(), &item); err != nil {
		response.Abort500(c, "创建活动日失败")
		return
	}

	response.Created(c, gin.H{"day": item})
}

// Update 更新活动日
// PUT /api/admin/days/:id
func (dc *DayController) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Abort400(c, "无效的活动日 ID")
		return
	}

	var payload dayPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}

	item := day.Day{
		Title: payload.Title,
		Date:  payload.Date,
		Theme: payload.Theme,
	}
	updated, err := dc.dayRepo.Update(c.Request.Context(), id, &item)
	if err != nil {
		if errors.Is(err, repositories.ErrDayNotFound) {
			response.Abort404(c, "活动日不存在")
			return
		}
		response.Abort500(c, "更新活动日失败")
		return
	}

	response.Data(c, gin.H{"day": updated})
}

// Destroy 删除活动日
// DELETE /api/admin/days/:id
func (dc *DayController) Destroy(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Abort400(c, "无效的活动日 ID")
		return
	}

	if err := dc.dayRepo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrDayNotFound) {
			response.Abort404(c, "活动日不存在")
			return
		}
		response.Abort500(c, "删除活动日失败")
		return
	}

	response.Ok(c)
}
