package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-places-api/internal/core/apperr"
	"go-places-api/internal/service"
	mdw "go-places-api/internal/transport/http/middleware"
	resp "go-places-api/internal/transport/http/response"
)

type PlaceHandler struct {
	svc *service.PlaceService
}

func NewPlaceHandler(svc *service.PlaceService) *PlaceHandler { return &PlaceHandler{svc: svc} }

// GetByID GET /places/:pid
func (h *PlaceHandler) GetByID(c *gin.Context) {
	p, err := h.svc.GetByID(c.Request.Context(), c.Param("pid"))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, http.StatusOK, gin.H{"place": p})
}

// ListByUser GET /places/user/:uid。
// gin 的路由树不允许 :pid 与静态段 user 同级并存，
// 所以这条注册成 /places/:pid/:uid，在这里判定第一段
func (h *PlaceHandler) ListByUser(c *gin.Context) {
	if c.Param("pid") != "user" {
		resp.Fail(c, apperr.NotFound("Could not find this route."))
		return
	}
	ps, err := h.svc.GetByCreator(c.Request.Context(), c.Param("uid"))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, http.StatusOK, gin.H{"places": ps})
}

type createPlaceIn struct {
	Title       string `json:"title"       binding:"required"`
	Description string `json:"description" binding:"required,min=5"`
	Address     string `json:"address"     binding:"required"`
	Image       string `json:"image"       binding:"required"`
}

// Create POST /places（需登录）
func (h *PlaceHandler) Create(c *gin.Context) {
	var in createPlaceIn
	if err := c.ShouldBindJSON(&in); err != nil {
		bindFail(c, err, "Invalid inputs passed, please check your data.")
		return
	}
	p, err := h.svc.Create(c.Request.Context(), service.CreatePlaceInput{
		Title:       in.Title,
		Description: in.Description,
		Address:     in.Address,
		Image:       in.Image,
	}, c.GetString(mdw.KeyUserID))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, http.StatusCreated, gin.H{"place": p})
}

type updatePlaceIn struct {
	Title       string `json:"title"       binding:"required"`
	Description string `json:"description" binding:"required,min=5"`
}

// Update PATCH /places/:pid（仅 creator）
func (h *PlaceHandler) Update(c *gin.Context) {
	var in updatePlaceIn
	if err := c.ShouldBindJSON(&in); err != nil {
		bindFail(c, err, "Invalid inputs passed, please check your data.")
		return
	}
	p, err := h.svc.Update(c.Request.Context(), c.Param("pid"), in.Title, in.Description, c.GetString(mdw.KeyUserID))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, http.StatusOK, gin.H{"place": p})
}

// Delete DELETE /places/:pid（仅 creator）
func (h *PlaceHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("pid"), c.GetString(mdw.KeyUserID)); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, http.StatusOK, gin.H{"message": "Deleted place."})
}
