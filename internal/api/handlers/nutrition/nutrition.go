package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"recipe-nutrition/internal/core/catalog"
	nutritionService "recipe-nutrition/internal/core/nutrition"
	"recipe-nutrition/internal/metrics"
	"recipe-nutrition/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecipeRequest 食譜營養計算請求；ingredients 保留原始 JSON 以便區分非陣列輸入
type RecipeRequest struct {
	Ingredients json.RawMessage `json:"ingredients"`
}

// Handler 食材營養處理程序
type Handler struct {
	service  *nutritionService.Service
	store    catalog.Store
	maxItems int
}

// NewHandler 創建新的食材營養處理程序
func NewHandler(service *nutritionService.Service, store catalog.Store, maxItems int) *Handler {
	return &Handler{
		service:  service,
		store:    store,
		maxItems: maxItems,
	}
}

// Register 註冊路由；admin 中間件只套用在寫入端點
func (h *Handler) Register(group *gin.RouterGroup, admin ...gin.HandlerFunc) {
	group.GET("", h.HandleList)
	group.GET("/:name", h.HandleGet)
	group.POST("/calculate", h.HandleCalculate)
	group.POST("/calculate-recipe", h.HandleCalculateRecipe)
	group.POST("/create", chain(admin, h.HandleCreate)...)
	group.DELETE("/:name", chain(admin, h.HandleDelete)...)
}

func chain(middleware []gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	handlers := make([]gin.HandlerFunc, 0, len(middleware)+1)
	handlers = append(handlers, middleware...)
	return append(handlers, handler)
}

// HandleList 列出所有食材（依名稱排序）
func (h *Handler) HandleList(c *gin.Context) {
	records, err := h.store.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, records)
}

// HandleGet 以名稱或別名取得單一食材
func (h *Handler) HandleGet(c *gin.Context) {
	name := c.Param("name")
	rec, err := h.store.FindByNameOrAlias(c.Request.Context(), catalog.Key(name))
	if err != nil {
		h.fail(c, err, name)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// HandleCalculate 計算單一食材營養
func (h *Handler) HandleCalculate(c *gin.Context) {
	requestID := requestid.Get(c)

	var item nutritionService.LineItem
	if err := common.DecodeJSON(c.Request.Body, &item); err != nil {
		h.badBody(c, err)
		return
	}
	if !item.Complete() {
		h.abort(c, common.ErrInvalidRequest, "name, quantity and unit are required")
		return
	}

	common.LogDebug("開始計算食材營養",
		zap.String("request_id", requestID),
		zap.String("ingredient", item.Name),
		zap.String("unit", item.Unit),
	)

	res, err := h.service.CalculateItem(c.Request.Context(), item)
	if err != nil {
		h.fail(c, err, item.Name)
		return
	}
	c.JSON(http.StatusOK, res)
}

// HandleCalculateRecipe 計算整份食譜營養
func (h *Handler) HandleCalculateRecipe(c *gin.Context) {
	requestID := requestid.Get(c)

	var req RecipeRequest
	if err := common.DecodeJSON(c.Request.Body, &req); err != nil {
		h.badBody(c, err)
		return
	}

	items, err := nutritionService.ParseLineItems(req.Ingredients)
	if err != nil {
		h.abort(c, common.ErrInvalidRecipeInput, "ingredients is required and must be an array")
		return
	}
	if h.maxItems > 0 && len(items) > h.maxItems {
		h.abort(c, common.ErrInvalidRecipeInput, fmt.Sprintf("at most %d ingredients per recipe", h.maxItems))
		return
	}

	agg, err := h.service.CalculateRecipe(c.Request.Context(), items)
	if err != nil {
		h.fail(c, err, "")
		return
	}

	common.LogInfo("食譜營養計算完成",
		zap.String("request_id", requestID),
		zap.Int("items", len(items)),
		zap.Float64("calories", agg.TotalNutrition.Calories),
	)
	c.JSON(http.StatusOK, agg)
}

// HandleCreate 新增或更新食材（管理端）
func (h *Handler) HandleCreate(c *gin.Context) {
	var ing nutritionService.Ingredient
	if err := common.DecodeJSON(c.Request.Body, &ing); err != nil {
		h.badBody(c, err)
		return
	}

	ctx := c.Request.Context()
	created, err := h.store.Upsert(ctx, ing)
	metrics.RecordCatalogOperation("upsert", err)
	if err != nil {
		h.fail(c, err, ing.Name)
		return
	}

	rec, err := h.store.FindByNameOrAlias(ctx, catalog.Key(ing.Name))
	if err != nil {
		h.fail(c, err, ing.Name)
		return
	}

	common.LogInfo("食材營養資料已儲存",
		zap.String("request_id", requestid.Get(c)),
		zap.String("ingredient", rec.Name),
		zap.Bool("created", created),
	)

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, rec)
}

// HandleDelete 刪除食材（管理端）
func (h *Handler) HandleDelete(c *gin.Context) {
	name := c.Param("name")
	err := h.store.Delete(c.Request.Context(), name)
	metrics.RecordCatalogOperation("delete", err)
	if err != nil {
		h.fail(c, err, name)
		return
	}

	common.LogInfo("食材營養資料已刪除",
		zap.String("request_id", requestid.Get(c)),
		zap.String("ingredient", catalog.Key(name)),
	)
	c.Status(http.StatusNoContent)
}

// badBody 請求體無法解析
func (h *Handler) badBody(c *gin.Context, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		h.abort(c, common.ErrEntityTooLarge, fmt.Sprintf("max %d bytes", maxErr.Limit))
		return
	}
	common.LogWarn("請求格式無效",
		zap.Error(err),
		zap.String("request_id", requestid.Get(c)),
	)
	h.abort(c, common.ErrInvalidRequest, "invalid JSON body")
}

// fail 將核心錯誤對應到 API 錯誤
func (h *Handler) fail(c *gin.Context, err error, subject string) {
	var e *common.CustomError
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		e = common.ErrIngredientNotFound
	case errors.Is(err, catalog.ErrAliasConflict):
		h.abort(c, common.ErrConflict, err.Error())
		return
	case errors.Is(err, catalog.ErrInvalidRecord):
		h.abort(c, common.ErrInvalidIngredient, err.Error())
		return
	case errors.Is(err, context.DeadlineExceeded):
		e = common.ErrGatewayTimeout
	default:
		e = common.ErrCatalogUnavailable.Wrap(err)
		common.LogError("Catalog operation failed",
			zap.Error(err),
			zap.String("request_id", requestid.Get(c)),
			zap.String("path", c.FullPath()),
		)
	}
	h.abort(c, e, subject)
}

func (h *Handler) abort(c *gin.Context, e *common.CustomError, details string) {
	_ = c.Error(e)
	c.AbortWithStatusJSON(e.Status, e.Response(details))
}
