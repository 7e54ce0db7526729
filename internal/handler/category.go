package handler

import (
	"net/http"

	"store-ledger/internal/models"
	"store-ledger/internal/repository"
	"store-ledger/internal/statement"
	"store-ledger/internal/util"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 负责收支分类接口
type CategoryHandler struct {
	Repo *repository.Repository
}

func NewCategoryHandler(repo *repository.Repository) *CategoryHandler {
	return &CategoryHandler{Repo: repo}
}

type createCategoryReq struct {
	Type                string `json:"type" binding:"required,oneof=income expense"`
	Name                string `json:"name" binding:"required"`
	CashFlowActivity    string `json:"cash_flow_activity" binding:"omitempty,oneof=operating investing financing"`
	TransactionNature   string `json:"transaction_nature" binding:"omitempty,oneof=operating non_operating income_tax"`
	IncludeInProfitLoss *bool  `json:"include_in_profit_loss"`
}

type renameCategoryReq struct {
	Name string `json:"name" binding:"required"`
}

type categoryResp struct {
	ID                  uint   `json:"id"`
	Type                string `json:"type"`
	Name                string `json:"name"`
	CashFlowActivity    string `json:"cash_flow_activity"`
	TransactionNature   string `json:"transaction_nature"`
	IncludeInProfitLoss *bool  `json:"include_in_profit_loss"`
	IsSystem            bool   `json:"is_system"`
}

func toCategoryResp(c models.Category) categoryResp {
	return categoryResp{
		ID:                  c.ID,
		Type:                c.Type,
		Name:                c.Name,
		CashFlowActivity:    c.CashFlowActivity,
		TransactionNature:   c.TransactionNature,
		IncludeInProfitLoss: c.IncludeInProfitLoss,
		IsSystem:            c.IsSystem,
	}
}

// CreateCategory 新建自定义分类
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req createCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
		return
	}
	if err := util.ValidateName(req.Name, 32); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "分类名称不能为空且不超过32个字符")
		return
	}

	cat, err := h.Repo.CreateCategory(c.Request.Context(), user.CompanyID, repository.CategoryInput{
		Type:                statement.TxType(req.Type),
		Name:                req.Name,
		CashFlowActivity:    statement.Activity(req.CashFlowActivity),
		TransactionNature:   statement.Nature(req.TransactionNature),
		IncludeInProfitLoss: req.IncludeInProfitLoss,
	})
	if err != nil {
		fail(c, err, "保存失败，请重试")
		return
	}
	util.Success(c, util.Response{"category": toCategoryResp(cat)})
}

// ListCategories 分类列表，可按 type 过滤
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	rows, err := h.Repo.CategoryRows(c.Request.Context(), user.CompanyID)
	if err != nil {
		fail(c, err, "查询失败")
		return
	}

	typ := c.Query("type")
	out := make([]categoryResp, 0, len(rows))
	for _, cat := range rows {
		if typ != "" && cat.Type != typ {
			continue
		}
		out = append(out, toCategoryResp(cat))
	}
	util.Success(c, util.Response{"categories": out})
}

// RenameCategory 修改分类名称，历史流水同步更新
func (h *CategoryHandler) RenameCategory(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req renameCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
		return
	}
	if err := util.ValidateName(req.Name, 32); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "分类名称不能为空且不超过32个字符")
		return
	}

	cat, err := h.Repo.RenameCategory(c.Request.Context(), user.CompanyID, id, req.Name)
	if err != nil {
		fail(c, err, "保存失败，请重试")
		return
	}
	util.Success(c, util.Response{"category": toCategoryResp(cat)})
}
