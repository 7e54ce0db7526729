package handler

import (
	"net/http"
	"strconv"
	"time"

	"store-ledger/internal/repository"
	"store-ledger/internal/statement"
	"store-ledger/internal/util"

	"github.com/gin-gonic/gin"
)

// TransactionHandler 负责收支流水接口
type TransactionHandler struct {
	Repo     *repository.Repository
	PageSize int
	Location *time.Location // 判断“今天”用的时区
}

func NewTransactionHandler(repo *repository.Repository, pageSize int, loc *time.Location) *TransactionHandler {
	if pageSize <= 0 {
		pageSize = 20
	}
	if loc == nil {
		loc = time.UTC
	}
	return &TransactionHandler{Repo: repo, PageSize: pageSize, Location: loc}
}

type createTransactionReq struct {
	StoreID             *uint  `json:"store_id"`
	CategoryID          uint   `json:"category_id" binding:"required"`
	Amount              string `json:"amount" binding:"required"`
	Date                string `json:"date"` // YYYY-MM-DD，默认今天
	Note                string `json:"note" binding:"max=255"`
	CashFlowActivity    string `json:"cash_flow_activity" binding:"omitempty,oneof=operating investing financing"`
	TransactionNature   string `json:"transaction_nature" binding:"omitempty,oneof=operating non_operating income_tax"`
	IncludeInProfitLoss *bool  `json:"include_in_profit_loss"`
}

// CreateTransaction 记一笔
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req createTransactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
		return
	}

	// 金额校验：>0，最多两位小数
	amountCent, err := util.ParseAmountCents(req.Amount)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "请输入有效金额")
		return
	}

	// 交易日期：默认为今天；不能晚于今天
	today := statement.DateOf(time.Now().In(h.Location))
	date := today
	if req.Date != "" {
		if date, err = statement.ParseDate(req.Date); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "日期格式应为 YYYY-MM-DD")
			return
		}
	}
	if date.After(today) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "交易日期不能晚于今天")
		return
	}

	v, err := h.Repo.CreateTransaction(c.Request.Context(), user.CompanyID, repository.TransactionInput{
		StoreID:             req.StoreID,
		CategoryID:          req.CategoryID,
		AmountCent:          amountCent,
		Date:                date,
		Note:                req.Note,
		CashFlowActivity:    statement.Activity(req.CashFlowActivity),
		TransactionNature:   statement.Nature(req.TransactionNature),
		IncludeInProfitLoss: req.IncludeInProfitLoss,
		CreatedBy:           user.ID,
	})
	if err != nil {
		fail(c, err, "保存失败，请重试")
		return
	}
	util.Success(c, util.Response{"transaction": v})
}

// ListTransactions 流水列表，支持门店、分类、类型、日期范围筛选和分页
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(h.PageSize)))
	if size <= 0 || size > 200 {
		size = h.PageSize
	}

	f := repository.TransactionFilter{CompanyID: user.CompanyID}
	var err error
	if f.StoreIDs, err = util.ParseIDList(c.Query("store_ids")); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "门店参数不合法")
		return
	}
	if s := c.Query("category_id"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "分类参数不合法")
			return
		}
		f.CategoryID = uint(id)
	}
	if t := c.Query("type"); t != "" {
		if !statement.TxType(t).Valid() {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "类型参数不合法")
			return
		}
		f.Type = statement.TxType(t)
	}
	if s := c.Query("start"); s != "" {
		if f.Start, err = statement.ParseDate(s); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "开始日期格式应为 YYYY-MM-DD")
			return
		}
	}
	if s := c.Query("end"); s != "" {
		if f.End, err = statement.ParseDate(s); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "结束日期格式应为 YYYY-MM-DD")
			return
		}
	}

	items, total, err := h.Repo.PageTransactions(c.Request.Context(), f, page, size)
	if err != nil {
		fail(c, err, "查询失败")
		return
	}
	util.Success(c, util.Response{
		"items":     items,
		"total":     total,
		"page":      page,
		"page_size": size,
	})
}

// DeleteTransaction 删除一条流水
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.Repo.DeleteTransaction(c.Request.Context(), user.CompanyID, id); err != nil {
		fail(c, err, "删除失败")
		return
	}
	util.Success(c, util.Response{"message": "删除成功"})
}
