package handler

import (
	"net/http"

	"store-ledger/internal/models"
	"store-ledger/internal/repository"
	"store-ledger/internal/statement"
	"store-ledger/internal/util"

	"github.com/gin-gonic/gin"
)

// StoreHandler 负责门店接口
type StoreHandler struct {
	Repo *repository.Repository
}

func NewStoreHandler(repo *repository.Repository) *StoreHandler {
	return &StoreHandler{Repo: repo}
}

type createStoreReq struct {
	Name               string `json:"name" binding:"required"`
	Status             string `json:"status" binding:"omitempty,oneof=active closed"`
	InitialBalance     string `json:"initial_balance"`      // 元，可为空或 0
	InitialBalanceDate string `json:"initial_balance_date"` // YYYY-MM-DD，为空表示不设期初
}

type storeResp struct {
	ID                 uint   `json:"id"`
	Name               string `json:"name"`
	Status             string `json:"status"`
	InitialBalance     string `json:"initial_balance"`
	InitialBalanceDate string `json:"initial_balance_date"`
}

// CreateStore 新建门店
func (h *StoreHandler) CreateStore(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req createStoreReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
		return
	}
	if err := util.ValidateName(req.Name, 64); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "门店名称不能为空且不超过64个字符")
		return
	}

	in := repository.StoreInput{Name: req.Name, Status: req.Status}
	if req.InitialBalance != "" && req.InitialBalance != "0" {
		cents, err := util.ParseAmountCents(req.InitialBalance)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "请输入有效的期初余额")
			return
		}
		in.InitialBalanceCent = cents
	}
	if req.InitialBalanceDate != "" {
		d, err := statement.ParseDate(req.InitialBalanceDate)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "期初日期格式应为 YYYY-MM-DD")
			return
		}
		in.OpeningDate = d
	}

	s, err := h.Repo.CreateStore(c.Request.Context(), user.CompanyID, in)
	if err != nil {
		fail(c, err, "保存失败，请重试")
		return
	}
	util.Success(c, util.Response{"store": toStoreResp(s)})
}

// ListStores 门店列表
func (h *StoreHandler) ListStores(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	rows, err := h.Repo.StoreRows(c.Request.Context(), user.CompanyID, nil)
	if err != nil {
		fail(c, err, "查询失败")
		return
	}

	out := make([]storeResp, 0, len(rows))
	for _, s := range rows {
		out = append(out, toStoreResp(s))
	}
	util.Success(c, util.Response{"stores": out})
}

func toStoreResp(s models.Store) storeResp {
	resp := storeResp{
		ID:             s.ID,
		Name:           s.Name,
		Status:         s.Status,
		InitialBalance: repository.CentsToDecimal(s.InitialBalanceCent).StringFixed(2),
	}
	if s.InitialBalanceDate != nil {
		resp.InitialBalanceDate = statement.DateOf(s.InitialBalanceDate.UTC()).String()
	}
	return resp
}
