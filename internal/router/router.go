package router

import (
	"net/http"

	"store-ledger/internal/config"
	"store-ledger/internal/handler"
	"store-ledger/internal/logger"
	"store-ledger/internal/middleware"
	"store-ledger/internal/report"
	"store-ledger/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter wires the Gin engine with middlewares and API routes.
func SetupRouter(cfg *config.Config, repo *repository.Repository, svc *report.Service, log *zap.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.ZapLogger(logger.Named(log, "http")))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ====== API ======
	api := r.Group("/api")
	db := repo.DB()

	// 登录/注册接口（不需要鉴权）
	authHandler := handler.NewAuthHandler(repo, cfg.JWT.Secret, cfg.JWT.Issuer,
		cfg.JWT.ExpireHours, cfg.Security.BcryptCost, logger.Named(log, "auth"))
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// 需要登录才能访问的接口
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.JWT.Secret, db))

	protected.GET("/me", handler.GetMe(db))
	protected.POST("/profile", handler.UpdateProfile(db))
	protected.POST("/profile/password", handler.ChangePassword(db, cfg.Security.BcryptCost))

	storeHandler := handler.NewStoreHandler(repo)
	protected.POST("/stores", storeHandler.CreateStore)
	protected.GET("/stores", storeHandler.ListStores)

	categoryHandler := handler.NewCategoryHandler(repo)
	protected.POST("/categories", categoryHandler.CreateCategory)
	protected.GET("/categories", categoryHandler.ListCategories)
	protected.PUT("/categories/:id", categoryHandler.RenameCategory)

	txHandler := handler.NewTransactionHandler(repo, cfg.App.PageSize, cfg.Location())
	protected.POST("/transactions", txHandler.CreateTransaction)
	protected.GET("/transactions", txHandler.ListTransactions)
	protected.DELETE("/transactions/:id", txHandler.DeleteTransaction)

	reportHandler := handler.NewReportHandler(svc)
	protected.GET("/reports/cash-flow", reportHandler.CashFlow)
	protected.GET("/reports/cash-flow/monthly", reportHandler.MonthlyCashFlow)
	protected.GET("/reports/profit-loss", reportHandler.ProfitLoss)
	protected.GET("/reports/stores", reportHandler.StoreComparison)

	exportHandler := handler.NewExportHandler(svc)
	protected.GET("/export/:report", exportHandler.Export)

	return r
}
