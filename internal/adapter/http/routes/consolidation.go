package routes

import (
	"cobranzas_art/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathConsolidations = "/consolidations"
	PathNotices        = "/notices"
)

func addConsolidationRoutes(rg *gin.RouterGroup, consolidationHandler *handlers.ConsolidationHandler, noticeHandler *handlers.NoticeHandler) {
	consolidations := rg.Group(PathConsolidations)
	{
		consolidations.POST("", consolidationHandler.RunConsolidation)
		consolidations.GET("", consolidationHandler.ListLots)
		consolidations.GET("/:id", consolidationHandler.GetLot)
		consolidations.GET("/:id/workbook", consolidationHandler.DownloadWorkbook)
	}

	notices := rg.Group(PathNotices)
	{
		notices.POST("", noticeHandler.SendNotices)
		notices.GET("/log", noticeHandler.GetSendLog)
	}
}
