package routes

import (
	"heavyhaul_shop/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs = "/jobs"
)

func addShopRoutes(
	rg *gin.RouterGroup,
	jobHandler *handlers.JobHandler,
	inspectionHandler *handlers.InspectionHandler,
	serviceJobHandler *handlers.ServiceJobHandler,
	invoiceHandler *handlers.InvoiceHandler,
) {
	jobs := rg.Group(PathJobs)
	{
		jobs.GET("", jobHandler.List)
		jobs.GET("/:id", jobHandler.GetDetail)
		jobs.PATCH("/:id", jobHandler.UpdateStatusAndDiagnosis)
		jobs.PATCH("/:id/technician", jobHandler.AssignTech)
		jobs.PATCH("/:id/archive", jobHandler.SetArchived)

		jobs.GET("/:id/inspection", inspectionHandler.GetReport)
		jobs.PUT("/:id/inspection", inspectionHandler.SaveWork)
		jobs.POST("/:id/inspection/migrate-service-lines", inspectionHandler.MigrateServiceLines)
		// Point names travel in the body: template point names contain "/".
		jobs.PATCH("/:id/checklist", inspectionHandler.SetChecklistPoint)
		jobs.PATCH("/:id/recommendations", inspectionHandler.UpdateRecommendation)
		// Public: the report link is the customer's credential.
		jobs.PATCH("/:id/recommendations/decision", inspectionHandler.Decide)

		jobs.POST("/:id/service-jobs", serviceJobHandler.AddJob)
		jobs.DELETE("/:id/service-jobs/:sjid", serviceJobHandler.RemoveJob)
		jobs.POST("/:id/service-jobs/:sjid/labor", serviceJobHandler.AddLaborLine)
		jobs.PATCH("/:id/service-jobs/:sjid/labor/:lineID", serviceJobHandler.UpdateLaborLine)
		jobs.DELETE("/:id/service-jobs/:sjid/labor/:lineID", serviceJobHandler.RemoveLaborLine)
		jobs.POST("/:id/service-jobs/:sjid/parts", serviceJobHandler.AddPartLine)
		jobs.PATCH("/:id/service-jobs/:sjid/parts/:lineID", serviceJobHandler.UpdatePartLine)
		jobs.DELETE("/:id/service-jobs/:sjid/parts/:lineID", serviceJobHandler.RemovePartLine)

		jobs.GET("/:id/invoice", invoiceHandler.GetInvoice)
		jobs.POST("/:id/invoice/payments", invoiceHandler.CreatePayment)
		jobs.GET("/:id/payments", invoiceHandler.ListPayments)
		jobs.GET("/:id/payments/:paymentID", invoiceHandler.GetPayment)
	}
}
