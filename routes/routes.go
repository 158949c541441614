package routes

import (
	"os"

	"github.com/Govind-619/EstateSphere/controllers"
	"github.com/Govind-619/EstateSphere/middleware"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	router := gin.Default()

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		sessionSecret = "estatesphere-dev-secret"
	}
	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{
		MaxAge:   60 * 60 * 24, // 1 day
		Path:     "/",
		Secure:   false, // Set to true in production with HTTPS
		HttpOnly: true,
	})
	router.Use(sessions.Sessions("estatesphere", store))

	api := router.Group("/v1")
	{
		api.POST("/login", controllers.Login)

		authed := api.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			initPropertyRoutes(authed)
			initOfferRoutes(authed)
			initCatalogRoutes(authed)

			admin := authed.Group("/admin")
			admin.Use(middleware.AdminMiddleware())
			{
				admin.POST("/offers/sweep", controllers.SweepExpiredOffers)
				admin.POST("/properties/mass-update", controllers.MassUpdatePropertyState)
			}
		}
	}

	return router
}

func initPropertyRoutes(rg *gin.RouterGroup) {
	properties := rg.Group("/properties")
	{
		properties.GET("", controllers.ListProperties)
		properties.GET("/top", controllers.TopProperties)
		properties.GET("/sold-report", controllers.SoldReport)
		properties.GET("/sold-report/excel", controllers.DownloadSoldReportExcel)
		properties.POST("", controllers.CreateProperty)
		properties.GET("/:id", controllers.GetProperty)
		properties.PUT("/:id", controllers.UpdateProperty)
		properties.DELETE("/:id", controllers.DeleteProperty)

		properties.POST("/:id/sold", controllers.MarkPropertySold)
		properties.POST("/:id/cancel", controllers.CancelProperty)
		properties.POST("/:id/accept-highest-offer", controllers.AcceptHighestOffer)
		properties.POST("/:id/cancel-accept-highest-offer", controllers.CancelAcceptHighestOffer)
		properties.POST("/:id/apply-discount", controllers.ApplyDiscount)
		properties.POST("/:id/cancel-discount", controllers.CancelDiscount)
		properties.POST("/:id/favourite", controllers.ToggleFavourite)

		properties.GET("/:id/offers", controllers.ListPropertyOffers)
		properties.GET("/:id/invoice", controllers.DownloadPropertyInvoice)
	}
}

func initOfferRoutes(rg *gin.RouterGroup) {
	offers := rg.Group("/offers")
	{
		offers.POST("", controllers.CreateOffer)
		offers.PUT("/:id", controllers.UpdateOffer)
		offers.POST("/:id/accept", controllers.AcceptOffer)
		offers.POST("/:id/refuse", controllers.RefuseOffer)
	}
}

func initCatalogRoutes(rg *gin.RouterGroup) {
	partners := rg.Group("/partners")
	{
		partners.GET("", controllers.ListPartners)
		partners.POST("", controllers.CreatePartner)
		partners.GET("/:id", controllers.GetPartner)
		partners.PUT("/:id", controllers.UpdatePartner)
		partners.DELETE("/:id", controllers.DeletePartner)
	}

	types := rg.Group("/property-types")
	{
		types.GET("", controllers.ListPropertyTypes)
		types.POST("", controllers.CreatePropertyType)
		types.PUT("/:id", controllers.UpdatePropertyType)
		types.DELETE("/:id", controllers.DeletePropertyType)
	}

	tags := rg.Group("/property-tags")
	{
		tags.GET("", controllers.ListPropertyTags)
		tags.POST("", controllers.CreatePropertyTag)
		tags.DELETE("/:id", controllers.DeletePropertyTag)
	}
}
