package router

import (
	"github.com/JFRG28/money-monitor-vWeb/api"
	"github.com/JFRG28/money-monitor-vWeb/config"
	_ "github.com/JFRG28/money-monitor-vWeb/docs"
	"github.com/JFRG28/money-monitor-vWeb/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter configura las rutas del API
func SetupRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.Recovery(cfg))
	r.Use(middleware.CORS(cfg))
	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimit(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window))
	}

	// Documentación Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Verificación de estado
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	apiGroup := r.Group("/api")
	{
		gastoHandler := api.NewGastoHandler()
		gastos := apiGroup.Group("/gastos")
		{
			gastos.GET("", gastoHandler.List)
			gastos.POST("", gastoHandler.Create)
			gastos.GET("/msi-mci", gastoHandler.ListMsiMci)
			gastos.GET("/:id", gastoHandler.Get)
			gastos.PUT("/:id", gastoHandler.Update)
			gastos.DELETE("/:id", gastoHandler.Delete)
		}

		balanceHandler := api.NewBalanceHandler(cfg)
		balance := apiGroup.Group("/balance")
		{
			balance.GET("", balanceHandler.List)
			balance.POST("", balanceHandler.Create)
			balance.GET("/:id", balanceHandler.Get)
			balance.PUT("/:id", balanceHandler.Update)
			balance.DELETE("/:id", balanceHandler.Delete)
		}

		deudaHandler := api.NewDeudaHandler()
		deudas := apiGroup.Group("/deudas")
		{
			deudas.GET("", deudaHandler.List)
			deudas.POST("", deudaHandler.Create)
			deudas.GET("/:id", deudaHandler.Get)
			deudas.PUT("/:id", deudaHandler.Update)
			deudas.DELETE("/:id", deudaHandler.Delete)
		}

		dashboardHandler := api.NewDashboardHandler()
		apiGroup.GET("/dashboard", dashboardHandler.Get)

		catalogoHandler := api.NewCatalogoHandler()
		catalogos := apiGroup.Group("/catalogos")
		{
			catalogos.GET("", catalogoHandler.GetAll)
			catalogos.GET("/tipos-gasto", catalogoHandler.GetTiposGasto)
			catalogos.GET("/categorias", catalogoHandler.GetCategorias)
			catalogos.GET("/formas-pago", catalogoHandler.GetFormasPago)
			catalogos.GET("/meses", catalogoHandler.GetMeses)
			catalogos.GET("/tags", catalogoHandler.GetTags)
		}

		exportHandler := api.NewExportHandler()
		apiGroup.GET("/export/excel", exportHandler.ExportExcel)
	}

	return r
}
