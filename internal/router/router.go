package router

import (
	"time"

	"ofrendas/internal/app"
	"ofrendas/internal/config"
	"ofrendas/internal/handler"
	"ofrendas/internal/middleware"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
)

// New returns the configured Gin engine over the wired services.
// Dependency graph: Handler ← Service ← Repository ← Store / Remote gateway
func New(cfg *config.Config, a *app.App) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(600, time.Minute))

	// ── Handlers ─────────────────────────────────────────────────────────────
	semanaH := handler.NewSemanaActualHandler(a.Registros)
	semanasH := handler.NewSemanasHandler(a.Registros)
	nubeH := handler.NewNubeHandler(a.Nube)
	informesH := handler.NewInformesHandler(a.Informes)
	miembrosH := handler.NewMiembrosHandler(a.Miembros)
	categoriasH := handler.NewCategoriasHandler(a.Categorias)
	comisionadosH := handler.NewComisionadosHandler(a.Comisionados)
	ajustesH := handler.NewAjustesHandler(a.Ajustes)
	adminH := handler.NewAdminHandler(a.Admin)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(a.Store, a.Remoto))

	v1 := r.Group("/v1")
	{
		semana := v1.Group("/semana-actual")
		{
			semana.GET("", semanaH.Obtener)
			semana.POST("", semanaH.Crear)
			semana.DELETE("", semanaH.Descartar)
			semana.POST("/ofrendas", semanaH.AgregarOfrenda)
			semana.DELETE("/ofrendas/:id", semanaH.QuitarOfrenda)
			semana.GET("/resumen", semanaH.Resumen)
			semana.POST("/guardar", semanaH.Guardar)
		}

		semanas := v1.Group("/semanas")
		{
			semanas.GET("", semanasH.Listar)
			semanas.GET("/:id", semanasH.Obtener)
			semanas.PUT("/:id", semanasH.Actualizar)
			semanas.DELETE("/:id", semanasH.Eliminar)
			semanas.GET("/:id/resumen", semanasH.Resumen)
			semanas.GET("/:id/excel", semanasH.Excel)
			semanas.POST("/:id/subir", semanasH.Subir)
		}

		v1.GET("/nube/semanas", nubeH.ListarArchivos)
		v1.POST("/nube/semanas/cargar", nubeH.Cargar)
		v1.GET("/subidas", nubeH.Subidas)

		informes := v1.Group("/informes")
		{
			informes.POST("/cargar-datos", informesH.CargarDatos)
			informes.POST("/calcular", informesH.Calcular)
			informes.POST("/pdf", informesH.PDF)
			informes.GET("", informesH.Listar)
			informes.POST("", informesH.Guardar)
			informes.GET("/:id", informesH.Obtener)
			informes.DELETE("/:id", informesH.Eliminar)
		}
		v1.GET("/resumen-mensual", informesH.ResumenMensual)

		miembros := v1.Group("/miembros")
		{
			miembros.GET("", miembrosH.Listar)
			miembros.POST("", miembrosH.Crear)
			miembros.PUT("/:id", miembrosH.Actualizar)
			miembros.DELETE("/:id", miembrosH.Eliminar)
		}

		categorias := v1.Group("/categorias")
		{
			categorias.GET("", categoriasH.Listar)
			categorias.POST("", categoriasH.Crear)
			categorias.DELETE("/:id", categoriasH.Eliminar)
		}

		comisionados := v1.Group("/comisionados")
		{
			comisionados.GET("", comisionadosH.Listar)
			comisionados.POST("", comisionadosH.Crear)
			comisionados.PUT("/:id", comisionadosH.Actualizar)
			comisionados.DELETE("/:id", comisionadosH.Eliminar)
		}

		v1.GET("/formulas", ajustesH.Formulas)
		v1.PUT("/formulas", ajustesH.GuardarFormulas)
		v1.GET("/iglesia", ajustesH.Iglesia)
		v1.PUT("/iglesia", ajustesH.GuardarIglesia)
		v1.GET("/tema", ajustesH.Tema)
		v1.PUT("/tema", ajustesH.GuardarTema)

		v1.POST("/sincronizar", adminH.Sincronizar)
		v1.POST("/semilla", adminH.Semilla)
	}

	// Swagger UI outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
