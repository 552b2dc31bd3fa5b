package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Daniele04-creator/UninaFoodLab-sub000/config"
	"github.com/Daniele04-creator/UninaFoodLab-sub000/internal/api/handler"
	"github.com/Daniele04-creator/UninaFoodLab-sub000/internal/api/middleware"
	"github.com/Daniele04-creator/UninaFoodLab-sub000/pkg/jwt"
	"github.com/Daniele04-creator/UninaFoodLab-sub000/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证；登录/注册限速防爆破）
		auth := v1.Group("/auth")
		{
			loginLimit := middleware.RateLimit(rdb, 10, time.Minute)
			auth.POST("/login", loginLimit, h.Auth.Login)
			auth.POST("/register", loginLimit, h.Auth.Register)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetCurrentChef)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// 课程模块
			courses := authorized.Group("/courses")
			{
				courses.GET("", h.Course.ListCourses)
				courses.GET("/argomenti", h.Course.ListArgomenti)
				courses.GET("/frequenze", h.Course.ListFrequenze)
				courses.GET("/:id", h.Course.GetCourse)
				courses.POST("", h.Course.CreateCourse)
				courses.PUT("/:id", h.Course.UpdateCourse)
				courses.DELETE("/:id", h.Course.DeleteCourse)

				// 会话子资源（全量替换语义）
				courses.GET("/:id/sessions", h.Session.ListByCourse)
				courses.PUT("/:id/sessions", h.Session.ReplaceForCourse)

				// 日历导出
				courses.GET("/:id/calendar.ics", h.Course.ExportCalendar)
			}

			// 会话模块（菜谱关联仅线下会话）
			sessions := authorized.Group("/sessions")
			{
				sessions.GET("/:id/recipes", h.Session.ListRecipes)
				sessions.POST("/:id/recipes", h.Session.AddRecipe)
				sessions.DELETE("/:id/recipes/:recipeId", h.Session.RemoveRecipe)
			}

			// 菜谱模块（全局目录）
			recipes := authorized.Group("/recipes")
			{
				recipes.GET("", h.Recipe.ListRecipes)
				recipes.GET("/:id", h.Recipe.GetRecipe)
				recipes.POST("", h.Recipe.CreateRecipe)
				recipes.PUT("/:id", h.Recipe.UpdateRecipe)
				recipes.DELETE("/:id", h.Recipe.DeleteRecipe)
			}

			// 报表模块
			reports := authorized.Group("/reports")
			{
				reports.GET("/monthly", h.Report.Monthly)
				reports.GET("/monthly/export", h.Report.ExportMonthly)
			}
		}
	}

	return r
}
