package routes

import (
	"github.com/blogapp/blogapp_backend/internal/config"
	"github.com/blogapp/blogapp_backend/internal/controllers"
	"github.com/blogapp/blogapp_backend/internal/middlewares"
	"github.com/blogapp/blogapp_backend/internal/repository"
	"github.com/blogapp/blogapp_backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter ルーターを設定
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())

	// ミドルウェアを設定
	r.Use(middlewares.RecoveryMiddleware())
	r.Use(middlewares.CORSMiddleware())

	// リポジトリを作成
	userRepo := repository.NewUserRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// サービスを作成
	fileService := services.NewFileService(cfg)
	sessionService := services.NewSessionService(cfg)
	authService := services.NewAuthService(userRepo, fileService)
	blogService := services.NewBlogService(blogRepo, fileService)
	commentService := services.NewCommentService(commentRepo, blogRepo)
	userService := services.NewUserService(userRepo, blogRepo, commentRepo)

	// コントローラーを作成
	authController := controllers.NewAuthController(authService, sessionService)
	blogController := controllers.NewBlogController(blogService, sessionService)
	commentController := controllers.NewCommentController(commentService)
	userController := controllers.NewUserController(userService, blogService)
	healthController := controllers.NewHealthController()

	// 認証ミドルウェア
	authMiddleware := middlewares.AuthMiddleware(sessionService)

	// アップロード済み画像の配信
	r.Static("/uploads", fileService.UploadDir())

	// APIグループを作成
	api := r.Group("/api/v1")
	{
		// ヘルスチェックルート（認証不要）
		api.GET("/health", healthController.Check)

		// 認証ルート
		auth := api.Group("/auth")
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
			auth.POST("/logout", authMiddleware, authController.Logout)
			auth.GET("/me", authMiddleware, authController.GetMe)
			auth.GET("/flash", authMiddleware, authController.GetFlash)
		}

		// ブログルート
		blogs := api.Group("/blogs")
		{
			// 認証不要
			blogs.GET("", blogController.List)
			blogs.GET("/:id", blogController.GetByID)

			// コメントは認証済みユーザーにのみ公開する
			blogs.GET("/:id/comments", authMiddleware, commentController.List)
			blogs.POST("/:id/comments", authMiddleware, commentController.Create)

			// 認証が必要
			blogs.POST("", authMiddleware, blogController.Create)
			blogs.DELETE("/:id", authMiddleware, blogController.Delete)
		}

		// コメントルート
		comments := api.Group("/comments")
		{
			comments.DELETE("/:id", authMiddleware, commentController.Delete)
		}

		// ユーザールート
		users := api.Group("/users")
		{
			users.GET("/me/profile", authMiddleware, userController.GetProfile)
			users.GET("/me/blogs", authMiddleware, userController.GetMyBlogs)
		}
	}

	return r
}
