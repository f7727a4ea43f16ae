package main

import (
	"log"

	"github.com/Muhammad-Khairul-Kholqi/Be-Quiz-Kwezia/internal/config"
	"github.com/Muhammad-Khairul-Kholqi/Be-Quiz-Kwezia/internal/database"
	"github.com/Muhammad-Khairul-Kholqi/Be-Quiz-Kwezia/internal/handlers"
	"github.com/Muhammad-Khairul-Kholqi/Be-Quiz-Kwezia/internal/middleware"
	"github.com/Muhammad-Khairul-Kholqi/Be-Quiz-Kwezia/internal/services"

	_ "github.com/Muhammad-Khairul-Kholqi/Be-Quiz-Kwezia/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Kwezia Quiz API
// @version         1.0
// @description     Backend for the Kwezia quiz and blog platform
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	storage := services.NewStorageService(cfg.SupabaseURL, cfg.SupabaseKey)

	var mailer services.Mailer
	if cfg.SMTPHost != "" {
		mailer = services.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	} else {
		log.Println("SMTP_HOST not set, contact mail notifications disabled")
	}

	authService := services.NewAuthService(db, cfg.JWTSecret)
	userService := services.NewUserService(db)
	quizService := services.NewQuizService(db)
	quizCategoryService := services.NewQuizCategoryService(db)
	blogService := services.NewBlogService(db)
	blogCategoryService := services.NewBlogCategoryService(db)
	faqService := services.NewFAQService(db)
	avatarService := services.NewAvatarService(db)
	contactService := services.NewContactService(db, mailer, cfg.AdminEmail)
	attemptService := services.NewAttemptService(db)
	leaderboardService := services.NewLeaderboardService(db)
	statsService := services.NewStatsService(db)

	authHandler := handlers.NewAuthHandler(authService, userService)
	adminUserHandler := handlers.NewAdminUserHandler(userService)
	quizHandler := handlers.NewQuizHandler(quizService, storage, cfg.QuizBucket)
	quizCategoryHandler := handlers.NewQuizCategoryHandler(quizCategoryService)
	blogHandler := handlers.NewBlogHandler(blogService, storage, cfg.BlogBucket)
	blogCategoryHandler := handlers.NewBlogCategoryHandler(blogCategoryService)
	faqHandler := handlers.NewFAQHandler(faqService)
	avatarHandler := handlers.NewAvatarHandler(avatarService, userService, storage, cfg.AvatarBucket)
	contactHandler := handlers.NewContactHandler(contactService)
	attemptHandler := handlers.NewAttemptHandler(attemptService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	statsHandler := handlers.NewStatsHandler(statsService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "kwezia-api"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authed := middleware.JWTAuth(authService)
	admin := middleware.AdminOnly()

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/admin/login", authHandler.AdminLogin)
			auth.GET("/profile", authed, authHandler.Profile)
			auth.PUT("/profile/avatar", authed, avatarHandler.SelectAvatar)
			auth.DELETE("/profile/avatar", authed, avatarHandler.RemoveAvatar)
		}

		adminUsers := api.Group("/admin/users")
		adminUsers.Use(authed, admin)
		{
			adminUsers.GET("", adminUserHandler.ListUsers)
			adminUsers.GET("/:id", adminUserHandler.GetUser)
			adminUsers.DELETE("/:id", adminUserHandler.DeleteUser)
			adminUsers.PUT("/:id/role", adminUserHandler.UpdateUserRole)
		}

		quizzes := api.Group("/quizzes")
		{
			quizzes.GET("", quizHandler.ListQuizzes)
			quizzes.GET("/:id", quizHandler.GetQuiz)
			quizzes.GET("/category/:categoryId", quizHandler.GetQuizzesByCategory)
			quizzes.POST("", authed, admin, quizHandler.CreateQuiz)
			quizzes.PUT("/:id", authed, admin, quizHandler.UpdateQuiz)
			quizzes.DELETE("/:id", authed, admin, quizHandler.DeleteQuiz)
			quizzes.GET("/:id/export", authed, admin, quizHandler.ExportQuiz)
			quizzes.POST("/:id/import", authed, admin, quizHandler.ImportQuiz)
		}

		quizCategories := api.Group("/quiz-categories")
		{
			quizCategories.GET("", quizCategoryHandler.List)
			quizCategories.GET("/:id", quizCategoryHandler.Get)
			quizCategories.POST("", authed, admin, quizCategoryHandler.Create)
			quizCategories.PUT("/:id", authed, admin, quizCategoryHandler.Update)
			quizCategories.DELETE("/:id", authed, admin, quizCategoryHandler.Delete)
		}

		blogs := api.Group("/blogs")
		{
			blogs.GET("", blogHandler.ListBlogs)
			blogs.GET("/:id", blogHandler.GetBlog)
			blogs.GET("/category/:categoryId", blogHandler.GetBlogsByCategory)
			blogs.POST("", authed, admin, blogHandler.CreateBlog)
			blogs.PUT("/:id", authed, admin, blogHandler.UpdateBlog)
			blogs.DELETE("/:id", authed, admin, blogHandler.DeleteBlog)
		}

		blogCategories := api.Group("/blog-categories")
		{
			blogCategories.GET("", blogCategoryHandler.List)
			blogCategories.GET("/:id", blogCategoryHandler.Get)
			blogCategories.POST("", authed, admin, blogCategoryHandler.Create)
			blogCategories.PUT("/:id", authed, admin, blogCategoryHandler.Update)
			blogCategories.DELETE("/:id", authed, admin, blogCategoryHandler.Delete)
		}

		faqs := api.Group("/faqs")
		{
			faqs.GET("", faqHandler.ListFAQs)
			faqs.GET("/:id", faqHandler.GetFAQ)
			faqs.POST("", authed, admin, faqHandler.CreateFAQ)
			faqs.PUT("/:id", authed, admin, faqHandler.UpdateFAQ)
			faqs.DELETE("/:id", authed, admin, faqHandler.DeleteFAQ)
		}

		avatars := api.Group("/avatars")
		{
			avatars.GET("/active", avatarHandler.ListActiveAvatars)
			avatars.GET("/:id", avatarHandler.GetAvatar)
			avatars.GET("", authed, admin, avatarHandler.ListAvatars)
			avatars.POST("", authed, admin, avatarHandler.CreateAvatar)
			avatars.PUT("/:id", authed, admin, avatarHandler.UpdateAvatar)
			avatars.DELETE("/:id", authed, admin, avatarHandler.DeleteAvatar)
		}

		contact := api.Group("/contact")
		{
			contact.POST("/submit", contactHandler.SubmitContact)
			contact.GET("", authed, admin, contactHandler.ListContacts)
			contact.GET("/unread", authed, admin, contactHandler.ListUnreadContacts)
			contact.GET("/unread-count", authed, admin, contactHandler.UnreadCount)
			contact.GET("/:id", authed, admin, contactHandler.GetContact)
			contact.PATCH("/:id/read", authed, admin, contactHandler.MarkContactRead)
			contact.PATCH("/:id/unread", authed, admin, contactHandler.MarkContactUnread)
			contact.DELETE("/:id", authed, admin, contactHandler.DeleteContact)
		}

		attempts := api.Group("/attempts")
		{
			attempts.GET("/play/:quizId", authed, attemptHandler.PlayQuiz)
			attempts.POST("/submit/:quizId", authed, attemptHandler.SubmitQuiz)
			attempts.GET("/my-history", authed, attemptHandler.MyHistory)
			attempts.GET("/check/:quizId", authed, attemptHandler.CheckCompletion)
			attempts.GET("/quiz/:quizId/leaderboard", attemptHandler.QuizLeaderboard)
		}

		leaderboard := api.Group("/leaderboard")
		{
			leaderboard.GET("", leaderboardHandler.GlobalLeaderboard)
			leaderboard.GET("/user/:userId", leaderboardHandler.UserRank)
			leaderboard.GET("/me", authed, leaderboardHandler.MyRank)
			leaderboard.GET("/with-me", authed, leaderboardHandler.WithMe)
		}

		api.GET("/stats/public", statsHandler.PublicStats)
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
