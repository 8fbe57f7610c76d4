package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	blogHandler "pcstore-backend/internal/domains/blog/handler"
	buildHandler "pcstore-backend/internal/domains/build/handler"
	builderHandler "pcstore-backend/internal/domains/builder/handler"
	cartHandler "pcstore-backend/internal/domains/cart/handler"
	courseHandler "pcstore-backend/internal/domains/course/handler"
	orderHandler "pcstore-backend/internal/domains/order/handler"
	productHandler "pcstore-backend/internal/domains/product/handler"
	userHandler "pcstore-backend/internal/domains/user/handler"
	"pcstore-backend/internal/shared/middleware"
	"pcstore-backend/pkg/container"
)

func setupRouter(c *container.Container) *gin.Engine {
	if c.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())

	router.GET("/health", healthHandler(c))

	products := productHandler.NewProductHandler(c.ProductService)
	builder := builderHandler.NewBuilderHandler(c.BuilderService)
	builds := buildHandler.NewBuildHandler(c.BuildService)
	cart := cartHandler.NewCartHandler(c.CartService)
	orders := orderHandler.NewOrderHandler(c.OrderService)
	users := userHandler.NewUserHandler(c.UserService)
	blog := blogHandler.NewBlogHandler(c.BlogService)
	courses := courseHandler.NewCourseHandler(c.CourseService)

	jwtSecret := c.Config.JWT.Secret
	v1 := router.Group("/api/v1")

	// Public catalog
	v1.GET("/products", products.ListProducts)
	v1.GET("/products/featured", products.ListFeatured)
	v1.GET("/products/by-slug/:slug", products.GetProductBySlug)
	v1.GET("/products/:id", products.GetProduct)

	// PC builder. Sessions are anonymous; saving a build needs a logged-in
	// user, so the whole group runs behind optional auth.
	b := v1.Group("/builder", middleware.OptionalAuthMiddleware(jwtSecret))
	{
		b.GET("/slots", builder.ListSlots)
		b.GET("/components/:category", builder.ListComponents)
		b.POST("/sessions", builder.CreateSession)
		b.GET("/sessions/:id", builder.GetSession)
		b.PUT("/sessions/:id/components", builder.SelectComponent)
		b.DELETE("/sessions/:id/components/:category", builder.RemoveComponent)
		b.POST("/builds", builder.SaveBuild)
	}

	// Auth
	auth := v1.Group("/auth")
	{
		auth.POST("/register", users.Register)
		auth.POST("/login", users.Login)
		auth.POST("/refresh", users.Refresh)

		me := auth.Group("", middleware.AuthMiddleware(jwtSecret))
		me.GET("/me", users.Me)
		me.PUT("/me", users.UpdateProfile)
	}

	// Community builds
	v1.GET("/builds", middleware.OptionalAuthMiddleware(jwtSecret), builds.ListPublic)
	v1.GET("/builds/mine", middleware.AuthMiddleware(jwtSecret), builds.ListMine)
	v1.GET("/builds/:id", middleware.OptionalAuthMiddleware(jwtSecret), builds.GetBuild)

	bldAuthed := v1.Group("/builds", middleware.AuthMiddleware(jwtSecret))
	{
		bldAuthed.PUT("/:id", builds.UpdateBuild)
		bldAuthed.DELETE("/:id", builds.DeleteBuild)
		bldAuthed.POST("/:id/like", builds.Like)
		bldAuthed.DELETE("/:id/like", builds.Unlike)
		bldAuthed.POST("/:id/comments", builds.AddComment)
		bldAuthed.DELETE("/comments/:id", builds.DeleteComment)
	}

	// Cart and orders
	crt := v1.Group("/cart", middleware.AuthMiddleware(jwtSecret))
	{
		crt.GET("", cart.GetCart)
		crt.POST("/items", cart.AddItem)
		crt.PUT("/items/:id", cart.UpdateItem)
		crt.DELETE("/items/:id", cart.RemoveItem)
		crt.DELETE("", cart.ClearCart)
	}

	ord := v1.Group("/orders", middleware.AuthMiddleware(jwtSecret))
	{
		ord.POST("/checkout", orders.Checkout)
		ord.GET("", orders.ListOrders)
		ord.GET("/:id", orders.GetOrder)
	}

	// Blog
	v1.GET("/blog", blog.ListPosts)
	v1.GET("/blog/:slug", blog.GetPost)

	// Courses
	v1.GET("/courses", courses.ListCourses)
	v1.GET("/courses/by-slug/:slug", courses.GetCourse)
	v1.GET("/courses/lessons/:id/quiz", courses.GetQuiz)

	crs := v1.Group("/courses", middleware.AuthMiddleware(jwtSecret))
	{
		crs.GET("/enrollments", courses.ListMyEnrollments)
		crs.POST("/:id/enroll", courses.Enroll)
		crs.GET("/:id/progress", courses.GetProgress)
		crs.POST("/lessons/:id/complete", courses.CompleteLesson)
		crs.POST("/lessons/:id/quiz", courses.SubmitQuizAnswer)
	}

	// Admin surface
	admin := v1.Group("/admin", middleware.AuthMiddleware(jwtSecret), middleware.AdminMiddleware())
	{
		admin.POST("/products", products.CreateProduct)
		admin.PUT("/products/:id", products.UpdateProduct)
		admin.DELETE("/products/:id", products.DeleteProduct)
		admin.POST("/products/:id/image", products.UploadImage)
		admin.GET("/products/export", products.ExportProducts)

		admin.GET("/orders", orders.ListAllOrders)
		admin.PUT("/orders/:id/status", orders.UpdateStatus)

		admin.GET("/users", users.ListUsers)
		admin.PUT("/users/:id/role", users.UpdateRole)
	}

	// Content management is open to moderators as well
	staff := v1.Group("/admin", middleware.AuthMiddleware(jwtSecret), middleware.ModeratorMiddleware())
	{
		staff.GET("/blog", blog.ListAllPosts)
		staff.POST("/blog", blog.CreatePost)
		staff.PUT("/blog/:id", blog.UpdatePost)
		staff.DELETE("/blog/:id", blog.DeletePost)
		staff.PUT("/blog/:id/publish", blog.PublishPost)
		staff.PUT("/blog/:id/unpublish", blog.UnpublishPost)

		staff.GET("/courses", courses.ListAllCourses)
		staff.POST("/courses", courses.CreateCourse)
		staff.PUT("/courses/:id", courses.UpdateCourse)
		staff.DELETE("/courses/:id", courses.DeleteCourse)
		staff.POST("/courses/:id/lessons", courses.CreateLesson)
		staff.PUT("/courses/lessons/:id", courses.UpdateLesson)
		staff.DELETE("/courses/lessons/:id", courses.DeleteLesson)
		staff.POST("/courses/lessons/:id/quiz", courses.CreateQuiz)
		staff.DELETE("/courses/quizzes/:id", courses.DeleteQuiz)
	}

	return router
}

func healthHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		checks := gin.H{"database": "ok", "cache": "ok"}

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			checks["database"] = err.Error()
			status = http.StatusServiceUnavailable
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			checks["cache"] = err.Error()
			status = http.StatusServiceUnavailable
		}

		ctx.JSON(status, gin.H{
			"status":  checks,
			"version": c.Config.App.Version,
		})
	}
}
