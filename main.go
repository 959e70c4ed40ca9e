package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"gin-boutique/constants"
	"gin-boutique/controllers"
	"gin-boutique/infra"
	"gin-boutique/libs"
	"gin-boutique/middlewares"
	"gin-boutique/models"
	"gin-boutique/repositories"
	"gin-boutique/services"
	"gin-boutique/templates"
	"gin-boutique/validators"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

const tokenCleanupInterval = time.Hour

func setupRouter(db *gorm.DB, tokenRepository repositories.ITokenRepository, fileStore libs.IFileStore, cfg *infra.Config) *gin.Engine {
	productRepository := repositories.NewProductRepository(db)
	userRepository := repositories.NewUserRepository(db)

	productService := services.NewProductService(productRepository, userRepository, fileStore)
	cartService := services.NewCartService(productService, userRepository)
	authService := services.NewAuthService(userRepository, tokenRepository, cfg.SecretKey, cfg.TokenTTL)

	adminController := controllers.NewAdminController(productService, validators.NewProductValidator(), cfg.MaxUploadSize)
	shopController := controllers.NewShopController(productService)
	cartController := controllers.NewCartController(cartService)
	authController := controllers.NewAuthController(authService, cfg.TokenTTL, cfg.Env == "prod")

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middlewares.Metrics(), middlewares.ErrorHandler())
	r.Use(cors.Default())
	r.SetHTMLTemplate(templates.Load())
	r.Static(infra.LocalImageURLPrefix, cfg.UploadDir)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/", shopController.GetIndex)

	authRouter := r.Group("/auth")
	cartRouter := r.Group("/cart", middlewares.AuthMiddleware(authService))
	adminRouter := r.Group("/admin", middlewares.AuthMiddleware(authService), middlewares.RoleBasedAccessControl(constants.RoleAdmin))

	authRouter.POST("/signup", authController.Signup)
	authRouter.POST("/login", authController.Login)
	authRouter.POST("/logout", authController.Logout)

	cartRouter.GET("", cartController.GetCart)
	cartRouter.POST("", cartController.PostCart)

	adminRouter.GET("/add-product", adminController.GetAddProduct)
	adminRouter.POST("/add-product", adminController.PostAddProduct)
	adminRouter.GET("/edit-product/:productId", adminController.GetEditProduct)
	adminRouter.POST("/edit-product", adminController.PostEditProduct)
	adminRouter.GET("/products", adminController.GetProducts)
	adminRouter.DELETE("/product/:productId", adminController.DeleteProduct)
	adminRouter.POST("/delete-product/:productId", adminController.DeleteProduct)

	return r
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Product{}, &models.BlacklistedToken{})
}

// seedAdminAccount creates the configured admin user if it does not exist yet.
func seedAdminAccount(ctx context.Context, db *gorm.DB, cfg *infra.Config) error {
	_, err := services.SeedAdminAccount(ctx, db, cfg.AdminEmail, cfg.AdminPassword)
	return err
}

func setupTokenRepository(cfg *infra.Config) repositories.ITokenRepository {
	if client := infra.SetupRedis(cfg); client != nil {
		return repositories.NewRedisTokenRepository(client)
	}

	tokenDB := infra.SetupTokenDB()
	// トークンブラックリスト用のマイグレーション
	if err := tokenDB.AutoMigrate(&models.BlacklistedToken{}); err != nil {
		log.Printf("Failed to migrate token blacklist database: %v", err)
	}
	return repositories.NewTokenRepository(tokenDB)
}

func cleanExpiredTokens(ctx context.Context, tokenRepository repositories.ITokenRepository) {
	ticker := time.NewTicker(tokenCleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := tokenRepository.CleanExpiredTokens(); err != nil {
				log.Printf("Failed to clean expired tokens: %v", err)
			}
		}
	}
}

func main() {
	infra.Initialize()
	cfg := infra.LoadConfig()
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := infra.SetupDB()
	if cfg.AutoMigrate {
		if err := migrate(db); err != nil {
			panic("Failed to migrate database")
		}
	}
	if err := seedAdminAccount(ctx, db, cfg); err != nil {
		log.Printf("Failed to seed admin account: %v", err)
	}

	fileStore, err := infra.SetupFileStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to setup file store: %v", err)
	}
	tokenRepository := setupTokenRepository(cfg)
	go cleanExpiredTokens(ctx, tokenRepository)

	r := setupRouter(db, tokenRepository, fileStore, cfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	stop()

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
