package config

import (
	"TasteBite-Backend/internal/api/handlers"
	"TasteBite-Backend/internal/api/routes"
	"TasteBite-Backend/internal/middleware"
	"TasteBite-Backend/internal/utils"
	"TasteBite-Backend/internal/utils/mailing"
	"TasteBite-Backend/internal/utils/storage"
	"TasteBite-Backend/pkg/collection"
	"TasteBite-Backend/pkg/comment"
	"TasteBite-Backend/pkg/jwt"
	"TasteBite-Backend/pkg/notification"
	"TasteBite-Backend/pkg/recipe"
	"TasteBite-Backend/pkg/shoppinglist"
	"TasteBite-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewSMTPMailer()

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	collectionRepository := collection.NewCollectionRepository(db)
	shoppingListRepository := shoppinglist.NewShoppingListRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)
	commentRepository := comment.NewCommentRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, collectionRepository)
	collectionService := collection.NewCollectionService(collectionRepository)
	shoppingListService := shoppinglist.NewShoppingListService(shoppingListRepository)
	notificationService := notification.NewNotificationService(notificationRepository, userRepository, mailer)
	commentService := comment.NewCommentService(commentRepository, recipeRepository, notificationService)

	// Handler
	recipeHandler := handlers.NewRecipeHandler(recipeService, userService, validator)
	collectionHandler := handlers.NewCollectionHandler(collectionService, userService, validator)
	shoppingListHandler := handlers.NewShoppingListHandler(shoppingListService, userService, validator)
	commentHandler := handlers.NewCommentHandler(commentService, userService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService, userService, validator)
	userHandler := handlers.NewUserHandler(userService, s3, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		RecipeHandler:       recipeHandler,
		CollectionHandler:   collectionHandler,
		ShoppingListHandler: shoppingListHandler,
		CommentHandler:      commentHandler,
		NotificationHandler: notificationHandler,
		UserHandler:         userHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
