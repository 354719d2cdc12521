package routes

import (
	"TasteBite-Backend/internal/api/handlers"
	"TasteBite-Backend/internal/middleware"
	"TasteBite-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	RecipeHandler       handlers.RecipeHandler
	CollectionHandler   handlers.CollectionHandler
	ShoppingListHandler handlers.ShoppingListHandler
	CommentHandler      handlers.CommentHandler
	NotificationHandler handlers.NotificationHandler
	UserHandler         handlers.UserHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Recipes()
	c.Collections()
	c.ShoppingLists()
	c.Notifications()
	c.Users()
	c.GuestRoute()
}

func (c *Config) Recipes() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	optional := c.Middleware.OptionalAuthMiddleware(c.JWTService)

	recipes := c.App.Group("/api/v1/recipes")
	{
		recipes.Get("", optional, c.RecipeHandler.GetRecipes)
		recipes.Post("", auth, c.RecipeHandler.CreateRecipe)
		recipes.Get("/:id", optional, c.RecipeHandler.GetRecipeDetail)
		recipes.Patch("/:id", auth, c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", auth, c.RecipeHandler.DeleteRecipe)
		recipes.Post("/:id/photos", auth, c.RecipeHandler.AddPhoto)
		recipes.Put("/:id/tags", auth, c.RecipeHandler.SetTags)
		recipes.Post("/:id/favorite", auth, c.RecipeHandler.ToggleFavorite)
		recipes.Get("/:id/favorite", auth, c.RecipeHandler.GetFavoriteStatus)

		recipes.Get("/:id/comments", optional, c.CommentHandler.GetComments)
		recipes.Post("/:id/comments", auth, c.CommentHandler.AddComment)
		recipes.Post("/:id/comments/:commentId/pin", auth, c.CommentHandler.TogglePin)
	}

	comments := c.App.Group("/api/v1/comments", auth)
	{
		comments.Delete("/:commentId", c.CommentHandler.DeleteComment)
		comments.Post("/:commentId/reactions", c.CommentHandler.ToggleReaction)
	}
}

func (c *Config) Collections() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	optional := c.Middleware.OptionalAuthMiddleware(c.JWTService)

	collections := c.App.Group("/api/v1/collections")
	{
		collections.Get("", auth, c.CollectionHandler.GetCollections)
		collections.Post("", auth, c.CollectionHandler.CreateCollection)
		collections.Get("/:id", optional, c.CollectionHandler.GetCollectionDetail)
		collections.Patch("/:id", auth, c.CollectionHandler.UpdateCollection)
		collections.Delete("/:id", auth, c.CollectionHandler.DeleteCollection)
		collections.Post("/:id/recipes", auth, c.CollectionHandler.AddRecipe)
		collections.Delete("/:id/recipes/:recipeId", auth, c.CollectionHandler.RemoveRecipe)
	}
}

func (c *Config) ShoppingLists() {
	lists := c.App.Group("/api/v1/shopping-lists", c.Middleware.AuthMiddleware(c.JWTService))
	{
		lists.Get("", c.ShoppingListHandler.GetShoppingLists)
		lists.Post("", c.ShoppingListHandler.CreateShoppingList)
		lists.Get("/:id", c.ShoppingListHandler.GetShoppingList)
		lists.Patch("/:id", c.ShoppingListHandler.UpdateShoppingList)
		lists.Delete("/:id", c.ShoppingListHandler.DeleteShoppingList)
		lists.Post("/:id/items", c.ShoppingListHandler.AddItems)
		lists.Patch("/:id/items/:itemId", c.ShoppingListHandler.UpdateItem)
		lists.Delete("/:id/items/:itemId", c.ShoppingListHandler.DeleteItem)
		lists.Get("/:id/export", c.ShoppingListHandler.ExportShoppingList)
	}
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/v1/notifications", c.Middleware.AuthMiddleware(c.JWTService))
	{
		notifications.Get("", c.NotificationHandler.GetNotifications)
		notifications.Patch("/:id", c.NotificationHandler.UpdateNotification)
		notifications.Delete("/:id", c.NotificationHandler.DeleteNotification)
	}
}

func (c *Config) Users() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	users := c.App.Group("/api/v1/users", auth)
	{
		users.Get("/profile", c.UserHandler.GetProfile)
		users.Patch("/profile", c.UserHandler.UpdateProfile)
		users.Get("/preferences", c.UserHandler.GetPreferences)
		users.Patch("/preferences", c.UserHandler.UpdatePreferences)
		users.Get("/stats", c.UserHandler.GetStats)
		users.Get("/recipes", c.RecipeHandler.GetOwnRecipes)
		users.Get("/favorites", c.RecipeHandler.GetFavoriteRecipes)
	}

	c.App.Post("/api/v1/media/upload", auth, c.UserHandler.UploadMedia)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
