package routes

import (
	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	db := config.DB

	hub := services.NewRealtimeHub()
	groupSvc := services.NewGroupService(db)
	events := services.NewGroupEventBus(hub, groupSvc)

	foodSvc := services.NewFoodService(db)
	mealSvc := services.NewMealService(db, foodSvc)
	listSvc := services.NewShoppingListService(db, foodSvc)
	sharedSvc := services.NewSharedListService(db, groupSvc, events)
	invSvc := services.NewInvitationService(db, groupSvc)
	statsSvc := services.NewStatisticsService(db)
	nutritionSvc := services.NewNutritionService(db)
	authSvc := services.NewAuthService(db)

	authCtl := controllers.NewAuthController(authSvc)
	foodCtl := controllers.NewFoodController(foodSvc)
	mealCtl := controllers.NewMealController(mealSvc)
	listCtl := controllers.NewShoppingListController(listSvc)
	sharedCtl := controllers.NewSharedListController(sharedSvc)
	groupCtl := controllers.NewGroupController(groupSvc)
	invCtl := controllers.NewInvitationController(invSvc)
	statsCtl := controllers.NewStatisticsController(statsSvc, nutritionSvc)
	rtCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.GET("/foods", foodCtl.ListFoods)
		protected.POST("/foods", foodCtl.CreateFood)
		protected.GET("/foods/:id", foodCtl.GetFood)
		protected.PUT("/foods/:id", foodCtl.UpdateFood)
		protected.DELETE("/foods/:id", foodCtl.DeleteFood)

		protected.GET("/meals", mealCtl.ListMeals)
		protected.POST("/meals", mealCtl.CreateMeal)
		protected.GET("/meals/:id", mealCtl.GetMeal)
		protected.PUT("/meals/:id", mealCtl.UpdateMealInfo)
		protected.PUT("/meals/:id/foods", mealCtl.UpdateMealFoods)
		protected.DELETE("/meals/:id", mealCtl.DeleteMeal)

		protected.GET("/shopping-list", listCtl.ListItems)
		protected.GET("/shopping-list/by-date", listCtl.ListItemsByDate)
		protected.POST("/shopping-list", listCtl.CreateItems)
		protected.PUT("/shopping-list/:id", listCtl.UpdateItem)
		protected.DELETE("/shopping-list/:id", listCtl.DeleteItem)

		protected.POST("/shopping-list/share", sharedCtl.Share)
		protected.GET("/shopping-list/group/:id", sharedCtl.ListForGroup)
		protected.POST("/shopping-list/group/mark-as-bought", sharedCtl.MarkAsBought)
		protected.GET("/shopping-list/statistics", statsCtl.GetFoodStatistics)

		protected.GET("/groups", groupCtl.ListGroups)
		protected.POST("/groups", groupCtl.CreateGroup)

		protected.POST("/invitations", invCtl.Invite)
		protected.GET("/invitations/pending", invCtl.ListPending)
		protected.POST("/invitations/accept", invCtl.Accept)

		protected.GET("/users/nutrition-stats", statsCtl.GetNutritionStats)
		protected.PUT("/users/profile", authCtl.UpdateProfile)

		protected.GET("/ws", rtCtl.EventsWS)
	}

	return r
}
