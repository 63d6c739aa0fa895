package routes

import (
	"os"

	"github.com/dawidtomczynski/Przemyslane-Zakupy/controllers"
	"github.com/dawidtomczynski/Przemyslane-Zakupy/middlewares"
	"github.com/dawidtomczynski/Przemyslane-Zakupy/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	hub := services.NewShoppingHub()
	ws := controllers.NewShoppingWSController(hub)

	// Public auth routes
	r.POST("/login/", controllers.Login)
	r.POST("/register/", controllers.Register)
	r.GET("/logout/", controllers.Logout)

	auth := middlewares.AuthMiddleware()

	plans := r.Group("/plans")
	{
		plans.GET("/", controllers.ListPlans)
		plans.GET("/:plan_id/", controllers.GetPlan)
		plans.POST("/add/", auth, controllers.AddPlan)
		plans.GET("/edit/:plan_id/", auth, controllers.EditPlan)
		plans.POST("/edit/:plan_id/", auth, controllers.EditPlan)
		plans.GET("/delete/:plan_id/", auth, controllers.DeletePlan)
		plans.POST("/delete/:plan_id/", auth, controllers.DeletePlan)
		plans.GET("/add-meal/:plan_id", auth, controllers.AddPlanMeals)
		plans.POST("/add-meal/:plan_id", auth, controllers.AddPlanMeals)
		plans.GET("/add-meal-random/:plan_id", auth, controllers.AddRandomPlanMeal)
		plans.GET("/product-list/:plan_id", controllers.PlanShoppingList)
	}

	meals := r.Group("/meals")
	{
		meals.GET("/", controllers.ListMeals)
		meals.GET("/:meal_id", controllers.GetMeal)
		meals.POST("/add/", auth, controllers.AddMeal)
		meals.GET("/edit/:meal_id", auth, controllers.EditMeal)
		meals.POST("/edit/:meal_id", auth, controllers.EditMeal)
		meals.GET("/delete/:meal_id", auth, controllers.DeleteMeal)
		meals.POST("/delete/:meal_id", auth, controllers.DeleteMeal)
		meals.GET("/add-product/:meal_id", auth, controllers.SetMealProducts)
		meals.POST("/add-product/:meal_id", auth, controllers.SetMealProducts)
		meals.GET("/add-plan/:meal_id", auth, controllers.AddMealToPlans)
		meals.POST("/add-plan/:meal_id", auth, controllers.AddMealToPlans)
		meals.GET("/set-grams/:meal_id/:product_id", auth, controllers.SetMealProductGrams)
		meals.POST("/set-grams/:meal_id/:product_id", auth, controllers.SetMealProductGrams)
	}

	// Catalog reads are public; mutations are admin-only.
	admin := middlewares.RequireAdmin()
	products := r.Group("/products")
	{
		products.GET("/", controllers.ListProducts)
		products.GET("/:product_id", controllers.GetProduct)
		products.POST("/add/", auth, admin, controllers.AddProduct)
		products.GET("/edit/:product_id", auth, admin, controllers.EditProduct)
		products.POST("/edit/:product_id", auth, admin, controllers.EditProduct)
		products.GET("/delete/:product_id", auth, admin, controllers.DeleteProduct)
		products.POST("/delete/:product_id", auth, admin, controllers.DeleteProduct)

		products.GET("/types/", auth, admin, controllers.ListProductTypes)
		products.POST("/types/add/", auth, admin, controllers.AddProductType)
		products.GET("/types/edit/:product_type_id", auth, admin, controllers.EditProductType)
		products.POST("/types/edit/:product_type_id", auth, admin, controllers.EditProductType)
		products.GET("/types/delete/:product_type_id", auth, admin, controllers.DeleteProductType)
		products.POST("/types/delete/:product_type_id", auth, admin, controllers.DeleteProductType)
	}

	profile := r.Group("/profile")
	profile.Use(auth)
	{
		profile.POST("/update/", controllers.UpdateProfile)
		profile.POST("/update-password/", controllers.UpdatePassword)
		profile.GET("/delete/", controllers.ConfirmDeleteAccount)
		profile.POST("/delete/", controllers.DeleteAccount)

		profile.GET("/plans/", controllers.MyPlans)
		profile.GET("/meals/", controllers.MyMeals)

		profile.GET("/favourite-plans/", controllers.FavouritePlans)
		profile.GET("/favourite-plans/add/:plan_id", controllers.AddFavouritePlan)
		profile.GET("/favourite-plans/delete/:plan_id", controllers.RemoveFavouritePlan)

		profile.GET("/favourite-meals/", controllers.FavouriteMeals)
		profile.GET("/favourite-meals/add/:meal_id", controllers.AddFavouriteMeal)
		profile.GET("/favourite-meals/delete/:meal_id", controllers.RemoveFavouriteMeal)

		profile.GET("/active-plan/", controllers.ActivePlan)
		profile.GET("/active-plan/add/:plan_id", controllers.SelectActivePlan)
	}

	r.GET("/ws/shopping-list/:plan_id", auth, ws.ShoppingListWS)

	return r
}
