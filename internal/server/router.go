package server

import (
	"net/http"

	"cocina/internal/handlers"
)

func newRouter() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", handlers.Health)
	mux.HandleFunc("/signup", handlers.Signup)
	mux.HandleFunc("/login", handlers.Login)
	mux.HandleFunc("/logout", handlers.Logout)

	api := http.NewServeMux()
	api.HandleFunc("/app/api/ingredients", handlers.Ingredients)
	api.HandleFunc("/app/api/ingredients/", handlers.Ingredients)
	api.HandleFunc("/app/api/materials", handlers.Materials)
	api.HandleFunc("/app/api/materials/", handlers.Materials)
	api.HandleFunc("/app/api/suppliers", handlers.Suppliers)
	api.HandleFunc("/app/api/suppliers/", handlers.Suppliers)
	api.HandleFunc("/app/api/recipes", handlers.Recipes)
	api.HandleFunc("/app/api/recipes/", handlers.Recipes)
	api.HandleFunc("/app/api/free-recipes", handlers.FreeRecipes)
	api.HandleFunc("/app/api/free-recipes/", handlers.FreeRecipes)
	api.HandleFunc("/app/api/starter-pack/templates", handlers.StarterPackTemplates)
	api.HandleFunc("/app/api/starter-pack/import", handlers.StarterPackImport)
	api.HandleFunc("/app/api/orders", handlers.Orders)

	mux.Handle("/app/api/", handlers.RequireAuthentication(api))

	return mux
}
