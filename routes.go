package main

import (
	"net/http"

	"storefront/cart"
	"storefront/checkout"
	"storefront/database"
	"storefront/orders"
	"storefront/product"
	"storefront/session"
	"storefront/settings"
)

// Services is everything the HTTP layer calls into.
type Services struct {
	Store     *database.Store
	Carts     *cart.Manager
	Sessions  *session.Manager
	Submitter *checkout.Submitter
	Orders    *orders.Service
	Settings  *settings.Service
}

func SetupRoutes(mux *http.ServeMux, svc Services) {
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	})

	mux.HandleFunc("/api/products", product.ListProductsHandler(svc.Store))
	mux.HandleFunc("/api/products/categories", product.CategoriesHandler(svc.Store))
	mux.HandleFunc("/api/products/featured", product.FeaturedHandler(svc.Store))

	mux.HandleFunc("/api/cart", cart.GetCartHandler(svc.Carts, svc.Sessions))
	mux.HandleFunc("/api/cart/add", cart.AddHandler(svc.Carts, svc.Sessions, svc.Store))
	mux.HandleFunc("/api/cart/update", cart.UpdateHandler(svc.Carts, svc.Sessions))
	mux.HandleFunc("/api/cart/remove", cart.RemoveHandler(svc.Carts, svc.Sessions))
	mux.HandleFunc("/api/cart/clear", cart.ClearHandler(svc.Carts, svc.Sessions))

	mux.HandleFunc("/api/checkout", checkout.CheckoutHandler(svc.Carts, svc.Sessions, svc.Submitter))
	mux.HandleFunc("/api/order-success", OrderSuccessHandler(svc.Settings))

	mux.HandleFunc("/api/orders", orders.ListOrdersHandler(svc.Orders))
	mux.HandleFunc("/api/track-order/", orders.TrackOrderHandler(svc.Orders))

	mux.HandleFunc("/api/settings", GetSettingsHandler(svc.Settings))
}
