package product

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"storefront/model"
	"storefront/render"
)

type Lister interface {
	ListWebsiteProducts(ctx context.Context) ([]model.Product, error)
	ListFeaturedProducts(ctx context.Context, limit int) ([]model.Product, error)
}

func ListProductsHandler(store Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := store.ListWebsiteProducts(r.Context())
		if err != nil {
			zap.L().Error("list products failed", zap.Error(err))
			render.Error(w, "Failed to load products.", http.StatusInternalServerError)
			return
		}
		q := r.URL.Query()
		render.JSON(w, http.StatusOK, NewViews(Filter(products, q.Get("category"), q.Get("q"))))
	}
}

func CategoriesHandler(store Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := store.ListWebsiteProducts(r.Context())
		if err != nil {
			zap.L().Error("list products for categories failed", zap.Error(err))
			render.Error(w, "Failed to load categories.", http.StatusInternalServerError)
			return
		}
		render.JSON(w, http.StatusOK, Categories(products))
	}
}

func FeaturedHandler(store Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := store.ListFeaturedProducts(r.Context(), FeaturedCount)
		if err != nil {
			zap.L().Error("list featured products failed", zap.Error(err))
			render.Error(w, "Failed to load featured products.", http.StatusInternalServerError)
			return
		}
		render.JSON(w, http.StatusOK, NewViews(products))
	}
}
