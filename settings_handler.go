package main

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"storefront/render"
	"storefront/settings"
)

// GetSettingsHandler returns the decoded website settings.
func GetSettingsHandler(svc *settings.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, err := svc.Get(r.Context())
		if err != nil {
			zap.L().Error("load website settings failed", zap.Error(err))
			render.Error(w, "Failed to load settings.", http.StatusInternalServerError)
			return
		}
		render.JSON(w, http.StatusOK, ws)
	}
}

// OrderSuccessHandler serves the confirmation for a submitted order. The
// phone from the query string is the order reference.
func OrderSuccessHandler(svc *settings.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		phone := strings.TrimSpace(r.URL.Query().Get("phone"))
		if phone == "" {
			render.Error(w, "phone is required.", http.StatusBadRequest)
			return
		}
		ws, err := svc.Get(r.Context())
		if err != nil {
			zap.L().Error("load website settings failed", zap.Error(err))
			render.Error(w, "Failed to load settings.", http.StatusInternalServerError)
			return
		}
		render.JSON(w, http.StatusOK, settings.NewConfirmation(ws, phone))
	}
}
