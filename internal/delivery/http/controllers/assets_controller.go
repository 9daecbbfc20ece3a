package controllers

import (
	"log/slog"
	"net/http"

	"corelabevents/internal/delivery/http/helpers"
	"corelabevents/internal/domain"
)

type AssetsController struct {
	Logger *slog.Logger
	Lister domain.AssetLister
}

func NewAssetsController(logger *slog.Logger, lister domain.AssetLister) *AssetsController {
	return &AssetsController{
		Logger: logger,
		Lister: lister,
	}
}

// List godoc
// @Summary List display assets for a category
// @Description Returns the display assets (path, label, optional scale and link) for a category such as partner logos.
// @Tags assets
// @Produce json
// @Param category path string true "Asset category"
// @Success 200 {object} helpers.APIResponse "data is an array of assets"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /api/assets/{category} [get]
func (c *AssetsController) List(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	if category == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing category")
		return
	}

	assets, err := c.Lister.List(category)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "asset listing failed", "category", category, "err", err)
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "unknown asset category")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, assets)
}
