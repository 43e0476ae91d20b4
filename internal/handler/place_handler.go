package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"spotnere-backend/internal/model"
	"spotnere-backend/internal/service"
)

// PlaceHandler serves the places CRUD surface plus the vendor and gallery
// sub-resources that hang off a place.
type PlaceHandler struct {
	places  *service.PlaceService
	vendors *service.VendorService
	gallery *service.GalleryService
	log     *zap.Logger
}

func NewPlaceHandler(places *service.PlaceService, vendors *service.VendorService, gallery *service.GalleryService, log *zap.Logger) *PlaceHandler {
	return &PlaceHandler{places: places, vendors: vendors, gallery: gallery, log: log}
}

// RegisterRoutes binds place endpoints. Static segments register alongside
// the place_id parameter routes.
func (h *PlaceHandler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/places")
	group.GET("", h.listPlaces)
	group.POST("", h.createPlace)
	group.GET("/count", h.placesCount)
	group.GET("/countries/count", h.countriesCount)
	group.GET("/rating/average", h.averageRating)
	group.GET("/:place_id", h.getPlace)
	group.PUT("/:place_id", h.updatePlace)
	group.PATCH("/:place_id/toggle-visibility", h.toggleVisibility)
	group.DELETE("/:place_id", h.deletePlace)
	group.GET("/:place_id/vendor", h.getVendor)
	group.GET("/:place_id/gallery-images", h.listGalleryImages)
	group.POST("/:place_id/gallery-images", h.createGalleryImage)
	group.DELETE("/:place_id/gallery-images/:gallery_image_id", h.deleteGalleryImage)
}

func (h *PlaceHandler) listPlaces(ctx *gin.Context) {
	places, err := h.places.List(ctx.Request.Context())
	if err != nil {
		fail(ctx, h.log, "fetching places", err)
		return
	}
	ctx.JSON(http.StatusOK, places)
}

func (h *PlaceHandler) placesCount(ctx *gin.Context) {
	count, err := h.places.Count(ctx.Request.Context())
	if err != nil {
		fail(ctx, h.log, "fetching places count", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *PlaceHandler) countriesCount(ctx *gin.Context) {
	count, err := h.places.CountriesCount(ctx.Request.Context())
	if err != nil {
		fail(ctx, h.log, "fetching countries count", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *PlaceHandler) averageRating(ctx *gin.Context) {
	average, err := h.places.AverageRating(ctx.Request.Context())
	if err != nil {
		fail(ctx, h.log, "fetching average rating", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"average": average})
}

func (h *PlaceHandler) getPlace(ctx *gin.Context) {
	place, err := h.places.Get(ctx.Request.Context(), ctx.Param("place_id"))
	if err != nil {
		fail(ctx, h.log, "fetching place", err)
		return
	}
	ctx.JSON(http.StatusOK, place)
}

func (h *PlaceHandler) createPlace(ctx *gin.Context) {
	var place model.Place
	if err := ctx.ShouldBindJSON(&place); err != nil {
		badRequest(ctx, "invalid payload: "+err.Error())
		return
	}
	created, err := h.places.Create(ctx.Request.Context(), place)
	if err != nil {
		fail(ctx, h.log, "creating place", err)
		return
	}
	ctx.JSON(http.StatusOK, created)
}

func (h *PlaceHandler) updatePlace(ctx *gin.Context) {
	var place model.Place
	if err := ctx.ShouldBindJSON(&place); err != nil {
		badRequest(ctx, "invalid payload: "+err.Error())
		return
	}
	updated, err := h.places.Update(ctx.Request.Context(), ctx.Param("place_id"), place)
	if err != nil {
		fail(ctx, h.log, "updating place", err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

func (h *PlaceHandler) toggleVisibility(ctx *gin.Context) {
	updated, err := h.places.ToggleVisibility(ctx.Request.Context(), ctx.Param("place_id"))
	if err != nil {
		fail(ctx, h.log, "toggling place visibility", err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

func (h *PlaceHandler) deletePlace(ctx *gin.Context) {
	placeID := ctx.Param("place_id")
	if err := h.places.Delete(ctx.Request.Context(), placeID); err != nil {
		fail(ctx, h.log, "deleting place", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Place " + placeID + " and its banner image deleted successfully",
	})
}

func (h *PlaceHandler) getVendor(ctx *gin.Context) {
	vendor, err := h.vendors.GetByPlace(ctx.Request.Context(), ctx.Param("place_id"))
	if err != nil {
		fail(ctx, h.log, "fetching vendor", err)
		return
	}
	// No linked vendor is not an error, the body is a JSON null.
	ctx.JSON(http.StatusOK, vendor)
}

func (h *PlaceHandler) listGalleryImages(ctx *gin.Context) {
	images, err := h.gallery.ListByPlace(ctx.Request.Context(), ctx.Param("place_id"))
	if err != nil {
		fail(ctx, h.log, "fetching gallery images", err)
		return
	}
	ctx.JSON(http.StatusOK, images)
}

type galleryImageCreateRequest struct {
	GalleryImageURL string `json:"gallery_image_url" binding:"required"`
}

func (h *PlaceHandler) createGalleryImage(ctx *gin.Context) {
	var req galleryImageCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "invalid payload: "+err.Error())
		return
	}
	created, err := h.gallery.Create(ctx.Request.Context(), ctx.Param("place_id"), req.GalleryImageURL)
	if err != nil {
		fail(ctx, h.log, "creating gallery image", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": created})
}

func (h *PlaceHandler) deleteGalleryImage(ctx *gin.Context) {
	err := h.gallery.Delete(ctx.Request.Context(), ctx.Param("place_id"), ctx.Param("gallery_image_id"))
	if err != nil {
		fail(ctx, h.log, "deleting gallery image", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Gallery image deleted successfully"})
}
