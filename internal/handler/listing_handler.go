package handler

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"property-service/internal/model"
	"property-service/internal/service"
)

const msgListingNotFound = "매물을 찾을 수 없습니다."

// ListingHandler serves the listing CRUD endpoints.
type ListingHandler struct {
	Svc *service.ListingService
}

// RegisterRoutes registers the listing routes under rg.
func (h *ListingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/properties", h.ListListings)
	rg.GET("/properties/:id", h.GetListing)
	rg.POST("/properties", h.CreateListing)
	rg.PUT("/properties/:id", h.UpdateListing)
	rg.DELETE("/properties/:id", h.DeleteListing)
}

// GET /api/properties?transaction_type=...&type=...&region=...&min_price=...&max_price=...&min_area=...&max_area=...
func (h *ListingHandler) ListListings(c *gin.Context) {
	filter, err := parseListingFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := h.Svc.List(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/properties/:id
func (h *ListingHandler) GetListing(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": msgListingNotFound})
		return
	}

	view, err := h.Svc.Get(c.Request.Context(), id)
	if errors.Is(err, service.ErrListingNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": msgListingNotFound})
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// POST /api/properties
func (h *ListingHandler) CreateListing(c *gin.Context) {
	var req model.ListingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	id, err := h.Svc.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "id": id})
}

// PUT /api/properties/:id
func (h *ListingHandler) UpdateListing(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		// no row can carry a non-numeric id
		c.JSON(http.StatusOK, gin.H{"success": true, "changes": 0})
		return
	}
	var req model.ListingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	changes, err := h.Svc.Update(c.Request.Context(), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "changes": changes})
}

// DELETE /api/properties/:id
func (h *ListingHandler) DeleteListing(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"success": true, "changes": 0})
		return
	}

	changes, err := h.Svc.Delete(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "changes": changes})
}

func listingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	return id, err == nil
}

// parseListingFilter reads the filter query parameters. Empty parameters
// count as absent.
func parseListingFilter(c *gin.Context) (model.ListingFilter, error) {
	var f model.ListingFilter
	f.TransactionType = queryString(c, "transaction_type")
	f.Type = queryString(c, "type")
	f.Region = queryString(c, "region")

	bounds := []struct {
		param string
		dst   **float64
	}{
		{"min_price", &f.MinPrice},
		{"max_price", &f.MaxPrice},
		{"min_area", &f.MinArea},
		{"max_area", &f.MaxArea},
	}
	for _, b := range bounds {
		v, err := queryFloat(c, b.param)
		if err != nil {
			return model.ListingFilter{}, err
		}
		*b.dst = v
	}
	return f, nil
}

func queryString(c *gin.Context, key string) *string {
	if v := c.Query(key); v != "" {
		return &v
	}
	return nil
}

func queryFloat(c *gin.Context, key string) (*float64, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%s must be a number", key)
	}
	return &f, nil
}

// bindingMessage renders validator errors per field, anything else as a
// generic payload error.
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid payload"
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be >= %s", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
