package http

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/service/catalog"
)

type createCategoryRequest struct {
	Name    string `json:"name" validate:"required"`
	StoreID int64  `json:"store_id" validate:"required"`
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFrom(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	userID, err := claims.UserID()
	if err != nil {
		h.writeError(w, err)
		return
	}

	var req createCategoryRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	id, err := h.catalog.CreateCategory(r.Context(), req.Name, req.StoreID, userID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

type createVariantRequest struct {
	Name    string `json:"name" validate:"required"`
	Value   string `json:"value" validate:"required"`
	StoreID int64  `json:"store_id" validate:"required"`
}

func (h *Handler) createVariant(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFrom(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	userID, err := claims.UserID()
	if err != nil {
		h.writeError(w, err)
		return
	}

	var req createVariantRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	id, err := h.catalog.CreateVariant(r.Context(), req.Name, req.Value, req.StoreID, userID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

type variantResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

// listVariants отдаёт варианты магазина администратора. Покупателям
// маршрут недоступен.
func (h *Handler) listVariants(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFrom(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if claims.Role == domain.UserTypeCustomer || claims.ManagedStoreID == nil {
		h.writeError(w, domain.Forbidden("store admin access required"))
		return
	}

	variants, err := h.catalog.ListVariants(r.Context(), *claims.ManagedStoreID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := make([]variantResponse, 0, len(variants))
	for _, v := range variants {
		resp = append(resp, variantResponse{ID: v.ID, Name: v.Name, Value: v.Value})
	}
	writeJSON(w, http.StatusOK, resp)
}

type productItemRequest struct {
	SKU         *string         `json:"sku,omitempty"`
	ImageURL    *string         `json:"image_url,omitempty"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int32           `json:"stock" validate:"min=0"`
	VariantID   *int64          `json:"variant_id,omitempty"`
}

type createProductRequest struct {
	Name       string               `json:"name" validate:"required"`
	CategoryID int64                `json:"category_id" validate:"required"`
	StoreID    int64                `json:"store_id" validate:"required"`
	Items      []productItemRequest `json:"items"`
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFrom(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	userID, err := claims.UserID()
	if err != nil {
		h.writeError(w, err)
		return
	}

	var req createProductRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	items := make([]catalog.ProductItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, catalog.ProductItemInput{
			SKU:         item.SKU,
			ImageURL:    item.ImageURL,
			Description: item.Description,
			Price:       item.Price,
			Stock:       item.Stock,
			VariantID:   item.VariantID,
		})
	}

	id, err := h.catalog.CreateProduct(r.Context(), catalog.CreateProductInput{
		Name:       req.Name,
		CategoryID: req.CategoryID,
		StoreID:    req.StoreID,
		UserID:     userID,
		Items:      items,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}
