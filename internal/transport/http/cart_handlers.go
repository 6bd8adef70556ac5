package http

import (
	"net/http"
)

type createCartRequest struct {
	StoreID       int64 `json:"store_id" validate:"required"`
	ProductItemID int64 `json:"product_item_id" validate:"required"`
	Quantity      int32 `json:"quantity" validate:"required,min=1"`
}

func (h *Handler) createCart(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFrom(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	customerID, err := claims.UserID()
	if err != nil {
		h.writeError(w, err)
		return
	}

	var req createCartRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	id, err := h.carts.Create(r.Context(), customerID, req.StoreID, req.ProductItemID, req.Quantity)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

type editCartRequest struct {
	StoreID       int64 `json:"store_id" validate:"required"`
	ProductItemID int64 `json:"product_item_id" validate:"required"`
	Quantity      int32 `json:"quantity" validate:"required,min=1"`
}

func (h *Handler) editCart(w http.ResponseWriter, r *http.Request) {
	cartID, err := pathID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	var req editCartRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.carts.Edit(r.Context(), cartID, req.StoreID, req.ProductItemID, req.Quantity); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) deleteCart(w http.ResponseWriter, r *http.Request) {
	cartID, err := pathID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.carts.Delete(r.Context(), cartID); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
