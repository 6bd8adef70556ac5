package http

import (
	"net/http"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type addressRequest struct {
	AddressLine1     string  `json:"address_line_1" validate:"required,min=2,max=60"`
	AddressLine2     *string `json:"address_line_2,omitempty"`
	Number           string  `json:"number" validate:"required,numeric"`
	City             string  `json:"city" validate:"required,min=2,max=60"`
	Country          string  `json:"country" validate:"required,min=2,max=60"`
	PostalCode       string  `json:"postal_code" validate:"required,numeric"`
	PhoneCountryCode *string `json:"phone_country_code,omitempty" validate:"omitempty,numeric"`
	PhoneNumber      *string `json:"phone_number,omitempty" validate:"omitempty,numeric"`
}

type addressResponse struct {
	ID               int64   `json:"id"`
	AddressLine1     string  `json:"address_line_1"`
	AddressLine2     *string `json:"address_line_2,omitempty"`
	Number           string  `json:"number"`
	City             string  `json:"city"`
	Country          string  `json:"country"`
	PostalCode       string  `json:"postal_code"`
	PhoneCountryCode *string `json:"phone_country_code,omitempty"`
	PhoneNumber      *string `json:"phone_number,omitempty"`
}

func toAddressResponse(a domain.Address) addressResponse {
	return addressResponse{
		ID:               a.ID,
		AddressLine1:     a.AddressLine1,
		AddressLine2:     a.AddressLine2,
		Number:           a.Number,
		City:             a.City,
		Country:          a.Country,
		PostalCode:       a.PostalCode,
		PhoneCountryCode: a.PhoneCountryCode,
		PhoneNumber:      a.PhoneNumber,
	}
}

func (h *Handler) listAddresses(w http.ResponseWriter, r *http.Request) {
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

	addresses, err := h.addresses.List(r.Context(), userID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := make([]addressResponse, 0, len(addresses))
	for _, a := range addresses {
		resp = append(resp, toAddressResponse(a))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) findAddress(w http.ResponseWriter, r *http.Request) {
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
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	address, err := h.addresses.Find(r.Context(), id, userID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAddressResponse(address))
}

func (h *Handler) createAddress(w http.ResponseWriter, r *http.Request) {
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

	var req addressRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	id, err := h.addresses.Create(r.Context(), domain.Address{
		AddressLine1:     req.AddressLine1,
		AddressLine2:     req.AddressLine2,
		Number:           req.Number,
		City:             req.City,
		Country:          req.Country,
		PostalCode:       req.PostalCode,
		PhoneCountryCode: req.PhoneCountryCode,
		PhoneNumber:      req.PhoneNumber,
		UserID:           userID,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *Handler) updateAddress(w http.ResponseWriter, r *http.Request) {
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
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	var req addressRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	err = h.addresses.Update(r.Context(), domain.Address{
		ID:               id,
		AddressLine1:     req.AddressLine1,
		AddressLine2:     req.AddressLine2,
		Number:           req.Number,
		City:             req.City,
		Country:          req.Country,
		PostalCode:       req.PostalCode,
		PhoneCountryCode: req.PhoneCountryCode,
		PhoneNumber:      req.PhoneNumber,
		UserID:           userID,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) deleteAddress(w http.ResponseWriter, r *http.Request) {
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
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.addresses.Delete(r.Context(), id, userID); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
