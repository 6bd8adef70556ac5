package http

import (
	"net/http"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/service/account"
)

type signupRequest struct {
	FirstName  string  `json:"first_name" validate:"required,min=2,max=60"`
	LastName   string  `json:"last_name" validate:"required,min=2,max=60"`
	Email      string  `json:"email" validate:"required,email"`
	Password   string  `json:"password" validate:"required,min=6"`
	UserType   string  `json:"user_type" validate:"required,oneof=CUSTOMER ADMIN"`
	InviteCode *string `json:"invite_code,omitempty"`
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	id, err := h.accounts.Signup(r.Context(), account.SignupInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Password:   req.Password,
		InviteCode: req.InviteCode,
		Type:       domain.UserType(req.UserType),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	token, err := h.accounts.Login(r.Context(), account.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

type createStoreRequest struct {
	StoreName string  `json:"store_name" validate:"required,min=2,max=60"`
	LogoURL   *string `json:"logo_url,omitempty"`
	FirstName string  `json:"first_name" validate:"required,min=2,max=60"`
	LastName  string  `json:"last_name" validate:"required,min=2,max=60"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=6"`
}

func (h *Handler) createStore(w http.ResponseWriter, r *http.Request) {
	var req createStoreRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	id, err := h.accounts.CreateStore(r.Context(), account.CreateStoreInput{
		StoreName: req.StoreName,
		LogoURL:   req.LogoURL,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

type createInviteRequest struct {
	StoreID int64 `json:"store_id" validate:"required"`
}

func (h *Handler) createInvite(w http.ResponseWriter, r *http.Request) {
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

	var req createInviteRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	code, err := h.accounts.CreateInvite(r.Context(), req.StoreID, userID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": code})
}
