// Package http — REST-слой поверх сервисов приложения.
package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/auth"
	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/service/account"
	"github.com/vladislavdragonenkov/storefront/internal/service/address"
	"github.com/vladislavdragonenkov/storefront/internal/service/cart"
	"github.com/vladislavdragonenkov/storefront/internal/service/catalog"
)

// Handler — HTTP-обработчики поверх сервисного слоя.
type Handler struct {
	accounts  *account.Service
	carts     *cart.Service
	catalog   *catalog.Service
	addresses *address.Service
	tokens    *auth.TokenIssuer
	validate  *validator.Validate
	logger    *log.Entry
}

// NewHandler конструирует HTTP-слой.
func NewHandler(
	accounts *account.Service,
	carts *cart.Service,
	catalogSvc *catalog.Service,
	addresses *address.Service,
	tokens *auth.TokenIssuer,
	logger *log.Entry,
) *Handler {
	if logger == nil {
		logger = log.WithField("component", "http")
	}
	return &Handler{
		accounts:  accounts,
		carts:     carts,
		catalog:   catalogSvc,
		addresses: addresses,
		tokens:    tokens,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
	}
}

// Router собирает все маршруты. Публичные эндпоинты не требуют токена,
// остальные проходят через bearer-аутентификацию.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.logRequests)

	r.HandleFunc("/auth/signup", h.signup).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", h.login).Methods(http.MethodPost)
	r.HandleFunc("/stores", h.createStore).Methods(http.MethodPost)

	private := r.NewRoute().Subrouter()
	private.Use(h.authenticate)

	private.HandleFunc("/stores/store-invite", h.createInvite).Methods(http.MethodPost)

	private.HandleFunc("/products/categories", h.createCategory).Methods(http.MethodPost)
	private.HandleFunc("/products/variants", h.createVariant).Methods(http.MethodPost)
	private.HandleFunc("/products/variants", h.listVariants).Methods(http.MethodGet)
	private.HandleFunc("/products", h.createProduct).Methods(http.MethodPost)

	private.HandleFunc("/shopping-carts", h.createCart).Methods(http.MethodPost)
	private.HandleFunc("/shopping-carts/{id:[0-9]+}", h.editCart).Methods(http.MethodPut)
	private.HandleFunc("/shopping-carts/{id:[0-9]+}", h.deleteCart).Methods(http.MethodDelete)

	private.HandleFunc("/addresses", h.listAddresses).Methods(http.MethodGet)
	private.HandleFunc("/addresses", h.createAddress).Methods(http.MethodPost)
	private.HandleFunc("/addresses/{id:[0-9]+}", h.findAddress).Methods(http.MethodGet)
	private.HandleFunc("/addresses/{id:[0-9]+}", h.updateAddress).Methods(http.MethodPut)
	private.HandleFunc("/addresses/{id:[0-9]+}", h.deleteAddress).Methods(http.MethodDelete)

	return r
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// writeError переводит доменную ошибку в HTTP-статус. Внутренние ошибки
// наружу не раскрываются.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	kind := domain.KindOf(err)
	code := statusFromKind(kind)
	if kind == domain.KindInternal {
		h.logger.WithError(err).Error("internal error")
		writeErr(w, code, "internal server error")
		return
	}
	writeErr(w, code, err.Error())
}

func statusFromKind(kind domain.Kind) int {
	switch kind {
	case domain.KindBadRequest:
		return http.StatusBadRequest
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// decode читает и проверяет JSON-тело запроса.
func (h *Handler) decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.BadRequest("invalid json")
	}
	if err := h.validate.Struct(dst); err != nil {
		return domain.BadRequest(err.Error())
	}
	return nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, domain.BadRequest("invalid id")
	}
	return id, nil
}
