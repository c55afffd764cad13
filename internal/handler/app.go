package handler

import (
	"net/http"
	"strconv"

	"error-demo/internal/app/middleware"
	"error-demo/internal/domain"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type userService interface {
	FindByID(id int64) (domain.User, bool)
	FindAll() []domain.User
}

// AppHandler hosts the demo endpoints that exercise the error translation
// layer, plus the user listing.
type AppHandler struct {
	service userService
	logger  *zap.Logger
}

// NewAppHandler creates a new app handler
func NewAppHandler(service userService, logger *zap.Logger) *AppHandler {
	return &AppHandler{
		service: service,
		logger:  logger,
	}
}

// User DTO matching the public JSON shape

type userResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Index handles GET /index. The division always panics at runtime; the
// recovery middleware turns the panic into the divide-by-zero error body.
func (h *AppHandler) Index(w http.ResponseWriter, r *http.Request) {
	zero := 0
	result := 1 / zero

	h.writeJSON(w, http.StatusOK, map[string]int{"result": result})
}

// Number handles GET /number. The literal is not a valid integer, so the
// conversion always fails with the number-format category.
func (h *AppHandler) Number(w http.ResponseWriter, r *http.Request) {
	value, err := strconv.Atoi("1s")
	if err != nil {
		middleware.WriteErrorResponse(w, domain.Categorize(domain.ErrNumberFormat, err), h.logger)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]int{"value": value})
}

// Show handles GET /show/{id}
func (h *AppHandler) Show(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		middleware.WriteErrorResponse(w, domain.Categorize(domain.ErrNumberFormat, err), h.logger)
		return
	}

	user, ok := h.service.FindByID(id)
	if !ok {
		middleware.WriteErrorResponse(w, domain.ErrUserNotFound, h.logger)
		return
	}

	h.writeJSON(w, http.StatusOK, mapUserToResponse(user))
}

// Users handles GET /users
func (h *AppHandler) Users(w http.ResponseWriter, r *http.Request) {
	users := h.service.FindAll()

	result := make([]userResponse, len(users))
	for i, u := range users {
		result[i] = mapUserToResponse(u)
	}

	h.writeJSON(w, http.StatusOK, result)
}

func mapUserToResponse(u domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// writeJSON routes a failed serialization through the error translator so
// the client still receives the error contract.
func (h *AppHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	if err := middleware.WriteJSON(w, status, v); err != nil {
		middleware.WriteErrorResponse(w, domain.Categorize(domain.ErrNotWritable, err), h.logger)
	}
}
