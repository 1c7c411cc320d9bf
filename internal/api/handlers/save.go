package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dom/game-save-backend/internal/api/middleware"
	"github.com/dom/game-save-backend/internal/service"
	"gorm.io/datatypes"
)

type SaveHandler struct {
	saveService *service.SaveService
}

func NewSaveHandler(saveService *service.SaveService) *SaveHandler {
	return &SaveHandler{saveService: saveService}
}

type SaveRequest struct {
	SaveData json.RawMessage `json:"save_data"`
}

type LoadResponse struct {
	// SaveData marshals as null when the user has never saved.
	SaveData datatypes.JSON `json:"save_data"`
}

func (h *SaveHandler) Load(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "Unauthenticated", http.StatusUnauthorized)
		return
	}

	data, err := h.saveService.Load(r.Context(), user)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, LoadResponse{SaveData: data})
}

func (h *SaveHandler) Save(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "Unauthenticated", http.StatusUnauthorized)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.saveService.Save(r.Context(), user, datatypes.JSON(req.SaveData)); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"status": "ok"})
}
