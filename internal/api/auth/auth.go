package auth

import (
	"net/http"

	"slot_reel/internal/converter"
	"slot_reel/internal/service"
	"slot_reel/pkg/resp"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.AuthService
	Log  *zap.Logger
}

type Handler struct {
	serv service.AuthService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

// Guest создаёт гостевого игрока и возвращает access_token
func (h *Handler) Guest(w http.ResponseWriter, r *http.Request) {
	data, err := h.serv.Guest(r.Context())
	if err != nil {
		h.log.Error("guest login failed", zap.Error(err))
		http.Error(w, "guest login failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToGuestResponse(*data))
}
