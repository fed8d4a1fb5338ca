package reel

import (
	"errors"
	"net/http"

	dto "slot_reel/internal/api/dto/reel"
	"slot_reel/internal/converter"
	"slot_reel/internal/service"
	"slot_reel/pkg/req"
	"slot_reel/pkg/resp"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.ReelService
	Log  *zap.Logger
}

type Handler struct {
	serv service.ReelService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

// Sequence отдаёт ленту барабана
func (h *Handler) Sequence(w http.ResponseWriter, r *http.Request) {
	seq, err := h.serv.Sequence(r.Context())
	if err != nil {
		h.writeError(w, "sequence", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSequenceResponse(*seq))
}

// Balance отдаёт баланс игрока
func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	data, err := h.serv.Balance(r.Context())
	if err != nil {
		h.writeError(w, "balance", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDataResponse(*data))
}

// ConfirmSpin списывает ставку за спин
func (h *Handler) ConfirmSpin(w http.ResponseWriter, r *http.Request) {
	conf, err := h.serv.ConfirmSpin(r.Context())
	if err != nil {
		h.writeError(w, "confirm spin", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*conf))
}

// ReportWin начисляет выигрыш по подтверждённому спину
func (h *Handler) ReportWin(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.WinRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := converter.ToWinReport(payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ack, err := h.serv.ReportWin(r.Context(), report)
	if err != nil {
		h.writeError(w, "report win", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWinResponse(*ack))
}

func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		h.log.Error(op+" failed", zap.Error(err))
		http.Error(w, "internal error", status)
		return
	}

	http.Error(w, err.Error(), status)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrSequenceNotFound),
		errors.Is(err, service.ErrSpinNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrNotEnoughBalance):
		return http.StatusPaymentRequired
	case errors.Is(err, service.ErrWinAlreadyReported):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidWin):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
