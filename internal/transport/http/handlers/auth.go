package handlers

import (
	"net/http"

	"github.com/Coullax/disaster-relief-management/internal/transport/http/dto"
	apierrors "github.com/Coullax/disaster-relief-management/internal/transport/http/errors"
)

func (h *Handlers) RequestCode(w http.ResponseWriter, r *http.Request) {
	var in dto.OTPRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument("body"))
		return
	}

	if err := h.Svc.RequestCode(r.Context(), in.Email); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (h *Handlers) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var in dto.VerifyRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument("body"))
		return
	}

	sess, err := h.Svc.VerifyCode(r.Context(), in.Email, in.Code)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AuthFromModel(sess))
}
