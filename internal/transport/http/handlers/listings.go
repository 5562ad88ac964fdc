package handlers

import (
	"net/http"
	"strconv"

	"github.com/Coullax/disaster-relief-management/internal/models"
	"github.com/Coullax/disaster-relief-management/internal/transport/http/dto"
	apierrors "github.com/Coullax/disaster-relief-management/internal/transport/http/errors"
	"github.com/Coullax/disaster-relief-management/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handlers) ListListings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := models.ListingFilter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Location: q.Get("location"),
		Type:     q.Get("type"),
	}

	var err error
	if filter.Page, err = parseInt32(q.Get("page")); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument("page"))
		return
	}

	if filter.Limit, err = parseInt32(q.Get("limit")); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument("limit"))
		return
	}

	page, err := h.Svc.ListListings(r.Context(), filter)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	// Нормализованные page/limit повторяют правила сервиса.
	norm := h.Svc.NormalizeFilter(filter)
	writeJSON(w, http.StatusOK, dto.ListingPageFromModel(page, norm.Page, norm.Limit))
}

// parseInt32 — пустое значение означает 0 (нормализуется сервисом).
func parseInt32(v string) (int32, error) {
	if v == "" {
		return 0, nil
	}

	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return 0, err
	}

	return int32(n), nil
}

func (h *Handlers) GetListing(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument("id"))
		return
	}

	details, err := h.Svc.ListingByID(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ListingDetailsFromModel(details))
}

func (h *Handlers) CreateListing(w http.ResponseWriter, r *http.Request) {
	var in dto.CreateListingRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument("body"))
		return
	}

	created, err := h.Svc.CreateListing(r.Context(), in.ToInput(middleware.SessionFrom(r.Context())))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ListingFromModel(created))
}

func (h *Handlers) MyListings(w http.ResponseWriter, r *http.Request) {
	listings, err := h.Svc.MyListings(r.Context(), middleware.SessionFrom(r.Context()))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ListingList{Listings: dto.ListingsFromModel(listings)})
}

func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	p, err := h.Svc.Profile(r.Context(), middleware.SessionFrom(r.Context()))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ProfileFromModel(p))
}

func (h *Handlers) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.Categories{Categories: h.Svc.Categories()})
}
