package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/dcastano/optica-inventory/internal/apperr"
	"github.com/dcastano/optica-inventory/internal/brand"
	"github.com/dcastano/optica-inventory/internal/brand/dto"
	"github.com/dcastano/optica-inventory/pkg/httpx"
	"github.com/dcastano/optica-inventory/pkg/logger"
)

type BrandHandler struct {
	uc     brand.UseCase
	logger logger.ZapLogger
}

func NewBrandHandler(uc brand.UseCase, log logger.ZapLogger) *BrandHandler {
	return &BrandHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *BrandHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/brands", h.List)
	mux.HandleFunc("POST /api/brands", h.Create)
	mux.HandleFunc("GET /api/brands/{id}", h.Get)
	mux.HandleFunc("PUT /api/brands/{id}", h.Update)
	mux.HandleFunc("DELETE /api/brands/{id}", h.Deactivate)
}

func (h *BrandHandler) List(w http.ResponseWriter, r *http.Request) {
	brands, err := h.uc.ListBrands(r.Context())
	if err != nil {
		h.logger.Error("failed to list brands", zap.Error(err))
		httpx.Error(w, "failed to list brands", err)
		return
	}
	httpx.OKCount(w, brands, len(brands))
}

func (h *BrandHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateBrandInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.Error(w, "invalid request body", fmt.Errorf("%w: %v", apperr.ErrValidation, err))
		return
	}

	b, err := h.uc.CreateBrand(r.Context(), &input)
	if err != nil {
		h.logger.Error("failed to create brand", zap.Error(err))
		httpx.Error(w, "failed to create brand", err)
		return
	}
	httpx.Created(w, b)
}

func (h *BrandHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.uc.GetBrand(r.Context(), r.PathValue("id"))
	if err != nil {
		httpx.Error(w, "failed to get brand", err)
		return
	}
	httpx.OK(w, b)
}

func (h *BrandHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateBrandInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.Error(w, "invalid request body", fmt.Errorf("%w: %v", apperr.ErrValidation, err))
		return
	}
	input.ID = r.PathValue("id")

	b, err := h.uc.UpdateBrand(r.Context(), &input)
	if err != nil {
		h.logger.Error("failed to update brand", zap.Error(err))
		httpx.Error(w, "failed to update brand", err)
		return
	}
	httpx.OK(w, b)
}

func (h *BrandHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeactivateBrand(r.Context(), r.PathValue("id")); err != nil {
		httpx.Error(w, "failed to deactivate brand", err)
		return
	}
	httpx.OK(w, struct{}{})
}
