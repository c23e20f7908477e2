package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/dcastano/optica-inventory/internal/apperr"
	"github.com/dcastano/optica-inventory/internal/lens"
	"github.com/dcastano/optica-inventory/internal/lens/dto"
	"github.com/dcastano/optica-inventory/internal/report"
	"github.com/dcastano/optica-inventory/pkg/httpx"
	"github.com/dcastano/optica-inventory/pkg/logger"
)

type LensHandler struct {
	uc     lens.UseCase
	logger logger.ZapLogger
}

func NewLensHandler(uc lens.UseCase, log logger.ZapLogger) *LensHandler {
	return &LensHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *LensHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/lenses", h.List)
	mux.HandleFunc("POST /api/lenses", h.Create)
	mux.HandleFunc("GET /api/lenses/{id}", h.Get)
	mux.HandleFunc("PUT /api/lenses/{id}", h.Update)
	mux.HandleFunc("DELETE /api/lenses/{id}", h.Delete)
	mux.HandleFunc("POST /api/lenses/{id}/sell", h.Sell)
	mux.HandleFunc("GET /api/lenses/report/{lotNumber}", h.LotReport)
}

func (h *LensHandler) List(w http.ResponseWriter, r *http.Request) {
	filters, err := filtersFromQuery(r)
	if err != nil {
		httpx.Error(w, "invalid filter criteria", err)
		return
	}

	lenses, err := h.uc.ListLenses(r.Context(), filters)
	if err != nil {
		h.logger.Error("failed to list lenses", zap.Error(err))
		httpx.Error(w, "failed to list lenses", err)
		return
	}
	httpx.OKCount(w, lenses, len(lenses))
}

func (h *LensHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateLensInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.Error(w, "invalid request body", fmt.Errorf("%w: %v", apperr.ErrValidation, err))
		return
	}

	l, err := h.uc.CreateLens(r.Context(), &input)
	if err != nil {
		h.logger.Error("failed to create lens", zap.Error(err))
		httpx.Error(w, "failed to create lens", err)
		return
	}
	httpx.Created(w, l)
}

func (h *LensHandler) Get(w http.ResponseWriter, r *http.Request) {
	l, err := h.uc.GetLens(r.Context(), r.PathValue("id"))
	if err != nil {
		httpx.Error(w, "failed to get lens", err)
		return
	}
	httpx.OK(w, l)
}

func (h *LensHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateLensInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.Error(w, "invalid request body", fmt.Errorf("%w: %v", apperr.ErrValidation, err))
		return
	}
	input.ID = r.PathValue("id")

	l, err := h.uc.UpdateLens(r.Context(), &input)
	if err != nil {
		h.logger.Error("failed to update lens", zap.Error(err))
		httpx.Error(w, "failed to update lens", err)
		return
	}
	httpx.OK(w, l)
}

func (h *LensHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteLens(r.Context(), r.PathValue("id")); err != nil {
		httpx.Error(w, "failed to delete lens", err)
		return
	}
	httpx.OK(w, struct{}{})
}

func (h *LensHandler) Sell(w http.ResponseWriter, r *http.Request) {
	l, err := h.uc.SellLens(r.Context(), r.PathValue("id"))
	if err != nil {
		httpx.Error(w, "failed to record sale", err)
		return
	}
	httpx.OK(w, l)
}

func (h *LensHandler) LotReport(w http.ResponseWriter, r *http.Request) {
	lotNumber := r.PathValue("lotNumber")

	doc, err := h.uc.GenerateLotReport(r.Context(), lotNumber)
	if err != nil {
		httpx.Error(w, "failed to generate lot report", err)
		return
	}

	data, err := report.RenderXLSX(doc)
	if err != nil {
		h.logger.Error("failed to render lot report", zap.Error(err))
		httpx.Error(w, "failed to render lot report", err)
		return
	}

	filename := fmt.Sprintf("lot-report-%s-%d.xlsx", lotNumber, time.Now().Unix())
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	_, _ = w.Write(data)
}

func filtersFromQuery(r *http.Request) (*dto.LensFilters, error) {
	q := r.URL.Query()
	filters := &dto.LensFilters{
		Model:     q.Get("model"),
		BrandID:   q.Get("brand_id"),
		LotNumber: q.Get("lot_number"),
		Status:    q.Get("status"),
	}

	var err error
	if filters.MinPrice, err = queryFloat(q.Get("min_price")); err != nil {
		return nil, err
	}
	if filters.MaxPrice, err = queryFloat(q.Get("max_price")); err != nil {
		return nil, err
	}
	if filters.MinStock, err = queryInt(q.Get("min_stock")); err != nil {
		return nil, err
	}
	if filters.MaxStock, err = queryInt(q.Get("max_stock")); err != nil {
		return nil, err
	}
	return filters, nil
}

func queryFloat(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", apperr.ErrValidation, raw)
	}
	return &v, nil
}

func queryInt(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not an integer", apperr.ErrValidation, raw)
	}
	return &v, nil
}
