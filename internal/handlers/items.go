package handlers

import (
	"errors"
	"net/http"

	"github.com/diewo77/invoice-hub/httpx"
	"github.com/diewo77/invoice-hub/internal/middleware"
	"github.com/diewo77/invoice-hub/internal/models"
	"github.com/diewo77/invoice-hub/internal/services"
	"github.com/diewo77/invoice-hub/validation"
	"github.com/sirupsen/logrus"
)

type ItemHandler struct {
	svc *services.ItemService
	log logrus.FieldLogger
}

func NewItemHandler(svc *services.ItemService, log logrus.FieldLogger) *ItemHandler {
	return &ItemHandler{svc: svc, log: log}
}

type itemView struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unit_price"`
	GSTPercent float64 `json:"gst_percent"`
}

func newItemView(it models.Item) itemView {
	return itemView{ID: it.ID, Name: it.Name, UnitPrice: num(it.UnitPrice), GSTPercent: num(it.GSTPercent)}
}

// List: GET /api/items
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		fail(w, r, h.log, err)
		return
	}
	out := make([]itemView, 0, len(items))
	for _, it := range items {
		out = append(out, newItemView(it))
	}
	httpx.Success(w, http.StatusOK, "", httpx.Envelope{"items": out})
}

// Create: POST /api/items
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(w, r)
	if err != nil {
		fail(w, r, h.log, err)
		return
	}
	in, err := validation.ItemPayload(body)
	if err != nil {
		fail(w, r, h.log, err)
		return
	}
	it, err := h.svc.Create(r.Context(), in)
	if errors.Is(err, services.ErrDuplicateName) {
		httpx.Fail(w, http.StatusConflict, middleware.T(r, "item.exists"), nil)
		return
	}
	if err != nil {
		fail(w, r, h.log, err)
		return
	}
	middleware.Entry(h.log, r).WithField("item_id", it.ID).Info("item created")
	httpx.Success(w, http.StatusCreated, middleware.T(r, "item.created"), httpx.Envelope{"item": newItemView(*it)})
}
