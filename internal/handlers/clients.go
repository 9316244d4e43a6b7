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

type ClientHandler struct {
	svc *services.ClientService
	log logrus.FieldLogger
}

func NewClientHandler(svc *services.ClientService, log logrus.FieldLogger) *ClientHandler {
	return &ClientHandler{svc: svc, log: log}
}

type clientView struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

func newClientView(c models.Client) clientView {
	return clientView{ID: c.ID, Name: c.Name, Email: c.Email, Address: c.Address}
}

// List: GET /api/clients
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.svc.List(r.Context())
	if err != nil {
		fail(w, r, h.log, err)
		return
	}
	out := make([]clientView, 0, len(clients))
	for _, c := range clients {
		out = append(out, newClientView(c))
	}
	httpx.Success(w, http.StatusOK, "", httpx.Envelope{"clients": out})
}

// Create: POST /api/clients
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(w, r)
	if err != nil {
		fail(w, r, h.log, err)
		return
	}
	in, err := validation.ClientPayload(body)
	if err != nil {
		fail(w, r, h.log, err)
		return
	}
	c, err := h.svc.Create(r.Context(), in)
	if errors.Is(err, services.ErrDuplicateName) {
		httpx.Fail(w, http.StatusConflict, middleware.T(r, "client.exists"), nil)
		return
	}
	if err != nil {
		fail(w, r, h.log, err)
		return
	}
	middleware.Entry(h.log, r).WithField("client_id", c.ID).Info("client created")
	httpx.Success(w, http.StatusCreated, middleware.T(r, "client.created"), httpx.Envelope{"client": newClientView(*c)})
}
