package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/diewo77/invoice-hub/httpx"
	"github.com/diewo77/invoice-hub/internal/metrics"
	"github.com/diewo77/invoice-hub/internal/middleware"
	"github.com/diewo77/invoice-hub/internal/services"
	"github.com/diewo77/invoice-hub/validation"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

var errInvalidJSON = errors.New("invalid JSON body")

// decodeBody reads a JSON object, keeping numbers as json.Number so that
// amounts are parsed exactly.
func decodeBody(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, errInvalidJSON
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errInvalidJSON
	}
	body, ok := raw.(map[string]any)
	if !ok {
		return nil, errInvalidJSON
	}
	return body, nil
}

// pathID reads the {id} path value. ok is false when it is not a positive integer.
func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// fail maps an error to its status and localized message. Storage faults are
// logged and answered with a generic message.
func fail(w http.ResponseWriter, r *http.Request, log logrus.FieldLogger, err error) {
	var verr *validation.Error
	switch {
	case errors.Is(err, errInvalidJSON):
		httpx.Fail(w, http.StatusBadRequest, middleware.T(r, "invalid_json"), nil)
	case errors.As(err, &verr):
		metrics.RecordValidationFailure(verr.Code)
		httpx.Fail(w, http.StatusBadRequest, middleware.T(r, verr.Code), verr.Violations)
	case errors.Is(err, services.ErrClientNotFound):
		httpx.Fail(w, http.StatusBadRequest, middleware.T(r, "client.not_found"), nil)
	case errors.Is(err, services.ErrInvoiceNotFound):
		httpx.Fail(w, http.StatusNotFound, middleware.T(r, "invoice.not_found"), nil)
	default:
		middleware.Entry(log, r).WithError(err).Error("storage failure")
		httpx.Fail(w, http.StatusInternalServerError, middleware.T(r, "db_error"), nil)
	}
}

// num renders a decimal as a JSON number.
func num(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
