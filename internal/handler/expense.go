package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Shivanand-hulikatti/resort-backoffice/internal/model"
	"github.com/Shivanand-hulikatti/resort-backoffice/internal/receipts"
	"github.com/Shivanand-hulikatti/resort-backoffice/internal/service"
)

// ExpenseService covers expense filing.
type ExpenseService interface {
	Create(ctx context.Context, req model.CreateExpenseRequest, receipt *service.Receipt) (*model.Expense, error)
	List(ctx context.Context, skip, limit int) ([]model.Expense, error)
}

// ReceiptOpener opens stored receipt images by file name.
type ReceiptOpener interface {
	Open(filename string) (*os.File, error)
}

// ExpenseHandler serves /expenses.
type ExpenseHandler struct {
	svc      ExpenseService
	receipts ReceiptOpener
	maxBytes int64
	log      *slog.Logger
}

// NewExpenseHandler constructs an ExpenseHandler. maxBytes bounds the whole
// multipart body.
func NewExpenseHandler(svc ExpenseService, receipts ReceiptOpener, maxBytes int64, log *slog.Logger) *ExpenseHandler {
	return &ExpenseHandler{svc: svc, receipts: receipts, maxBytes: maxBytes, log: log}
}

// Create handles POST /expenses
// Accepts multipart form fields plus an optional "image" file.
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}
	defer r.MultipartForm.RemoveAll()

	req, err := expenseForm(r)
	if err != nil {
		respondError(w, r, h.log, err, "failed to create expense")
		return
	}

	var receipt *service.Receipt
	file, header, err := r.FormFile("image")
	switch {
	case err == nil:
		defer file.Close()
		receipt = &service.Receipt{Name: header.Filename, Body: file}
	case !errors.Is(err, http.ErrMissingFile):
		writeError(w, http.StatusBadRequest, "invalid image upload: "+err.Error())
		return
	}

	e, err := h.svc.Create(r.Context(), req, receipt)
	if err != nil {
		respondError(w, r, h.log, err, "failed to create expense")
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func expenseForm(r *http.Request) (model.CreateExpenseRequest, error) {
	req := model.CreateExpenseRequest{
		Category:    r.FormValue("category"),
		Date:        strings.TrimSpace(r.FormValue("date")),
		Description: r.FormValue("description"),
	}

	var bad service.ValidationErrors
	if v := strings.TrimSpace(r.FormValue("amount")); v != "" {
		amount, err := strconv.ParseFloat(v, 64)
		if err != nil {
			bad = append(bad, service.FieldError{Field: "amount", Message: "must be a number"})
		}
		req.Amount = amount
	}
	if v := strings.TrimSpace(r.FormValue("employee_id")); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			bad = append(bad, service.FieldError{Field: "employee_id", Message: "must be an integer"})
		}
		req.EmployeeID = id
	}
	if len(bad) > 0 {
		return req, bad
	}
	return req, nil
}

// List handles GET /expenses
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := pageParams(r)
	expenses, err := h.svc.List(r.Context(), skip, limit)
	if err != nil {
		respondError(w, r, h.log, err, "failed to list expenses")
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(expenses))
}

// Image handles GET /expenses/image/{filename}
func (h *ExpenseHandler) Image(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")
	f, err := h.receipts.Open(name)
	if errors.Is(err, receipts.ErrNotFound) {
		writeError(w, http.StatusNotFound, "image not found")
		return
	}
	if err != nil {
		respondError(w, r, h.log, err, "failed to read image")
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		respondError(w, r, h.log, err, "failed to read image")
		return
	}
	http.ServeContent(w, r, name, info.ModTime(), f)
}
