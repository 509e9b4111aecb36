package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Shivanand-hulikatti/resort-backoffice/internal/model"
)

// ExpenseStore persists expenses.
type ExpenseStore interface {
	Create(ctx context.Context, e *model.Expense) error
	List(ctx context.Context, skip, limit int) ([]model.Expense, error)
}

// ReceiptStore keeps receipt images and returns their public path.
type ReceiptStore interface {
	Save(employeeID int64, name string, r io.Reader) (string, error)
	Delete(publicPath string) error
}

// Receipt is an uploaded receipt image.
type Receipt struct {
	Name string
	Body io.Reader
}

// ExpenseService orchestrates expense filing.
type ExpenseService struct {
	expenses ExpenseStore
	lookup   LookupStore
	receipts ReceiptStore
	validate *Validator
}

// NewExpenseService constructs an ExpenseService.
func NewExpenseService(expenses ExpenseStore, lookup LookupStore, receipts ReceiptStore, v *Validator) *ExpenseService {
	return &ExpenseService{expenses: expenses, lookup: lookup, receipts: receipts, validate: v}
}

// Create files an expense. The receipt, when present, is stored before the
// expense row is written and removed again if the write fails.
func (s *ExpenseService) Create(ctx context.Context, req model.CreateExpenseRequest, receipt *Receipt) (*model.Expense, error) {
	req.Category = strings.TrimSpace(req.Category)
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	employee, err := requireEmployee(ctx, s.lookup, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	expense := &model.Expense{
		Category:     req.Category,
		Amount:       req.Amount,
		Date:         date,
		Description:  req.Description,
		EmployeeID:   req.EmployeeID,
		EmployeeName: employee.Name,
	}
	if receipt != nil && receipt.Name != "" {
		expense.ImagePath, err = s.receipts.Save(req.EmployeeID, receipt.Name, receipt.Body)
		if err != nil {
			return nil, fmt.Errorf("save receipt: %w", err)
		}
	}

	if err := s.expenses.Create(ctx, expense); err != nil {
		if expense.ImagePath != "" {
			if derr := s.receipts.Delete(expense.ImagePath); derr != nil {
				return nil, fmt.Errorf("create expense: %w (receipt cleanup: %v)", err, derr)
			}
		}
		return nil, fmt.Errorf("create expense: %w", err)
	}
	return expense, nil
}

// List returns a page of expenses. The default page is smaller than for other
// resources because each row may carry a receipt.
func (s *ExpenseService) List(ctx context.Context, skip, limit int) ([]model.Expense, error) {
	skip, limit = Page(skip, limit, 20)
	return s.expenses.List(ctx, skip, limit)
}
