package service

import (
	"encoding/json"
	"io"

	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
	"github.com/nivaranatech/opsdesk-api/internal/store"
	"github.com/nivaranatech/opsdesk-api/pkg/apperror"
	"github.com/nivaranatech/opsdesk-api/pkg/export"
	"github.com/nivaranatech/opsdesk-api/pkg/utils"
)

// ExportService renders collections to downloadable files and ingests
// inventory uploads
type ExportService struct {
	store *store.Store
}

// NewExportService creates a new export service
func NewExportService(st *store.Store) *ExportService {
	return &ExportService{store: st}
}

// ExportItems writes the item list to w
func (s *ExportService) ExportItems(w io.Writer, format export.Format, includeInactive bool) error {
	return export.Items(w, s.store.ListItems(includeInactive), format)
}

// ExportTransactions writes the stock ledger to w
func (s *ExportService) ExportTransactions(w io.Writer, format export.Format) error {
	return export.Transactions(w, s.store.ListTransactions(), format)
}

// ExportCollection writes any named collection to w. Items and the
// stock ledger support every format; the remaining collections have no
// tabular layout and export as JSON only.
func (s *ExportService) ExportCollection(w io.Writer, collection string, format export.Format) error {
	switch collection {
	case "items":
		return s.ExportItems(w, format, false)
	case "transactions":
		return s.ExportTransactions(w, format)
	}

	if format != export.FormatJSON {
		return apperror.NewBadRequestError("Collection " + collection + " exports as json only")
	}

	var data any
	switch collection {
	case "estimates":
		data = s.store.ListEstimates(false)
	case "orders":
		data = s.store.ListOrders(false)
	case "amc":
		data = s.store.ListAMCs()
	case "jobs":
		data = s.store.ListJobs(false)
	case "rma":
		data = s.store.ListRMAs()
	case "leaves":
		data = s.store.ListLeaves(0)
	case "users":
		data = s.store.ListUsers(false)
	case "holidays":
		data = s.store.ListHolidays()
	default:
		return apperror.NewNotFoundError("Collection")
	}
	return json.NewEncoder(w).Encode(data)
}

// ImportResult summarizes an inventory upload
type ImportResult struct {
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
}

// ImportItems parses an upload and inserts every row that passes the
// store's validation, reporting per-row failures instead of aborting
func (s *ExportService) ImportItems(r io.Reader, format export.Format) (*ImportResult, error) {
	var items []entity.Item
	var err error

	switch format {
	case export.FormatCSV:
		items, err = export.ParseItemsCSV(r)
	case export.FormatXLSX:
		items, err = export.ParseItemsXLSX(r)
	default:
		return nil, apperror.NewBadRequestError("Imports accept csv or xlsx")
	}
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	for _, it := range items {
		if it.SKU == "" {
			it.SKU = utils.GenerateSKU()
		}
		if _, err := s.store.AddItem(it); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, it.Name+": "+err.Error())
			continue
		}
		result.Imported++
	}
	return result, nil
}
