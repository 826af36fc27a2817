// Package export renders entity collections to CSV, JSON and XLSX and
// parses inventory uploads back in.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
	"github.com/nivaranatech/opsdesk-api/pkg/apperror"
)

// Format identifies an export file format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// Valid reports whether f is a supported format
func (f Format) Valid() bool {
	return f == FormatCSV || f == FormatJSON || f == FormatXLSX
}

// ContentType returns the MIME type for the format
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatJSON:
		return "application/json"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/octet-stream"
}

var itemHeader = []string{
	"id", "sku", "part_id", "name", "category", "brand", "unit",
	"purchase_price", "selling_price", "stock_qty", "issued_qty", "reorder_level",
}

func itemRow(it entity.Item) []string {
	return []string{
		strconv.Itoa(it.ID), it.SKU, it.PartID, it.Name, it.Category, it.Brand, it.Unit,
		strconv.FormatFloat(it.PurchasePrice, 'f', 2, 64),
		strconv.FormatFloat(it.SellingPrice, 'f', 2, 64),
		strconv.Itoa(it.StockQty), strconv.Itoa(it.IssuedQty), strconv.Itoa(it.ReorderLevel),
	}
}

// Items writes the item list to w in the requested format
func Items(w io.Writer, items []entity.Item, format Format) error {
	switch format {
	case FormatCSV:
		return itemsCSV(w, items)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	case FormatXLSX:
		return itemsXLSX(w, items)
	}
	return apperror.NewBadRequestError("Unknown export format")
}

func itemsCSV(w io.Writer, items []entity.Item) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(itemHeader); err != nil {
		return err
	}
	for _, it := range items {
		if err := cw.Write(itemRow(it)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func itemsXLSX(w io.Writer, items []entity.Item) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Items"
	f.SetSheetName(f.GetSheetName(0), sheet)

	for col, name := range itemHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}
	for row, it := range items {
		for col, value := range itemRow(it) {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	_, err := f.WriteTo(w)
	return err
}

// Transactions writes the stock ledger to w in the requested format
func Transactions(w io.Writer, txns []entity.StockTransaction, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(txns)
	case FormatCSV:
		cw := csv.NewWriter(w)
		header := []string{"id", "type", "status", "item_id", "user_id", "quantity", "job_id", "created_at"}
		if err := cw.Write(header); err != nil {
			return err
		}
		for _, t := range txns {
			row := []string{
				t.ID, t.Type.String(), t.Status.String(),
				strconv.Itoa(t.ItemID), strconv.Itoa(t.UserID), strconv.Itoa(t.Quantity),
				t.JobID, t.CreatedAt.Format("2006-01-02 15:04:05"),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	}
	return apperror.NewBadRequestError("Unknown export format")
}

// ParseItemsCSV reads an inventory upload. The first row must be a
// header carrying at least name, category, purchase_price, selling_price
// and stock_qty columns; ids are assigned by the store on insert.
func ParseItemsCSV(r io.Reader) ([]entity.Item, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, apperror.NewBadRequestError("Malformed CSV: " + err.Error())
	}
	return itemsFromRows(rows)
}

// ParseItemsXLSX reads an inventory upload from the first sheet of an
// XLSX workbook
func ParseItemsXLSX(r io.Reader) ([]entity.Item, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperror.NewBadRequestError("Malformed XLSX: " + err.Error())
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, apperror.NewBadRequestError("Malformed XLSX: " + err.Error())
	}
	return itemsFromRows(rows)
}

func itemsFromRows(rows [][]string) ([]entity.Item, error) {
	if len(rows) < 2 {
		return nil, apperror.NewBadRequestError("Upload has no data rows")
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[name] = i
	}
	for _, required := range []string{"name", "category", "purchase_price", "selling_price", "stock_qty"} {
		if _, ok := index[required]; !ok {
			return nil, apperror.NewBadRequestError("Upload is missing the " + required + " column")
		}
	}

	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	items := make([]entity.Item, 0, len(rows)-1)
	for n, row := range rows[1:] {
		it := entity.Item{
			SKU:      field(row, "sku"),
			PartID:   field(row, "part_id"),
			Name:     field(row, "name"),
			Category: field(row, "category"),
			Brand:    field(row, "brand"),
			Unit:     field(row, "unit"),
		}
		if it.Name == "" {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Row %d has no name", n+2))
		}

		var err error
		if it.PurchasePrice, err = strconv.ParseFloat(field(row, "purchase_price"), 64); err != nil {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Row %d has a bad purchase price", n+2))
		}
		if it.SellingPrice, err = strconv.ParseFloat(field(row, "selling_price"), 64); err != nil {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Row %d has a bad selling price", n+2))
		}
		if it.StockQty, err = strconv.Atoi(field(row, "stock_qty")); err != nil {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Row %d has a bad stock quantity", n+2))
		}
		if raw := field(row, "reorder_level"); raw != "" {
			if it.ReorderLevel, err = strconv.Atoi(raw); err != nil {
				return nil, apperror.NewBadRequestError(fmt.Sprintf("Row %d has a bad reorder level", n+2))
			}
		}
		items = append(items, it)
	}
	return items, nil
}
