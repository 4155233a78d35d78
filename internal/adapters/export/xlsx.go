package export

import (
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Jetixia-Updates/Butcher-sub004/internal/domain"
)

const sheet = "Sheet1"

// OrdersWorkbook builds an XLSX workbook with one row per order.
func OrdersWorkbook(orders []domain.Order) (*excelize.File, error) {
	f := excelize.NewFile()
	header := []interface{}{"order_id", "created_at", "status", "customer", "phone", "zone", "subtotal", "vat", "delivery_fee", "total", "updated_by"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, o := range orders {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			o.ID.String(),
			o.CreatedAt.Format(time.RFC3339),
			string(o.Status),
			o.CustomerName,
			o.Phone,
			o.ZoneName,
			o.SubtotalNet,
			o.VATAmount,
			o.DeliveryFee,
			o.Total,
			o.UpdatedBy,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// FinanceWorkbook builds an XLSX workbook of finance records.
func FinanceWorkbook(recs []domain.FinanceRecord) (*excelize.File, error) {
	f := excelize.NewFile()
	header := []interface{}{"id", "kind", "amount", "category", "note", "occurred_at"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, r := range recs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			r.ID.String(),
			string(r.Kind),
			r.Amount,
			r.Category,
			r.Note,
			r.OccurredAt.Format(time.RFC3339),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}
	return f, nil
}
