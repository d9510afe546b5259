package transport

import (
	"math"
	"strings"

	"saas_cpq_api/platform/apperr"
)

// Normalize validates and normalizes a quote creation request. It returns a
// typed validation error naming the offending field; for line items the
// message includes the 0-based index of the first failing item, and checking
// stops there.
func (r CreateQuoteRequest) Normalize() (NormalizedQuote, error) {
	if r.CustomerID <= 0 {
		return NormalizedQuote{}, apperr.Validation("customer_id must be a positive integer")
	}

	jobName := strings.TrimSpace(r.JobName)
	if jobName == "" {
		return NormalizedQuote{}, apperr.Validation("job_name is required and must be a non-empty string")
	}

	currency := strings.ToUpper(strings.TrimSpace(r.Currency))
	if currency == "" {
		currency = DefaultCurrency
	}

	if !isFinite(r.TaxRate) || r.TaxRate < 0 {
		return NormalizedQuote{}, apperr.Validation("tax_rate must be a finite number greater than or equal to 0")
	}
	if !isFinite(r.Discount) || r.Discount < 0 {
		return NormalizedQuote{}, apperr.Validation("discount must be a finite number greater than or equal to 0")
	}

	if len(r.LineItems) == 0 {
		return NormalizedQuote{}, apperr.Validation("line_items must be a non-empty array")
	}

	items := make([]NormalizedLineItem, 0, len(r.LineItems))
	for i, item := range r.LineItems {
		normalized, err := item.normalize(i)
		if err != nil {
			return NormalizedQuote{}, err
		}
		items = append(items, normalized)
	}

	return NormalizedQuote{
		CustomerID: r.CustomerID,
		JobName:    jobName,
		Currency:   currency,
		TaxRate:    r.TaxRate,
		Discount:   r.Discount,
		Items:      items,
	}, nil
}

func (r LineItemRequest) normalize(index int) (NormalizedLineItem, error) {
	itemType := ItemType(strings.ToLower(strings.TrimSpace(r.Type)))
	switch itemType {
	case ItemTypeLabor, ItemTypeEquipment, ItemTypeMaterial:
	default:
		return NormalizedLineItem{}, apperr.Validationf("line_items[%d].type must be one of labor, equipment, material", index)
	}

	uom := strings.ToUpper(strings.TrimSpace(r.UOM))
	if uom == "" {
		return NormalizedLineItem{}, apperr.Validationf("line_items[%d].uom is required and must be a non-empty string", index)
	}

	if !isFinite(r.Qty) || r.Qty <= 0 {
		return NormalizedLineItem{}, apperr.Validationf("line_items[%d].qty must be a finite number greater than 0", index)
	}
	if !isFinite(r.Cost) || r.Cost < 0 {
		return NormalizedLineItem{}, apperr.Validationf("line_items[%d].cost must be a finite number greater than or equal to 0", index)
	}
	if !isFinite(r.Sell) || r.Sell < 0 {
		return NormalizedLineItem{}, apperr.Validationf("line_items[%d].sell must be a finite number greater than or equal to 0", index)
	}

	return NormalizedLineItem{
		Type:        itemType,
		UOM:         uom,
		Description: strings.TrimSpace(r.Description),
		Qty:         r.Qty,
		Cost:        r.Cost,
		Sell:        r.Sell,
	}, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
