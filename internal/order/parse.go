package order

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/andreasstove999/ecommerce-system/ordertool/internal/payload"
)

// Prices are bounded so rounding and formatting stay cheap.
const (
	maxPriceDigits    = 30
	minPriceExponent  = -8
	maxPriceMagnitude = 12
)

const (
	msgMissingItems      = "Missing items array"
	msgMissingCustomerID = "Missing customerId"
	msgNonPositiveTotal  = "Order total must be greater than 0"
)

// Load decodes raw input into a payload document, mapping decoder failures to
// KindDecode.
func Load(data []byte) (payload.Document, error) {
	doc, err := payload.Decode(data)
	if err != nil {
		var de *payload.DecodeError
		if errors.As(err, &de) {
			return payload.Document{}, &Error{Kind: KindDecode, Message: de.Error(), Err: err}
		}
		return payload.Document{}, err
	}
	return doc, nil
}

// FromDocument builds an Order. Items are required; the customer id is copied
// when present and checked only by the Validator.
func FromDocument(doc payload.Document) (Order, error) {
	if !doc.HasItems {
		return Order{}, missingField(payload.FieldItems, msgMissingItems)
	}

	items, err := ParseItems(doc.Items)
	if err != nil {
		return Order{}, err
	}

	return Order{CustomerID: doc.CustomerID, Items: items}, nil
}

// ParseItems converts records to line items in input order. The first bad
// record fails the whole list.
func ParseItems(records []payload.Record) ([]LineItem, error) {
	items := make([]LineItem, 0, len(records))
	for i, rec := range records {
		item, err := parseItem(rec)
		if err != nil {
			return nil, &Error{
				Kind:    KindMalformedItem,
				Field:   fmt.Sprintf("items[%d]", i),
				Message: fmt.Sprintf("item %d: %v", i, err),
				Err:     err,
			}
		}
		items = append(items, item)
	}
	return items, nil
}

func parseItem(rec payload.Record) (LineItem, error) {
	if !rec.IsObject() {
		return LineItem{}, fmt.Errorf("must be an object, got %s", bytes.TrimSpace(rec.Raw))
	}

	rawPrice, ok := rec.Lookup("price")
	if !ok || payload.IsNull(rawPrice) {
		return LineItem{}, errors.New("missing price")
	}
	n, ok := payload.Number(rawPrice)
	if !ok {
		return LineItem{}, errors.New("price must be a number")
	}
	price, err := decimal.NewFromString(n.String())
	if err != nil {
		return LineItem{}, fmt.Errorf("price %s: %w", n, err)
	}
	if price.IsNegative() {
		return LineItem{}, fmt.Errorf("price must be non-negative, got %s", n)
	}
	if !priceInRange(price) {
		return LineItem{}, fmt.Errorf("price out of range, got %s", n)
	}

	item := LineItem{Price: price, Quantity: 1}

	rawQty, ok := rec.Lookup("quantity")
	if !ok || payload.IsNull(rawQty) {
		return item, nil
	}
	n, ok = payload.Number(rawQty)
	if !ok {
		return LineItem{}, errors.New("quantity must be an integer")
	}
	qty, err := strconv.ParseInt(n.String(), 10, 64)
	if err != nil {
		return LineItem{}, fmt.Errorf("quantity must be an integer, got %s", n)
	}
	if qty < 1 {
		return LineItem{}, fmt.Errorf("quantity must be at least 1, got %d", qty)
	}
	item.Quantity = qty

	return item, nil
}

// priceInRange rejects more than maxPriceDigits significant digits, fractions
// finer than 10^minPriceExponent and values of 10^maxPriceMagnitude or more.
func priceInRange(p decimal.Decimal) bool {
	digits := p.NumDigits()
	exp := int64(p.Exponent())
	return digits <= maxPriceDigits &&
		exp >= minPriceExponent &&
		int64(digits)+exp <= maxPriceMagnitude
}
