package order

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreasstove999/ecommerce-system/ordertool/internal/config"
	"github.com/andreasstove999/ecommerce-system/ordertool/internal/payload"
)

func mustDecode(t *testing.T, in string) payload.Document {
	t.Helper()
	doc, err := payload.Decode([]byte(in))
	require.NoError(t, err)
	return doc
}

func TestValidatorValidate(t *testing.T) {
	v := NewValidator(NewCalculator(config.DefaultPricing()))

	tests := map[string]struct {
		input    string
		wantErr  error
		wantMsg  string
		wantKind Kind
	}{
		"valid order": {
			input:   `{"customerId":"c1","items":[{"price":50,"quantity":2}]}`,
			wantMsg: "Order is valid",
		},
		"quantity defaults to one": {
			input:   `{"customerId":"c1","items":[{"price":0.01}]}`,
			wantMsg: "Order is valid",
		},
		"missing items": {
			input:    `{"customerId":"c1"}`,
			wantErr:  ErrMissingField,
			wantMsg:  "Missing items array",
			wantKind: KindMissingField,
		},
		"missing items reported before customer": {
			input:    `{}`,
			wantErr:  ErrMissingField,
			wantMsg:  "Missing items array",
			wantKind: KindMissingField,
		},
		"missing customer": {
			input:    `{"items":[{"price":10}]}`,
			wantErr:  ErrMissingField,
			wantMsg:  "Missing customerId",
			wantKind: KindMissingField,
		},
		"empty items": {
			input:    `{"customerId":"c1","items":[]}`,
			wantErr:  ErrNonPositiveTotal,
			wantMsg:  "Order total must be greater than 0",
			wantKind: KindNonPositiveTotal,
		},
		"all items free": {
			input:    `{"customerId":"c1","items":[{"price":0,"quantity":3},{"price":0}]}`,
			wantErr:  ErrNonPositiveTotal,
			wantMsg:  "Order total must be greater than 0",
			wantKind: KindNonPositiveTotal,
		},
		"total rounds to zero": {
			input:    `{"customerId":"c1","items":[{"price":0.001}]}`,
			wantErr:  ErrNonPositiveTotal,
			wantKind: KindNonPositiveTotal,
			wantMsg:  "Order total must be greater than 0",
		},
		"malformed item": {
			input:    `{"customerId":"c1","items":[{"price":10},{"price":"ten"}]}`,
			wantErr:  ErrMalformedItem,
			wantMsg:  "item 1: price must be a number",
			wantKind: KindMalformedItem,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			res, err := v.Validate(mustDecode(t, tt.input))

			assert.Equal(t, tt.wantMsg, res.Message)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.True(t, res.Valid)
				return
			}

			require.Error(t, err)
			assert.False(t, res.Valid)
			assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
			assert.Equal(t, tt.wantKind, KindOf(err))
		})
	}
}

func TestValidatorMissingFieldNamesField(t *testing.T) {
	v := NewValidator(NewCalculator(config.DefaultPricing()))

	_, err := v.Validate(mustDecode(t, `{"items":[{"price":1}]}`))

	var oe *Error
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, "customerId", oe.Field)
}
