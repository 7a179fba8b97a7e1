package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

func TestDecimalToNumericRoundTrip(t *testing.T) {
	cases := []string{"0.01", "42.50", "99999999.99", "7"}

	for _, raw := range cases {
		t.Run(raw, func(t *testing.T) {
			d := decimal.RequireFromString(raw)

			n, err := decimalToNumeric(d)
			if err != nil {
				t.Fatalf("decimalToNumeric(%s): %v", raw, err)
			}
			if !n.Valid {
				t.Fatalf("expected a valid numeric for %s", raw)
			}

			back, err := numericToDecimal(n)
			if err != nil {
				t.Fatalf("numericToDecimal: %v", err)
			}
			if !back.Equal(d) {
				t.Fatalf("round trip changed value: %s -> %s", d, back)
			}
		})
	}
}

func TestNumericToDecimalRejectsNull(t *testing.T) {
	if _, err := numericToDecimal(pgtype.Numeric{}); err == nil {
		t.Fatal("expected an error for a null numeric")
	}
}
