package matching

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bankmatch/internal/domain"
)

func TestNamesMatch(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "exact", a: "John Doe", b: "John Doe", want: true},
		{name: "case insensitive", a: "JOHN DOE", b: "john doe", want: true},
		{name: "legal form suffix", a: "Matti Meikäläinen", b: "Matti Meikäläinen Tmi", want: true},
		{name: "emea suffix", a: "Best Supplies", b: "Best Supplies EMEA", want: true},
		{name: "bidirectional", a: "John Doe Consulting", b: "John Doe", want: true},
		{name: "surrounding whitespace", a: "  John Doe  ", b: "John Doe", want: true},
		{name: "typo rejected", a: "Matti Meittiläinen", b: "Matti Meikäläinen Tmi", want: false},
		{name: "different people", a: "Jane Smith", b: "John Doe", want: false},
		{name: "absent left", a: "", b: "John Doe", want: false},
		{name: "absent right", a: "John Doe", b: "", want: false},
		{name: "both absent", a: "", b: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NamesMatch(tt.a, tt.b); got != tt.want {
				t.Errorf("NamesMatch(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestAmountsCompatible(t *testing.T) {
	tolerance := decimal.New(1, -2)

	tests := []struct {
		name string
		tx   string
		att  string
		want bool
	}{
		{name: "exact", tx: "100.00", att: "100.00", want: true},
		{name: "outgoing sign ignored", tx: "-100.00", att: "100.00", want: true},
		{name: "within tolerance", tx: "100.009", att: "100.00", want: true},
		{name: "at tolerance boundary", tx: "100.01", att: "100.00", want: false},
		{name: "outside tolerance", tx: "100.02", att: "100.00", want: false},
		{name: "zero amounts", tx: "0", att: "0", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := decimal.RequireFromString(tt.tx)
			att := decimal.RequireFromString(tt.att)
			if got := amountsCompatible(tx, att, tolerance); got != tt.want {
				t.Errorf("amountsCompatible(%s, %s) = %v, want %v", tt.tx, tt.att, got, tt.want)
			}
		})
	}
}

func TestDirectionCompatible(t *testing.T) {
	outgoing := domain.Transaction{Amount: decimal.NewFromInt(-100)}
	incoming := domain.Transaction{Amount: decimal.NewFromInt(100)}

	tests := []struct {
		name string
		tx   domain.Transaction
		kind domain.AttachmentKind
		want bool
	}{
		{name: "outgoing vs purchase invoice", tx: outgoing, kind: domain.KindPurchaseInvoice, want: true},
		{name: "outgoing vs receipt", tx: outgoing, kind: domain.KindReceipt, want: true},
		{name: "outgoing vs sales invoice", tx: outgoing, kind: domain.KindSalesInvoice, want: false},
		{name: "incoming vs sales invoice", tx: incoming, kind: domain.KindSalesInvoice, want: true},
		{name: "incoming vs purchase invoice", tx: incoming, kind: domain.KindPurchaseInvoice, want: false},
		{name: "incoming vs receipt", tx: incoming, kind: domain.KindReceipt, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := directionCompatible(tt.tx, tt.kind); got != tt.want {
				t.Errorf("directionCompatible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDateWithin(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name  string
		tx    time.Time
		dates []time.Time
		want  bool
	}{
		{name: "same day", tx: day(15), dates: []time.Time{day(15)}, want: true},
		{name: "one day after", tx: day(16), dates: []time.Time{day(15)}, want: true},
		{name: "one day before", tx: day(14), dates: []time.Time{day(15)}, want: true},
		{name: "two days off", tx: day(17), dates: []time.Time{day(15)}, want: false},
		{name: "closest of several", tx: day(15), dates: []time.Time{day(1), day(16)}, want: true},
		{name: "no dates", tx: day(15), dates: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dateWithin(tt.tx, tt.dates, 1); got != tt.want {
				t.Errorf("dateWithin() = %v, want %v", got, tt.want)
			}
		})
	}
}
