package matching

import (
	"strings"
	"unicode"

	"github.com/iho/bankmatch/internal/domain"
)

// NormalizeReference canonicalizes a payment reference number: all
// whitespace is removed and leading zeros are stripped from the digit run.
// A leading alphabetic prefix (creditor references such as "RF" or "FI") is
// kept verbatim and zero-stripping applies only to the remainder, so a
// prefixed reference never collapses onto an unprefixed one with the same
// digits. An all-zero digit run becomes a single "0". Empty input stays "".
func NormalizeReference(ref string) string {
	var b strings.Builder
	for _, r := range ref {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	ref = b.String()
	if ref == "" {
		return ""
	}

	runes := []rune(ref)
	i := 0
	for i < len(runes) && unicode.IsLetter(runes[i]) {
		i++
	}
	if i == len(runes) {
		return ref
	}

	prefix := string(runes[:i])
	rest := strings.TrimLeft(string(runes[i:]), "0")
	if rest == "" {
		rest = "0"
	}
	return prefix + rest
}

// NormalizeName canonicalizes a counterparty name for comparison.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Counterparty extracts the normalized external party name from an
// attachment: the customer for sales invoices, the vendor for purchase
// invoices and receipts. The company's own name is never a counterparty;
// it denotes self-dealing and maps to "".
func Counterparty(att domain.Attachment, companyName string) string {
	var name string
	switch att.Kind {
	case domain.KindSalesInvoice:
		name = NormalizeName(att.Recipient)
	case domain.KindPurchaseInvoice:
		name = NormalizeName(att.Issuer)
		if name == "" {
			name = NormalizeName(att.Supplier)
		}
	case domain.KindReceipt:
		name = NormalizeName(att.Supplier)
	}

	if name != "" && name == NormalizeName(companyName) {
		return ""
	}
	return name
}
