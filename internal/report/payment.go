package report

import (
	"strings"

	"github.com/jengzang/lalin-backend-go/internal/models"
	"github.com/shopspring/decimal"
)

// PaymentMethod selects which payment channels a report sums
type PaymentMethod string

const (
	Tunai         PaymentMethod = "Tunai"
	EToll         PaymentMethod = "E-Toll"
	Flo           PaymentMethod = "Flo"
	KTP           PaymentMethod = "KTP"
	Keseluruhan   PaymentMethod = "Keseluruhan"
	ETollTunaiFlo PaymentMethod = "E-Toll+Tunai+Flo"
)

// DefaultPaymentMethod is used when a query names none
const DefaultPaymentMethod = Tunai

var paymentMethods = []models.PaymentMethodTab{
	{Label: "Total Tunai", Value: string(Tunai)},
	{Label: "Total E-Toll", Value: string(EToll)},
	{Label: "Total Flo", Value: string(Flo)},
	{Label: "Total KTP", Value: string(KTP)},
	{Label: "Total Keseluruhan", Value: string(Keseluruhan)},
	{Label: "Total E-Toll+Tunai+Flo", Value: string(ETollTunaiFlo)},
}

// Tabs returns the selectable payment methods in display order
func Tabs() []models.PaymentMethodTab {
	out := make([]models.PaymentMethodTab, len(paymentMethods))
	copy(out, paymentMethods)
	return out
}

// ParsePaymentMethod maps a query value to a payment method. An empty value
// selects DefaultPaymentMethod. A '+' decoded to a space by form encoding is
// accepted as well.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultPaymentMethod, true
	}
	s = strings.ReplaceAll(s, " ", "+")
	for _, tab := range paymentMethods {
		if strings.EqualFold(tab.Value, s) {
			return PaymentMethod(tab.Value), true
		}
	}
	return "", false
}

// ETollAmount sums the card issuer channels
func ETollAmount(l models.Lalin) decimal.Decimal {
	return l.EMandiri.Add(l.EBri).Add(l.EBni).Add(l.EBca).Add(l.ENobu).Add(l.EDKI).Add(l.EMega)
}

// KTPAmount sums the exemption channels
func KTPAmount(l models.Lalin) decimal.Decimal {
	return l.DinasOpr.Add(l.DinasMitra).Add(l.DinasKary)
}

// PaymentValue returns the amount of l counted under method. Unknown methods
// count as zero.
func PaymentValue(l models.Lalin, method PaymentMethod) decimal.Decimal {
	switch method {
	case Tunai:
		return l.Tunai
	case EToll:
		return ETollAmount(l)
	case Flo:
		return l.EFlo
	case KTP:
		return KTPAmount(l)
	case Keseluruhan:
		return ETollAmount(l).Add(l.Tunai).Add(l.EFlo).Add(KTPAmount(l))
	case ETollTunaiFlo:
		return ETollAmount(l).Add(l.Tunai).Add(l.EFlo)
	default:
		return decimal.Zero
	}
}
