package report

import (
	"fmt"

	"github.com/jengzang/lalin-backend-go/internal/models"
	"github.com/shopspring/decimal"
)

// MaxDashboardGerbangs bounds the gerbang bar chart
const MaxDashboardGerbangs = 5

type channel struct {
	label  string
	amount func(models.Lalin) decimal.Decimal
}

// Order of the payment channel bar chart
var dashboardChannels = []channel{
	{"BCA", func(l models.Lalin) decimal.Decimal { return l.EBca }},
	{"BRI", func(l models.Lalin) decimal.Decimal { return l.EBri }},
	{"BNI", func(l models.Lalin) decimal.Decimal { return l.EBni }},
	{"DKI", func(l models.Lalin) decimal.Decimal { return l.EDKI }},
	{"Mandiri", func(l models.Lalin) decimal.Decimal { return l.EMandiri }},
	{"Mega", func(l models.Lalin) decimal.Decimal { return l.EMega }},
	{"Flo", func(l models.Lalin) decimal.Decimal { return l.EFlo }},
}

// TrafficAmount is the amount a lalin contributes to dashboard totals:
// cash, every card issuer and Flo. Exemptions are not revenue.
func TrafficAmount(l models.Lalin) decimal.Decimal {
	return l.Tunai.Add(ETollAmount(l)).Add(l.EFlo)
}

// orderedSum accumulates decimals per key in first-seen key order
type orderedSum struct {
	keys   []int64
	values map[int64]decimal.Decimal
}

func newOrderedSum() *orderedSum {
	return &orderedSum{values: make(map[int64]decimal.Decimal)}
}

func (o *orderedSum) add(key int64, v decimal.Decimal) {
	cur, ok := o.values[key]
	if !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = cur.Add(v)
}

func (o *orderedSum) total() decimal.Decimal {
	total := decimal.Zero
	for _, k := range o.keys {
		total = total.Add(o.values[k])
	}
	return total
}

// shares converts the sums to whole percentages of their total
func (o *orderedSum) shares(label string) []models.PieItem {
	total := o.total()
	hundred := decimal.NewFromInt(100)

	items := make([]models.PieItem, 0, len(o.keys))
	for _, k := range o.keys {
		var pct int64
		if total.IsPositive() {
			pct = o.values[k].Mul(hundred).Div(total).Round(0).IntPart()
		}
		items = append(items, models.PieItem{
			ID:    k,
			Value: pct,
			Label: fmt.Sprintf("%s %d", label, k),
		})
	}
	return items
}

// BuildDashboard summarizes one page of lalins for the dashboard charts
func BuildDashboard(lalins []models.Lalin) models.Dashboard {
	if len(lalins) == 0 {
		return models.Dashboard{
			PaymentChannels: []models.ChartItem{},
			Gerbangs:        []models.ChartItem{},
			Shifts:          []models.PieItem{},
			Ruas:            []models.PieItem{},
		}
	}

	channels := make([]decimal.Decimal, len(dashboardChannels))
	gerbangs := newOrderedSum()
	shifts := newOrderedSum()
	ruas := newOrderedSum()

	for _, l := range lalins {
		for i, ch := range dashboardChannels {
			channels[i] = channels[i].Add(ch.amount(l))
		}

		amount := TrafficAmount(l)
		gerbangs.add(l.IDGerbang, amount)
		shifts.add(int64(l.Shift), amount)
		ruas.add(l.IDCabang, amount)
	}

	paymentChannels := make([]models.ChartItem, len(dashboardChannels))
	for i, ch := range dashboardChannels {
		paymentChannels[i] = models.ChartItem{Label: ch.label, Value: channels[i]}
	}

	gerbangItems := make([]models.ChartItem, 0, MaxDashboardGerbangs)
	for _, id := range gerbangs.keys {
		if len(gerbangItems) == MaxDashboardGerbangs {
			break
		}
		gerbangItems = append(gerbangItems, models.ChartItem{
			Label: fmt.Sprintf("Gerbang %d", id),
			Value: gerbangs.values[id],
		})
	}

	return models.Dashboard{
		PaymentChannels: paymentChannels,
		Gerbangs:        gerbangItems,
		Shifts:          shifts.shares("Shift"),
		Ruas:            ruas.shares("Ruas"),
	}
}
