// Package shipping holds the static governorate table and the cost lookup.
// The table is configuration, not state: nothing mutates it at runtime.
package shipping

import (
	"github.com/shopspring/decimal"

	"github.com/aaamo/storefront-api/internal/model"
)

var governorates = []model.Governorate{
	{ID: "alexandria", Name: "الإسكندرية", ShippingCost: decimal.NewFromInt(50)},
	{ID: "assiut", Name: "أسيوط", ShippingCost: decimal.NewFromInt(70)},
	{ID: "aswan", Name: "أسوان", ShippingCost: decimal.NewFromInt(80)},
	{ID: "beheira", Name: "البحيرة", ShippingCost: decimal.NewFromInt(55)},
	{ID: "beni_suef", Name: "بني سويف", ShippingCost: decimal.NewFromInt(65)},
	{ID: "cairo", Name: "القاهرة", ShippingCost: decimal.NewFromInt(35)},
	{ID: "dakahlia", Name: "الدقهلية", ShippingCost: decimal.NewFromInt(50)},
	{ID: "damietta", Name: "دمياط", ShippingCost: decimal.NewFromInt(55)},
	{ID: "faiyum", Name: "الفيوم", ShippingCost: decimal.NewFromInt(60)},
	{ID: "gharbia", Name: "الغربية", ShippingCost: decimal.NewFromInt(50)},
	{ID: "giza", Name: "الجيزة", ShippingCost: decimal.NewFromInt(35)},
	{ID: "ismailia", Name: "الإسماعيلية", ShippingCost: decimal.NewFromInt(60)},
	{ID: "kafr_el_sheikh", Name: "كفر الشيخ", ShippingCost: decimal.NewFromInt(55)},
	{ID: "luxor", Name: "الأقصر", ShippingCost: decimal.NewFromInt(75)},
	{ID: "matruh", Name: "مطروح", ShippingCost: decimal.NewFromInt(90)},
	{ID: "minya", Name: "المنيا", ShippingCost: decimal.NewFromInt(70)},
	{ID: "monufia", Name: "المنوفية", ShippingCost: decimal.NewFromInt(50)},
	{ID: "new_valley", Name: "الوادي الجديد", ShippingCost: decimal.NewFromInt(100)},
	{ID: "north_sinai", Name: "شمال سيناء", ShippingCost: decimal.NewFromInt(85)},
	{ID: "port_said", Name: "بورسعيد", ShippingCost: decimal.NewFromInt(60)},
	{ID: "qalyubia", Name: "القليوبية", ShippingCost: decimal.NewFromInt(40)},
	{ID: "qena", Name: "قنا", ShippingCost: decimal.NewFromInt(75)},
	{ID: "red_sea", Name: "البحر الأحمر", ShippingCost: decimal.NewFromInt(95)},
	{ID: "sharqia", Name: "الشرقية", ShippingCost: decimal.NewFromInt(50)},
	{ID: "sohag", Name: "سوهاج", ShippingCost: decimal.NewFromInt(70)},
	{ID: "south_sinai", Name: "جنوب سيناء", ShippingCost: decimal.NewFromInt(90)},
	{ID: "suez", Name: "السويس", ShippingCost: decimal.NewFromInt(60)},
}

// Governorates returns a copy of the full table, in display order.
func Governorates() []model.Governorate {
	out := make([]model.Governorate, len(governorates))
	copy(out, governorates)
	return out
}

// CostFor looks up the shipping cost by governorate display name. The second
// return is false when the name is unknown, which callers treat as
// "not yet selected" (cost zero), not as an error.
func CostFor(name string) (decimal.Decimal, bool) {
	for _, g := range governorates {
		if g.Name == name {
			return g.ShippingCost, true
		}
	}
	return decimal.Zero, false
}
