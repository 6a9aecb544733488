// Package mix calculates e-liquid blends.
//
// Leaf liquids (Liquid, NicBase, Aroma) are immutable values holding a volume
// in ml and a PG/VG split. A Recipe folds any number of them, and other
// recipes, into running totals: volume, PG and VG volumes, nicotine mass and
// per-name aroma volumes. Ratios, the nicotine concentration and aroma
// percentages are derived from those totals after every change.
//
//	base, _ := mix.NewLiquid(80, mix.WithPG(30))
//	nic, _ := mix.NewNicBase(10, mix.WithNicotine(20))
//	mango, _ := mix.NewAroma(10, mix.WithName("Mango"))
//	r, err := mix.NewRecipe(base, nic, mango)
package mix
