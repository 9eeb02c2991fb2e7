package units

// Quantity is an amount in a unit.
type Quantity struct {
	Value float64 `json:"value" yaml:"value"`
	Unit  string  `json:"unit" yaml:"unit"`
}

// NutritionRecord holds nutrient amounts for exactly one basis quantity.
// Records at different bases must be rescaled before they are combined.
type NutritionRecord struct {
	Basis     Quantity           `json:"basis" yaml:"basis"`
	Nutrients map[string]float64 `json:"nutrients" yaml:"nutrients"`
}

// ScaleResult is the outcome of scaling nutrients to a new quantity.
type ScaleResult struct {
	Nutrients map[string]float64
	// Approximate is set when the units could not be converted and the
	// result came from a same-unit ratio instead.
	Approximate bool
	Conversion  Conversion
}

// TryScaleNutrition converts newQty in newUnit into baseUnit and scales every
// nutrient by converted/baseQty, rounding to 2 decimal places. It returns
// ok=false when the units cannot be converted; callers then decide whether
// FallbackScale is acceptable. A non-positive baseQty scales everything to 0.
func TryScaleNutrition(base map[string]float64, baseQty float64, baseUnit string, newQty float64, newUnit string) (map[string]float64, Conversion, bool) {
	conv := Convert(newQty, newUnit, baseUnit)
	if !conv.Valid {
		return nil, conv, false
	}
	return scaleBy(base, ratio(conv.Value, baseQty)), conv, true
}

// FallbackScale scales nutrients by the plain ratio newQty/baseQty,
// ignoring units. It is the documented approximation for quantities that
// cannot be converted, such as grams of a food described per piece.
func FallbackScale(base map[string]float64, baseQty, newQty float64) map[string]float64 {
	return scaleBy(base, ratio(newQty, baseQty))
}

// ScaleNutrition tries a unit-aware scale and falls back to the plain ratio
// when the units are incompatible.
func ScaleNutrition(base map[string]float64, baseQty float64, baseUnit string, newQty float64, newUnit string) ScaleResult {
	scaled, conv, ok := TryScaleNutrition(base, baseQty, baseUnit, newQty, newUnit)
	if ok {
		return ScaleResult{Nutrients: scaled, Conversion: conv}
	}
	return ScaleResult{
		Nutrients:   FallbackScale(base, baseQty, newQty),
		Approximate: true,
		Conversion:  conv,
	}
}

// Rescale returns the record expressed at a new basis. The second return
// value reports whether the fallback ratio was used.
func (r NutritionRecord) Rescale(to Quantity) (NutritionRecord, bool) {
	res := ScaleNutrition(r.Nutrients, r.Basis.Value, r.Basis.Unit, to.Value, to.Unit)
	return NutritionRecord{Basis: to, Nutrients: res.Nutrients}, res.Approximate
}

func ratio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}

func scaleBy(base map[string]float64, factor float64) map[string]float64 {
	out := make(map[string]float64, len(base))
	for name, amount := range base {
		out[name] = roundTo(amount*factor, 2)
	}
	return out
}
