// Package units converts food quantities between measurement units and
// rescales nutrition values to a new quantity.
package units

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Category string

const (
	CategoryWeight  Category = "weight"
	CategoryVolume  Category = "volume"
	CategoryPieces  Category = "pieces"
	CategoryUnknown Category = "unknown"
)

// BaseUnit returns the pivot unit for a category, or "" when the category
// has no numeric conversion.
func (c Category) BaseUnit() string {
	switch c {
	case CategoryWeight:
		return "g"
	case CategoryVolume:
		return "ml"
	default:
		return ""
	}
}

type unitDef struct {
	category   Category
	toBaseUnit float64
}

var unitTable = map[string]unitDef{
	// weight (base = g)
	"mg":        {category: CategoryWeight, toBaseUnit: 0.001},
	"milligram": {category: CategoryWeight, toBaseUnit: 0.001},
	"g":         {category: CategoryWeight, toBaseUnit: 1},
	"gram":      {category: CategoryWeight, toBaseUnit: 1},
	"kg":        {category: CategoryWeight, toBaseUnit: 1000},
	"kilogram":  {category: CategoryWeight, toBaseUnit: 1000},
	"oz":        {category: CategoryWeight, toBaseUnit: 28.349523125},
	"ounce":     {category: CategoryWeight, toBaseUnit: 28.349523125},
	"lb":        {category: CategoryWeight, toBaseUnit: 453.59237},
	"lbs":       {category: CategoryWeight, toBaseUnit: 453.59237},
	"pound":     {category: CategoryWeight, toBaseUnit: 453.59237},

	// volume (base = ml)
	"ml":          {category: CategoryVolume, toBaseUnit: 1},
	"milliliter":  {category: CategoryVolume, toBaseUnit: 1},
	"l":           {category: CategoryVolume, toBaseUnit: 1000},
	"liter":       {category: CategoryVolume, toBaseUnit: 1000},
	"tsp":         {category: CategoryVolume, toBaseUnit: 4.92892159375},
	"teaspoon":    {category: CategoryVolume, toBaseUnit: 4.92892159375},
	"tbsp":        {category: CategoryVolume, toBaseUnit: 14.78676478125},
	"tablespoon":  {category: CategoryVolume, toBaseUnit: 14.78676478125},
	"cup":         {category: CategoryVolume, toBaseUnit: 236.5882365},
	"fl oz":       {category: CategoryVolume, toBaseUnit: 29.5735295625},
	"fluid ounce": {category: CategoryVolume, toBaseUnit: 29.5735295625},
	"pint":        {category: CategoryVolume, toBaseUnit: 473.176473},
	"pt":          {category: CategoryVolume, toBaseUnit: 473.176473},
	"quart":       {category: CategoryVolume, toBaseUnit: 946.352946},
	"qt":          {category: CategoryVolume, toBaseUnit: 946.352946},
	"gallon":      {category: CategoryVolume, toBaseUnit: 3785.411784},
	"gal":         {category: CategoryVolume, toBaseUnit: 3785.411784},

	// pieces carry no factor
	"piece": {category: CategoryPieces},
	"pc":    {category: CategoryPieces},
	"pcs":   {category: CategoryPieces},
	"each":  {category: CategoryPieces},
	"whole": {category: CategoryPieces},
}

// aliases folds spellings onto a unitTable key.
var aliases = map[string]string{
	"grams":        "gram",
	"milligrams":   "milligram",
	"kilograms":    "kilogram",
	"ounces":       "ounce",
	"pounds":       "pound",
	"milliliters":  "milliliter",
	"millilitres":  "milliliter",
	"millilitre":   "milliliter",
	"liters":       "liter",
	"litres":       "liter",
	"litre":        "liter",
	"teaspoons":    "teaspoon",
	"tablespoons":  "tablespoon",
	"cups":         "cup",
	"fl-oz":        "fl oz",
	"floz":         "fl oz",
	"fl. oz":       "fl oz",
	"fluid ounces": "fluid ounce",
	"pints":        "pint",
	"quarts":       "quart",
	"gallons":      "gallon",
	"pieces":       "piece",
}

// ErrIncompatibleUnits marks a conversion between units of different or
// unknown categories.
var ErrIncompatibleUnits = errors.New("incompatible units")

// NormalizeUnit lower-cases, trims and collapses whitespace, then folds
// known plural or alternate spellings.
func NormalizeUnit(unit string) string {
	u := strings.Join(strings.Fields(strings.ToLower(unit)), " ")
	if canonical, ok := aliases[u]; ok {
		return canonical
	}
	return u
}

func resolveUnit(unit string) (unitDef, bool) {
	def, ok := unitTable[NormalizeUnit(unit)]
	return def, ok
}

func UnitCategory(unit string) Category {
	def, ok := resolveUnit(unit)
	if !ok {
		return CategoryUnknown
	}
	return def.category
}

// Compatible reports whether a and b share a known category. Pieces are only
// compatible with other piece units.
func Compatible(a, b string) bool {
	ca := UnitCategory(a)
	return ca != CategoryUnknown && ca == UnitCategory(b)
}

// Conversion is the outcome of converting a value between units. When Valid
// is false, Value holds the unconverted input and Err explains why.
type Conversion struct {
	Value    float64
	FromUnit string
	ToUnit   string
	Valid    bool
	Err      error
}

// Convert converts value from one unit to another through the category's
// base unit, rounding to 3 decimal places. Identical units return value
// unchanged and piece units pass through without scaling. Conversions
// across categories are never approximated.
func Convert(value float64, fromUnit, toUnit string) Conversion {
	out := Conversion{Value: value, FromUnit: fromUnit, ToUnit: toUnit}
	if NormalizeUnit(fromUnit) == NormalizeUnit(toUnit) {
		out.Valid = true
		return out
	}
	if !Compatible(fromUnit, toUnit) {
		out.Err = fmt.Errorf("%w: cannot convert %s (%s) to %s (%s)",
			ErrIncompatibleUnits, fromUnit, UnitCategory(fromUnit), toUnit, UnitCategory(toUnit))
		return out
	}

	from, _ := resolveUnit(fromUnit)
	to, _ := resolveUnit(toUnit)
	out.Valid = true
	if from.category == CategoryPieces {
		return out
	}
	base := value * from.toBaseUnit
	out.Value = roundTo(base/to.toBaseUnit, 3)
	return out
}

// FormatQuantity parses input as a quantity, clamps it to >= 0 and rounds it
// to 3 decimal places. After trimming surrounding space the whole input must
// be a strconv.ParseFloat number: decimal or exponent form ("1.5", "2e3") or
// a hex float ("0x1p3"). Trailing text such as
// "12g", empty input and NaN/Inf all yield 0.
func FormatQuantity(input string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return 0
	}
	return ClampQuantity(v)
}

// ClampQuantity clamps v to >= 0 and rounds to 3 decimal places.
func ClampQuantity(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return roundTo(v, 3)
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
