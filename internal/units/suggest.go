package units

import "strings"

// SuggestedUnit is a candidate unit with a sensible starting amount.
type SuggestedUnit struct {
	Unit string  `json:"unit"`
	Size float64 `json:"size"`
}

// Suggestion is the ranked unit list for a food plus why it was chosen.
type Suggestion struct {
	Group  string          `json:"group"`
	Reason string          `json:"reason"`
	Units  []SuggestedUnit `json:"units"`
}

// Top returns the first ranked unit.
func (s Suggestion) Top() SuggestedUnit {
	if len(s.Units) == 0 {
		return SuggestedUnit{Unit: "g", Size: 100}
	}
	return s.Units[0]
}

type keywordGroup struct {
	name     string
	keywords []string
	// excludes skips the group when any of these appear in the name.
	excludes []string
	reason   string
	units    []SuggestedUnit
}

const defaultGroup = "default"

// keywordGroups is evaluated in order and the first match wins, so the
// order is part of the behavior: liquids must precede produce ("orange
// juice"), oils must precede nuts ("peanut butter"), and produce must
// precede eggs ("eggplant").
var keywordGroups = []keywordGroup{
	{
		name:     "liquid",
		keywords: []string{"milk", "juice", "water", "coffee", "tea", "soda", "broth", "stock", "smoothie", "shake", "soup", "wine", "beer", "kombucha", "lemonade", "eggnog", "latte", "cola", "drink"},
		excludes: []string{"steak", "steam", "watermelon", "chocolate"},
		reason:   "Liquids are easiest to measure by volume",
		units:    []SuggestedUnit{{Unit: "cup", Size: 1}, {Unit: "ml", Size: 240}, {Unit: "fl oz", Size: 8}},
	},
	{
		name:     "oil",
		keywords: []string{"oil", "butter", "ghee", "lard", "margarine", "mayonnaise", "mayo", "dressing", "vinaigrette"},
		excludes: []string{"boil", "broil", "butternut"},
		reason:   "Oils and fats are usually portioned by the tablespoon",
		units:    []SuggestedUnit{{Unit: "tbsp", Size: 1}, {Unit: "tsp", Size: 1}, {Unit: "ml", Size: 15}},
	},
	{
		name:     "spice",
		keywords: []string{"salt", "pepper", "cinnamon", "paprika", "cumin", "oregano", "basil", "thyme", "turmeric", "spice", "seasoning", "powder", "nutmeg", "extract", "baking soda"},
		excludes: []string{"bell pepper", "pepperoni", "salted", "protein powder"},
		reason:   "Spices and seasonings are used in small amounts",
		units:    []SuggestedUnit{{Unit: "tsp", Size: 1}, {Unit: "tbsp", Size: 1}, {Unit: "g", Size: 2}},
	},
	{
		name:     "meat",
		keywords: []string{"chicken", "beef", "pork", "turkey", "lamb", "steak", "bacon", "ham", "sausage", "salmon", "tuna", "cod", "tilapia", "shrimp", "fish", "pepperoni", "veal", "duck", "jerky", "meatball"},
		excludes: []string{"graham"},
		reason:   "Meat and fish portions are usually weighed in ounces",
		units:    []SuggestedUnit{{Unit: "oz", Size: 4}, {Unit: "g", Size: 113}, {Unit: "lb", Size: 0.25}},
	},
	{
		name:     "produce",
		keywords: []string{"apple", "banana", "orange", "pear", "peach", "plum", "kiwi", "mango", "avocado", "lemon", "lime", "tomato", "potato", "onion", "carrot", "cucumber", "zucchini", "eggplant", "bell pepper", "grapefruit", "nectarine", "apricot", "melon"},
		excludes: []string{"sauce", "chips"},
		reason:   "Whole fruits and vegetables are counted by the piece",
		units:    []SuggestedUnit{{Unit: "piece", Size: 1}, {Unit: "g", Size: 100}, {Unit: "cup", Size: 1}},
	},
	{
		name:     "cup-measured",
		keywords: []string{"berry", "berries", "grape", "spinach", "lettuce", "kale", "arugula", "greens", "cabbage", "rice", "quinoa", "oat", "pasta", "spaghetti", "noodle", "macaroni", "cereal", "couscous", "barley", "granola", "bean", "lentil", "chickpea", "popcorn"},
		excludes: []string{"goat"},
		reason:   "Berries, leafy greens, grains and pasta are measured by the cup",
		units:    []SuggestedUnit{{Unit: "cup", Size: 1}, {Unit: "g", Size: 100}, {Unit: "oz", Size: 3}},
	},
	{
		name:     "nut-cheese",
		keywords: []string{"almond", "walnut", "cashew", "pecan", "pistachio", "peanut", "hazelnut", "macadamia", "nut", "seed", "cheese", "cheddar", "mozzarella", "parmesan", "feta", "brie"},
		excludes: []string{"doughnut", "butternut", "cottage cheese"},
		reason:   "Nuts and cheese are dense, so ounces keep portions honest",
		units:    []SuggestedUnit{{Unit: "oz", Size: 1}, {Unit: "g", Size: 28}, {Unit: "cup", Size: 0.25}},
	},
	{
		name:     "dairy",
		keywords: []string{"yogurt", "yoghurt", "kefir", "cottage cheese", "pudding", "ice cream", "sour cream", "skyr"},
		reason:   "Yogurt-style dairy is measured by the cup",
		units:    []SuggestedUnit{{Unit: "cup", Size: 1}, {Unit: "g", Size: 170}, {Unit: "oz", Size: 6}},
	},
	{
		name:     "egg",
		keywords: []string{"egg"},
		excludes: []string{"eggplant", "eggnog", "veggie"},
		reason:   "Eggs are counted individually",
		units:    []SuggestedUnit{{Unit: "piece", Size: 1}, {Unit: "g", Size: 50}},
	},
}

var fallbackSuggestion = Suggestion{
	Group:  defaultGroup,
	Reason: "Grams work for any food",
	Units:  []SuggestedUnit{{Unit: "g", Size: 100}, {Unit: "oz", Size: 3.5}},
}

// SuggestUnits runs the keyword cascade over the food name. Matching is by
// substring on the normalized name; the first group that matches and has no
// excluded term wins.
func SuggestUnits(foodName string) Suggestion {
	name := NormalizeFoodName(foodName)
	if name == "" {
		return copySuggestion(fallbackSuggestion)
	}
	for _, g := range keywordGroups {
		if containsAny(name, g.keywords) && !containsAny(name, g.excludes) {
			return copySuggestion(Suggestion{Group: g.name, Reason: g.reason, Units: g.units})
		}
	}
	return copySuggestion(fallbackSuggestion)
}

// NormalizeFoodName is the key used for preference lookups.
func NormalizeFoodName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

func copySuggestion(s Suggestion) Suggestion {
	s.Units = append([]SuggestedUnit(nil), s.Units...)
	return s
}
