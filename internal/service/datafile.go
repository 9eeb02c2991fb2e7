package service

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/saadjs/kcal-core/internal/targets"
)

type foodRow struct {
	Name     string  `yaml:"name" validate:"required"`
	Calories float64 `yaml:"calories" validate:"gte=0"`
	Proteins float64 `yaml:"proteins" validate:"gte=0"`
	Carbs    float64 `yaml:"carbs" validate:"gte=0"`
	Fat      float64 `yaml:"fat" validate:"gte=0"`
}

type foodFile struct {
	Foods []foodRow `yaml:"foods" validate:"dive"`
}

type dayRow struct {
	Date     string  `yaml:"date" validate:"omitempty,datetime=2006-01-02"`
	Calories float64 `yaml:"calories" validate:"gte=0"`
	Protein  float64 `yaml:"protein" validate:"gte=0"`
	Carbs    float64 `yaml:"carbs" validate:"gte=0"`
	Fat      float64 `yaml:"fat" validate:"gte=0"`
}

type weekFile struct {
	Days []dayRow `yaml:"days" validate:"dive"`
}

// LoadFoodIndex reads suggestion candidates from a YAML or JSON file. The
// file is either a list of foods or a mapping with a "foods" list.
func LoadFoodIndex(path string) ([]targets.Food, error) {
	var file foodFile
	if err := decodeListFile(path, &file, &file.Foods); err != nil {
		return nil, err
	}
	if err := validateStruct(file); err != nil {
		return nil, fmt.Errorf("food index %s: %w", path, err)
	}
	out := make([]targets.Food, 0, len(file.Foods))
	for _, f := range file.Foods {
		out = append(out, targets.Food{Name: f.Name, Calories: f.Calories, Proteins: f.Proteins, Carbs: f.Carbs, Fat: f.Fat})
	}
	return out, nil
}

// LoadWeeklyData reads per-day totals from a YAML or JSON file. The file is
// either a list of days or a mapping with a "days" list.
func LoadWeeklyData(path string) ([]targets.DailyTotals, error) {
	var file weekFile
	if err := decodeListFile(path, &file, &file.Days); err != nil {
		return nil, err
	}
	if err := validateStruct(file); err != nil {
		return nil, fmt.Errorf("weekly data %s: %w", path, err)
	}
	out := make([]targets.DailyTotals, 0, len(file.Days))
	for _, d := range file.Days {
		out = append(out, targets.DailyTotals{Date: d.Date, Calories: d.Calories, Protein: d.Protein, Carbs: d.Carbs, Fat: d.Fat})
	}
	return out, nil
}

// decodeListFile decodes path into wrapper when the document is a mapping,
// or straight into list when it is a sequence.
func decodeListFile(path string, wrapper any, list any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		err = root.Decode(list)
	case yaml.MappingNode:
		err = root.Decode(wrapper)
	default:
		return fmt.Errorf("parse %s: expected a list or mapping", path)
	}
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
