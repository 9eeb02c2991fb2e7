package kcal

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/saadjs/kcal-core/internal/service"
	"github.com/saadjs/kcal-core/internal/units"
)

var unitCmd = &cobra.Command{
	Use:   "unit",
	Short: "Convert quantities, suggest units and scale nutrition",
}

var unitConvertCmd = &cobra.Command{
	Use:   "convert <quantity> <from> <to>",
	Short: "Convert a quantity between units of the same category",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		qty, err := parseFloatArg("quantity", args[0])
		if err != nil {
			return err
		}
		conv := units.Convert(units.ClampQuantity(qty), args[1], args[2])
		if !conv.Valid {
			return conv.Err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%g %s = %g %s\n", units.ClampQuantity(qty), units.NormalizeUnit(args[1]), conv.Value, units.NormalizeUnit(args[2]))
		return nil
	},
}

var unitCategoryCmd = &cobra.Command{
	Use:   "category <unit>",
	Short: "Show the category of a unit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := units.UnitCategory(args[0])
		if c == units.CategoryUnknown {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: unknown\n", args[0])
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (base %s)\n", units.NormalizeUnit(args[0]), c, c.BaseUnit())
		return nil
	},
}

var unitSuggestJSON bool

var unitSuggestCmd = &cobra.Command{
	Use:   "suggest <food>",
	Short: "Suggest measuring units for a food",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := units.SuggestUnits(args[0])
		logger.Debug("unit suggestion", zap.String("food", args[0]), zap.String("group", s.Group))
		if unitSuggestJSON {
			return writeJSON(cmd.OutOrStdout(), s)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", s.Reason)
		for _, u := range s.Units {
			fmt.Fprintf(cmd.OutOrStdout(), "  %g %s\n", u.Size, u.Unit)
		}
		return nil
	},
}

var unitServingUnit string

var unitDefaultCmd = &cobra.Command{
	Use:   "default <food>",
	Short: "Show the best default unit for a food",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			r := units.NewResolver(service.NewUnitPreferenceStore(sqldb, logger), time.Now)
			d := r.BestDefaultUnit(args[0], unitServingUnit)
			logger.Debug("default unit", zap.String("food", args[0]), zap.String("unit", d.Unit), zap.String("source", string(d.Source)))
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s: %s)\n", d.Unit, d.Source, d.Reason)
			return nil
		})
	},
}

var unitPreferCmd = &cobra.Command{
	Use:   "prefer <food> <unit>",
	Short: "Record a unit choice for a food",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if units.UnitCategory(args[1]) == units.CategoryUnknown {
			return fmt.Errorf("unknown unit %q", args[1])
		}
		return withDB(func(sqldb *sql.DB) error {
			r := units.NewResolver(service.NewUnitPreferenceStore(sqldb, logger), time.Now)
			p, err := r.SavePreference(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s for %s (used %d time(s))\n", p.Unit, units.NormalizeFoodName(args[0]), p.Frequency)
			return nil
		})
	},
}

var unitPrefsLimit int

var unitPrefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "List saved unit preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.NewUnitPreferenceStore(sqldb, logger).List(unitPrefsLimit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "FOOD\tUNIT\tCOUNT\tLAST USED")
			for _, p := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\t%s\n", p.FoodName, p.Unit, p.Frequency, p.LastUsedAt.Format(time.RFC3339))
			}
			return nil
		})
	},
}

var (
	scaleBaseQty  float64
	scaleBaseUnit string
	scaleQty      float64
	scaleUnit     string
	scaleNutrient []string
	scaleStrict   bool
	scaleJSON     bool
)

type scaleJSONOut struct {
	Quantity    units.Quantity     `json:"quantity"`
	Nutrients   map[string]float64 `json:"nutrients"`
	Approximate bool               `json:"approximate"`
}

var unitScaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "Scale nutrition from a base quantity to a new quantity",
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := parseNutrients(scaleNutrient)
		if err != nil {
			return err
		}
		qty := units.ClampQuantity(scaleQty)
		res := units.ScaleNutrition(base, scaleBaseQty, scaleBaseUnit, qty, scaleUnit)
		if res.Approximate {
			if scaleStrict {
				return res.Conversion.Err
			}
			logger.Warn("units not convertible, using plain ratio",
				zap.String("from", scaleUnit), zap.String("to", scaleBaseUnit), zap.Error(res.Conversion.Err))
		}

		if scaleJSON {
			return writeJSON(cmd.OutOrStdout(), scaleJSONOut{
				Quantity:    units.Quantity{Value: qty, Unit: units.NormalizeUnit(scaleUnit)},
				Nutrients:   res.Nutrients,
				Approximate: res.Approximate,
			})
		}
		out := cmd.OutOrStdout()
		label := ""
		if res.Approximate {
			label = " (approximate)"
		}
		fmt.Fprintf(out, "%g %s%s\n", qty, units.NormalizeUnit(scaleUnit), label)
		names := make([]string, 0, len(res.Nutrients))
		for name := range res.Nutrients {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(out, "  %s: %g\n", name, res.Nutrients[name])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(unitCmd)
	unitCmd.AddCommand(unitConvertCmd, unitCategoryCmd, unitSuggestCmd, unitDefaultCmd, unitPreferCmd, unitPrefsCmd, unitScaleCmd)

	unitSuggestCmd.Flags().BoolVar(&unitSuggestJSON, "json", false, "Output JSON")
	unitDefaultCmd.Flags().StringVar(&unitServingUnit, "serving-unit", "", "Serving unit from the nutrition label")
	unitPrefsCmd.Flags().IntVar(&unitPrefsLimit, "limit", 20, "Maximum preferences to list (0 for all)")

	unitScaleCmd.Flags().Float64Var(&scaleBaseQty, "base-qty", 100, "Quantity the nutrients are given for")
	unitScaleCmd.Flags().StringVar(&scaleBaseUnit, "base-unit", "g", "Unit of the base quantity")
	unitScaleCmd.Flags().Float64Var(&scaleQty, "qty", 0, "New quantity")
	unitScaleCmd.Flags().StringVar(&scaleUnit, "unit", "g", "Unit of the new quantity")
	unitScaleCmd.Flags().StringArrayVar(&scaleNutrient, "nutrient", nil, "Nutrient per base quantity as name=value (repeatable)")
	unitScaleCmd.Flags().BoolVar(&scaleStrict, "strict", false, "Fail instead of approximating when units are incompatible")
	unitScaleCmd.Flags().BoolVar(&scaleJSON, "json", false, "Output JSON")
	_ = unitScaleCmd.MarkFlagRequired("qty")
	_ = unitScaleCmd.MarkFlagRequired("nutrient")
}
