package model

import "time"

// Profile is one effective-dated version of a user's body profile and goal.
type Profile struct {
	ID             int64
	Age            int
	Gender         string
	HeightCm       float64
	WeightKg       float64
	ActivityLevel  string
	GoalType       string
	WeeklyRateKg   float64
	ProteinPct     float64
	CarbsPct       float64
	FatPct         float64
	StartWeightKg  *float64
	TargetWeightKg *float64
	EffectiveDate  string
	CreatedAt      time.Time
}

type UnitPreference struct {
	FoodName   string
	Unit       string
	Frequency  int
	LastUsedAt time.Time
}
