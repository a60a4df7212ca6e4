package service

import "github.com/limbo/heartmon/pkg/entity"

// Calorie model constants. Rates are linear in the excess over a fixed
// resting baseline of 70 bpm; the 4.184 divisor brings the kilojoule-scale
// intermediate down to kilocalories.
const (
	restingBaselineBPM = 70
	kcalPerKilojoule   = 4.184
)

// EstimateRate converts one heart-rate sample plus static profile attributes
// into calories burned per minute. Never negative: a bpm below the resting
// baseline clamps to 0 rather than reporting a negative burn. Callers must
// reject bpm == 0 upstream (device not worn).
func EstimateRate(bpm int, weight float64, gender int) float64 {
	excess := float64(bpm - restingBaselineBPM)
	var rate float64
	if gender == entity.GenderMale {
		rate = (0.4*excess + 0.1*weight) / kcalPerKilojoule
	} else {
		rate = (0.35*excess + 0.08*weight) / kcalPerKilojoule
	}
	if rate < 0 {
		return 0
	}
	return rate
}

// ComputeBMR is the gender-conditioned resting expenditure over 24 hours.
// Weight in kg, height in cm (converted to meters for the height term),
// age in years.
func ComputeBMR(weight, height float64, age, gender int) float64 {
	if gender == entity.GenderMale {
		return 88.362 + 13.397*weight + 4.799*(height/100) - 5.677*float64(age)
	}
	return 447.593 + 9.247*weight + 3.098*(height/100) - 4.330*float64(age)
}

// ProjectDaily assumes the instantaneous rate is sustained for a full hour on
// top of the full-day basal rate. A simplified heuristic, not an integral
// over the day.
func ProjectDaily(bmr, caloriesPerMinute float64) float64 {
	return bmr + caloriesPerMinute*60
}
