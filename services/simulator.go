package services

import (
	"math"
	"sort"

	"github.com/EXCALOFRIO/RonaldosVinicius/models"
)

// ConvertConcentration : 혈중 농도(g/L)를 표시 단위로 변환
// 호기 농도(mg/L) = g/L × 1000 / 2100
func ConvertConcentration(gL float64, unit models.Unit) float64 {
	if unit == models.UnitBreath {
		return gL * 1000 / BloodBreathRatio
	}
	return gL
}

// BloodFromBreath : 호기 농도(mg/L)를 혈중 농도(g/L)로 되돌림
func BloodFromBreath(mgL float64) float64 {
	return mgL * BloodBreathRatio / 1000
}

// Simulate : 시간축을 5분 간격으로 나눠 농도 시계열 생성
// 입력은 수정하지 않으며 같은 입력이면 항상 같은 결과를 돌려준다.
func Simulate(drinks []models.Drink, factors models.PersonalFactors, unit models.Unit) []models.SimulationSample {
	series := []models.SimulationSample{}
	if !(factors.WeightKg > 0) {
		return series
	}

	sorted := validDrinks(drinks)
	if len(sorted) == 0 {
		return series
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartMinute < sorted[j].StartMinute
	})

	lastDrinkEnd := 0.0
	for _, d := range sorted {
		lastDrinkEnd = math.Max(lastDrinkEnd, d.StartMinute+EffectiveDuration(d))
	}

	// 범위를 넘으면 마지막 점 뒤에 0을 붙여 끝냄
	horizon := math.Max(SimulationMinHoursAfterDrink*60, roughHoursToSober(sorted, factors)*60)
	endTime := math.Ceil(lastDrinkEnd + math.Min(horizon, SimulationMaxMinutesAfterDrink))

	soberThreshold := ConvertConcentration(SimulationSoberThresholdGL, unit)
	earlyExitSteps := int(math.Ceil(SimulationEarlyExitMinutes / SimulationTimeStep))
	lowSteps := 0

	for t := 0.0; t <= endTime; t += SimulationTimeStep {
		value := ConvertConcentration(Aggregate(sorted, t, factors), unit)
		series = append(series, newSample(t, value))

		if value < soberThreshold {
			lowSteps++
		} else {
			lowSteps = 0
		}

		if t > lastDrinkEnd && lowSteps >= earlyExitSteps {
			last := &series[len(series)-1]
			if last.Concentration > soberThreshold*1.1 {
				series = append(series, newSample(t+SimulationTimeStep, 0))
			} else if last.Concentration > 0 {
				// 조기 종료 시 마지막 점은 정확히 0
				last.Concentration = 0
			}
			break
		}
	}

	// 끝까지 돌았는데 아직 0이 아니면 한 칸 뒤에 0 추가
	if n := len(series); n > 0 && series[n-1].Concentration > 0 {
		series = append(series, newSample(series[n-1].TimeMinutes+SimulationTimeStep, 0))
	}
	return series
}

// roughHoursToSober : 타이밍을 무시한 최대 농도 추정치로 시뮬레이션 범위를 잡음 (여유 1.5배)
func roughHoursToSober(drinks []models.Drink, factors models.PersonalFactors) float64 {
	bodyWater := BodyWaterLitres(factors)
	if bodyWater <= 0 {
		return 0
	}
	roughPeak := 0.0
	for _, d := range drinks {
		roughPeak += AlcoholGrams(d) / bodyWater
	}
	if roughPeak <= 0 {
		return 0
	}
	return (roughPeak / EliminationRatePerHour) * 1.5
}

// validDrinks : 숫자가 아닌 값(NaN/Inf)이 있는 음료를 걸러낸 복사본
func validDrinks(drinks []models.Drink) []models.Drink {
	out := make([]models.Drink, 0, len(drinks))
	for _, d := range drinks {
		if isFinite(d.VolumeMl) && isFinite(d.AbvPercent) && isFinite(d.StartMinute) && isFinite(d.WaitAfterPreviousMinutes) {
			out = append(out, d)
		}
	}
	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func newSample(t, value float64) models.SimulationSample {
	return models.SimulationSample{
		TimeMinutes:   t,
		Concentration: value,
		TimeFormatted: FormatMinutes(t),
	}
}
