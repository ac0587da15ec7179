package services

import (
	"math"

	"github.com/EXCALOFRIO/RonaldosVinicius/models"
)

// EffectiveDuration : 실제 계산에 쓰는 흡수 구간 길이 (최소 1분)
// 값이 없거나 NaN이면 1분으로 본다.
func EffectiveDuration(d models.Drink) float64 {
	m := d.ConsumptionMinutes
	if math.IsNaN(m) || m == 0 {
		m = MinConsumptionMinutes
	}
	return math.Max(MinConsumptionMinutes, m)
}

// AlcoholGrams : 음료 한 잔의 에탄올 총량 (g)
func AlcoholGrams(d models.Drink) float64 {
	return finiteOrZero(d.VolumeMl) * (finiteOrZero(d.AbvPercent) / 100) * EthanolDensity
}

// BodyWaterLitres : 체중 × 분포 계수 (계산 불가면 0)
func BodyWaterLitres(factors models.PersonalFactors) float64 {
	if !(factors.WeightKg > 0) {
		return 0
	}
	return factors.WeightKg * DistributionFactor[factors.Gender]
}

// Contribution : 특정 시각에 음료 한 잔이 더하는 농도 (g/L)
// 섭취량은 흡수 구간 동안 선형으로 늘고, 배출은 흡수 구간의 중간 지점부터 시작한다고 본다.
func Contribution(d models.Drink, timeMinutes, bodyWaterLitres float64) float64 {
	totalGrams := AlcoholGrams(d)
	if totalGrams <= 0 || !(bodyWaterLitres > 0) {
		return 0
	}

	duration := EffectiveDuration(d)
	start := d.StartMinute
	end := start + duration

	// 아직 마시기 전
	if timeMinutes <= start {
		return 0
	}

	var ingestedGrams, eliminationMinutes float64
	if timeMinutes < end {
		spent := timeMinutes - start
		ingestedGrams = totalGrams * math.Min(1, math.Max(0, spent/duration))
		eliminationMinutes = spent / 2
	} else {
		ingestedGrams = totalGrams
		eliminationMinutes = timeMinutes - (start + duration/2)
	}
	eliminationMinutes = math.Max(0, eliminationMinutes)

	potential := ingestedGrams / bodyWaterLitres
	eliminated := EliminationRatePerMinute * eliminationMinutes

	return math.Max(0, potential-eliminated)
}

// Aggregate : 모든 음료의 기여분 합 (g/L, 0 미만은 0)
func Aggregate(drinks []models.Drink, timeMinutes float64, factors models.PersonalFactors) float64 {
	if len(drinks) == 0 {
		return 0
	}
	bodyWater := BodyWaterLitres(factors)
	if bodyWater <= 0 {
		return 0
	}

	total := 0.0
	for _, d := range drinks {
		total += Contribution(d, timeMinutes, bodyWater)
	}
	return math.Max(0, total)
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
