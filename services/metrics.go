package services

import (
	"math"

	"github.com/EXCALOFRIO/RonaldosVinicius/models"
)

// LegalLimitFor : 단위별 일반 법정 기준 (초과 시간 계산에 사용)
func LegalLimitFor(unit models.Unit) float64 {
	if limit, ok := LegalLimits[unit]; ok {
		return limit.Standard
	}
	return LegalLimits[models.UnitBlood].Standard
}

// PeakOf : 최고 농도 (같은 값이면 가장 이른 시각)
func PeakOf(series []models.SimulationSample) models.Peak {
	best := -1
	for i, s := range series {
		if best == -1 || s.Concentration > series[best].Concentration {
			best = i
		}
	}
	if best == -1 || !(series[best].Concentration > 0) {
		return models.Peak{Formatted: zeroFormatted}
	}
	return models.Peak{
		Value:       series[best].Concentration,
		TimeMinutes: series[best].TimeMinutes,
		Formatted:   FormatMinutes(series[best].TimeMinutes),
	}
}

// TimeAboveLimit : 기준 이상인 시간의 합 (분, 반올림)
// 구간 경계에서 기준을 넘나들면 선형 보간으로 교차 시각을 구한다.
func TimeAboveLimit(series []models.SimulationSample, limit float64) models.TimeAboveLimit {
	zero := models.TimeAboveLimit{Formatted: zeroFormatted}
	if len(series) < 2 {
		return zero
	}
	step := series[1].TimeMinutes - series[0].TimeMinutes
	if step <= 0 {
		return zero
	}

	minutes := 0.0
	for i := 1; i < len(series); i++ {
		prev := series[i-1].Concentration
		cur := series[i].Concentration
		prevAbove := prev >= limit
		curAbove := cur >= limit

		switch {
		case prevAbove && curAbove:
			minutes += step
		case curAbove:
			// 올라가며 기준 통과
			if diff := cur - prev; diff > 0 {
				minutes += math.Max(0, step-((limit-prev)/diff)*step)
			} else {
				minutes += step / 2
			}
		case prevAbove:
			// 내려가며 기준 통과
			if diff := prev - cur; diff > 0 {
				minutes += math.Max(0, ((prev-limit)/diff)*step)
			} else {
				minutes += step / 2
			}
		}
	}

	rounded := math.Round(minutes)
	return models.TimeAboveLimit{Minutes: rounded, Formatted: FormatMinutes(rounded)}
}

// TimeToSober : 농도가 처음으로 술 깬 기준 아래로 떨어지는 시각
// 범위 안에서 못 찾으면 마지막 시각을 하한 추정치로 돌려준다.
func TimeToSober(series []models.SimulationSample, unit models.Unit) models.TimeToSober {
	zero := models.TimeToSober{Formatted: zeroFormatted}
	if len(series) == 0 {
		return zero
	}

	threshold := ConvertConcentration(SimulationSoberThresholdGL, unit) * 1.05
	everAbove := false
	for _, s := range series {
		if s.Concentration >= threshold*1.1 {
			everAbove = true
			break
		}
	}

	for i := 1; i < len(series); i++ {
		prev, cur := series[i-1], series[i]
		if prev.Concentration >= threshold && cur.Concentration < threshold {
			diff := prev.Concentration - cur.Concentration
			dt := cur.TimeMinutes - prev.TimeMinutes
			minutes := math.Ceil(cur.TimeMinutes)
			if diff > 0 && dt > 0 {
				minutes = math.Ceil(prev.TimeMinutes + (prev.Concentration-threshold)/diff*dt)
			}
			return models.TimeToSober{Minutes: minutes, Formatted: FormatMinutes(minutes)}
		}
	}

	if !everAbove {
		return zero
	}

	last := series[len(series)-1]
	if last.Concentration < threshold {
		minutes := math.Ceil(last.TimeMinutes)
		return models.TimeToSober{Minutes: minutes, Formatted: FormatMinutes(minutes)}
	}
	return models.TimeToSober{
		Minutes:    last.TimeMinutes,
		Formatted:  "> " + FormatMinutes(last.TimeMinutes),
		IsEstimate: true,
	}
}

// Summarize : 세 가지 요약 지표를 한 번에 계산
func Summarize(series []models.SimulationSample, unit models.Unit) models.Summary {
	limit := LegalLimitFor(unit)
	return models.Summary{
		Peak:           PeakOf(series),
		TimeAboveLimit: TimeAboveLimit(series, limit),
		TimeToSober:    TimeToSober(series, unit),
		LegalLimit:     limit,
	}
}
