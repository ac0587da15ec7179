package services

import "github.com/EXCALOFRIO/RonaldosVinicius/models"

// 생리학/법규 상수
const (
	EthanolDensity           = 0.789 // g/mL
	EliminationRatePerHour   = 0.15  // g/L/h
	EliminationRatePerMinute = EliminationRatePerHour / 60
	BloodBreathRatio         = 2100 // 혈액:호기 분배비

	// 시뮬레이션 설정
	SimulationTimeStep             = 5.0     // 분
	SimulationMinHoursAfterDrink   = 12.0    // 마지막 음료 이후 최소 시뮬레이션 시간
	SimulationMaxMinutesAfterDrink = 10080.0 // 마지막 음료 이후 최대 시뮬레이션 시간 (1주)
	SimulationSoberThresholdGL     = 0.005   // 조기 종료 기준 (g/L)
	SimulationEarlyExitMinutes     = 90.0    // 이 시간 동안 계속 낮으면 종료
	MinConsumptionMinutes          = 1.0

	DefaultWaitMinutes = 20.0 // 새 음료 추가 시 기본 대기 시간
)

// DistributionFactor : 성별 Widmark 계수 (체내 수분 비율)
var DistributionFactor = map[models.Gender]float64{
	models.Male:   0.68,
	models.Female: 0.55,
}

// LegalLimits : 단위별 법정 기준 (혈중 g/L, 호기 mg/L)
var LegalLimits = map[models.Unit]models.LegalLimit{
	models.UnitBlood:  {Standard: 0.5, NovelPro: 0.3},
	models.UnitBreath: {Standard: 0.25, NovelPro: 0.15},
}

// DurationOption : 마시는 시간 프리셋
type DurationOption struct {
	Key     models.DurationKey `json:"key"`
	Minutes float64            `json:"minutes"`
	Name    string             `json:"name"`
}

// DurationOptions : 화면 표시 순서대로 정렬된 프리셋 (custom은 값 없음)
var DurationOptions = []DurationOption{
	{Key: models.DurationHidalgo, Minutes: 0.1, Name: "Hidalgo (0 min)"},
	{Key: models.DurationImmediate, Minutes: 5, Name: "Rápido (5 min)"},
	{Key: models.DurationShort, Minutes: 10, Name: "Corto (10 min)"},
	{Key: models.DurationNormal, Minutes: 30, Name: "Normal (30 min)"},
	{Key: models.DurationLong, Minutes: 60, Name: "Largo (1 hr)"},
	{Key: models.DurationExtended, Minutes: 120, Name: "Extendido (2 hr)"},
	{Key: models.DurationCustom, Minutes: 0, Name: "Personalizado"},
}

// DurationMinutes : 프리셋 키의 분 값 (없거나 custom이면 false)
func DurationMinutes(key models.DurationKey) (float64, bool) {
	if key == models.DurationCustom {
		return 0, false
	}
	for _, o := range DurationOptions {
		if o.Key == key {
			return o.Minutes, true
		}
	}
	return 0, false
}

// KindDefaults : 음료 종류별 기본값
type KindDefaults struct {
	VolumeMl   float64
	AbvPercent float64
	Duration   models.DurationKey
	Preset     string
	Name       string
}

// DrinkDefaults : 종류를 바꾸거나 새로 추가할 때 쓰는 값
var DrinkDefaults = map[models.DrinkKind]KindDefaults{
	models.KindBeer:    {VolumeMl: 330, AbvPercent: 5, Duration: models.DurationNormal, Preset: "tercio", Name: "Cerveza"},
	models.KindWine:    {VolumeMl: 150, AbvPercent: 12, Duration: models.DurationNormal, Preset: "copa", Name: "Vino"},
	models.KindSpirits: {VolumeMl: 50, AbvPercent: 40, Duration: models.DurationShort, Preset: "standard", Name: "Cubata"},
}

// IsKnownKind : 기본값이 정의된 음료 종류인지
func IsKnownKind(kind models.DrinkKind) bool {
	_, ok := DrinkDefaults[kind]
	return ok
}
