package services

import (
	"errors"
	"math"

	"github.com/EXCALOFRIO/RonaldosVinicius/models"

	"github.com/google/uuid"
)

// 수정 가능한 필드 이름 (JSON 필드명과 동일)
const (
	FieldKind               = "kind"
	FieldDurationPreset     = "durationPreset"
	FieldConsumptionMinutes = "consumptionMinutes"
	FieldVolumeMl           = "volumeMl"
	FieldAbvPercent         = "abvPercent"
	FieldStartMinute        = "startMinute"
	FieldWaitAfterPrevious  = "waitAfterPreviousMinutes"
)

var (
	ErrDrinkNotFound      = errors.New("drink not found")
	ErrUnknownField       = errors.New("unknown drink field")
	ErrInvalidValue       = errors.New("invalid field value")
	ErrPresetKindMismatch = errors.New("preset does not match drink kind")
)

// ResolveTimeline : fromIndex부터 시작 시각을 다시 계산한 새 슬라이스 반환
// 첫 음료의 대기 시간은 항상 0이 된다. 범위를 벗어난 인덱스면 그대로 복사만 한다.
func ResolveTimeline(drinks []models.Drink, fromIndex int) []models.Drink {
	out := cloneDrinks(drinks)
	if fromIndex < 0 || fromIndex >= len(out) {
		return out
	}

	out[0].WaitAfterPreviousMinutes = 0

	// 첫 음료의 시작 시각은 직접 입력값이라 1번부터 계산
	start := fromIndex
	if start == 0 {
		start = 1
	}
	for i := start; i < len(out); i++ {
		prev := out[i-1]
		out[i].StartMinute = prev.StartMinute + EffectiveDuration(prev) + out[i].WaitAfterPreviousMinutes
	}
	return out
}

// IndexOfDrink : ID로 음료 위치 찾기 (없으면 -1)
func IndexOfDrink(drinks []models.Drink, id string) int {
	for i, d := range drinks {
		if d.ID == id {
			return i
		}
	}
	return -1
}

// NewDrink : 종류 기본값으로 음료 생성 (시작 시각은 호출자가 정함)
func NewDrink(kind models.DrinkKind, id string) models.Drink {
	if id == "" {
		id = uuid.NewString()
	}
	def, ok := DrinkDefaults[kind]
	if !ok {
		def = DrinkDefaults[models.KindBeer]
		def.Preset = models.PresetCustom
	}
	if kind == "" {
		kind = models.KindBeer
	}
	minutes, _ := DurationMinutes(def.Duration)
	return models.Drink{
		ID:                 id,
		Kind:               kind,
		Preset:             def.Preset,
		DurationPreset:     def.Duration,
		VolumeMl:           def.VolumeMl,
		AbvPercent:         def.AbvPercent,
		ConsumptionMinutes: minutes,
	}
}

// AddDrink : 마지막 음료 뒤에 새 음료 추가
// 첫 음료는 0분에 시작하고, 이후 음료는 기본 대기 시간(20분) 뒤에 시작한다.
func AddDrink(drinks []models.Drink, kind models.DrinkKind, id string) []models.Drink {
	out := cloneDrinks(drinks)
	d := NewDrink(kind, id)
	if n := len(out); n > 0 {
		last := out[n-1]
		d.WaitAfterPreviousMinutes = DefaultWaitMinutes
		d.StartMinute = last.StartMinute + EffectiveDuration(last) + DefaultWaitMinutes
	}
	return append(out, d)
}

// RemoveDrink : 음료 삭제 후 뒤쪽 음료들의 시작 시각 재계산
func RemoveDrink(drinks []models.Drink, id string) ([]models.Drink, error) {
	idx := IndexOfDrink(drinks, id)
	if idx == -1 {
		return cloneDrinks(drinks), ErrDrinkNotFound
	}

	remaining := make([]models.Drink, 0, len(drinks)-1)
	remaining = append(remaining, drinks[:idx]...)
	remaining = append(remaining, drinks[idx+1:]...)

	// 마지막 음료를 지운 경우 뒤에 밀릴 음료가 없음
	if idx >= len(remaining) {
		return remaining, nil
	}
	// idx == 0이면 새 첫 음료의 대기 시간이 0으로 초기화되고 1번부터 다시 계산됨
	return ResolveTimeline(remaining, idx), nil
}

// UpdateDrink : 필드 하나를 수정하고 필요한 범위만 시작 시각 재계산
func UpdateDrink(drinks []models.Drink, id, field string, value models.FieldValue) ([]models.Drink, error) {
	idx := IndexOfDrink(drinks, id)
	if idx == -1 {
		return cloneDrinks(drinks), ErrDrinkNotFound
	}

	out := cloneDrinks(drinks)
	d := &out[idx]
	recalcFrom := -1

	switch field {
	case FieldKind:
		kind := models.DrinkKind(value.String())
		if kind == "" {
			return cloneDrinks(drinks), ErrInvalidValue
		}
		fresh := NewDrink(kind, d.ID)
		d.Kind = fresh.Kind
		d.Preset = fresh.Preset
		d.DurationPreset = fresh.DurationPreset
		d.VolumeMl = fresh.VolumeMl
		d.AbvPercent = fresh.AbvPercent
		d.ConsumptionMinutes = fresh.ConsumptionMinutes
		recalcFrom = idx + 1

	case FieldDurationPreset:
		key := models.DurationKey(value.String())
		if key == models.DurationCustom {
			if d.ConsumptionMinutes == 0 || math.IsNaN(d.ConsumptionMinutes) {
				d.ConsumptionMinutes = 30
			}
		} else {
			minutes, ok := DurationMinutes(key)
			if !ok {
				return cloneDrinks(drinks), ErrInvalidValue
			}
			d.ConsumptionMinutes = minutes
		}
		d.DurationPreset = key
		recalcFrom = idx + 1

	case FieldConsumptionMinutes:
		d.DurationPreset = models.DurationCustom
		d.ConsumptionMinutes = clampInput(d.ConsumptionMinutes, value, 1, 600, true)
		recalcFrom = idx + 1

	case FieldVolumeMl:
		d.VolumeMl = clampInput(d.VolumeMl, value, 1, 5000, true)
		d.Preset = models.PresetCustom

	case FieldAbvPercent:
		d.AbvPercent = clampInput(d.AbvPercent, value, 0, 100, false)
		d.Preset = models.PresetCustom

	case FieldStartMinute:
		// 시작 시각은 첫 음료만 직접 수정 가능 (최대 1주)
		if idx == 0 {
			d.StartMinute = clampInput(d.StartMinute, value, 0, 10080, true)
			d.WaitAfterPreviousMinutes = 0
			recalcFrom = 1
		}

	case FieldWaitAfterPrevious:
		// 첫 음료에는 이전 음료가 없음 (최대 24시간)
		if idx > 0 {
			d.WaitAfterPreviousMinutes = clampInput(d.WaitAfterPreviousMinutes, value, 0, 1440, true)
			recalcFrom = idx
		}

	default:
		return cloneDrinks(drinks), ErrUnknownField
	}

	if recalcFrom >= 0 && recalcFrom < len(out) {
		return ResolveTimeline(out, recalcFrom), nil
	}
	return out, nil
}

// ApplyPreset : 용기 프리셋의 용량/도수 적용 (nil이면 custom으로 표시만 바꿈)
func ApplyPreset(drinks []models.Drink, id string, preset *models.DrinkPreset) ([]models.Drink, error) {
	idx := IndexOfDrink(drinks, id)
	if idx == -1 {
		return cloneDrinks(drinks), ErrDrinkNotFound
	}

	out := cloneDrinks(drinks)
	d := &out[idx]
	if preset == nil || preset.Key == models.PresetCustom {
		d.Preset = models.PresetCustom
		return out, nil
	}
	if preset.Kind != d.Kind {
		return cloneDrinks(drinks), ErrPresetKindMismatch
	}

	d.Preset = preset.Key
	d.VolumeMl = preset.VolumeMl
	d.AbvPercent = preset.AbvPercent
	return out, nil
}

// clampInput : 입력값을 범위로 제한 (NaN이면 기존 값 유지, integer면 소수점 버림)
func clampInput(current float64, value models.FieldValue, lo, hi float64, integer bool) float64 {
	v := value.Float()
	if math.IsNaN(v) {
		return current
	}
	if integer {
		v = math.Trunc(v)
	}
	return math.Max(lo, math.Min(hi, v))
}

func cloneDrinks(drinks []models.Drink) []models.Drink {
	out := make([]models.Drink, len(drinks))
	copy(out, drinks)
	return out
}
