package models

import (
	"gorm.io/gorm"
)

// Gender : 체내 수분 분포 계수 선택용 성별
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// Unit : 표시 단위 (혈중 g/L, 호기 mg/L)
type Unit string

const (
	UnitBlood  Unit = "blood"
	UnitBreath Unit = "breath"
)

// DrinkKind : 음료 종류 (계산에는 영향 없음, 기본값 선택용)
type DrinkKind string

const (
	KindBeer    DrinkKind = "beer"
	KindWine    DrinkKind = "wine"
	KindSpirits DrinkKind = "spirits"
)

// DurationKey : 마시는 시간 프리셋
type DurationKey string

const (
	DurationHidalgo   DurationKey = "hidalgo"
	DurationImmediate DurationKey = "immediate"
	DurationShort     DurationKey = "short"
	DurationNormal    DurationKey = "normal"
	DurationLong      DurationKey = "long"
	DurationExtended  DurationKey = "extended"
	DurationCustom    DurationKey = "custom"
)

// PresetCustom : 사용자가 용량/도수를 직접 입력한 경우의 프리셋 키
const PresetCustom = "custom"

// Drink : 한 번의 음주 이벤트
type Drink struct {
	ID                       string      `json:"id"`
	Kind                     DrinkKind   `json:"kind"`
	Preset                   string      `json:"preset,omitempty"`                                  // 용기 프리셋 키 (예: tercio)
	DurationPreset           DurationKey `json:"durationPreset,omitempty"`                          // 마시는 시간 프리셋
	VolumeMl                 float64     `json:"volumeMl" binding:"gte=0,lte=5000"`                 // 용량 (ml)
	AbvPercent               float64     `json:"abvPercent" binding:"gte=0,lte=100"`                // 도수 (%)
	ConsumptionMinutes       float64     `json:"consumptionMinutes" binding:"gte=0,lte=600"`        // 흡수 구간 길이 (분)
	StartMinute              float64     `json:"startMinute" binding:"gte=0,lte=120000"`            // 절대 시작 시각 (분)
	WaitAfterPreviousMinutes float64     `json:"waitAfterPreviousMinutes" binding:"gte=0,lte=1440"` // 이전 음료 종료 후 대기 (분)
}

// MaxDrinks : 요청 하나에 담을 수 있는 음료 수
// StartMinute 상한은 첫 음료 1주(10080분) + 49잔 × (600분 + 1440분)
const MaxDrinks = 50

// PersonalFactors : 개인 정보
type PersonalFactors struct {
	Gender   Gender  `json:"gender" binding:"required,oneof=male female"`
	WeightKg float64 `json:"weightKg" binding:"omitempty,gte=20,lte=300"` // 체중 (kg), 0이면 빈 결과
}

// SimulationSample : 시계열의 한 점
type SimulationSample struct {
	TimeMinutes   float64 `json:"timeMinutes"`
	Concentration float64 `json:"concentration"` // 선택한 단위 기준
	TimeFormatted string  `json:"timeFormatted"`
}

// Peak : 최고 농도와 그 시각
type Peak struct {
	Value       float64 `json:"value"`
	TimeMinutes float64 `json:"timeMinutes"`
	Formatted   string  `json:"formatted"`
}

// TimeAboveLimit : 법정 기준 초과 시간
type TimeAboveLimit struct {
	Minutes   float64 `json:"minutes"`
	Formatted string  `json:"formatted"`
}

// TimeToSober : 술이 깰 때까지 걸리는 시간
type TimeToSober struct {
	Minutes    float64 `json:"minutes"`
	Formatted  string  `json:"formatted"`
	IsEstimate bool    `json:"isEstimate"` // 시뮬레이션 범위 안에서 못 찾은 경우 (하한값)
}

// Summary : 시계열에서 뽑은 요약 지표
type Summary struct {
	Peak           Peak           `json:"peak"`
	TimeAboveLimit TimeAboveLimit `json:"timeAboveLimit"`
	TimeToSober    TimeToSober    `json:"timeToSober"`
	LegalLimit     float64        `json:"legalLimit"`
}

// LegalLimit : 단위별 법정 기준
type LegalLimit struct {
	Standard float64 `json:"standard"`
	NovelPro float64 `json:"novelPro"` // 초보/직업 운전자 기준
}

// ========================================
// API 요청/응답
// ========================================

// SimulateRequest : 시뮬레이션 요청
type SimulateRequest struct {
	Drinks  []Drink         `json:"drinks" binding:"max=50,dive"`
	Factors PersonalFactors `json:"factors"`
	Unit    Unit            `json:"unit" binding:"omitempty,bacunit"`
}

// SimulateResponse : 시뮬레이션 응답
type SimulateResponse struct {
	Unit   Unit               `json:"unit"`
	Series []SimulationSample `json:"series"`
	Summary
}

// ConcentrationRequest : 특정 시각의 농도 조회
type ConcentrationRequest struct {
	Drinks      []Drink         `json:"drinks" binding:"max=50,dive"`
	Factors     PersonalFactors `json:"factors"`
	TimeMinutes float64         `json:"timeMinutes"`
	Unit        Unit            `json:"unit" binding:"omitempty,bacunit"`
}

// ResolveRequest : 타임라인 재계산 요청
type ResolveRequest struct {
	Drinks    []Drink `json:"drinks" binding:"max=50,dive"`
	FromIndex int     `json:"fromIndex"`
}

// AddDrinkRequest : 음료 추가
type AddDrinkRequest struct {
	Drinks []Drink   `json:"drinks" binding:"max=50,dive"`
	Kind   DrinkKind `json:"kind" binding:"omitempty,drinkkind"`
	ID     string    `json:"id"`
}

// RemoveDrinkRequest : 음료 삭제
type RemoveDrinkRequest struct {
	Drinks []Drink `json:"drinks" binding:"max=50,dive"`
	ID     string  `json:"id" binding:"required"`
}

// UpdateDrinkRequest : 음료 필드 수정 (value는 필드에 따라 숫자 또는 문자열)
type UpdateDrinkRequest struct {
	Drinks []Drink    `json:"drinks" binding:"max=50,dive"`
	ID     string     `json:"id" binding:"required"`
	Field  string     `json:"field" binding:"required"`
	Value  FieldValue `json:"value"`
}

// ApplyPresetRequest : 용기 프리셋 적용
type ApplyPresetRequest struct {
	Drinks    []Drink `json:"drinks" binding:"max=50,dive"`
	ID        string  `json:"id" binding:"required"`
	PresetKey string  `json:"presetKey" binding:"required"`
}

// TimelineResponse : 타임라인 편집 결과
type TimelineResponse struct {
	Drinks []Drink `json:"drinks"`
}

// ========================================
// 프리셋 마스터 데이터
// ========================================

// DrinkPreset : 용기 프리셋 (예: 맥주 tercio 330ml 5.2%)
type DrinkPreset struct {
	gorm.Model
	Kind       DrinkKind `json:"kind" yaml:"kind" gorm:"type:varchar(50);uniqueIndex:idx_kind_key"`
	Key        string    `json:"key" yaml:"key" gorm:"column:preset_key;type:varchar(50);uniqueIndex:idx_kind_key"`
	Name       string    `json:"name" yaml:"name" gorm:"type:varchar(255)"`
	VolumeMl   float64   `json:"volumeMl" yaml:"volumeMl"`
	AbvPercent float64   `json:"abvPercent" yaml:"abvPercent"`
	SortOrder  int       `json:"sortOrder" yaml:"sortOrder"`
}
