package services

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/EXCALOFRIO/RonaldosVinicius/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:embed presets.yaml
var defaultCatalog []byte

// ErrPresetNotFound : 카탈로그에 없는 kind/key
var ErrPresetNotFound = errors.New("preset not found")

// PresetStore : 용기 프리셋 조회
type PresetStore interface {
	List(ctx context.Context, kind models.DrinkKind) ([]models.DrinkPreset, error)
	Get(ctx context.Context, kind models.DrinkKind, key string) (*models.DrinkPreset, error)
}

type presetCatalog struct {
	Presets []models.DrinkPreset `yaml:"presets"`
}

// ParsePresetCatalog : YAML 문서에서 프리셋 목록 읽기
func ParsePresetCatalog(data []byte) ([]models.DrinkPreset, error) {
	var catalog presetCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("프리셋 YAML 파싱 실패: %w", err)
	}
	for i, p := range catalog.Presets {
		if p.Kind == "" || p.Key == "" {
			return nil, fmt.Errorf("프리셋 %d: kind/key 누락", i)
		}
	}
	return catalog.Presets, nil
}

// LoadPresetCatalog : 경로가 비어 있으면 내장 카탈로그, 아니면 파일에서 로드
func LoadPresetCatalog(path string) ([]models.DrinkPreset, error) {
	if path == "" {
		return ParsePresetCatalog(defaultCatalog)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("프리셋 파일 읽기 실패: %w", err)
	}
	return ParsePresetCatalog(data)
}

// ========================================
// 메모리 저장소 (DB 없이 동작)
// ========================================

// MemoryPresetStore : 읽기 전용 메모리 카탈로그
type MemoryPresetStore struct {
	presets []models.DrinkPreset
}

// NewMemoryPresetStore : 종류, 정렬 순서로 정렬해 보관
func NewMemoryPresetStore(presets []models.DrinkPreset) *MemoryPresetStore {
	sorted := make([]models.DrinkPreset, len(presets))
	copy(sorted, presets)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Kind != sorted[j].Kind {
			return sorted[i].Kind < sorted[j].Kind
		}
		return sorted[i].SortOrder < sorted[j].SortOrder
	})
	return &MemoryPresetStore{presets: sorted}
}

// List : kind가 비어 있으면 전체
func (s *MemoryPresetStore) List(_ context.Context, kind models.DrinkKind) ([]models.DrinkPreset, error) {
	result := []models.DrinkPreset{}
	for _, p := range s.presets {
		if kind == "" || p.Kind == kind {
			result = append(result, p)
		}
	}
	return result, nil
}

// Get : 없으면 ErrPresetNotFound
func (s *MemoryPresetStore) Get(_ context.Context, kind models.DrinkKind, key string) (*models.DrinkPreset, error) {
	for _, p := range s.presets {
		if p.Kind == kind && p.Key == key {
			found := p
			return &found, nil
		}
	}
	return nil, ErrPresetNotFound
}

// ========================================
// GORM 저장소 (마스터 데이터 테이블)
// ========================================

// GormPresetStore : drink_presets 테이블 조회
type GormPresetStore struct {
	db *gorm.DB
}

// NewGormPresetStore : 연결된 DB로 저장소 생성
func NewGormPresetStore(db *gorm.DB) *GormPresetStore {
	return &GormPresetStore{db: db}
}

// List : 종류, 정렬 순서로 정렬 (kind가 비어 있으면 전체)
func (s *GormPresetStore) List(ctx context.Context, kind models.DrinkKind) ([]models.DrinkPreset, error) {
	presets := []models.DrinkPreset{}
	query := s.db.WithContext(ctx).Order("kind").Order("sort_order")
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}
	if err := query.Find(&presets).Error; err != nil {
		return nil, fmt.Errorf("프리셋 목록 조회 실패: %w", err)
	}
	return presets, nil
}

// Get : 없으면 ErrPresetNotFound
func (s *GormPresetStore) Get(ctx context.Context, kind models.DrinkKind, key string) (*models.DrinkPreset, error) {
	var preset models.DrinkPreset
	err := s.db.WithContext(ctx).Where("kind = ? AND preset_key = ?", kind, key).First(&preset).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPresetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("프리셋 조회 실패: %w", err)
	}
	return &preset, nil
}

// SeedPresets : 카탈로그를 테이블에 넣음 (이미 있는 kind/key는 건너뜀)
func SeedPresets(ctx context.Context, db *gorm.DB, presets []models.DrinkPreset) error {
	if len(presets) == 0 {
		return nil
	}
	rows := make([]models.DrinkPreset, len(presets))
	copy(rows, presets)
	if err := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		return fmt.Errorf("프리셋 시드 실패: %w", err)
	}
	return nil
}

// ========================================
// 전역 카탈로그
// ========================================

var presetStore PresetStore = NewMemoryPresetStore(nil)

// InitPresetCatalog : 카탈로그 로드 후 DB가 있으면 시드하고 DB 저장소 사용
func InitPresetCatalog(ctx context.Context, path string, db *gorm.DB) error {
	presets, err := LoadPresetCatalog(path)
	if err != nil {
		return err
	}
	if db == nil {
		SetPresetStore(NewMemoryPresetStore(presets))
		return nil
	}
	if err := SeedPresets(ctx, db, presets); err != nil {
		return err
	}
	SetPresetStore(NewGormPresetStore(db))
	return nil
}

// Presets : 현재 카탈로그 저장소
func Presets() PresetStore {
	return presetStore
}

// SetPresetStore : 저장소 교체 (테스트, 초기화용)
func SetPresetStore(store PresetStore) {
	presetStore = store
}
