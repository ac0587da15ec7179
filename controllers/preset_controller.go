package controllers

import (
	"errors"
	"net/http"

	"github.com/EXCALOFRIO/RonaldosVinicius/config"
	"github.com/EXCALOFRIO/RonaldosVinicius/models"
	"github.com/EXCALOFRIO/RonaldosVinicius/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ========================================
// 프리셋 조회 API (공개, 읽기 전용)
// ========================================

// GetPresets : 용기 프리셋 목록 (?kind=beer 로 필터)
// GET /api/presets
func GetPresets(c *gin.Context) {
	kind := models.DrinkKind(c.Query("kind"))

	presets, err := services.Presets().List(c.Request.Context(), kind)
	if err != nil {
		config.Log.Error("preset list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "프리셋 조회 실패"})
		return
	}
	c.JSON(http.StatusOK, presets)
}

// GetPreset : 특정 프리셋 조회
// GET /api/presets/:kind/:key
func GetPreset(c *gin.Context) {
	kind := models.DrinkKind(c.Param("kind"))
	key := c.Param("key")

	preset, err := services.Presets().Get(c.Request.Context(), kind, key)
	if errors.Is(err, services.ErrPresetNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Preset not found"})
		return
	}
	if err != nil {
		config.Log.Error("preset lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "프리셋 조회 실패"})
		return
	}
	c.JSON(http.StatusOK, preset)
}

// GetDurations : 마시는 시간 프리셋 목록
// GET /api/durations
func GetDurations(c *gin.Context) {
	c.JSON(http.StatusOK, services.DurationOptions)
}

// GetDrinkKinds : 음료 종류별 기본값
// GET /api/kinds
func GetDrinkKinds(c *gin.Context) {
	kinds := make([]gin.H, 0, len(services.DrinkDefaults))
	for _, kind := range []models.DrinkKind{models.KindBeer, models.KindWine, models.KindSpirits} {
		def := services.DrinkDefaults[kind]
		kinds = append(kinds, gin.H{
			"kind":           kind,
			"name":           def.Name,
			"volumeMl":       def.VolumeMl,
			"abvPercent":     def.AbvPercent,
			"durationPreset": def.Duration,
			"preset":         def.Preset,
		})
	}
	c.JSON(http.StatusOK, kinds)
}
