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
// 음주 타임라인 편집 API (상태 없음: 현재 목록을 받아 새 목록 반환)
// ========================================

// ResolveTimeline : fromIndex부터 시작 시각 재계산
// POST /api/timeline/resolve
func ResolveTimeline(c *gin.Context) {
	var input models.ResolveRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.TimelineResponse{Drinks: services.ResolveTimeline(input.Drinks, input.FromIndex)})
}

// AddDrink : 음료 추가
// POST /api/timeline/add
func AddDrink(c *gin.Context) {
	var input models.AddDrinkRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(input.Drinks) >= models.MaxDrinks {
		c.JSON(http.StatusBadRequest, gin.H{"error": "더 이상 음료를 추가할 수 없습니다"})
		return
	}
	c.JSON(http.StatusOK, models.TimelineResponse{Drinks: services.AddDrink(input.Drinks, input.Kind, input.ID)})
}

// RemoveDrink : 음료 삭제
// POST /api/timeline/remove
func RemoveDrink(c *gin.Context) {
	var input models.RemoveDrinkRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	drinks, err := services.RemoveDrink(input.Drinks, input.ID)
	if err != nil {
		respondTimelineError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.TimelineResponse{Drinks: drinks})
}

// UpdateDrink : 음료 필드 하나 수정
// POST /api/timeline/update
func UpdateDrink(c *gin.Context) {
	var input models.UpdateDrinkRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	drinks, err := services.UpdateDrink(input.Drinks, input.ID, input.Field, input.Value)
	if err != nil {
		respondTimelineError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.TimelineResponse{Drinks: drinks})
}

// ApplyPreset : 용기 프리셋 적용
// POST /api/timeline/preset
func ApplyPreset(c *gin.Context) {
	var input models.ApplyPresetRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	idx := services.IndexOfDrink(input.Drinks, input.ID)
	if idx == -1 {
		respondTimelineError(c, services.ErrDrinkNotFound)
		return
	}

	var preset *models.DrinkPreset
	if input.PresetKey != models.PresetCustom {
		found, err := services.Presets().Get(c.Request.Context(), input.Drinks[idx].Kind, input.PresetKey)
		if err != nil {
			respondTimelineError(c, err)
			return
		}
		preset = found
	}

	drinks, err := services.ApplyPreset(input.Drinks, input.ID, preset)
	if err != nil {
		respondTimelineError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.TimelineResponse{Drinks: drinks})
}

// respondTimelineError : 서비스 에러를 HTTP 상태 코드로 변환
func respondTimelineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrDrinkNotFound), errors.Is(err, services.ErrPresetNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrUnknownField),
		errors.Is(err, services.ErrInvalidValue),
		errors.Is(err, services.ErrPresetKindMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		config.Log.Error("timeline edit failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "처리 중 오류가 발생했습니다"})
	}
}
