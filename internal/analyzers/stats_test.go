package analyzers

import (
	"testing"

	"api-insights/internal/models"
	"api-insights/internal/shared/configs"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, statusSuccess, classifyStatus(200))
	assert.Equal(t, statusSuccess, classifyStatus(299))
	assert.Equal(t, statusError, classifyStatus(400))
	assert.Equal(t, statusError, classifyStatus(404))
	assert.Equal(t, statusError, classifyStatus(500))
	assert.Equal(t, statusError, classifyStatus(599))
	assert.Equal(t, statusOther, classifyStatus(301))
	assert.Equal(t, statusOther, classifyStatus(100))
	assert.Equal(t, statusOther, classifyStatus(600))

	assert.True(t, isErrorStatus(503))
	assert.False(t, isErrorStatus(201))
	assert.False(t, isErrorStatus(302))
}

func TestCalculateSeverity_TieredThresholds(t *testing.T) {
	t.Parallel()

	thresholds := configs.ThresholdTriple{Medium: 500, High: 1000, Critical: 2000}

	assert.Equal(t, models.SeverityLow, calculateSeverity(thresholds, 499.99))
	assert.Equal(t, models.SeverityMedium, calculateSeverity(thresholds, 500))
	assert.Equal(t, models.SeverityMedium, calculateSeverity(thresholds, 999.99))
	assert.Equal(t, models.SeverityHigh, calculateSeverity(thresholds, 1000))
	assert.Equal(t, models.SeverityCritical, calculateSeverity(thresholds, 2000))
	assert.Equal(t, models.SeverityCritical, calculateSeverity(thresholds, 99999))
}

func TestSafeHelpers_EmptyInputYieldsZero(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, safeMean(nil))
	assert.Equal(t, 0.0, safeMax(nil))
	assert.Equal(t, 0.0, safeMin(nil))
	assert.Equal(t, 0.0, safeDivide(10, 0))
}

func TestSafeHelpers_Values(t *testing.T) {
	t.Parallel()

	values := []float64{4, 2, 9, 1}
	assert.Equal(t, 4.0, safeMean(values))
	assert.Equal(t, 9.0, safeMax(values))
	assert.Equal(t, 1.0, safeMin(values))
	assert.Equal(t, 2.5, safeDivide(5, 2))
}

func TestRoundTwo(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.23, roundTwo(1.234))
	assert.Equal(t, 1.24, roundTwo(1.235))
	assert.Equal(t, 0.0, roundTwo(0.00011))
	assert.Equal(t, 100.0, roundTwo(100))
}
