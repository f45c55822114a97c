package insights

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"tryvital.xyz/health-insights-service/pkg/common"
	"tryvital.xyz/health-insights-service/pkg/models"
	_ "tryvital.xyz/health-insights-service/pkg/testing"
)

func TestGetStudyInfo(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _ := GetMockInsightsWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	info, err := core.Study.GetStudyInfo(DemoUserID)
	require.NoError(t, err)
	require.NotNil(t, info)

	assert.Equal(t, "Acupressure Mat For Better Sleep", info.StudyName)
	assert.Equal(t, 7, info.CurrentDay)
	assert.Equal(t, 30, info.TotalDays)
	assert.Equal(t, 23, info.DaysRemaining)
	assert.Equal(t, "Deep Sleep", info.PrimaryMetricName)
	assert.Equal(t, 2.2, info.GoalValue)
	assert.Equal(t, 0.031, info.Significance)
	assert.Equal(t, 30.0, info.TargetPercentChange)
	assert.Contains(t, info.Hypothesis, "increase deep sleep duration by at least 30%")
}

func TestGetStudyInfo_Absent(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _ := GetMockInsightsWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	// a user without a study gets nil, not an error
	info, err := core.Study.GetStudyInfo(999)
	assert.NoError(t, err)
	assert.Nil(t, info)
}

func TestCreateStudyInfo_WithLog(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	ctrl, core, _, _, _ := GetMockInsightsWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	userID := createTestUser(t, core)

	created, err := core.Study.CreateStudyInfo(&models.StudyInfo{
		UserID:              userID,
		CurrentDay:          1,
		TotalDays:           14,
		DaysRemaining:       13,
		StudyName:           "Evening Walk For Lower Resting Heart Rate",
		PrimaryMetricName:   "Resting Heart Rate",
		GoalValue:           62,
		Significance:        0.2,
		TargetPercentChange: 10,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	fetched, err := core.Study.GetStudyInfo(userID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, "Evening Walk For Lower Resting Heart Rate", fetched.StudyName)

	logs := ParseLogs(buf)

	found := false
	for _, log := range logs {
		lobj := log.(map[string]any)
		if lobj["category"] == "study" &&
			lobj["logger"] == "insights_core" &&
			lobj["msg"] == "Created study info" {
			found = true
		}
	}
	assert.True(t, found, "log not found")
}
