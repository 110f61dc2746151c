package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilehr/attendance-backend-go/internal/domain/attendance"
)

var testPolicy = attendance.Policy{
	StandardWorkMinutes: 480,
	WorkStartMinute:     9 * 60,
	LateGraceMinutes:    30,
}

// testDate is a Tuesday.
var testDate = time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)

func workingRecord(t *testing.T, in, out string) attendance.Record {
	t.Helper()
	rec := attendance.Record{
		Date:    testDate,
		DayType: attendance.DayTypeWorkingDay,
	}
	if in != "" {
		rec.CheckIn = atTime(t, in)
	}
	if out != "" {
		rec.CheckOut = atTime(t, out)
	}
	return rec
}

func atTime(t *testing.T, hhmm string) *time.Time {
	t.Helper()
	parsed, err := time.Parse("15:04", hhmm)
	require.NoError(t, err)
	ts := time.Date(testDate.Year(), testDate.Month(), testDate.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, time.UTC)
	return &ts
}

func TestEvaluateDay_StandardDay(t *testing.T) {
	eval, err := EvaluateDay(workingRecord(t, "09:00", "17:00"), testPolicy)
	require.NoError(t, err)

	assert.Equal(t, 480, eval.WorkingMinutes)
	assert.Equal(t, 0, eval.OvertimeMinutes)
	assert.False(t, eval.IsLate)
	assert.True(t, eval.CountsAsWorking)
	assert.False(t, eval.CountsAsAbsence)
	assert.False(t, eval.Open)
}

func TestEvaluateDay_Overtime(t *testing.T) {
	eval, err := EvaluateDay(workingRecord(t, "09:00", "18:30"), testPolicy)
	require.NoError(t, err)

	assert.Equal(t, 570, eval.WorkingMinutes)
	assert.Equal(t, 90, eval.OvertimeMinutes)
	assert.False(t, eval.IsLate)
}

func TestEvaluateDay_UnderWorkedIsNegativeOvertime(t *testing.T) {
	eval, err := EvaluateDay(workingRecord(t, "10:00", "17:00"), testPolicy)
	require.NoError(t, err)

	assert.Equal(t, 420, eval.WorkingMinutes)
	assert.Equal(t, -60, eval.OvertimeMinutes)
	assert.True(t, eval.IsLate)
}

func TestEvaluateDay_GraceBoundaryIsOnTime(t *testing.T) {
	// Exactly 09:30 is within grace; under-worked but not late.
	eval, err := EvaluateDay(workingRecord(t, "09:30", "17:00"), testPolicy)
	require.NoError(t, err)

	assert.Equal(t, 450, eval.WorkingMinutes)
	assert.Equal(t, -30, eval.OvertimeMinutes)
	assert.False(t, eval.IsLate)
}

func TestEvaluateDay_OneMinutePastGraceIsLate(t *testing.T) {
	eval, err := EvaluateDay(workingRecord(t, "09:31", "17:31"), testPolicy)
	require.NoError(t, err)

	assert.True(t, eval.IsLate)
	assert.Equal(t, 480, eval.WorkingMinutes)
}

func TestEvaluateDay_OverrideReplacesDerivedOvertime(t *testing.T) {
	rec := workingRecord(t, "09:00", "18:30")
	override := 0
	rec.OvertimeOverride = &override

	eval, err := EvaluateDay(rec, testPolicy)
	require.NoError(t, err)

	assert.Equal(t, 570, eval.WorkingMinutes)
	assert.Equal(t, 0, eval.OvertimeMinutes)
}

func TestEvaluateDay_OpenRecord(t *testing.T) {
	eval, err := EvaluateDay(workingRecord(t, "09:45", ""), testPolicy)
	require.NoError(t, err)

	assert.True(t, eval.Open)
	assert.True(t, eval.IsLate)
	assert.Equal(t, 0, eval.WorkingMinutes)
	assert.False(t, eval.CountsAsWorking)
}

func TestEvaluateDay_MissingCheckIn(t *testing.T) {
	_, err := EvaluateDay(workingRecord(t, "", ""), testPolicy)
	assert.ErrorIs(t, err, attendance.ErrMissingCheckTimes)
}

func TestEvaluateDay_CheckOutBeforeCheckIn(t *testing.T) {
	_, err := EvaluateDay(workingRecord(t, "17:00", "09:00"), testPolicy)
	assert.ErrorIs(t, err, attendance.ErrCheckOutBeforeCheckIn)
}

func TestEvaluateDay_VacationCountsAsPresent(t *testing.T) {
	for _, dayType := range []attendance.DayType{
		attendance.DayTypeNormalVacation,
		attendance.DayTypeSickLeave,
	} {
		eval, err := EvaluateDay(attendance.Record{Date: testDate, DayType: dayType}, testPolicy)
		require.NoError(t, err)

		assert.True(t, eval.CountsAsWorking, string(dayType))
		assert.False(t, eval.CountsAsAbsence, string(dayType))
		assert.Equal(t, 0, eval.WorkingMinutes, string(dayType))
		assert.Equal(t, 0, eval.OvertimeMinutes, string(dayType))
	}
}

func TestEvaluateDay_VacationHonorsOverride(t *testing.T) {
	override := 120
	rec := attendance.Record{
		Date:             testDate,
		DayType:          attendance.DayTypeNormalVacation,
		OvertimeOverride: &override,
	}

	eval, err := EvaluateDay(rec, testPolicy)
	require.NoError(t, err)

	assert.Equal(t, 120, eval.OvertimeMinutes)
	assert.True(t, eval.CountsAsWorking)
}

func TestEvaluateDay_HolidayContributesNothing(t *testing.T) {
	eval, err := EvaluateDay(attendance.Record{Date: testDate, DayType: attendance.DayTypeHoliday}, testPolicy)
	require.NoError(t, err)

	assert.Equal(t, DayEvaluation{}, eval)
}

func TestEvaluateDay_AbsenceCountsAsAbsent(t *testing.T) {
	eval, err := EvaluateDay(attendance.Record{Date: testDate, DayType: attendance.DayTypeAbsence}, testPolicy)
	require.NoError(t, err)

	assert.True(t, eval.CountsAsAbsence)
	assert.False(t, eval.CountsAsWorking)
}

func TestEvaluateDay_UnknownDayType(t *testing.T) {
	_, err := EvaluateDay(attendance.Record{Date: testDate, DayType: "weekend"}, testPolicy)
	assert.ErrorIs(t, err, attendance.ErrInvalidDayType)
}
