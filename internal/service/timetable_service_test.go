package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/campus-hub-api/internal/dto"
	"github.com/campushub/campus-hub-api/internal/models"
	appErrors "github.com/campushub/campus-hub-api/pkg/errors"
)

type templateStoreStub struct {
	saved []models.TimetableTemplate
}

func (s *templateStoreStub) Save(name string, grid models.TimetableGrid, startHour, endHour int, days []string) *models.TimetableTemplate {
	tpl := models.TimetableTemplate{ID: "tpl-1", Name: name, Grid: grid, StartHour: startHour, EndHour: endHour, Days: days}
	s.saved = append([]models.TimetableTemplate{tpl}, s.saved...)
	return &tpl
}

func (s *templateStoreStub) List() []models.TimetableTemplate {
	return s.saved
}

func newTimetableService() *TimetableService {
	return NewTimetableService(&templateStoreStub{}, nil, nil, TimetableServiceConfig{})
}

func intPtr(v int) *int { return &v }

func TestGenerateFillsExactly(t *testing.T) {
	svc := newTimetableService()
	resp := svc.Generate(dto.GenerateTimetableRequest{
		Subjects:  []dto.SubjectRequest{{Name: "Math", HoursPerWeek: 3}},
		StartHour: intPtr(9),
		EndHour:   intPtr(12),
		Days:      []string{"Mon"},
	})

	require.Len(t, resp.Grid, 1)
	require.Len(t, resp.Grid["Mon"], 3)
	assert.Equal(t, []models.TimetableSlot{
		{Hour: 9, Subject: "Math"},
		{Hour: 10, Subject: "Math"},
		{Hour: 11, Subject: "Math"},
	}, resp.Grid["Mon"])
}

func TestGenerateEmptySubjectsAllFree(t *testing.T) {
	svc := newTimetableService()
	resp := svc.Generate(dto.GenerateTimetableRequest{
		Subjects:  []dto.SubjectRequest{},
		StartHour: intPtr(8),
		EndHour:   intPtr(9),
		Days:      []string{"Mon", "Tue"},
	})

	require.Len(t, resp.Grid, 2)
	for _, day := range []string{"Mon", "Tue"} {
		require.Len(t, resp.Grid[day], 1)
		assert.Equal(t, "Free", resp.Grid[day][0].Subject)
	}
}

func TestGenerateDefaults(t *testing.T) {
	svc := newTimetableService()
	resp := svc.Generate(dto.GenerateTimetableRequest{})

	assert.Equal(t, 8, resp.StartHour)
	assert.Equal(t, 20, resp.EndHour)
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri"}, resp.Days)
	require.Len(t, resp.Grid, 5)
	for _, day := range resp.Days {
		assert.Len(t, resp.Grid[day], 12)
	}
}

func TestGenerateDegenerateHourRange(t *testing.T) {
	svc := newTimetableService()
	for _, tc := range []struct {
		name  string
		start int
		end   int
	}{
		{name: "zero width", start: 10, end: 10},
		{name: "inverted", start: 12, end: 9},
	} {
		t.Run(tc.name, func(t *testing.T) {
			resp := svc.Generate(dto.GenerateTimetableRequest{
				Subjects:  []dto.SubjectRequest{{Name: "Math", HoursPerWeek: 2}},
				StartHour: intPtr(tc.start),
				EndHour:   intPtr(tc.end),
				Days:      []string{"Mon", "Tue"},
			})
			require.Len(t, resp.Grid, 2)
			assert.Empty(t, resp.Grid["Mon"])
			assert.Empty(t, resp.Grid["Tue"])
		})
	}
}

func TestGenerateExcessBlocksNeverConsumed(t *testing.T) {
	svc := newTimetableService()
	resp := svc.Generate(dto.GenerateTimetableRequest{
		Subjects: []dto.SubjectRequest{
			{Name: "Math", HoursPerWeek: 2},
			{Name: "Physics", HoursPerWeek: 10},
		},
		StartHour: intPtr(9),
		EndHour:   intPtr(12),
		Days:      []string{"Mon"},
	})

	require.Len(t, resp.Grid["Mon"], 3)
	assert.Equal(t, "Math", resp.Grid["Mon"][0].Subject)
	assert.Equal(t, "Math", resp.Grid["Mon"][1].Subject)
	assert.Equal(t, "Physics", resp.Grid["Mon"][2].Subject)
}

func TestGenerateSubjectOrderPreservedAcrossDays(t *testing.T) {
	svc := newTimetableService()
	resp := svc.Generate(dto.GenerateTimetableRequest{
		Subjects: []dto.SubjectRequest{
			{Name: "Math", HoursPerWeek: 2},
			{Name: "History", HoursPerWeek: 1},
		},
		StartHour: intPtr(8),
		EndHour:   intPtr(10),
		Days:      []string{"Mon", "Tue"},
	})

	assert.Equal(t, "Math", resp.Grid["Mon"][0].Subject)
	assert.Equal(t, "Math", resp.Grid["Mon"][1].Subject)
	assert.Equal(t, "History", resp.Grid["Tue"][0].Subject)
	assert.Equal(t, "Free", resp.Grid["Tue"][1].Subject)
}

func TestRoundHours(t *testing.T) {
	for _, tc := range []struct {
		in   float64
		want int
	}{
		{in: 2.4, want: 2},
		{in: 2.5, want: 3},
		{in: 3, want: 3},
		{in: -1, want: 0},
		{in: math.NaN(), want: 0},
		{in: math.Inf(1), want: 0},
	} {
		assert.Equal(t, tc.want, roundHours(tc.in), "hours %v", tc.in)
	}
}

func TestSaveTemplateRequiresName(t *testing.T) {
	svc := newTimetableService()
	_, err := svc.SaveTemplate(dto.SaveTemplateRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestSaveTemplateStoresGeneratedGrid(t *testing.T) {
	store := &templateStoreStub{}
	svc := NewTimetableService(store, nil, nil, TimetableServiceConfig{})
	tpl, err := svc.SaveTemplate(dto.SaveTemplateRequest{
		Name: "spring",
		Request: dto.GenerateTimetableRequest{
			Subjects:  []dto.SubjectRequest{{Name: "Math", HoursPerWeek: 1}},
			StartHour: intPtr(9),
			EndHour:   intPtr(10),
			Days:      []string{"Mon"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "spring", tpl.Name)
	require.Len(t, store.saved, 1)
	assert.Equal(t, "Math", store.saved[0].Grid["Mon"][0].Subject)
}
