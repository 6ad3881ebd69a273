package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/RMahshie/eqpresets/internal/equalizer"
	"github.com/RMahshie/eqpresets/internal/repository"
	"github.com/RMahshie/eqpresets/pkg/models"
)

// MockEqualizerService implements equalizer.EqualizerService for testing
type MockEqualizerService struct {
	mock.Mock
}

func (m *MockEqualizerService) State() equalizer.State {
	args := m.Called()
	return args.Get(0).(equalizer.State)
}

func (m *MockEqualizerService) SetValues(ctx context.Context, values []float64) (equalizer.State, error) {
	args := m.Called(ctx, values)
	return args.Get(0).(equalizer.State), args.Error(1)
}

func (m *MockEqualizerService) SetValue(ctx context.Context, index int, value float64) (equalizer.State, error) {
	args := m.Called(ctx, index, value)
	return args.Get(0).(equalizer.State), args.Error(1)
}

func (m *MockEqualizerService) AddBand(ctx context.Context, frequency float64) (equalizer.State, error) {
	args := m.Called(ctx, frequency)
	return args.Get(0).(equalizer.State), args.Error(1)
}

func (m *MockEqualizerService) RemoveBand(ctx context.Context, index int) (equalizer.State, error) {
	args := m.Called(ctx, index)
	return args.Get(0).(equalizer.State), args.Error(1)
}

func (m *MockEqualizerService) SelectPreset(ctx context.Context, name string) (equalizer.State, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(equalizer.State), args.Error(1)
}

func (m *MockEqualizerService) SavePreset(ctx context.Context, name string) (equalizer.State, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(equalizer.State), args.Error(1)
}

func (m *MockEqualizerService) UpsertPreset(ctx context.Context, name string, values []models.EqualizerValue) (int, error) {
	args := m.Called(ctx, name, values)
	return args.Int(0), args.Error(1)
}

func (m *MockEqualizerService) DeletePreset(ctx context.Context, name string) (equalizer.State, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(equalizer.State), args.Error(1)
}

func sampleState() equalizer.State {
	preset := "Bass Boost"
	return equalizer.State{
		Bands:   []float64{60, 1000},
		Values:  []float64{6, 0},
		Labels:  []string{"60Hz\n6.00", "1kHz\n0.00"},
		Preset:  &preset,
		On:      true,
		Presets: []string{"Bass Boost", "Flat"},
	}
}

func TestGetEqualizer(t *testing.T) {
	mockSvc := &MockEqualizerService{}
	mockSvc.On("State").Return(sampleState())

	handler := NewEqualizerHandler(mockSvc)
	resp, err := handler.GetEqualizer(context.Background(), &models.GetEqualizerRequest{})

	require.NoError(t, err)
	assert.Equal(t, []float64{60, 1000}, resp.Body.Bands)
	assert.Equal(t, "Bass Boost", *resp.Body.Preset)
	assert.True(t, resp.Body.On)
	assert.Equal(t, []string{"Bass Boost", "Flat"}, resp.Body.Presets)
}

func TestEqualizerHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		call       func(*EqualizerHandler) error
		mockSetup  func(*MockEqualizerService)
		wantStatus int
	}{
		{
			name: "too few bands",
			call: func(h *EqualizerHandler) error {
				_, err := h.RemoveBand(context.Background(), &models.RemoveBandRequest{Index: 0})
				return err
			},
			mockSetup: func(m *MockEqualizerService) {
				m.On("RemoveBand", mock.Anything, 0).Return(equalizer.State{}, equalizer.ErrTooFewBands)
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "duplicate band",
			call: func(h *EqualizerHandler) error {
				_, err := h.AddBand(context.Background(), &models.AddBandRequest{Body: models.AddBandRequestBody{Frequency: 60}})
				return err
			},
			mockSetup: func(m *MockEqualizerService) {
				m.On("AddBand", mock.Anything, 60.0).Return(equalizer.State{}, equalizer.ErrBandExists)
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "index out of range",
			call: func(h *EqualizerHandler) error {
				_, err := h.SetValue(context.Background(), &models.SetValueRequest{Index: 9, Body: models.SetValueRequestBody{Value: 1}})
				return err
			},
			mockSetup: func(m *MockEqualizerService) {
				m.On("SetValue", mock.Anything, 9, 1.0).Return(equalizer.State{}, equalizer.ErrIndexOutOfRange)
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "unknown preset",
			call: func(h *EqualizerHandler) error {
				_, err := h.SelectPreset(context.Background(), &models.SelectPresetRequest{Body: models.SelectPresetRequestBody{Name: "Missing"}})
				return err
			},
			mockSetup: func(m *MockEqualizerService) {
				m.On("SelectPreset", mock.Anything, "Missing").Return(equalizer.State{}, equalizer.ErrPresetNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "store unavailable on save",
			call: func(h *EqualizerHandler) error {
				_, err := h.SavePreset(context.Background(), &models.SavePresetRequest{Body: models.SavePresetRequestBody{Name: "Jazz"}})
				return err
			},
			mockSetup: func(m *MockEqualizerService) {
				m.On("SavePreset", mock.Anything, "Jazz").
					Return(equalizer.State{}, repository.Unavailable("write", "presets.plist", assert.AnError))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "store corrupt on delete",
			call: func(h *EqualizerHandler) error {
				_, err := h.DeletePreset(context.Background(), &models.DeleteEqualizerPresetRequest{Name: "Flat"})
				return err
			},
			mockSetup: func(m *MockEqualizerService) {
				m.On("DeletePreset", mock.Anything, "Flat").
					Return(equalizer.State{}, repository.Corrupt("decode", "presets.plist", assert.AnError))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name: "settings failure",
			call: func(h *EqualizerHandler) error {
				_, err := h.SetValues(context.Background(), &models.SetValuesRequest{Body: models.SetValuesRequestBody{Values: []float64{1, 2}}})
				return err
			},
			mockSetup: func(m *MockEqualizerService) {
				m.On("SetValues", mock.Anything, []float64{1, 2}).Return(equalizer.State{}, assert.AnError)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockEqualizerService{}
			tt.mockSetup(mockSvc)

			err := tt.call(NewEqualizerHandler(mockSvc))
			assert.Equal(t, tt.wantStatus, statusOf(t, err))
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestSavePresetHandler(t *testing.T) {
	mockSvc := &MockEqualizerService{}
	mockSvc.On("SavePreset", mock.Anything, "Bass Boost").Return(sampleState(), nil)

	handler := NewEqualizerHandler(mockSvc)
	resp, err := handler.SavePreset(context.Background(), &models.SavePresetRequest{
		Body: models.SavePresetRequestBody{Name: "Bass Boost"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Bass Boost", *resp.Body.Preset)
	assert.Equal(t, []string{"60Hz\n6.00", "1kHz\n0.00"}, resp.Body.Labels)
	mockSvc.AssertExpectations(t)
}
