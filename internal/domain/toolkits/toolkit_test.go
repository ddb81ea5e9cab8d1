//go:build unit
// +build unit

package toolkits

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseStage(t *testing.T) {
	tests := []struct {
		input    string
		expected Stage
		ok       bool
	}{
		{"DEVELOPMENT", StageDevelopment, true},
		{"dev", StageDevelopment, true},
		{" production ", StageProduction, true},
		{"xtinct", StageExtinct, true},
		{"retired", Stage("RETIRED"), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			stage, ok := ParseStage(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, stage)
		})
	}
}

func TestToolKitValidation(t *testing.T) {
	tests := []struct {
		name    string
		toolKit ToolKit
		wantErr bool
	}{
		{
			name:    "valid",
			toolKit: ToolKit{Name: "14.1.6", ReleaseName: "14.1", Stage: StageDevelopment, CreatedBy: "jdoe"},
		},
		{
			name:    "wrong release",
			toolKit: ToolKit{Name: "14.1.6", ReleaseName: "15.1", Stage: StageDevelopment, CreatedBy: "jdoe"},
			wantErr: true,
		},
		{
			name:    "unknown stage",
			toolKit: ToolKit{Name: "14.1.6", ReleaseName: "14.1", Stage: "RETIRED", CreatedBy: "jdoe"},
			wantErr: true,
		},
		{
			name:    "missing creator",
			toolKit: ToolKit{Name: "14.1.6", ReleaseName: "14.1", Stage: StageShip},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.toolKit.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestToolKit_IsDevelopment(t *testing.T) {
	assert.True(t, (&ToolKit{Stage: StageDevelopment}).IsDevelopment())
	assert.False(t, (&ToolKit{Stage: StageProduction}).IsDevelopment())
}

func TestReleasePackageValidation(t *testing.T) {
	pkg := &ReleasePackage{
		ID:           uuid.NewString(),
		Name:         "14.1.6-64-rh7",
		ToolKitName:  "14.1.6",
		PlatformName: "64-rh7",
		Components:   []string{"einstimer", "nutshell"},
		CreatedBy:    "jdoe",
		CreatedAt:    time.Now(),
	}
	assert.NoError(t, pkg.Validate())

	pkg.Components = nil
	assert.Error(t, pkg.Validate())

	pkg.Components = []string{"bad name"}
	assert.Error(t, pkg.Validate())
}
