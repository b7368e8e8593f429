// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/stacklok/skillproxy/env/mocks"
)

// TestUnstructuredLogsCheck tests the unstructuredLogs function
func TestUnstructuredLogsCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		envValue string
		expected bool
	}{
		{"Default Case", "", true},
		{"Explicitly True", "true", true},
		{"Explicitly False", "false", false},
		{"Invalid Value", "not-a-bool", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockEnv := mocks.NewMockReader(ctrl)
			mockEnv.EXPECT().Getenv("UNSTRUCTURED_LOGS").Return(tt.envValue)

			if got := unstructuredLogsWithEnv(mockEnv); got != tt.expected {
				t.Errorf("unstructuredLogsWithEnv() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// TestSingletonLogging exercises the singleton wrappers against an observed core.
func TestSingletonLogging(t *testing.T) { //nolint:paralleltest // Uses global logger state
	core, logs := observer.New(zapcore.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(restore)

	Debugf("debug %s", "message")
	Info("info message")
	Infof("info %s", "formatted")
	Infow("info with fields", "key", "value")
	Warnf("warn %s", "message")
	Error("error message")
	Errorf("error %s", "formatted")
	Errorw("error with fields", "key", "value")

	entries := logs.All()
	assert.Len(t, entries, 8)
	assert.Equal(t, "debug message", entries[0].Message)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "info with fields", entries[3].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[5].Level)
}

// TestInitialize ensures both logger modes build without panicking.
func TestInitialize(t *testing.T) { //nolint:paralleltest // Uses global logger state
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEnv := mocks.NewMockReader(ctrl)
	mockEnv.EXPECT().Getenv("UNSTRUCTURED_LOGS").Return("false")
	InitializeWithOptions(mockEnv, false)
	assert.NotNil(t, zap.S())

	mockEnv.EXPECT().Getenv("UNSTRUCTURED_LOGS").Return("true")
	InitializeWithOptions(mockEnv, true)
	assert.True(t, zap.S().Desugar().Core().Enabled(zapcore.DebugLevel))
}

// TestNewLogr ensures the logr bridge wraps the global zap logger.
func TestNewLogr(t *testing.T) { //nolint:paralleltest // Uses global logger state
	core, logs := observer.New(zapcore.InfoLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(restore)

	NewLogr().Info("via logr")
	assert.Equal(t, 1, logs.Len())
}
