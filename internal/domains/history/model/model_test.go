package model_test

import (
	"testing"

	"innflow/internal/domains/history/model"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Known(t *testing.T) {
	for _, status := range []model.Status{model.StatusConfirmed, model.StatusCanceled, model.StatusCompleted} {
		assert.True(t, status.Known(), status)
	}

	assert.False(t, model.Status("Pending").Known())
	assert.False(t, model.Status("").Known())
}
