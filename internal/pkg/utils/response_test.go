package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationResponse(t *testing.T) {
	t.Run("rounds the page count up", func(t *testing.T) {
		pagination := BuildPaginationResponse(21, 1, 10)
		assert.Equal(t, int64(21), pagination.Total)
		assert.Equal(t, 3, pagination.Pages)
	})

	t.Run("exact multiple", func(t *testing.T) {
		pagination := BuildPaginationResponse(20, 2, 10)
		assert.Equal(t, 2, pagination.Pages)
		assert.Equal(t, 2, pagination.Page)
	})

	t.Run("empty result has zero pages", func(t *testing.T) {
		pagination := BuildPaginationResponse(0, 1, 10)
		assert.Equal(t, 0, pagination.Pages)
	})

	t.Run("non-positive limit falls back to the default", func(t *testing.T) {
		pagination := BuildPaginationResponse(5, 1, 0)
		assert.Greater(t, pagination.Limit, 0)
	})
}
