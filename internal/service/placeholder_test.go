package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRecipeImageURLDeterministic(t *testing.T) {
	first := GenerateRecipeImageURL("南瓜粥")
	second := GenerateRecipeImageURL("南瓜粥")
	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "https://"))
}

func TestGenerateRecipeImageURLKeywords(t *testing.T) {
	t.Run("porridge keyword", func(t *testing.T) {
		url := GenerateRecipeImageURL("南瓜粥")
		if strings.Contains(url, "unsplash") || strings.Contains(url, "loremflickr") {
			assert.Contains(t, url, "porridge")
		}
	})

	t.Run("different names can differ", func(t *testing.T) {
		// Not guaranteed for every pair, but these two hash apart.
		assert.NotEqual(t, GenerateRecipeImageURL("番茄牛腩面"), GenerateRecipeImageURL("清蒸鲈鱼"))
	})
}

func TestFixImageURL(t *testing.T) {
	t.Run("empty and junk values get a placeholder", func(t *testing.T) {
		for _, bad := range []string{"", "  ", "undefined", "null"} {
			fixed := FixImageURL(bad, "南瓜粥", false)
			assert.Equal(t, GenerateRecipeImageURL("南瓜粥"), fixed)
		}
	})

	t.Run("valid image paths pass through", func(t *testing.T) {
		assert.Equal(t, "/images/recipes/abc.png", FixImageURL("/images/recipes/abc.png", "x", false))
	})

	t.Run("relative paths outside /images/ are replaced", func(t *testing.T) {
		assert.Equal(t, GenerateRecipeImageURL("南瓜粥"), FixImageURL("/static/a.png", "南瓜粥", false))
		assert.Equal(t, GenerateRecipeImageURL("南瓜粥"), FixImageURL("/images/", "南瓜粥", false))
	})

	t.Run("http upgraded to https when secure", func(t *testing.T) {
		assert.Equal(t, "https://example.com/a.png", FixImageURL("http://example.com/a.png", "x", true))
		assert.Equal(t, "http://example.com/a.png", FixImageURL("http://example.com/a.png", "x", false))
	})
}

func TestSanitizeFileName(t *testing.T) {
	name := sanitizeFileName("南瓜粥", "0123456789abcdef")
	assert.Equal(t, "____01234567.png", name)

	long := sanitizeFileName("Tomato Beef Noodles Extra Long Name", "0123456789abcdef")
	assert.True(t, strings.HasSuffix(long, "_01234567.png"))
	assert.LessOrEqual(t, len(long), 20+1+8+4)
}
