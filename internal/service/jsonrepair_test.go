package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	t.Run("markdown fences and prose are stripped", func(t *testing.T) {
		raw := "好的，这是您要的数据：\n```json\n{\"name\": \"南瓜粥\", \"count\": 2}\n```\n希望对您有帮助！"
		var p payload
		require.NoError(t, ExtractJSONObject(raw, &p))
		assert.Equal(t, "南瓜粥", p.Name)
		assert.Equal(t, 2, p.Count)
	})

	t.Run("truncated response is repaired to last balanced brace", func(t *testing.T) {
		raw := `{"name": "番茄汤", "count": 1} 以上就是推荐，注意 } 不要` // trailing noise with a stray brace
		var p payload
		require.NoError(t, ExtractJSONObject(raw, &p))
		assert.Equal(t, "番茄汤", p.Name)
	})

	t.Run("braces inside strings do not confuse the repair", func(t *testing.T) {
		raw := `noise {"name": "a{b}c", "count": 3} trailing } garbage`
		var p payload
		require.NoError(t, ExtractJSONObject(raw, &p))
		assert.Equal(t, "a{b}c", p.Name)
		assert.Equal(t, 3, p.Count)
	})

	t.Run("no object at all", func(t *testing.T) {
		var p payload
		assert.Error(t, ExtractJSONObject("抱歉，我无法生成食谱。", &p))
	})

	t.Run("unbalanced to the end", func(t *testing.T) {
		var p payload
		assert.Error(t, ExtractJSONObject(`{"name": "x", "nested": {"oops"`, &p))
	})
}
