package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uber/lsp-session-host/src/lsphost/entity"
)

func TestRangeConversions(t *testing.T) {
	wire := entity.Range{
		Start: entity.Position{Line: 1, Character: 2},
		End:   entity.Position{Line: 3, Character: 4},
	}
	buffer := entity.BufferRange{
		Start: entity.BufferPoint{Row: 1, Column: 2},
		End:   entity.BufferPoint{Row: 3, Column: 4},
	}

	assert.Equal(t, buffer, RangeToBufferRange(wire))
	assert.Equal(t, wire, BufferRangeToRange(buffer))
}

func TestOptionalConversions(t *testing.T) {
	t.Run("undefined", func(t *testing.T) {
		assert.False(t, OptionalPointToPosition(entity.Optional[entity.BufferPoint]{}).Defined)
		assert.False(t, OptionalBufferRangeToRange(entity.Optional[entity.BufferRange]{}).Defined)
	})

	t.Run("null", func(t *testing.T) {
		p := OptionalPointToPosition(entity.Null[entity.BufferPoint]())
		assert.True(t, p.Defined)
		assert.Nil(t, p.Value)

		r := OptionalBufferRangeToRange(entity.Null[entity.BufferRange]())
		assert.True(t, r.Defined)
		assert.Nil(t, r.Value)
	})

	t.Run("value", func(t *testing.T) {
		p := OptionalPointToPosition(entity.Some(entity.BufferPoint{Row: 5, Column: 6}))
		assert.Equal(t, entity.Some(entity.Position{Line: 5, Character: 6}), p)

		r := OptionalBufferRangeToRange(entity.Some(entity.BufferRange{End: entity.BufferPoint{Row: 1}}))
		assert.Equal(t, entity.Some(entity.Range{End: entity.Position{Line: 1}}), r)
	})
}
