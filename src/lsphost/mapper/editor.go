package mapper

import "github.com/uber/lsp-session-host/src/lsphost/entity"

// PointToPosition maps a host buffer point onto a wire position.
func PointToPosition(p entity.BufferPoint) entity.Position {
	return entity.Position{Line: p.Row, Character: p.Column}
}

// PositionToPoint maps a wire position onto a host buffer point.
func PositionToPoint(p entity.Position) entity.BufferPoint {
	return entity.BufferPoint{Row: p.Line, Column: p.Character}
}

// BufferRangeToRange maps a host buffer range onto a wire range.
func BufferRangeToRange(r entity.BufferRange) entity.Range {
	return entity.Range{Start: PointToPosition(r.Start), End: PointToPosition(r.End)}
}

// RangeToBufferRange maps a wire range onto a host buffer range.
func RangeToBufferRange(r entity.Range) entity.BufferRange {
	return entity.BufferRange{Start: PositionToPoint(r.Start), End: PositionToPoint(r.End)}
}

// OptionalPointToPosition keeps the undefined and null states of a cursor position.
func OptionalPointToPosition(p entity.Optional[entity.BufferPoint]) entity.Optional[entity.Position] {
	if !p.Defined {
		return entity.Optional[entity.Position]{}
	}
	if p.Value == nil {
		return entity.Null[entity.Position]()
	}
	return entity.Some(PointToPosition(*p.Value))
}

// OptionalBufferRangeToRange keeps the undefined and null states of a selection.
func OptionalBufferRangeToRange(r entity.Optional[entity.BufferRange]) entity.Optional[entity.Range] {
	if !r.Defined {
		return entity.Optional[entity.Range]{}
	}
	if r.Value == nil {
		return entity.Null[entity.Range]()
	}
	return entity.Some(BufferRangeToRange(*r.Value))
}
