package factory

import (
	"math/rand"

	"github.com/uber/lsp-session-host/src/lsphost/entity"
)

// Range returns a random entity.Range.
func Range() entity.Range {
	start := entity.Position{Line: rand.Intn(100), Character: rand.Intn(100)}
	end := entity.Position{Line: start.Line + rand.Intn(100), Character: rand.Intn(100)}

	if start.Line == end.Line && start.Character > end.Character {
		end.Character = start.Character + rand.Intn(100)
	}

	return entity.Range{
		Start: start,
		End:   end,
	}
}
