package record

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"threadedppc/internal/ppc"
)

func TestHandlerFunc_AdvancesChain(t *testing.T) {
	var ran []int
	chain := make([]Record, 3)
	for i := range chain {
		idx := i
		chain[i] = Record{Fn: func(chain []Record, i int, ctx *ppc.CoreContext) (int, bool) {
			ran = append(ran, idx)
			if i == len(chain)-1 {
				return 0, true
			}
			return i + 1, false
		}}
	}

	ctx := ppc.NewCoreContext()
	i := 0
	for {
		next, halt := chain[i].Fn(chain, i, ctx)
		if halt {
			break
		}
		i = next
	}

	assert.Equal(t, []int{0, 1, 2}, ran)
}

func TestThunkFunc_InvokedWithData(t *testing.T) {
	var gotWord uint32
	thunk := ThunkFunc(func(ctx *ppc.CoreContext, word uint32) error {
		gotWord = word
		return nil
	})

	r := Record{Thunk: thunk, Data: 0xDEADBEEF}
	assert.NoError(t, r.Thunk(ppc.NewCoreContext(), uint32(r.Data)))
	assert.Equal(t, uint32(0xDEADBEEF), gotWord)
}
