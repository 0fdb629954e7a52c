package memory

import (
	"sync"
	"testing"

	"github.com/arhansuba/tg-trading-bot/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestConversationStore_GetUnknownUserReturnsZeroValue(t *testing.T) {
	s := NewConversationStore()
	state := s.Get("nobody")
	assert.True(t, state.Idle())
}

func TestConversationStore_UpdateCreatesAndMerges(t *testing.T) {
	s := NewConversationStore()

	s.Update("u1", domain.PatchOperation(domain.OperationBuy))
	s.Update("u1", domain.PatchStep(domain.StepAwaitingAsset))
	s.Update("u1", domain.PatchAsset("pepe"))

	state := s.Get("u1")
	assert.Equal(t, domain.OperationBuy, state.Operation)
	assert.Equal(t, domain.StepAwaitingAsset, state.Step)
	assert.Equal(t, "pepe", state.Asset)
}

func TestConversationStore_ClearResetsToIdle(t *testing.T) {
	s := NewConversationStore()
	s.Update("u1", domain.PatchOperation(domain.OperationSell))

	s.Clear("u1")
	assert.True(t, s.Get("u1").Idle())

	// clearing an unknown user is a no-op
	s.Clear("ghost")
}

func TestConversationStore_UsersAreIsolated(t *testing.T) {
	s := NewConversationStore()
	s.Update("u1", domain.PatchOperation(domain.OperationBuy))
	s.Update("u2", domain.PatchOperation(domain.OperationSell))

	assert.Equal(t, domain.OperationBuy, s.Get("u1").Operation)
	assert.Equal(t, domain.OperationSell, s.Get("u2").Operation)
}

func TestConversationStore_ConcurrentPatchesBothSurvive(t *testing.T) {
	s := NewConversationStore()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.Update("u1", domain.PatchStep(domain.StepAwaitingAmount))
	}()
	go func() {
		defer wg.Done()
		s.Update("u1", domain.PatchAsset("usdc"))
	}()
	wg.Wait()

	state := s.Get("u1")
	assert.Equal(t, domain.StepAwaitingAmount, state.Step, "step patch must not be lost")
	assert.Equal(t, "usdc", state.Asset, "asset patch must not be lost")
}

func TestConversationStore_ConcurrentMixedAccess(t *testing.T) {
	s := NewConversationStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			s.Update("u1", domain.PatchOperation(domain.OperationBuy))
		}()
		go func() {
			defer wg.Done()
			_ = s.Get("u1")
		}()
		go func() {
			defer wg.Done()
			s.Clear("u2")
		}()
	}
	wg.Wait()

	assert.Equal(t, domain.OperationBuy, s.Get("u1").Operation)
}
