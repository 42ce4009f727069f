package api_test

import (
	"errors"
	"testing"

	"github.com/momentics/zbuf/api"
)

func TestErrorFormatting(t *testing.T) {
	e := api.NewError(api.ErrCodeBusy, "driver busy")
	if e.Error() != "driver busy" {
		t.Errorf("unexpected message: %q", e.Error())
	}
	e.WithContext("token", 7)
	if e.Error() == "driver busy" {
		t.Error("context not rendered")
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		api.ErrInsufficientHeadroom,
		api.ErrInsufficientTailroom,
		api.ErrPayloadOverrun,
		api.ErrRegionTooSmall,
		api.ErrChainDepth,
		api.ErrDriverBusy,
		api.ErrPoolExhausted,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinels %d and %d overlap", i, j)
			}
		}
	}
}

func TestDriverInterfaceCompliance(t *testing.T) {
	var _ api.Transmitter = (*mockTransmitter)(nil)
	var _ api.TransmitClient = (*mockClient)(nil)
	var _ api.ReceiveClient = (*mockReceiver)(nil)
}

// mockTransmitter implements api.Transmitter for the compliance check.
type mockTransmitter struct{}

func (*mockTransmitter) Transmit(api.Region, api.Token) error { return nil }
func (*mockTransmitter) SetClient(api.TransmitClient)         {}

type mockClient struct{}

func (*mockClient) TransmitDone(api.Region, api.Token, error) {}

type mockReceiver struct{}

func (*mockReceiver) Receive(r api.Region, n int) api.Region { return r }
