package postgres

import (
	"context"
	"errors"
	"testing"

	domainLoad "freight-tms/internal/domain/load"
	loadMocks "freight-tms/internal/domain/load/mocks"

	"go.uber.org/mock/gomock"
)

func TestCountSequencer_NumbersFromRowCount(t *testing.T) {
	loads := loadMocks.NewMockRepository(gomock.NewController(t))
	gomock.InOrder(
		loads.EXPECT().Count(gomock.Any()).Return(int64(0), nil),
		loads.EXPECT().Count(gomock.Any()).Return(int64(1), nil),
	)

	seq := NewCountSequencer(loads)
	for _, want := range []struct{ loadID, tracking string }{
		{"L000001", "TN000001"},
		{"L000002", "TN000002"},
	} {
		n, err := seq.Next(context.Background())
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if got := domainLoad.FormatLoadID(n); got != want.loadID {
			t.Fatalf("expected %s, got %s", want.loadID, got)
		}
		if got := domainLoad.FormatTrackingNumber(n); got != want.tracking {
			t.Fatalf("expected %s, got %s", want.tracking, got)
		}
	}
}

func TestCountSequencer_CountError(t *testing.T) {
	loads := loadMocks.NewMockRepository(gomock.NewController(t))
	countErr := errors.New("connection reset")
	loads.EXPECT().Count(gomock.Any()).Return(int64(0), countErr)

	if _, err := NewCountSequencer(loads).Next(context.Background()); !errors.Is(err, countErr) {
		t.Fatalf("expected count error, got %v", err)
	}
}
