package request

import (
	"errors"
	"testing"
	"time"
)

func TestResolveScheduledAt(t *testing.T) {
	t.Run("rfc3339", func(t *testing.T) {
		got, err := ResolveScheduledAt("2025-07-01T15:04:05Z")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, 7, 1, 15, 4, 5, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("datetime-local form value", func(t *testing.T) {
		got, err := ResolveScheduledAt("2025-07-01T15:04")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Hour() != 15 || got.Minute() != 4 {
			t.Fatalf("unexpected time: %v", got)
		}
	})

	t.Run("space separated", func(t *testing.T) {
		if _, err := ResolveScheduledAt("2025-07-01 15:04"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("blank", func(t *testing.T) {
		if _, err := ResolveScheduledAt("   "); !errors.Is(err, ErrInvalidScheduledAt) {
			t.Fatalf("expected ErrInvalidScheduledAt, got %v", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := ResolveScheduledAt("next tuesday"); !errors.Is(err, ErrInvalidScheduledAt) {
			t.Fatalf("expected ErrInvalidScheduledAt, got %v", err)
		}
	})
}

func TestResolvePrice(t *testing.T) {
	t.Run("decimal string", func(t *testing.T) {
		d, err := ResolvePrice(" 49.90 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.String() != "49.9" {
			t.Fatalf("unexpected value: %s", d)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		if _, err := ResolvePrice("caro"); !errors.Is(err, ErrInvalidPrice) {
			t.Fatalf("expected ErrInvalidPrice, got %v", err)
		}
		if _, err := ResolvePrice(""); !errors.Is(err, ErrInvalidPrice) {
			t.Fatalf("expected ErrInvalidPrice, got %v", err)
		}
	})
}
