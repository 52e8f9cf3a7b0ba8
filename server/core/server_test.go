package core

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/ashgrove/config"
)

func TestNewServerRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want error
	}{
		{"zero tick rate", Options{TickRate: 0}, ErrBadTickRate},
		{"missing level", Options{TickRate: 60, Level: filepath.Join(t.TempDir(), "nope.tmx")}, nil},
		{"missing tuning", Options{TickRate: 60, Tuning: filepath.Join(t.TempDir(), "nope.yaml")}, os.ErrNotExist},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewServer(tt.opts)
			if err == nil {
				t.Fatal("NewServer() returned nil error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("NewServer() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTickStopsAtLimit(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	s, err := NewServer(Options{TickRate: 60, MaxTicks: 90, BotName: "Bot"})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}

	var (
		res  Result
		done bool
	)
	for i := 0; i < 200 && !done; i++ {
		res, done = s.Tick()
	}
	if !done {
		t.Fatal("run never finished")
	}
	if res.Ticks > 90 {
		t.Errorf("ticks = %d, want at most 90", res.Ticks)
	}
	if res.Reason == "" {
		t.Error("empty reason")
	}

	again, done := s.Tick()
	if !done || again != res {
		t.Errorf("tick after finish = %+v %v, want the same result", again, done)
	}
	if s.Result() != res {
		t.Errorf("Result() = %+v, want %+v", s.Result(), res)
	}
}

func TestLoadOptionsFromEnv(t *testing.T) {
	t.Setenv("ASHGROVE_TICK_RATE", "30")
	t.Setenv("ASHGROVE_MAX_TICKS", "600")

	opts, err := LoadOptions()
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if opts.TickRate != 30 || opts.MaxTicks != 600 || opts.BotName != "Bot" {
		t.Errorf("opts = %+v", opts)
	}

	t.Setenv("ASHGROVE_TICK_RATE", "fast")
	if _, err := LoadOptions(); err == nil {
		t.Error("expected an error for a non-numeric tick rate")
	}
}
