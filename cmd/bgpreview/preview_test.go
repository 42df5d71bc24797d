package main

import (
	"image"
	"slices"
	"testing"

	"github.com/milk9111/parallax/background"
	"github.com/milk9111/parallax/config"
)

type box struct{ w, h int }

func (b box) Bounds() image.Rectangle { return image.Rect(0, 0, b.w, b.h) }

func TestWatchDirs(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name       string
		configPath string
		want       []string
	}{
		{"embedded_config", "", []string{"assets/layer", "assets/sprites"}},
		{"custom_config", "conf/game.yaml", []string{"assets/layer", "assets/sprites", "conf"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := watchDirs(&cfg, tc.configPath, "assets")
			if !slices.Equal(got, tc.want) {
				t.Fatalf("watchDirs = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestIsConfigFile(t *testing.T) {
	tests := []struct {
		name, configPath string
		want             bool
	}{
		{"conf/game.yaml", "conf/game.yaml", true},
		{"conf/game.yaml", "./conf/game.yaml", true},
		{"conf/other.yaml", "conf/game.yaml", false},
		{"conf/game.yaml", "", false},
	}
	for _, tc := range tests {
		if got := isConfigFile(tc.name, tc.configPath); got != tc.want {
			t.Errorf("isConfigFile(%q, %q) = %v, expected %v", tc.name, tc.configPath, got, tc.want)
		}
	}
}

func TestVisibleLayers(t *testing.T) {
	layers := []background.Layer{
		{Name: "sky", Image: box{800, 600}, DrawOrder: 0},
		{Name: "hills", Image: box{272, 600}, DrawOrder: 1},
		{Name: "trees", Image: box{272, 600}, DrawOrder: 2},
	}

	got := visibleLayers(layers, map[int]bool{1: true, 2: false})
	if len(got) != 2 || got[0].Name != "sky" || got[1].Name != "trees" {
		t.Fatalf("unexpected visible layers %v", got)
	}
	if len(layers) != 3 || layers[1].Name != "hills" {
		t.Fatal("input slice was modified")
	}

	if got := visibleLayers(layers, nil); len(got) != 3 {
		t.Fatalf("nil hidden set should keep all layers, got %d", len(got))
	}
}
