package dto

import "testing"

func TestProgressForStage(t *testing.T) {
	tests := []struct {
		stage GenerationStage
		want  int
	}{
		{StageIdle, 0},
		{StageConfiguring, 10},
		{StageGenerating, 40},
		{StageValidating, 80},
		{StageComplete, 100},
		{StageError, 100},
		{GenerationStage("unknown"), 0},
	}

	for _, tt := range tests {
		if got := ProgressForStage(tt.stage); got != tt.want {
			t.Errorf("ProgressForStage(%q) = %d, want %d", tt.stage, got, tt.want)
		}
	}
}

func TestProgressForStage_HappyPathIsMonotonic(t *testing.T) {
	path := []GenerationStage{StageIdle, StageConfiguring, StageGenerating, StageValidating, StageComplete}
	prev := -1
	for _, stage := range path {
		p := ProgressForStage(stage)
		if p <= prev {
			t.Errorf("progress must increase along the happy path, %q gave %d after %d", stage, p, prev)
		}
		prev = p
	}
}
