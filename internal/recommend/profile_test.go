// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

package recommend

import (
	"math"
	"reflect"
	"testing"
)

func TestAnnotate_RuleOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		profile *Profile
		want    []string
	}{
		{
			name: "everything fires",
			profile: &Profile{
				Weight: ptr(100.0), Height: ptr(170.0), Age: ptr(60), Gender: ptr("male"),
				Goals:      []string{GoalFlexibility, GoalMuscleGain, GoalWeightLoss},
				Experience: ptr(ExperienceAdvanced),
			},
			want: []string{NoteOverweight, NoteSenior, NoteAdvanced, NoteWeightLoss, NoteMuscleGain, NoteFlexibility},
		},
		{
			name: "underweight beginner",
			profile: &Profile{
				Weight: ptr(45.0), Height: ptr(180.0), Age: ptr(20), Gender: ptr("other"),
				Goals:      []string{"Endurance"},
				Experience: ptr(ExperienceBeginner),
			},
			want: []string{NoteUnderweight, NoteBeginner},
		},
		{
			name: "boundaries do not fire",
			profile: &Profile{
				// 25 * 2^2 = 100kg at 200cm is exactly BMI 25
				Weight: ptr(100.0), Height: ptr(200.0), Age: ptr(50), Gender: ptr("female"),
				Goals:      []string{},
				Experience: ptr(ExperienceIntermediate),
			},
			want: []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, notes, err := annotate(tt.profile, DefaultConfig())
			if err != nil {
				t.Fatalf("annotate() error = %v", err)
			}
			if !reflect.DeepEqual(notes, tt.want) {
				t.Errorf("notes = %v, want %v", notes, tt.want)
			}
		})
	}
}

func TestAnnotate_Adjustments(t *testing.T) {
	t.Parallel()

	p := &Profile{
		Weight: ptr(81.0), Height: ptr(180.0), Age: ptr(17), Gender: ptr("male"),
		Goals: []string{GoalMuscleGain}, Experience: ptr(ExperienceBeginner),
	}

	adj, _, err := annotate(p, DefaultConfig())
	if err != nil {
		t.Fatalf("annotate() error = %v", err)
	}
	if math.Abs(adj.BMI-25) > 1e-9 {
		t.Errorf("BMI = %v, want 25", adj.BMI)
	}
	if adj.AgeAppropriate {
		t.Error("AgeAppropriate should be false at 17")
	}
	if adj.ExperienceLevel != ExperienceBeginner || !reflect.DeepEqual(adj.Goals, []string{GoalMuscleGain}) {
		t.Errorf("Adjustments = %+v", adj)
	}

	p.Goals[0] = "mutated"
	if adj.Goals[0] != GoalMuscleGain {
		t.Error("Adjustments.Goals aliases the profile")
	}
}

func TestProfile_IsComplete(t *testing.T) {
	t.Parallel()

	var nilProfile *Profile
	if nilProfile.IsComplete() {
		t.Error("nil profile reported complete")
	}
	if (&Profile{}).IsComplete() {
		t.Error("empty profile reported complete")
	}

	p := completeProfile()
	if !p.IsComplete() {
		t.Error("complete profile reported incomplete")
	}
	p.MedicalConditions = nil
	if !p.IsComplete() {
		t.Error("medical conditions must be optional")
	}
}
