package domain

import "testing"

func TestIsMemberIsExact(t *testing.T) {
	cases := []struct {
		field Field
		value string
		want  bool
	}{
		{FieldJobType, "electrical", true},
		{FieldJobType, "Electrical", false},
		{FieldJobType, "painting_decorating", false},
		{FieldBudgetRange, "10k-50k", true},
		{FieldBudgetRange, "10K-50K", false},
		{FieldStatus, "on-hold", true},
		{FieldStatus, "", false},
		{FieldInspectionPropertyType, "industrial", true},
		{FieldPropertyType, "industrial", false},
		{Field("unknown"), "new", false},
	}

	for _, tc := range cases {
		if got := IsMember(tc.field, tc.value); got != tc.want {
			t.Errorf("IsMember(%s, %q) = %v, want %v", tc.field, tc.value, got, tc.want)
		}
	}
}

func TestRegistrySizesAndOrder(t *testing.T) {
	sizes := map[Field]int{
		FieldJobType:                6,
		FieldPropertyType:           2,
		FieldBuildingType:           4,
		FieldInspectionPropertyType: 3,
		FieldBudgetRange:            5,
		FieldProjectUrgency:         4,
		FieldStatus:                 5,
	}
	for field, n := range sizes {
		if got := len(Values(field)); got != n {
			t.Errorf("len(Values(%s)) = %d, want %d", field, got, n)
		}
	}

	if first := Values(FieldBudgetRange)[0]; first != string(BudgetUnder10k) {
		t.Errorf("first budget bucket = %q", first)
	}
	if len(Options()) != len(Fields()) {
		t.Error("Options() should cover every field")
	}
}

func TestValuesReturnsCopy(t *testing.T) {
	v := Values(FieldStatus)
	v[0] = "mutated"
	if !IsMember(FieldStatus, "new") || Values(FieldStatus)[0] != "new" {
		t.Fatal("Values must not expose the registry slice")
	}
}

func TestStatusLifecycle(t *testing.T) {
	if !IsTerminalStatus(StatusCompleted) || !IsTerminalStatus(StatusCancelled) {
		t.Fatal("completed and cancelled are terminal")
	}
	if IsTerminalStatus(StatusOnHold) {
		t.Fatal("on-hold is not terminal")
	}
	if !IsUsualTransition(StatusNew, StatusInProgress) {
		t.Error("new -> in-progress is the usual path")
	}
	if IsUsualTransition(StatusCompleted, StatusNew) {
		t.Error("completed -> new is unusual")
	}
	for status := range StatusTransitions {
		if !status.Valid() {
			t.Errorf("transition table holds unknown status %q", status)
		}
	}
}
