package domain

import (
	"reflect"
	"testing"
)

func TestDefinitionList_GroupPerItem(t *testing.T) {
	t.Parallel()

	d := NewDefinitionList()
	d.AppendGroup("v")
	d.PushToLast("v", "run")
	d.AppendGroup("v")
	d.PushToLast("v", "fast")

	want := [][]string{{"run"}, {"fast"}}
	if got := d.Groups("v"); !reflect.DeepEqual(got, want) {
		t.Errorf("Groups(v) = %v, want %v", got, want)
	}
}

func TestDefinitionList_EmptyGroupRetained(t *testing.T) {
	t.Parallel()

	d := NewDefinitionList()
	d.AppendGroup("n")
	d.AppendGroup("n")
	d.PushToLast("n", "x")

	want := [][]string{{}, {"x"}}
	if got := d.Groups("n"); !reflect.DeepEqual(got, want) {
		t.Errorf("Groups(n) = %v, want %v", got, want)
	}
}

func TestDefinitionList_TagOrder(t *testing.T) {
	t.Parallel()

	d := NewDefinitionList()
	d.AppendGroup("v")
	d.AppendGroup("n")
	d.AppendGroup("v")

	want := []string{"v", "n"}
	if got := d.Tags(); !reflect.DeepEqual(got, want) {
		t.Errorf("Tags() = %v, want %v", got, want)
	}
	if d.Len() != 2 {
		t.Errorf("Len() = %d, want 2", d.Len())
	}
	if got := len(d.Groups("v")); got != 2 {
		t.Errorf("len(Groups(v)) = %d, want 2", got)
	}
}

func TestDefinitionList_PushWithoutGroup(t *testing.T) {
	t.Parallel()

	d := NewDefinitionList()
	d.PushToLast("v", "orphan")
	if d.Len() != 0 {
		t.Errorf("Len() = %d, want 0", d.Len())
	}
	if got := d.Groups("v"); got != nil {
		t.Errorf("Groups(v) = %v, want nil", got)
	}
}

func TestTranslationSet_Order(t *testing.T) {
	t.Parallel()

	tr := NewTranslationSet()
	tr.Add("English", []string{"cat"})
	tr.Add("francais", []string{"chat"})
	tr.Add("Deutsch", []string{"Katze"})

	want := []string{"English", "francais", "Deutsch"}
	if got := tr.Languages(); !reflect.DeepEqual(got, want) {
		t.Errorf("Languages() = %v, want %v", got, want)
	}
	if got := tr.Get("francais"); !reflect.DeepEqual(got, []string{"chat"}) {
		t.Errorf("Get(francais) = %v", got)
	}
	if got := tr.Get("nope"); got != nil {
		t.Errorf("Get(nope) = %v, want nil", got)
	}
}

func TestTranslationSet_RepeatedLangKeepsPosition(t *testing.T) {
	t.Parallel()

	tr := NewTranslationSet()
	tr.Add("English", []string{"cat"})
	tr.Add("Deutsch", []string{"Katze"})
	tr.Add("English", []string{"kitty"})

	want := []string{"English", "Deutsch"}
	if got := tr.Languages(); !reflect.DeepEqual(got, want) {
		t.Errorf("Languages() = %v, want %v", got, want)
	}
	if got := tr.Get("English"); !reflect.DeepEqual(got, []string{"kitty"}) {
		t.Errorf("Get(English) = %v, want [kitty]", got)
	}
}
