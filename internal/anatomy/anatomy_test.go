package anatomy

import (
	"strings"
	"testing"
)

func TestValidate_SkeletonPasses(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("skeleton validation failed: %v", err)
	}
}

func TestSkeleton_TwelveAnchors(t *testing.T) {
	if got := len(Skeleton()); got != 12 {
		t.Errorf("len(Skeleton()) = %d, want 12", got)
	}
}

func TestSkeleton_ReturnsCopy(t *testing.T) {
	a := Skeleton()
	a[0].Label = "changed"
	if Skeleton()[0].Label == "changed" {
		t.Error("Skeleton() must not expose the package-level slice")
	}
}

func TestValidateAnchors_DetectsDuplicateLabel(t *testing.T) {
	anchors := []Anchor{
		{ID: "a", Label: "Crâne"},
		{ID: "b", Label: "Crâne"},
	}
	err := validateAnchors(anchors, nil)
	if err == nil {
		t.Fatal("expected error for duplicate label, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate anchor label") {
		t.Errorf("error should mention duplicate label, got: %v", err)
	}
}

func TestValidateAnchors_DetectsDanglingBone(t *testing.T) {
	anchors := []Anchor{{ID: "a", Label: "A"}}
	err := validateAnchors(anchors, []Bone{{From: "a", To: "ghost"}})
	if err == nil {
		t.Fatal("expected error for dangling bone, got nil")
	}
	if !strings.Contains(err.Error(), "ghost") {
		t.Errorf("error should mention the missing ID, got: %v", err)
	}
}

func TestLabelsAndFind(t *testing.T) {
	anchors := Skeleton()
	labels := Labels(anchors)
	if labels[0] != "Crâne" {
		t.Errorf("Labels()[0] = %q, want %q", labels[0], "Crâne")
	}

	a, ok := Find(anchors, Pelvis)
	if !ok || a.Label != "Bassin" {
		t.Errorf("Find(pelvis) = %+v, %v", a, ok)
	}
	if _, ok := Find(anchors, "nope"); ok {
		t.Error("Find should report unknown IDs as missing")
	}
}
