package anatomy

// Anchor IDs of the skeleton set.
const (
	Skull    = "skull"
	Clavicle = "clavicle"
	Sternum  = "sternum"
	Ribs     = "ribs"
	Humerus  = "humerus"
	Spine    = "spine"
	Radius   = "radius"
	Pelvis   = "pelvis"
	Femur    = "femur"
	Patella  = "patella"
	Tibia    = "tibia"
	Fibula   = "fibula"
)

// skeleton is the fixed anchor set. Positions match the remote model's
// right side (+X) so markers sit on the bones whether or not it loads.
var skeleton = []Anchor{
	{ID: Skull, Label: "Crâne", Position: Vec3{0, 1.65, 0.02}},
	{ID: Clavicle, Label: "Clavicule", Position: Vec3{0.12, 1.43, 0.04}},
	{ID: Sternum, Label: "Sternum", Position: Vec3{0, 1.32, 0.08}},
	{ID: Ribs, Label: "Côtes", Position: Vec3{0.13, 1.22, 0.06}},
	{ID: Humerus, Label: "Humérus", Position: Vec3{0.24, 1.2, 0}},
	{ID: Spine, Label: "Colonne vertébrale", Position: Vec3{0, 1.1, -0.06}},
	{ID: Radius, Label: "Radius", Position: Vec3{0.29, 0.92, 0.03}},
	{ID: Pelvis, Label: "Bassin", Position: Vec3{0, 0.96, 0}},
	{ID: Femur, Label: "Fémur", Position: Vec3{0.1, 0.72, 0.02}},
	{ID: Patella, Label: "Rotule", Position: Vec3{0.1, 0.5, 0.06}},
	{ID: Tibia, Label: "Tibia", Position: Vec3{0.08, 0.3, 0.03}},
	{ID: Fibula, Label: "Péroné", Position: Vec3{0.13, 0.28, -0.01}},
}

var bones = []Bone{
	{Skull, Spine},
	{Spine, Pelvis},
	{Sternum, Clavicle},
	{Sternum, Ribs},
	{Clavicle, Humerus},
	{Humerus, Radius},
	{Pelvis, Femur},
	{Femur, Patella},
	{Patella, Tibia},
	{Patella, Fibula},
}

// Skeleton returns a copy of the twelve-anchor skeleton set.
func Skeleton() []Anchor {
	out := make([]Anchor, len(skeleton))
	copy(out, skeleton)
	return out
}

// Bones returns the segments connecting skeleton anchors.
func Bones() []Bone {
	out := make([]Bone, len(bones))
	copy(out, bones)
	return out
}
