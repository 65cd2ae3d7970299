package game

import "github.com/vovakirdan/lane-dash/internal/config"

// ObjectKind identifies a falling object variant.
type ObjectKind int

const (
	KindCoin ObjectKind = iota
	KindGem
	KindHeart
	KindObstacle
	KindCount // Sentinel for counting kinds
)

// String returns the kind name, which doubles as its sprite key.
func (k ObjectKind) String() string {
	switch k {
	case KindCoin:
		return "coin"
	case KindGem:
		return "gem"
	case KindHeart:
		return "heart"
	case KindObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Collectible reports whether picking the kind up adds coins.
func (k ObjectKind) Collectible() bool {
	return k == KindCoin || k == KindGem
}

// ObjectType is the immutable variant shared by every object of a kind.
type ObjectType struct {
	Kind   ObjectKind
	Value  int
	Size   float64
	Sprite string // Sprite key
}

// Catalog maps kinds to their types.
type Catalog [KindCount]ObjectType

// NewCatalog builds the catalog from config.
func NewCatalog(oc config.ObjectCatalog) Catalog {
	entry := func(k ObjectKind, t config.ObjectType) ObjectType {
		return ObjectType{Kind: k, Value: t.Value, Size: t.Size, Sprite: k.String()}
	}
	return Catalog{
		KindCoin:     entry(KindCoin, oc.Coin),
		KindGem:      entry(KindGem, oc.Gem),
		KindHeart:    entry(KindHeart, oc.Heart),
		KindObstacle: entry(KindObstacle, oc.Obstacle),
	}
}

// Type returns the type for a kind.
func (c Catalog) Type(k ObjectKind) ObjectType {
	if k < 0 || k >= KindCount {
		return c[KindObstacle]
	}
	return c[k]
}

// FallingObject drops straight down its lane at a fixed speed.
// Y is the vertical center.
type FallingObject struct {
	ID    uint64
	Lane  int
	Type  ObjectType
	Y     float64
	Speed float64
}

// NewFallingObject creates an object just above the top edge.
func NewFallingObject(id uint64, lane int, t ObjectType, speed float64) *FallingObject {
	return &FallingObject{
		ID:    id,
		Lane:  lane,
		Type:  t,
		Y:     -t.Size,
		Speed: speed,
	}
}

// Update moves the object down by its speed.
func (o *FallingObject) Update() {
	o.Y += o.Speed
}

// OutOfBounds reports whether the object has left the bottom edge.
func (o *FallingObject) OutOfBounds(height float64) bool {
	return o.Y > height
}

// CenterX returns the horizontal center in the given viewport.
// Objects hold a lane, not a pixel position, so resizes never move them
// out of their lane.
func (o *FallingObject) CenterX(vp Viewport) float64 {
	return vp.LaneCenterX(o.Lane)
}
