package components

import (
	"github.com/automoto/jumpcar/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an arena wall to its collision object. Rect is the same
// wall in world metres.
type ObjectData struct {
	*resolv.Object
	Rect leveldata.WallRect
}

var Object = donburi.NewComponentType[ObjectData]()
