// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brush

// Attr names the attribute a Change refers to.
type Attr uint8

// Observable attributes.
const (
	AttrName Attr = iota
	AttrPlacement
	AttrOpacity
	AttrBlendMode
	AttrTransparencyLock
	AttrExpanded
	AttrSelected
	AttrParent
	AttrChildren
	AttrImage
	AttrText
	AttrFont
	AttrColor
	AttrCanvasSize
	AttrHistory
	AttrCurrentIndex
)

var attrNames = [...]string{
	AttrName:             "Name",
	AttrPlacement:        "Placement",
	AttrOpacity:          "Opacity",
	AttrBlendMode:        "BlendMode",
	AttrTransparencyLock: "TransparencyLock",
	AttrExpanded:         "Expanded",
	AttrSelected:         "Selected",
	AttrParent:           "Parent",
	AttrChildren:         "Children",
	AttrImage:            "Image",
	AttrText:             "Text",
	AttrFont:             "Font",
	AttrColor:            "Color",
	AttrCanvasSize:       "CanvasSize",
	AttrHistory:          "History",
	AttrCurrentIndex:     "CurrentIndex",
}

// String returns the attribute name.
func (a Attr) String() string {
	if int(a) < len(attrNames) {
		return attrNames[a]
	}
	return "Unknown"
}

// Change describes one attribute change.
type Change struct {
	// Source is the Layer or *History that changed.
	Source any

	// Attr is the attribute that changed.
	Attr Attr
}

// Layer returns the changed layer, or nil for history changes.
func (c Change) Layer() Layer {
	l, _ := c.Source.(Layer)
	return l
}

// observers is a list of change callbacks. Callbacks run synchronously in
// registration order and may cancel themselves or register others.
type observers struct {
	nextID int
	list   []observer
}

type observer struct {
	id int
	fn func(Change)
}

// add registers fn and returns a function that unregisters it.
func (o *observers) add(fn func(Change)) func() {
	if fn == nil {
		return func() {}
	}
	o.nextID++
	id := o.nextID
	o.list = append(o.list, observer{id: id, fn: fn})
	return func() {
		for i, ob := range o.list {
			if ob.id == id {
				o.list = append(o.list[:i:i], o.list[i+1:]...)
				return
			}
		}
	}
}

func (o *observers) notify(c Change) {
	if len(o.list) == 0 {
		return
	}
	for _, ob := range append([]observer(nil), o.list...) {
		ob.fn(c)
	}
}
