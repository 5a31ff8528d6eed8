/*
Package propui is an immediate-mode toolkit for interactive property panels:
checkboxes, sliders, combo boxes, buttons and collapsible sections bound
directly to the caller's data.

# Overview

The panel is described by a plain Go function that runs against an Arbiter.
Every call declares a node; the Arbiter assigns it a stable identity from its
label and its parent's identity, so the same code produces the same IDs pass
after pass. Nothing is retained between passes except the layout a Frame
caches, and the caller's own data reached through Bindings.

# Quick Start

	type light struct {
	    Enabled  bool
	    Range    float64
	    Mode     int
	    ModeOpen bool
	}

	func (l *light) build(a *propui.Arbiter) error {
	    a.Checkbox("Enabled", propui.Bind(&l.Enabled))
	    a.BoundedFloat("Range", 0, 100, propui.Bind(&l.Range))
	    a.ComboBox("Mode", modes, propui.Bind(&l.Mode), propui.Bind(&l.ModeOpen))
	    return nil
	}

	frame := propui.NewFrame(propui.Vec2{X: 400, Y: 300}, model.build,
	    propui.WithRedrawRequest(window.PostEmptyEvent))

	// pointer callbacks
	frame.OnMouseDown(propui.PointerEvent{Pos: pos, Button: propui.MouseButtonLeft})

	// paint
	dl := propui.AcquireDrawList(atlas)
	frame.Draw(dl)
	renderer.Render(dl)
	propui.ReleaseDrawList(dl)

# Passes

A pass starts with Reset, opens the frame's top root, runs the layout
function, closes the root and calls Finish. Handles obtained during a pass
are invalid afterwards. Begin and End calls must balance; an unbalanced pass
panics with ErrUnbalanced and the Frame discards it.

Any event that is not a plain pointer move invalidates the cached layout, so
the next Draw or event runs a fresh pass that reflects the new data.

# Identity

	id := ChildID(parentID, label)

By convention labels starting with "##" name structural parts of a widget
whose label is never shown. An empty label makes the node passive: it has ID 0
and is skipped by hit testing, which lets composite widgets route every click
to their container.

# Roots

BeginRoot opens a tree that is laid out on its own, at a fixed position or
anchored to another node's frame once that frame is known. Roots created later
are drawn later and win hit testing, which is how combo popups float above
the panel.

# Coordinates

All rectangles handed to callbacks are in frame coordinates with the origin at
the top left. IO.ToHost maps a point to the host's coordinate space for native
editors.
*/
package propui
