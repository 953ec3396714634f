// Package canvaskit is the pointer-interaction core for an interactive 2D
// scene editor.
//
// Canvaskit consumes a canonical stream of pointer events and turns it into
// editor semantics: hit-target resolution over a scene tree, a single
// transform session (move/scale/rotate through draggable controls),
// single-, multi-, and rubber-band selection with an ActiveSelection
// composite, a native drag-and-drop protocol, and synthetic enter/leave
// transition events. It draws nothing itself; hosts render the scene and
// query the editor for selection, handles, rubber band, and cursor.
//
// # Quick start
//
// Build a scene tree of [Shape] values, wrap it in an [Editor], bind
// listeners, and feed platform input through [Editor.HandleRaw]:
//
//	root := canvaskit.NewGroup("root")
//	box := canvaskit.NewRect("box", 100, 60)
//	box.X, box.Y = 40, 40
//
//	ed := canvaskit.NewEditor(root, canvaskit.InteractionConfig{
//		RegionSelection: true,
//	})
//	ed.AddShape(root, box)
//	ed.RegisterListeners()
//
//	ed.HandleRaw(canvaskit.RawEvent{
//		Kind: canvaskit.EventDown, Device: canvaskit.DeviceMouse,
//		X: 60, Y: 60, IsPrimary: true,
//	})
//
// # Scene tree
//
// Every element is a [Shape]: rectangles, ellipses, and groups. Children
// inherit their parent's transform. Interaction behavior is controlled per
// shape through flags ([Shape.Selectable], [Shape.Movable],
// [Shape.HasControls]) and capability callbacks.
//
// # Events
//
// Editor-level handlers register with the On* methods ([Editor.OnDown],
// [Editor.OnSelectionCreated], [Editor.OnDragEnter], ...) and return a
// [CallbackHandle] for removal. Shapes carry their own callback fields for
// per-target dispatch. Optional ECS integration forwards interaction events
// through an [EntityStore] (a [Donburi] adapter lives in canvaskit/ecs).
//
// The editor is not safe for concurrent use; drive it from the host's input
// loop.
//
// [Donburi]: https://github.com/yohamta/donburi
package canvaskit
