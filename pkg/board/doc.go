// Package board implements the drag and drop engine of the shopping list.
//
// Items live in containers. A container is the global unassigned pool, the
// unassigned pool of a store, or a section of a store, and is named by a
// ContainerKey:
//
//	unassigned
//	store:7
//	store:7/section:30
//
// # Architecture
//
//	        DragStart / DragOver / DragEnd
//	                     │
//	                     ▼
//	┌────────────────────────────────────────┐
//	│               Controller               │
//	│  Idle ─► Dragging ─► Committing ─► Idle│
//	│              └────► Cancelled ───► Idle│
//	└──────┬─────────────────┬───────────────┘
//	       │ DetectCollision │ Move
//	       ▼                 ▼
//	┌─────────────┐    ┌──────────┐    ┌──────────────┐
//	│  ItemIndex  │    │  Mover   │───►│   Registry   │──► Subscribe
//	└─────────────┘    └──────────┘    └──────────────┘
//	                         ▲
//	                         │ Restore / Rebuild
//	┌────────────────────────┴───────────────┐
//	│              Synchronizer              │
//	│  CommitMove ─► scheduler ─► Backend    │
//	└────────────────────────────────────────┘
//
// # Drag lifecycle
//
// DragStart snapshots the registry. Every DragOver resolves a target and moves
// the item only when it enters another container, so the list under the pointer
// shows where the item will land. DragEnd resolves once more, forces the final
// placement and hands the resulting (container, index) to the Synchronizer.
// A drop outside every container cancels the session and keeps the registry as
// the last DragOver left it.
//
// # Commits
//
// Commits never run on the caller's goroutine. They are queued on a
// scheduler.Scheduler and the caller gets a Future:
//
//	future := b.Controller().DragEnd(ev)
//	if future != nil {
//	    res := <-future.C()
//	    if res.Err != nil { ... }
//	}
//
// A successful move commit refetches the list and rebuilds the registry and the
// index. A failed one notifies, restores the pre-drag snapshot when nothing else
// changed the registry since the drop, then refetches.
//
// Reorderer handles single sequences such as the sections of a store: the new
// order is applied at once and the old one is put back verbatim if the commit
// fails. Checker delays check commits so an accidental check can be undone.
//
// # Collision detection
//
// DetectCollision is a pure function of the dragged rect, the candidate rects
// and the registry. It assumes a single vertical column; other layouts can be
// plugged in with WithDetector.
package board
