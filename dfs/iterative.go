package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/step"
)

// stackItem is a pending visit of id, discovered through via (nil for roots).
type stackItem struct {
	id    int
	via   *core.Edge
	depth int
}

// DFSIterative is DFS with an explicit stack. It produces the same Order,
// Parent and Depth as DFS; Finish is left nil.
func DFSIterative(ctx context.Context, tr *step.Tracer, g *core.Graph, start int, opts ...Option) (*DFSResult, error) {
	w, err := newWalker(ctx, tr, g, start, opts)
	if err != nil {
		return nil, err
	}
	release := g.Freeze()
	defer release()
	w.res.Finish = nil

	err = w.forEachRoot(start, w.iterate)
	if err != nil {
		return w.res, err
	}

	return w.res, w.finish()
}

func (w *dfsWalker) iterate(root int) error {
	stack := []stackItem{{id: root}}
	w.frontier = append(w.frontier[:0], root)
	if err := w.emit(step.KindPush, root, nil, "push %d", root); err != nil {
		return err
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		w.frontier = w.frontier[:len(w.frontier)-1]
		if err := w.emit(step.KindPop, top.id, top.via, "pop %d", top.id); err != nil {
			return err
		}
		if w.res.Visited[top.id] {
			if err := w.emit(step.KindSkip, top.id, nil, "%d already visited", top.id); err != nil {
				return err
			}
			continue
		}

		w.markVisited(top.id, top.via, top.depth)
		if err := w.emit(step.KindVisit, top.id, top.via, "visit %d", top.id); err != nil {
			return err
		}

		nbs, err := w.graph.Neighbors(top.id)
		if err != nil {
			return fmt.Errorf("dfs: Neighbors(%d): %w", top.id, err)
		}
		// Reverse order so the first neighbor is popped first.
		for i := len(nbs) - 1; i >= 0; i-- {
			e := nbs[i]
			if !w.opts.allow(e.To) || w.res.Visited[e.To] {
				continue
			}
			stack = append(stack, stackItem{id: e.To, via: &e, depth: top.depth + 1})
			w.frontier = append(w.frontier, e.To)
			if err = w.emit(step.KindPush, e.To, &e, "push %d", e.To); err != nil {
				return err
			}
		}
	}

	return nil
}
