// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package scheduler

import (
	"sort"

	"github.com/openbattle/engine/battle"
	"github.com/openbattle/engine/dex"
	"github.com/openbattle/engine/rpgerr"
	"github.com/openbattle/engine/stats"
)

// maxTiebreakFace is the die size Queue.Sort rolls per action for the
// random tie-break (comparator key 5). A large face keeps collisions
// between two actions of otherwise-identical rank effectively impossible
// without needing true unbounded randomness.
const maxTiebreakFace = 1 << 30

// Roller is the subset of dice.Roller the queue needs to draw tie-break
// values; declared locally so this package doesn't have to import dice
// just to name the parameter type.
type Roller interface {
	Roll(size int) (int, error)
}

// Queue is the double-ended list of in-flight Actions plus the comparator
// that orders them for execution each turn (component H). It owns no
// battle state itself — Resolve is handed exactly the Mon/MoveData/item
// sub-priority it needs for one action at a time, the way the teacher's
// initiative.Tracker is handed entities rather than reaching into a
// combat package itself.
type Queue struct {
	actions []Action
	roller  Roller
	tie     battle.TieResolution
}

// NewQueue builds an empty Queue. roller is used only for the comparator's
// random tie-break (step 5); it is never consulted when tie is
// TieResolutionKeep.
func NewQueue(roller Roller, tie battle.TieResolution) *Queue {
	return &Queue{roller: roller, tie: tie}
}

// Len reports how many actions are currently queued.
func (q *Queue) Len() int { return len(q.actions) }

// Actions returns a copy of the queue's current contents, for tests and
// log inspection; callers must not rely on it reflecting later mutation.
func (q *Queue) Actions() []Action {
	out := make([]Action, len(q.actions))
	copy(out, q.actions)
	return out
}

// Add inserts a at the tail. A Pass action is a no-op per §4.4 ("adding a
// Pass to the queue is a no-op"). A Move action with Mega set pushes an
// accompanying MegaEvo action immediately before it, so mega evolution
// always resolves ahead of the move it empowers once both are sorted into
// the same MegaEvo/Move rank band.
func (q *Queue) Add(a Action) {
	if a.Kind == KindPass {
		return
	}
	if a.Kind == KindMove && a.MoveMega {
		q.actions = append(q.actions, Action{
			Kind:       KindMegaEvo,
			Side:       a.Side,
			Slot:       a.Slot,
			MegaEvoMon: a.MoveMon,
		})
	}
	q.actions = append(q.actions, a)
}

// Resolve enriches a queued Move action (identified by its Side/Slot) with
// the move's priority, its sub-priority from any speed-altering held item,
// and the acting Mon's current Spe stat — everything Sort needs beyond
// class rank. itemSubPriority is the caller-resolved contribution of
// things like Quick Claw/Custap Berry; this package has no opinion on how
// that value was derived.
func (q *Queue) Resolve(side, slot int, mon *battle.Mon, move dex.MoveData, itemSubPriority int) error {
	for i := range q.actions {
		a := &q.actions[i]
		if a.Kind != KindMove || a.Side != side || a.Slot != slot {
			continue
		}
		a.MovePriority = move.Priority
		a.MoveSubPriority = itemSubPriority
		a.Speed = mon.StatRange(stats.Spe).Avg().FloorDiv()
		return nil
	}
	return rpgerr.New(rpgerr.CodeNotFound, "scheduler: no queued Move action at that side/slot to resolve")
}

// ResolveSpeed fills in Speed (and, for Move actions, leaves
// priority/sub-priority alone) for any non-Move action class that still
// sorts on speed ties — MegaEvo and Switch both do in practice, since a
// faster Mon's mega evolution or switch-in should still tend to resolve
// before a slower one's at the same class rank.
func (q *Queue) ResolveSpeed(side, slot int, mon *battle.Mon) {
	for i := range q.actions {
		a := &q.actions[i]
		if a.Side == side && a.Slot == slot {
			a.Speed = mon.StatRange(stats.Spe).Avg().FloorDiv()
		}
	}
}

// Sort performs a stable speed sort using the five-key comparator (§4.4):
// class rank, then (Move-only) priority and sub-priority, then speed,
// then a random tie-break. The tie-break is drawn once per action before
// sorting begins, so the outcome depends only on the actions present and
// the tie-break draws, never on the sort algorithm's comparison order
// (mirrors the teacher's initiative roll-once-then-sort pattern). When
// tie is TieResolutionKeep, no draw happens and ties preserve insertion
// order, matching §8's "tie-resolution = Keep ... preserves insertion
// order deterministically".
func (q *Queue) Sort() error {
	if q.tie != battle.TieResolutionKeep {
		for i := range q.actions {
			roll, err := q.roller.Roll(maxTiebreakFace)
			if err != nil {
				return rpgerr.Wrap(err, "scheduler: drawing tie-break")
			}
			q.actions[i].tiebreak = roll
		}
	} else {
		for i := range q.actions {
			q.actions[i].tiebreak = i
		}
	}
	sort.SliceStable(q.actions, func(i, j int) bool {
		return less(q.actions[i], q.actions[j])
	})
	return nil
}

// PopFront returns and removes the next action, or ok=false when the
// queue is empty.
func (q *Queue) PopFront() (Action, bool) {
	if len(q.actions) == 0 {
		return Action{}, false
	}
	a := q.actions[0]
	q.actions = q.actions[1:]
	return a, true
}

// InsertFront pushes a to the head of the queue unsorted, the way a forced
// switch (Roar) or a Magic Coat reflection inserts a new action ahead of
// whatever remains this turn without re-running Sort over the whole
// remaining queue.
func (q *Queue) InsertFront(a Action) {
	q.actions = append([]Action{a}, q.actions...)
}

// IsEmpty reports whether every action has been popped.
func (q *Queue) IsEmpty() bool { return len(q.actions) == 0 }
