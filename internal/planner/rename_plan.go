package planner

import (
	"fmt"
)

// maxTempNameAttempts bounds how often a colliding temporary name is redrawn.
const maxTempNameAttempts = 64

// BuildRenamePlan generates a plan that renames items[i] to targets[i] for every i.
//
// The plan can be applied strictly in order without two items ever sharing a
// name. Each non-trivial cycle of the permutation is opened by moving its first
// item to a temporary name; every following rename targets the name vacated by
// the rename before it, and the cycle is closed by moving the first item from the
// temporary name into its target. Items that keep their name produce no
// operations.
func BuildRenamePlan(items []Item, targets []string, temps TempNamer) (*RenamePlan, error) {
	plan := NewRenamePlan()
	if len(items) != len(targets) {
		return nil, fmt.Errorf("%w: %d items, %d target names", ErrLengthMismatch, len(items), len(targets))
	}
	if len(items) == 0 {
		return plan, nil
	}

	// holder maps each current name to the index of the item holding it
	holder := make(map[string]int, len(items))
	for i, item := range items {
		if prev, exists := holder[item.Name]; exists {
			return nil, fmt.Errorf("%w: %q held by %s and %s", ErrDuplicateName, item.Name, items[prev].ID, item.ID)
		}
		holder[item.Name] = i
	}

	// wanter[i] is the index of the item whose target is items[i].Name
	wanter := make([]int, len(items))
	claimed := make([]bool, len(items))
	for i, target := range targets {
		h, exists := holder[target]
		if !exists {
			return nil, fmt.Errorf("%w: %q is not a current name", ErrNotPermutation, target)
		}
		if claimed[h] {
			return nil, fmt.Errorf("%w: %q targeted more than once", ErrNotPermutation, target)
		}
		claimed[h] = true
		wanter[h] = i
	}

	issued := make(map[string]struct{})
	resolved := make([]bool, len(items))

	for first := range items {
		if resolved[first] {
			continue
		}
		resolved[first] = true
		if targets[first] == items[first].Name {
			continue
		}

		temp, err := freshTempName(temps, holder, issued)
		if err != nil {
			return nil, err
		}
		plan.AddOperation(Operation{TargetID: items[first].ID, NewName: temp, Temporary: true})

		vacated := first
		cur := wanter[vacated]
		for steps := 0; cur != first; steps++ {
			if steps >= len(items) {
				return nil, fmt.Errorf("%w: cycle starting at %s does not close", ErrNotPermutation, items[first].ID)
			}
			plan.AddOperation(Operation{TargetID: items[cur].ID, NewName: items[vacated].Name})
			resolved[cur] = true
			vacated = cur
			cur = wanter[vacated]
		}

		plan.AddOperation(Operation{TargetID: items[first].ID, NewName: items[vacated].Name})
		plan.Cycles++
	}

	return plan, nil
}

// freshTempName draws names until one is neither a current name nor already issued.
func freshTempName(temps TempNamer, holder map[string]int, issued map[string]struct{}) (string, error) {
	for range maxTempNameAttempts {
		name := temps.TempName()
		if _, taken := holder[name]; taken {
			continue
		}
		if _, taken := issued[name]; taken {
			continue
		}
		issued[name] = struct{}{}
		return name, nil
	}
	return "", ErrTempNameExhausted
}
