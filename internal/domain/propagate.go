package domain

import (
	m "recon.dev/pkg/recon/internal/model"
)

// propagator derives block statuses from the statuses of their children.
type propagator struct {
	exitCode int
	groups   map[string][]*m.Command
}

// newPropagator indexes the legacy block members of the flat command list.
func newPropagator(commands []m.Command, exitCode int) *propagator {
	groups := make(map[string][]*m.Command)

	for i := range commands {
		if commands[i].IsLegacyBlockMember {
			key := commands[i].MemberKey()
			groups[key] = append(groups[key], &commands[i])
		}
	}

	return &propagator{exitCode: exitCode, groups: groups}
}

// resolve settles every block in commands. Nested trees are resolved first so
// a legacy group whose member is a nested block sees its final status.
func (p *propagator) resolve(commands []m.Command) {
	p.resolveNested(commands)

	visited := make(map[*m.Command]bool)

	for i := range commands {
		if commands[i].Variant() == m.VariantLegacyBlock {
			p.resolveLegacy(&commands[i], visited)
		}
	}
}

func (p *propagator) resolveNested(commands []m.Command) {
	for i := range commands {
		block := &commands[i]
		if block.Variant() != m.VariantNestedBlock {
			continue
		}

		if p.exitCode == 0 {
			markTree(block.NestedSteps, m.StatusMatched)
			block.Status = m.StatusMatched

			continue
		}

		p.resolveNested(block.NestedSteps)
		block.Status = aggregateChildren(block.NestedSteps)
	}
}

// resolveLegacy settles member blocks before the block that groups them, so
// the aggregation never reads a member that is still unresolved. A block
// already visited is skipped, which also stops self-referencing groups.
func (p *propagator) resolveLegacy(block *m.Command, visited map[*m.Command]bool) {
	if visited[block] {
		return
	}

	visited[block] = true

	members, ok := p.groups[block.BlockKey()]
	if !ok || len(members) == 0 {
		return
	}

	for _, member := range members {
		if member.Variant() == m.VariantLegacyBlock {
			p.resolveLegacy(member, visited)
		}
	}

	if p.exitCode == 0 {
		block.Status = m.StatusMatched
		return
	}

	block.Status = aggregateMembers(members)
}

// aggregateMembers: failed wins, then matched, otherwise pending.
func aggregateMembers(members []*m.Command) m.Status {
	anyMatched := false

	for _, member := range members {
		switch member.Status {
		case m.StatusFailed:
			return m.StatusFailed
		case m.StatusMatched:
			anyMatched = true
		case m.StatusPending, m.StatusUnset:
		}
	}

	if anyMatched {
		return m.StatusMatched
	}

	return m.StatusPending
}

// aggregateChildren looks only at direct children. A block with some matched
// and some pending children stays pending.
func aggregateChildren(children []m.Command) m.Status {
	var anyMatched, anyPending bool

	for i := range children {
		switch children[i].Status {
		case m.StatusFailed:
			return m.StatusFailed
		case m.StatusMatched:
			anyMatched = true
		case m.StatusPending:
			anyPending = true
		case m.StatusUnset:
		}
	}

	if anyMatched && !anyPending {
		return m.StatusMatched
	}

	return m.StatusPending
}

// markTree sets status on every step of the tree, comments included.
func markTree(commands []m.Command, status m.Status) {
	for i := range commands {
		commands[i].Status = status
		markTree(commands[i].NestedSteps, status)
	}
}

// fillUnset gives every undetermined non-comment step the provided status.
func fillUnset(commands []m.Command, status m.Status) {
	for i := range commands {
		if commands[i].Kind != m.KindComment && !commands[i].Status.IsSet() {
			commands[i].Status = status
		}

		fillUnset(commands[i].NestedSteps, status)
	}
}
