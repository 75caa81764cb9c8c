package testgen

import (
	"fmt"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/ctoken"
)

// state is one node of the per-file state machine described in spec.md
// §4.7. Each name records what token the machine is now waiting for;
// any token that does not satisfy it resets to stNothing.
type state int

const (
	stNothing state = iota
	stTestGroupLParen
	stTestGroupGrup
	stTestGroupRParen
	stTestLParen
	stTestGrup
	stTestComma
	stTestCase
	stTestRParen
)

// machine drives one test file's group/case recognition and writes
// runner output as each macro call completes.
type machine struct {
	out    *strings.Builder
	groups *domain.TestGroupSet

	state state

	pendingGroup string // TEST_GROUP(<name>) capture in progress
	testGroup    string // TEST(<group>, ...) capture in progress
	testCase     string

	openGroup string // currently open TEST_GROUP_RUNNER body, "" if none
	hasOpen   bool
}

func newMachine(out *strings.Builder, groups *domain.TestGroupSet) *machine {
	return &machine{out: out, groups: groups}
}

func (m *machine) step(t ctoken.Token) {
	switch m.state {
	case stNothing:
		if t.Kind == ctoken.Word {
			switch t.String() {
			case "TEST_GROUP":
				m.state = stTestGroupLParen
				return
			case "TEST", "IGNORE_TEST":
				m.state = stTestLParen
				return
			}
		}
		m.state = stNothing

	case stTestGroupLParen:
		if isPunct(t, "(") {
			m.state = stTestGroupGrup
			return
		}
		m.state = stNothing

	case stTestGroupGrup:
		if t.Kind == ctoken.Word {
			m.pendingGroup = t.String()
			m.state = stTestGroupRParen
			return
		}
		m.state = stNothing

	case stTestGroupRParen:
		if isPunct(t, ")") {
			m.openGroupRunner(m.pendingGroup)
			m.state = stNothing
			return
		}
		m.state = stNothing

	case stTestLParen:
		if isPunct(t, "(") {
			m.state = stTestGrup
			return
		}
		m.state = stNothing

	case stTestGrup:
		if t.Kind == ctoken.Word {
			m.testGroup = t.String()
			m.state = stTestComma
			return
		}
		m.state = stNothing

	case stTestComma:
		if isPunct(t, ",") {
			m.state = stTestCase
			return
		}
		m.state = stNothing

	case stTestCase:
		if t.Kind == ctoken.Word {
			m.testCase = t.String()
			m.state = stTestRParen
			return
		}
		m.state = stNothing

	case stTestRParen:
		if isPunct(t, ")") {
			m.emitTestCase(m.testGroup, m.testCase)
		}
		m.state = stNothing
	}
}

// finish closes any group body still open at end-of-file.
func (m *machine) finish() {
	if m.hasOpen {
		m.out.WriteString("}\n")
		m.hasOpen = false
	}
}

// openGroupRunner closes a previously open group body (if any), then opens
// a new one, registering name into the shared group set. Spec.md §9's
// group-body-closing behavior: a TEST_GROUP with no intervening TEST still
// produces a well-formed, empty TEST_GROUP_RUNNER block.
func (m *machine) openGroupRunner(name string) {
	if m.hasOpen {
		m.out.WriteString("}\n")
	}
	m.groups.Add(name)
	m.out.WriteString("\n")
	fmt.Fprintf(m.out, "TEST_GROUP_RUNNER(%s) {\n", name)
	m.openGroup = name
	m.hasOpen = true
}

func (m *machine) emitTestCase(group, testCase string) {
	fmt.Fprintf(m.out, "    RUN_TEST_CASE(%s, %s); /* TEST_%s_%s_ */\n", group, testCase, group, testCase)
}

func isPunct(t ctoken.Token, s string) bool {
	return t.Kind == ctoken.Punct && t.String() == s
}
