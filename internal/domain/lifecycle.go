package domain

import (
	"bytes"
	"slices"

	"github.com/google/uuid"
)

// Transition names an event lifecycle transition.
type Transition string

const (
	TransitionStartQuotaCalc       Transition = "start_quota_calc"
	TransitionStartRegistration    Transition = "start_registration"
	TransitionCompleteRegistration Transition = "complete_registration"
	TransitionGenerateTickets      Transition = "generate_tickets"
	TransitionComplete             Transition = "complete"
	TransitionCancel               Transition = "cancel"
)

func (t Transition) String() string { return string(t) }

// Guard names a precondition evaluated after the source state matched.
type Guard string

const (
	GuardNone                    Guard = ""
	GuardQuotasMatchParticipants Guard = "quotas_match_participants"
	GuardIsTicketed              Guard = "is_ticketed"
)

// TransitionRule is one row of the lifecycle transition table.
type TransitionRule struct {
	Name  Transition
	From  []EventState
	To    EventState
	Guard Guard
}

// transitionTable holds the ordered lifecycle. cancel is not listed: it is an
// unconditional edge handled by PlanTransition before the table is consulted.
var transitionTable = []TransitionRule{
	{
		Name: TransitionStartQuotaCalc,
		From: []EventState{EventStateCreated},
		To:   EventStateQuotaCalculation,
	},
	{
		Name: TransitionStartRegistration,
		From: []EventState{EventStateQuotaCalculation},
		To:   EventStateRegistration,
	},
	{
		Name:  TransitionCompleteRegistration,
		From:  []EventState{EventStateRegistration},
		To:    EventStateRegistrationComplete,
		Guard: GuardQuotasMatchParticipants,
	},
	{
		Name:  TransitionGenerateTickets,
		From:  []EventState{EventStateRegistrationComplete},
		To:    EventStateTicketsGenerated,
		Guard: GuardIsTicketed,
	},
	{
		Name: TransitionComplete,
		From: []EventState{EventStateRegistrationComplete, EventStateTicketsGenerated},
		To:   EventStatePassed,
	},
}

// LookupTransition returns the table rule for name. cancel has a synthetic
// rule that accepts every state.
func LookupTransition(name Transition) (TransitionRule, bool) {
	if name == TransitionCancel {
		return TransitionRule{Name: TransitionCancel, To: EventStateCancelled}, true
	}
	for _, r := range transitionTable {
		if r.Name == name {
			return r, true
		}
	}
	return TransitionRule{}, false
}

// Accepts reports whether the rule may fire from state.
func (r TransitionRule) Accepts(state EventState) bool {
	if r.Name == TransitionCancel {
		return true
	}
	return slices.Contains(r.From, state)
}

// PlanTransition validates name against the current state and returns the rule
// to apply. noop is true when cancel is requested on an already cancelled
// event. Guards are not evaluated here.
func PlanTransition(current EventState, name Transition) (rule TransitionRule, noop bool, err error) {
	rule, ok := LookupTransition(name)
	if !ok {
		return TransitionRule{}, false, &InvalidTransitionError{
			Transition: name,
			From:       current,
			Reason:     "unknown transition",
		}
	}

	if name == TransitionCancel {
		return rule, current == EventStateCancelled, nil
	}

	if !rule.Accepts(current) {
		return TransitionRule{}, false, &InvalidTransitionError{
			Transition: name,
			From:       current,
			Reason:     "not allowed from current state",
		}
	}

	return rule, false, nil
}

// AvailableTransitions lists the transitions that may be attempted from state,
// guards aside. cancel is included unless the event is already cancelled.
func AvailableTransitions(state EventState) []Transition {
	var out []Transition
	for _, r := range transitionTable {
		if r.Accepts(state) {
			out = append(out, r.Name)
		}
	}
	if state != EventStateCancelled {
		out = append(out, TransitionCancel)
	}
	return out
}

// CheckQuotas evaluates the quotas_match_participants guard. approved holds
// the approved DEFAULT participant count per brigade; quotas holds the
// allocated count per brigade, where a missing brigade means zero seats.
// Violations are ordered by brigade id.
func CheckQuotas(isTicketed bool, quotas, approved map[uuid.UUID]int) []QuotaViolation {
	if !isTicketed {
		return nil
	}

	var violations []QuotaViolation
	for brigadeID, count := range approved {
		if count == 0 {
			continue
		}
		allowed := quotas[brigadeID]
		if count > allowed {
			violations = append(violations, QuotaViolation{
				BrigadeID: brigadeID,
				Allowed:   allowed,
				Approved:  count,
			})
		}
	}

	slices.SortFunc(violations, func(a, b QuotaViolation) int {
		return bytes.Compare(a.BrigadeID[:], b.BrigadeID[:])
	})
	return violations
}
