package domain

import "fmt"

// VisibilityState is the client-local knowledge of an item's confidential score.
type VisibilityState string

const (
	// VisibilityUnresolved means the score exists only as ciphertext.
	VisibilityUnresolved VisibilityState = "unresolved"
	// VisibilityLocallyDecrypted means this client holds the cleartext in memory only.
	VisibilityLocallyDecrypted VisibilityState = "locally_decrypted"
	// VisibilityOnChainVerified means the cleartext is part of the registry's public record. Terminal.
	VisibilityOnChainVerified VisibilityState = "on_chain_verified"
)

// ScoreVisibility is a tagged variant: Value is only meaningful when State is not Unresolved.
type ScoreVisibility struct {
	State VisibilityState `json:"state"`
	Value int             `json:"value,omitempty"`
}

func Unresolved() ScoreVisibility {
	return ScoreVisibility{State: VisibilityUnresolved}
}

func LocallyDecrypted(value int) ScoreVisibility {
	return ScoreVisibility{State: VisibilityLocallyDecrypted, Value: value}
}

func OnChainVerified(value int) ScoreVisibility {
	return ScoreVisibility{State: VisibilityOnChainVerified, Value: value}
}

// Score returns the known cleartext, if any.
func (v ScoreVisibility) Score() (int, bool) {
	if v.State == VisibilityUnresolved {
		return 0, false
	}
	return v.Value, true
}

// VisibilityEventKind enumerates the inputs to the visibility state machine.
type VisibilityEventKind string

const (
	// EventDecrypted carries a cleartext recovered through the decryption gateway.
	EventDecrypted VisibilityEventKind = "decrypted"
	// EventObserved carries an authoritative registry read (VerifiedScore may be nil).
	EventObserved VisibilityEventKind = "observed"
	// EventHidden is the user closing or hiding a locally decrypted score.
	EventHidden VisibilityEventKind = "hidden"
	// EventDiscarded is a full reload that drops all ephemeral state.
	EventDiscarded VisibilityEventKind = "discarded"
)

type VisibilityEvent struct {
	Kind          VisibilityEventKind
	Value         int
	VerifiedScore *int
}

// VisibilityEffect is a side effect the caller has to apply to its local cache.
type VisibilityEffect string

const (
	EffectStoreLocal VisibilityEffect = "store_local"
	EffectDropLocal  VisibilityEffect = "drop_local"
)

// VisibilityTransition is the result of applying an event.
type VisibilityTransition struct {
	Next    ScoreVisibility
	Effects []VisibilityEffect
}

// NextVisibility applies an event to the current state.
// OnChainVerified only ever accepts observations of the same value; everything else is rejected
// with ErrTerminalVisibility except hide/discard, which leave it untouched.
func NextVisibility(current ScoreVisibility, event VisibilityEvent) (VisibilityTransition, error) {
	if current.State == VisibilityOnChainVerified {
		switch event.Kind {
		case EventHidden, EventDiscarded:
			return VisibilityTransition{Next: current}, nil
		case EventObserved:
			if event.VerifiedScore != nil && *event.VerifiedScore == current.Value {
				return VisibilityTransition{Next: current}, nil
			}
		}
		return VisibilityTransition{Next: current}, fmt.Errorf("%w: %s event on verified score",
			ErrTerminalVisibility, event.Kind)
	}

	switch event.Kind {
	case EventDecrypted:
		if event.Value < 0 || event.Value > MaxInterestScore {
			return VisibilityTransition{Next: current}, fmt.Errorf("%w: decrypted value [%d] out of range",
				ErrDecryption, event.Value)
		}
		return VisibilityTransition{
			Next:    LocallyDecrypted(event.Value),
			Effects: []VisibilityEffect{EffectStoreLocal},
		}, nil

	case EventObserved:
		if event.VerifiedScore == nil {
			return VisibilityTransition{Next: current}, nil
		}
		next := VisibilityTransition{Next: OnChainVerified(*event.VerifiedScore)}
		if current.State == VisibilityLocallyDecrypted {
			next.Effects = []VisibilityEffect{EffectDropLocal}
		}
		return next, nil

	case EventHidden, EventDiscarded:
		if current.State == VisibilityUnresolved {
			return VisibilityTransition{Next: current}, nil
		}
		return VisibilityTransition{
			Next:    Unresolved(),
			Effects: []VisibilityEffect{EffectDropLocal},
		}, nil

	default:
		return VisibilityTransition{Next: current}, fmt.Errorf("unknown visibility event [%s]", event.Kind)
	}
}
