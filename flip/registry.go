// Package flip - named-strategy factory.
//
// Strategies are selected at configuration time by name plus a flat
// numeric parameter list, so callers can wire a strategy from config
// without importing concrete types. Validation is fail-fast: unknown
// names, unknown parameters and out-of-range values are configuration
// errors, never warned about and ignored.
package flip

// Strategy names accepted by New.
const (
	// NameSimple selects the Simple strategy (no parameters).
	NameSimple = "simple"

	// NameTriangle selects the Triangle strategy (no parameters).
	NameTriangle = "triangle"

	// NameConfident selects the Confident strategy.
	// Parameters: "delta" ∈ (0,1), default DefaultConfidentDelta.
	NameConfident = "confident"
)

// New resolves a strategy by name with validated numeric parameters.
//
// Errors: ErrUnknownFlipper, ErrUnknownParam, ErrBadDelta.
func New(name string, params map[string]float64) (Flipper, error) {
	switch name {
	case NameSimple:
		if err := rejectParams(params); err != nil {
			return nil, err
		}

		return NewSimple(), nil

	case NameTriangle:
		if err := rejectParams(params); err != nil {
			return nil, err
		}

		return NewTriangle(), nil

	case NameConfident:
		delta := DefaultConfidentDelta
		for k, v := range params {
			if k != "delta" {
				return nil, ErrUnknownParam
			}
			delta = v
		}

		return NewConfident(delta)

	default:
		return nil, ErrUnknownFlipper
	}
}

// rejectParams fails when a parameterless strategy receives parameters.
func rejectParams(params map[string]float64) error {
	if len(params) > 0 {
		return ErrUnknownParam
	}

	return nil
}
