package cargo

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Type classifies the handling a cargo needs. Each type maps to a pricing rate.
type Type int

const (
	UnknownType Type = iota
	Casual
	Corruptible
	Fragile
	Dangerous
)

func typeCodes() map[Type]string {
	//nolint:exhaustive // UnknownType has no code
	return map[Type]string{
		Casual:      "casual",
		Corruptible: "corruptible",
		Fragile:     "fragile",
		Dangerous:   "dangerous",
	}
}

func ParseType(code string) (Type, error) {
	for t, c := range typeCodes() {
		if c == code {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("cargo type", fmt.Errorf("%q is not a known cargo type", code))
}

func (t Type) Validate() error {
	if _, ok := typeCodes()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("cargo type", fmt.Errorf("%d is not a valid cargo type", t))
	}
	return nil
}

func (t Type) String() string {
	if code, ok := typeCodes()[t]; ok {
		return code
	}
	return "unknown"
}

// Rate returns the pricing multiplier of the cargo type.
func (t Type) Rate() (float64, error) {
	switch t {
	case Casual:
		return 0.25, nil
	case Corruptible:
		return 0.5, nil
	case Fragile:
		return 0.75, nil
	case Dangerous:
		return 1.0, nil
	case UnknownType:
	}
	return 0, errs.NewConfigurationError("cargo type rates", t.String())
}
