package driver

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Qualification grades a driver. Each grade maps to a fixed pricing rate.
type Qualification int

const (
	UnknownQualification Qualification = iota
	Low
	BelowAverage
	AboveAverage
	High
)

func qualificationCodes() map[Qualification]string {
	//nolint:exhaustive // UnknownQualification has no code
	return map[Qualification]string{
		Low:          "low",
		BelowAverage: "below_average",
		AboveAverage: "above_average",
		High:         "high",
	}
}

// ParseQualification maps an external code ("low", "below_average", ...) to a Qualification.
func ParseQualification(code string) (Qualification, error) {
	for q, c := range qualificationCodes() {
		if c == code {
			return q, nil
		}
	}
	return UnknownQualification, errs.NewValueIsInvalidErrorWithCause(
		"qualification",
		fmt.Errorf("%q is not a known qualification", code),
	)
}

func (q Qualification) Validate() error {
	if _, ok := qualificationCodes()[q]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("qualification", fmt.Errorf("%d is not a valid qualification", q))
	}
	return nil
}

func (q Qualification) String() string {
	if code, ok := qualificationCodes()[q]; ok {
		return code
	}
	return "unknown"
}

// Rate returns the pricing multiplier of the grade.
func (q Qualification) Rate() (float64, error) {
	switch q {
	case Low:
		return 0.25, nil
	case BelowAverage:
		return 0.5, nil
	case AboveAverage:
		return 0.75, nil
	case High:
		return 1.0, nil
	case UnknownQualification:
	}
	return 0, errs.NewConfigurationError("qualification rates", q.String())
}
