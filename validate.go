package sixpack

import (
	"fmt"
	"math"
	"regexp"
	"slices"
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9\-_ ]*$`)

// ValidName reports whether s is usable as an experiment or alternative name.
func ValidName(s string) bool {
	return namePattern.MatchString(s)
}

func validateExperiment(experiment string) error {
	if !ValidName(experiment) {
		return fmt.Errorf("%w: %q", ErrInvalidExperimentName, experiment)
	}
	return nil
}

// validateParticipation checks participate input in a fixed order so the
// reported error does not depend on which later rule would also fail.
func validateParticipation(experiment string, alternatives []string, fraction float64) error {
	if err := validateExperiment(experiment); err != nil {
		return err
	}

	if distinct(alternatives) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewAlternatives, distinct(alternatives))
	}

	for _, alt := range alternatives {
		if !ValidName(alt) {
			return fmt.Errorf("%w: %q", ErrInvalidAlternativeName, alt)
		}
	}

	if math.IsNaN(fraction) || fraction < 0 || fraction > 1 {
		return fmt.Errorf("%w: %v is outside [0, 1]", ErrInvalidTrafficFraction, fraction)
	}

	return nil
}

func distinct(values []string) int {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return len(slices.Compact(sorted))
}
