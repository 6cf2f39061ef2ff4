package sixpack

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strings"
)

const forcePrefix = "sixpack-force-"

// ForceKey returns the inbound query parameter that pins an alternative
// of experiment, e.g. ?sixpack-force-button-color=red.
func ForceKey(experiment string) string {
	return forcePrefix + experiment
}

// IsForced reports whether the inbound request carries a force override
// for experiment. The value itself is checked only by Participate.
func (s *Session) IsForced(experiment string) bool {
	_, ok := s.forcedValue(experiment)
	return ok
}

func (s *Session) forcedValue(experiment string) (string, bool) {
	values, ok := s.query[ForceKey(experiment)]
	if !ok {
		return "", false
	}
	if len(values) == 0 {
		return "", true
	}
	return values[0], true
}

// tryForce returns a synthetic participation when the inbound request
// forces an alternative, nil when it does not.
func (s *Session) tryForce(experiment string, alternatives []string) (*Participation, error) {
	alt, ok := s.forcedValue(experiment)
	if !ok {
		return nil, nil
	}

	if !slices.Contains(alternatives, alt) {
		return nil, fmt.Errorf("%w: the alternative %q is not one of the possibilities (%s)",
			ErrInvalidForcedAlternative, alt, strings.Join(alternatives, ", "))
	}

	p := newParticipation(forcedResponse(experiment, alt), alternatives[0])
	return &p, nil
}

type forcedBody struct {
	Status      string `json:"status"`
	Alternative struct {
		Name string `json:"name"`
	} `json:"alternative"`
	Experiment struct {
		Version int    `json:"version"`
		Name    string `json:"name"`
	} `json:"experiment"`
	ClientID *string `json:"client_id"`
}

// forcedResponse mimics a successful participate answer without calling
// the service: HTTP 200, no URL, experiment version 0, null client_id.
func forcedResponse(experiment, alternative string) Response {
	var b forcedBody
	b.Status = "ok"
	b.Alternative.Name = alternative
	b.Experiment.Name = experiment

	raw, _ := json.Marshal(b)
	return Decode(raw, CallMeta{StatusCode: http.StatusOK})
}
