package sixpack

import (
	"encoding/json"
	"net/http"
)

// CallMeta is the transport-level outcome of a call.
type CallMeta struct {
	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int
	// URL is the effectively called URL, empty for forced results.
	URL string
}

type responseBody struct {
	Status      string  `json:"status"`
	ClientID    *string `json:"client_id"`
	Alternative struct {
		Name string `json:"name"`
	} `json:"alternative"`
	Experiment struct {
		Name    string `json:"name"`
		Version int    `json:"version"`
	} `json:"experiment"`
}

// Response is the decoded result of a call to the decision service.
// Check Success before trusting any decoded field.
type Response struct {
	CallMeta
	raw  []byte
	body responseBody
}

// Decode builds a Response from a raw body and its call metadata. A body
// that is empty or not a JSON object leaves the typed accessors at their
// zero values while Raw still returns it.
func Decode(raw []byte, meta CallMeta) Response {
	r := Response{CallMeta: meta, raw: raw}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &r.body)
	}
	return r
}

// Success reports whether the service answered with HTTP 200.
func (r Response) Success() bool {
	return r.StatusCode == http.StatusOK
}

// ClientID returns the client_id echoed by the service, empty when null or absent.
func (r Response) ClientID() string {
	if r.body.ClientID == nil {
		return ""
	}
	return *r.body.ClientID
}

// ServiceStatus returns the service's own status field, e.g. "ok" or "failed".
func (r Response) ServiceStatus() string {
	return r.body.Status
}

// Raw returns the undecoded response body.
func (r Response) Raw() json.RawMessage {
	return r.raw
}

// Decode unmarshals the raw body into v for fields this package does not model.
func (r Response) Decode(v any) error {
	if len(r.raw) == 0 {
		return ErrEmptyResponse
	}
	return json.Unmarshal(r.raw, v)
}

// Participation is the result of Session.Participate.
type Participation struct {
	Response
	control string
}

func newParticipation(r Response, control string) Participation {
	return Participation{Response: r, control: control}
}

func (p Participation) Experiment() string {
	return p.body.Experiment.Name
}

func (p Participation) ExperimentVersion() int {
	return p.body.Experiment.Version
}

// Alternative returns the alternative assigned by the service, or the
// control when the call failed or returned no alternative.
func (p Participation) Alternative() string {
	if !p.Success() || p.body.Alternative.Name == "" {
		return p.control
	}
	return p.body.Alternative.Name
}

// Control returns the experiment's first declared alternative.
func (p Participation) Control() string {
	return p.control
}

// Conversion is the result of Session.Convert.
type Conversion struct {
	Response
}
