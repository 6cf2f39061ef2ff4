package sixpack

import (
	"net/url"
	"strconv"
	"strings"
)

// Endpoints of the decision service.
const (
	EndpointParticipate = "participate"
	EndpointConvert     = "convert"
	EndpointStatus      = "_status"
)

type param struct {
	key   string
	value string
}

// params is an insertion-ordered query. Repeated keys are kept as separate
// pairs, which is how the service expects list values.
type params []param

func (p *params) add(key, value string) {
	*p = append(*p, param{key: key, value: value})
}

// addOptional skips empty values so absent fields are not sent at all.
func (p *params) addOptional(key, value string) {
	if value != "" {
		p.add(key, value)
	}
}

func (p *params) addAll(key string, values []string) {
	for _, v := range values {
		p.add(key, v)
	}
}

// get returns the first value stored for key.
func (p params) get(key string) (string, bool) {
	for _, kv := range p {
		if kv.key == key {
			return kv.value, true
		}
	}
	return "", false
}

func (p params) encode() string {
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.value))
	}
	return b.String()
}

func participateParams(experiment string, alternatives []string, fraction float64) params {
	var p params
	p.add("experiment", experiment)
	p.addAll("alternatives", alternatives)
	p.add("traffic_fraction", formatFraction(fraction))
	return p
}

func convertParams(experiment, kpi string) params {
	var p params
	p.add("experiment", experiment)
	p.addOptional("kpi", kpi)
	return p
}

func formatFraction(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// buildURL prefixes the visitor fields to the endpoint fields and renders
// the final URL. An experiment field is validated again here so no
// endpoint can be called with a malformed name.
func (s *Session) buildURL(endpoint string, fields params) (string, error) {
	if experiment, ok := fields.get("experiment"); ok {
		if err := validateExperiment(experiment); err != nil {
			return "", err
		}
	}

	q := make(params, 0, len(fields)+3)
	q.add("client_id", s.clientID)
	q.addOptional("ip_address", s.ipAddress)
	q.addOptional("user_agent", s.userAgent)
	q = append(q, fields...)

	return s.baseURL + "/" + endpoint + "?" + q.encode(), nil
}
