package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/generated/servers"
)

// Parameter names used by the agent.
const (
	paramFoodItem = "food-item"
	paramNumber   = "number"
)

var (
	errParamMissing  = errors.New("parameter is missing")
	errParamShape    = errors.New("parameter has an unexpected shape")
	errNoContexts    = errors.New("request has no output contexts")
	errNotANumber    = errors.New("value is not a number")
	errBadOrderIDArg = errors.New("order id parameter must hold exactly one number")
)

// sessionIDFrom derives the conversation id from the first output context.
func sessionIDFrom(contexts []servers.OutputContext) (kernel.SessionID, error) {
	if len(contexts) == 0 {
		return kernel.SessionID{}, errNoContexts
	}
	return kernel.SessionIDFromContextName(contexts[0].Name)
}

// stringListParam reads a parameter holding a string or a list of strings.
func stringListParam(params map[string]json.RawMessage, name string) ([]string, error) {
	raw, err := lookupParam(params, name)
	if err != nil {
		return nil, err
	}

	var one string
	if err = json.Unmarshal(raw, &one); err == nil {
		return []string{one}, nil
	}

	var many []string
	if err = json.Unmarshal(raw, &many); err != nil {
		return nil, fmt.Errorf("%w: %s must be a string or a list of strings", errParamShape, name)
	}
	return many, nil
}

// numberListParam reads a parameter holding a number, a numeric string, or a
// list of those.
func numberListParam(params map[string]json.RawMessage, name string) ([]float64, error) {
	raw, err := lookupParam(params, name)
	if err != nil {
		return nil, err
	}

	var one flexNumber
	if err = json.Unmarshal(raw, &one); err == nil {
		return []float64{float64(one)}, nil
	}

	var many []flexNumber
	if err = json.Unmarshal(raw, &many); err != nil {
		return nil, fmt.Errorf("%w: %s must be a number or a list of numbers", errParamShape, name)
	}

	out := make([]float64, len(many))
	for i, n := range many {
		out[i] = float64(n)
	}
	return out, nil
}

// orderNumberParam reads a single order number. Fractions are truncated.
// The result may be zero or negative; no stored order has such an id.
func orderNumberParam(params map[string]json.RawMessage, name string) (int64, error) {
	numbers, err := numberListParam(params, name)
	if err != nil {
		return 0, err
	}
	if len(numbers) != 1 {
		return 0, errBadOrderIDArg
	}

	n := math.Trunc(numbers[0])
	if n >= math.MaxInt64 || n < math.MinInt64 {
		return 0, fmt.Errorf("%w: %v", errBadOrderIDArg, numbers[0])
	}
	return int64(n), nil
}

func lookupParam(params map[string]json.RawMessage, name string) (json.RawMessage, error) {
	raw, ok := params[name]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, fmt.Errorf("%w: %s", errParamMissing, name)
	}
	return raw, nil
}

// flexNumber accepts a JSON number or a string holding one.
type flexNumber float64

func (n *flexNumber) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return errNotANumber
	}

	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*n = flexNumber(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errNotANumber
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: %q", errNotANumber, s)
	}
	*n = flexNumber(f)
	return nil
}
