package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"

	internalhttp "github.com/einvoice-io/alegra-client/internal/http"
	"github.com/einvoice-io/alegra-client/internal/validation"
	"github.com/einvoice-io/alegra-client/pkg/alegra"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Executor is the transport capability the resource layer depends on. It
// issues one request and returns the raw response; it must not interpret
// status codes. internal/http.Client is the production implementation.
type Executor interface {
	Do(ctx context.Context, req *internalhttp.Request) (*internalhttp.Response, error)
}

// actionKind enumerates the operations a resource can allow.
type actionKind int

const (
	actionGet actionKind = iota
	actionCreate
	actionUpdate
	actionDelete
	actionList
	actionPerform
)

// actionKey identifies one configured action. Sub is set only for perform
// actions.
type actionKey struct {
	kind actionKind
	sub  string
}

func (k actionKey) String() string {
	switch k.kind {
	case actionGet:
		return "get"
	case actionCreate:
		return "create"
	case actionUpdate:
		return "update"
	case actionDelete:
		return "delete"
	case actionList:
		return "list"
	case actionPerform:
		return "perform__" + k.sub
	default:
		return "unknown"
	}
}

// shape decodes an unwrapped response value into its typed result and
// validates it structurally.
type shape func(raw jsoniter.RawMessage) (interface{}, error)

// shapeOf builds the shape for a concrete result type.
func shapeOf[T any]() shape {
	return func(raw jsoniter.RawMessage) (interface{}, error) {
		var value T

		if err := jsonAPI.Unmarshal(raw, &value); err != nil {
			return nil, alegra.NewResponseParseError(
				fmt.Sprintf("response did not match expected shape %T", value), string(raw), err)
		}

		if err := validation.Validate(&value); err != nil {
			return nil, alegra.NewResponseParseError(
				fmt.Sprintf("response failed validation for %T", value), string(raw), err)
		}

		return &value, nil
	}
}

// actionConfig describes one allowed action. Immutable once the handle is
// built.
type actionConfig struct {
	// result decodes the unwrapped value; for list actions it applies per
	// element. nil requires passThrough.
	result shape
	// responseKey names the body field holding the payload. Empty means the
	// whole body is the payload.
	responseKey string
	// endpointSuffix overrides the perform path segment, which otherwise
	// defaults to the subaction name.
	endpointSuffix string
	// passThrough returns the unwrapped value as raw JSON without shape
	// validation.
	passThrough bool
}

// registry maps the allowed actions of one resource. An action absent from
// the map is not allowed; dispatch fails before any network call.
type registry map[actionKey]actionConfig

// resourceHandle binds one endpoint path to its registry and executor. It
// holds no mutable per-call state, so concurrent calls are independent.
type resourceHandle struct {
	endpoint string
	registry registry
	executor Executor
}

// newResourceHandle validates registry well-formedness and builds the handle.
// Every configured action must either name a result shape or opt out of
// validation explicitly.
func newResourceHandle(endpoint string, reg registry, executor Executor) (*resourceHandle, error) {
	for key, cfg := range reg {
		if cfg.result == nil && !cfg.passThrough {
			return nil, alegra.NewConfigurationError(fmt.Sprintf(
				"action %q for %q declares neither a result shape nor pass-through", key, endpoint))
		}
	}

	return &resourceHandle{
		endpoint: endpoint,
		registry: reg,
		executor: executor,
	}, nil
}

// config resolves an action, failing with a configuration-kind error when the
// resource does not allow it.
func (h *resourceHandle) config(key actionKey) (actionConfig, *alegra.Error) {
	cfg, ok := h.registry[key]
	if !ok {
		err := alegra.NewConfigurationError(fmt.Sprintf(
			"The action %q is not allowed for %q", key, h.endpoint))
		err.Endpoint = h.endpoint
		err.Action = key.String()

		return actionConfig{}, err
	}

	return cfg, nil
}

// Get fetches a single resource by id.
func (h *resourceHandle) Get(ctx context.Context, id string) (interface{}, error) {
	key := actionKey{kind: actionGet}

	cfg, cfgErr := h.config(key)
	if cfgErr != nil {
		return nil, cfgErr
	}

	return h.dispatch(ctx, key, cfg, &internalhttp.Request{
		Method: http.MethodGet,
		Path:   h.endpoint + "/" + id,
	})
}

// Create submits a new resource. Unset fields are stripped from the body
// rather than sent as null.
func (h *resourceHandle) Create(ctx context.Context, payload interface{}) (interface{}, error) {
	key := actionKey{kind: actionCreate}

	cfg, cfgErr := h.config(key)
	if cfgErr != nil {
		return nil, cfgErr
	}

	body, err := prepareBody(payload)
	if err != nil {
		return nil, err
	}

	return h.dispatch(ctx, key, cfg, &internalhttp.Request{
		Method: http.MethodPost,
		Path:   h.endpoint,
		Body:   body,
	})
}

// Update patches an existing resource; the body follows the same preparation
// rules as Create.
func (h *resourceHandle) Update(ctx context.Context, id string, payload interface{}) (interface{}, error) {
	key := actionKey{kind: actionUpdate}

	cfg, cfgErr := h.config(key)
	if cfgErr != nil {
		return nil, cfgErr
	}

	body, err := prepareBody(payload)
	if err != nil {
		return nil, err
	}

	return h.dispatch(ctx, key, cfg, &internalhttp.Request{
		Method: http.MethodPatch,
		Path:   h.endpoint + "/" + id,
		Body:   body,
	})
}

// Delete removes a resource. True means the server answered 200 or 204; any
// other non-error status is reported as an explicit error rather than a
// silent success.
func (h *resourceHandle) Delete(ctx context.Context, id string) (bool, error) {
	key := actionKey{kind: actionDelete}

	if _, cfgErr := h.config(key); cfgErr != nil {
		return false, cfgErr
	}

	resp, err := h.executor.Do(ctx, &internalhttp.Request{
		Method: http.MethodDelete,
		Path:   h.endpoint + "/" + id,
	})
	if err != nil {
		return false, err
	}

	if resp.StatusCode >= 400 {
		return false, alegra.ClassifyResponse(resp.StatusCode, string(resp.Body), resp.URL)
	}

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusNoContent {
		return true, nil
	}

	return false, &alegra.Error{
		Kind:       alegra.ErrorKindHTTP,
		Message:    fmt.Sprintf("unexpected status %d deleting %q", resp.StatusCode, h.endpoint),
		StatusCode: resp.StatusCode,
		URL:        resp.URL,
		RawBody:    string(resp.Body),
		Endpoint:   h.endpoint,
		Action:     key.String(),
	}
}

// List fetches a collection. The unwrapped value must be a JSON array; each
// element is validated independently and response order is preserved.
// Pass-through configs skip validation and yield the elements as raw JSON.
func (h *resourceHandle) List(ctx context.Context, query url.Values) ([]interface{}, error) {
	key := actionKey{kind: actionList}

	cfg, cfgErr := h.config(key)
	if cfgErr != nil {
		return nil, cfgErr
	}

	resp, err := h.executor.Do(ctx, &internalhttp.Request{
		Method: http.MethodGet,
		Path:   h.endpoint,
		Query:  query,
	})
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, alegra.ClassifyResponse(resp.StatusCode, string(resp.Body), resp.URL)
	}

	candidate, err := h.unwrap(resp, key, cfg)
	if err != nil {
		return nil, err
	}

	var elements []jsoniter.RawMessage
	if err := jsonAPI.Unmarshal(candidate, &elements); err != nil {
		return nil, alegra.NewResponseParseError(
			fmt.Sprintf("expected a JSON array for action %q on %q", key, h.endpoint),
			string(candidate), err)
	}

	results := make([]interface{}, 0, len(elements))

	for _, element := range elements {
		if cfg.result == nil {
			results = append(results, element)

			continue
		}

		value, err := cfg.result(element)
		if err != nil {
			return nil, err
		}

		results = append(results, value)
	}

	return results, nil
}

// Perform invokes a named subaction on a resource. The verb is POST for
// replace and cancel, GET for everything else; the path segment defaults to
// the subaction name unless the config overrides it. A nil payload sends no
// body at all, which matters to servers that branch on body presence.
func (h *resourceHandle) Perform(ctx context.Context, id, subaction string, payload interface{}) (interface{}, error) {
	key := actionKey{kind: actionPerform, sub: subaction}

	cfg, cfgErr := h.config(key)
	if cfgErr != nil {
		return nil, cfgErr
	}

	suffix := cfg.endpointSuffix
	if suffix == "" {
		suffix = subaction
	}

	req := &internalhttp.Request{
		Method: methodForSubaction(subaction),
		Path:   h.endpoint + "/" + id + "/" + suffix,
	}

	if payload != nil {
		body, err := prepareBody(payload)
		if err != nil {
			return nil, err
		}

		req.Body = body
	}

	return h.dispatch(ctx, key, cfg, req)
}

func methodForSubaction(subaction string) string {
	if subaction == "replace" || subaction == "cancel" {
		return http.MethodPost
	}

	return http.MethodGet
}

// dispatch is the shared skeleton behind Get, Create, Update, and Perform:
// execute, classify on failure, unwrap and validate on success.
func (h *resourceHandle) dispatch(ctx context.Context, key actionKey, cfg actionConfig, req *internalhttp.Request) (interface{}, error) {
	resp, err := h.executor.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, alegra.ClassifyResponse(resp.StatusCode, string(resp.Body), resp.URL)
	}

	candidate, err := h.unwrap(resp, key, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.result == nil {
		return candidate, nil
	}

	return cfg.result(candidate)
}

// unwrap extracts the action's payload from the response body. A missing
// response key is an error regardless of HTTP status.
func (h *resourceHandle) unwrap(resp *internalhttp.Response, key actionKey, cfg actionConfig) (jsoniter.RawMessage, error) {
	if cfg.responseKey == "" {
		if !jsonAPI.Valid(resp.Body) {
			return nil, alegra.NewResponseParseError(
				"Unable to parse response as JSON", string(resp.Body), errInvalidJSON)
		}

		return jsoniter.RawMessage(resp.Body), nil
	}

	var body map[string]jsoniter.RawMessage
	if err := jsonAPI.Unmarshal(resp.Body, &body); err != nil {
		return nil, alegra.NewResponseParseError(
			"Unable to parse response as JSON", string(resp.Body), err)
	}

	value, ok := body[cfg.responseKey]
	if !ok {
		return nil, h.missingKeyError(resp, key, cfg, body)
	}

	return value, nil
}

var errInvalidJSON = errors.New("invalid JSON")

// missingKeyError builds the diagnostic for a body that lacks the configured
// response key. The API's own message, errors, or error field takes priority
// when present.
func (h *resourceHandle) missingKeyError(resp *internalhttp.Response, key actionKey, cfg actionConfig, body map[string]jsoniter.RawMessage) *alegra.Error {
	message := fmt.Sprintf("Response key %q not found in response", cfg.responseKey)

	for _, field := range []string{"message", "errors", "error"} {
		raw, ok := body[field]
		if !ok {
			continue
		}

		var text string
		if err := jsonAPI.Unmarshal(raw, &text); err != nil {
			text = string(raw)
		}

		message = text

		break
	}

	if keys := sortedKeys(body); len(keys) > 0 {
		message += fmt.Sprintf(" (available keys: %s)", strings.Join(keys, ", "))
	}

	return &alegra.Error{
		Kind:       alegra.ErrorKindHTTP,
		Message:    message,
		StatusCode: resp.StatusCode,
		URL:        resp.URL,
		RawBody:    string(resp.Body),
		Endpoint:   h.endpoint,
		Action:     key.String(),
	}
}

func sortedKeys(body map[string]jsoniter.RawMessage) []string {
	keys := make([]string, 0, len(body))
	for k := range body {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// prepareBody renders a payload for the wire. Fields whose value is null are
// omitted entirely at the top level, and a nested customer object drops a
// null dv sub-field; the upstream API rejects explicit nulls for these.
func prepareBody(payload interface{}) (map[string]interface{}, error) {
	data, err := jsonAPI.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling payload: %w", err)
	}

	var body map[string]interface{}
	if err := jsonAPI.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("preparing payload: %w", err)
	}

	for field, value := range body {
		if value == nil {
			delete(body, field)
		}
	}

	if customer, ok := body["customer"].(map[string]interface{}); ok {
		if dv, present := customer["dv"]; present && dv == nil {
			delete(customer, "dv")
		}
	}

	return body, nil
}
