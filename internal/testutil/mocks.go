package testutil

import (
	"context"
	"fmt"

	"codeberg.org/snonux/tetraglot/internal/provider"
)

// ScriptedCall is one step of a scripted provider conversation.
type ScriptedCall struct {
	Response *provider.Response
	Err      error
}

// ScriptedProvider mocks the model backend for testing. Each call pops
// the next scripted step and records the request it received.
type ScriptedProvider struct {
	Script []ScriptedCall
	Calls  []provider.Request
}

// Name implements provider.Provider.
func (s *ScriptedProvider) Name() string {
	return "scripted"
}

// Translate implements provider.Provider.
func (s *ScriptedProvider) Translate(ctx context.Context, req provider.Request) (*provider.Response, error) {
	s.Calls = append(s.Calls, req)

	if len(s.Script) == 0 {
		return nil, fmt.Errorf("unexpected provider call %d: %+v", len(s.Calls), req)
	}
	step := s.Script[0]
	s.Script = s.Script[1:]

	if step.Err != nil {
		return nil, step.Err
	}
	return step.Response, nil
}

// Respond builds one successful scripted step.
func Respond(detected string, translations map[string]string) ScriptedCall {
	return ScriptedCall{Response: &provider.Response{
		DetectedLanguage: detected,
		Translations:     translations,
	}}
}

// RespondAnnotated builds a successful scripted step carrying linguistic
// annotations.
func RespondAnnotated(detected string, translations map[string]string, annotations provider.Annotations) ScriptedCall {
	return ScriptedCall{Response: &provider.Response{
		DetectedLanguage: detected,
		Translations:     translations,
		Annotations:      annotations,
	}}
}

// Fail builds one failing scripted step.
func Fail(err error) ScriptedCall {
	return ScriptedCall{Err: err}
}
