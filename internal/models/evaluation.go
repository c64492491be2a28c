package models

import (
	"encoding/json"
)

type EvaluateRequest struct {
	InterviewID string `json:"interviewId"`
	Question    string `json:"question"`
	AnswerText  string `json:"answerText"`
}

type EvaluationResult struct {
	Relevance    int    `json:"relevance"`
	Clarity      int    `json:"clarity"`
	Completeness int    `json:"completeness"`
	Confidence   int    `json:"confidence"`
	Sentiment    string `json:"sentiment"`
	OverallScore int    `json:"overallScore"`
	Feedback     string `json:"feedback"`
}

func DefaultEvaluationResult() EvaluationResult {
	return EvaluationResult{
		Relevance:    8,
		Clarity:      7,
		Completeness: 7,
		Confidence:   6,
		Sentiment:    "positive",
		OverallScore: 7,
		Feedback:     "Good explanation",
	}
}

// ParseEvaluateRequest decodes a JSON body into an EvaluateRequest. Every
// field must be present and a JSON string; empty strings are accepted.
// Failures are collected for all fields, in schema order.
func ParseEvaluateRequest(body []byte) (*EvaluateRequest, ValidationErrors) {
	var raw interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, ValidationErrors{bodyError("invalid JSON body", "value_error.jsondecode")}
	}

	fields, ok := raw.(map[string]interface{})
	if !ok {
		return nil, ValidationErrors{NotADictError()}
	}

	req := &EvaluateRequest{}
	targets := []struct {
		name string
		dst  *string
	}{
		{"interviewId", &req.InterviewID},
		{"question", &req.Question},
		{"answerText", &req.AnswerText},
	}

	var errs ValidationErrors
	for _, target := range targets {
		value, present := fields[target.name]
		switch v := value.(type) {
		case string:
			*target.dst = v
		case nil:
			if present {
				errs = append(errs, fieldError(target.name, "none is not an allowed value", "type_error.none.not_allowed"))
			} else {
				errs = append(errs, fieldError(target.name, "field required", "value_error.missing"))
			}
		default:
			errs = append(errs, fieldError(target.name, "str type expected", "type_error.str"))
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return req, nil
}

// ValidationError mirrors one entry of a 422 "detail" list.
type ValidationError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

type ValidationErrors []ValidationError

type ValidationErrorResponse struct {
	Detail ValidationErrors `json:"detail"`
}

func fieldError(field, msg, typ string) ValidationError {
	return ValidationError{Loc: []string{"body", field}, Msg: msg, Type: typ}
}

func bodyError(msg, typ string) ValidationError {
	return ValidationError{Loc: []string{"body"}, Msg: msg, Type: typ}
}

// NotADictError is reported when the body is not a JSON object.
func NotADictError() ValidationError {
	return bodyError("value is not a valid dict", "type_error.dict")
}
