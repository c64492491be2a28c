package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEvaluateRequestValid(t *testing.T) {
	req, errs := ParseEvaluateRequest([]byte(`{"interviewId":"int-1","question":"Why Go?","answerText":"Because goroutines"}`))
	require.Nil(t, errs)
	assert.Equal(t, &EvaluateRequest{
		InterviewID: "int-1",
		Question:    "Why Go?",
		AnswerText:  "Because goroutines",
	}, req)
}

func TestParseEvaluateRequestAcceptsEmptyLongAndExtraFields(t *testing.T) {
	long := strings.Repeat("a", 100000)
	body := `{"interviewId":"","question":"` + long + `","answerText":"","extra":42}`

	req, errs := ParseEvaluateRequest([]byte(body))
	require.Nil(t, errs)
	assert.Empty(t, req.InterviewID)
	assert.Len(t, req.Question, 100000)
	assert.Empty(t, req.AnswerText)
}

func TestParseEvaluateRequestFieldErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want ValidationErrors
	}{
		{
			name: "missing answerText",
			body: `{"interviewId":"int-1","question":"Why Go?"}`,
			want: ValidationErrors{
				{Loc: []string{"body", "answerText"}, Msg: "field required", Type: "value_error.missing"},
			},
		},
		{
			name: "null question",
			body: `{"interviewId":"int-1","question":null,"answerText":"x"}`,
			want: ValidationErrors{
				{Loc: []string{"body", "question"}, Msg: "none is not an allowed value", Type: "type_error.none.not_allowed"},
			},
		},
		{
			name: "numeric interviewId",
			body: `{"interviewId":1,"question":"q","answerText":"a"}`,
			want: ValidationErrors{
				{Loc: []string{"body", "interviewId"}, Msg: "str type expected", Type: "type_error.str"},
			},
		},
		{
			name: "empty object reports all fields in order",
			body: `{}`,
			want: ValidationErrors{
				{Loc: []string{"body", "interviewId"}, Msg: "field required", Type: "value_error.missing"},
				{Loc: []string{"body", "question"}, Msg: "field required", Type: "value_error.missing"},
				{Loc: []string{"body", "answerText"}, Msg: "field required", Type: "value_error.missing"},
			},
		},
		{
			name: "invalid json",
			body: `{"interviewId":`,
			want: ValidationErrors{
				{Loc: []string{"body"}, Msg: "invalid JSON body", Type: "value_error.jsondecode"},
			},
		},
		{
			name: "empty body",
			body: ``,
			want: ValidationErrors{
				{Loc: []string{"body"}, Msg: "invalid JSON body", Type: "value_error.jsondecode"},
			},
		},
		{
			name: "array body",
			body: `["int-1","q","a"]`,
			want: ValidationErrors{
				{Loc: []string{"body"}, Msg: "value is not a valid dict", Type: "type_error.dict"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, errs := ParseEvaluateRequest([]byte(tt.body))
			assert.Nil(t, req)
			assert.Equal(t, tt.want, errs)
		})
	}
}

func TestEvaluationResultWireFormat(t *testing.T) {
	out, err := json.Marshal(DefaultEvaluationResult())
	require.NoError(t, err)
	assert.Equal(t,
		`{"relevance":8,"clarity":7,"completeness":7,"confidence":6,"sentiment":"positive","overallScore":7,"feedback":"Good explanation"}`,
		string(out))
}
