package adapter

import (
	"encoding/json"
)

// JSON abstracts payload encoding so tests can inject marshal failures
//
//go:generate mockgen -source=json.go -destination=../mocks/json.go -package=mocks -mock_names=JSON=MockJSON
type JSON interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

// RealJSON is the encoding/json backed codec used outside of tests
type RealJSON struct{}

// NewJSON returns the production JSON codec
func NewJSON() JSON {
	return &RealJSON{}
}

// Marshal encodes v as JSON
func (j *RealJSON) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v
func (j *RealJSON) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
