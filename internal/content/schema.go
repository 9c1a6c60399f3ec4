package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var validate = validator.New()

// Reserved document keys the write path owns. They are stripped from every
// payload before validation; clients cannot set them.
var reservedKeys = map[string]bool{
	"_id":       true,
	"createdAt": true,
	"updatedAt": true,
}

type fieldInfo struct {
	goName string
	index  int
}

// Schema is the allowed-field map of one content type, reflected once from
// its model struct's bson tags.
type Schema struct {
	model   reflect.Type
	fields  map[string]fieldInfo
	docKeys map[string]string // Go field name -> document key
}

func newSchema(model any) *Schema {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	s := &Schema{model: t, fields: map[string]fieldInfo{}, docKeys: map[string]string{}}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("bson")
		if tag == "" || tag == "-" {
			continue
		}
		key := strings.Split(tag, ",")[0]
		if reservedKeys[key] {
			continue
		}
		s.fields[key] = fieldInfo{goName: f.Name, index: i}
		s.docKeys[f.Name] = key
	}
	return s
}

// FieldKeys returns the writable document keys, for tests and docs.
func (s *Schema) FieldKeys() []string {
	keys := make([]string, 0, len(s.fields))
	for k := range s.fields {
		keys = append(keys, k)
	}
	return keys
}

// DecodeCreate parses a POST body: reserved keys are stripped, unknown keys
// rejected, values decoded through the typed model and validated in full.
// The returned document carries the present fields plus zero-value defaults
// for order and isActive, so public filtering and sorting always apply.
func (s *Schema) DecodeCreate(body []byte) (bson.M, error) {
	raw, err := s.parseRaw(body)
	if err != nil {
		return nil, err
	}

	ptr, present, err := s.decodeTyped(raw)
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(ptr); err != nil {
		return nil, &ValidationError{Reason: s.validationMessage(err)}
	}

	doc := s.pickFields(ptr, present)
	if _, ok := s.fields["order"]; ok {
		if _, set := doc["order"]; !set {
			doc["order"] = 0
		}
	}
	if _, ok := s.fields["isActive"]; ok {
		if _, set := doc["isActive"]; !set {
			doc["isActive"] = false
		}
	}
	return doc, nil
}

// DecodeUpdate parses a PUT body. The _id is extracted and returned as the
// raw hex string; the rest becomes the partial $set document, validated only
// on the fields present.
func (s *Schema) DecodeUpdate(body []byte) (id string, set bson.M, err error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return "", nil, &ValidationError{Reason: "invalid JSON body"}
	}
	if rawID, ok := probe["_id"]; ok {
		if err := json.Unmarshal(rawID, &id); err != nil {
			return "", nil, &ValidationError{Reason: "_id must be a string"}
		}
	}

	raw, err := s.parseRaw(body)
	if err != nil {
		return "", nil, err
	}
	if len(raw) == 0 {
		return id, bson.M{}, nil
	}

	ptr, present, err := s.decodeTyped(raw)
	if err != nil {
		return "", nil, err
	}
	goNames := make([]string, 0, len(present))
	for key := range present {
		goNames = append(goNames, s.fields[key].goName)
	}
	if err := validate.StructPartial(ptr, goNames...); err != nil {
		return "", nil, &ValidationError{Reason: s.validationMessage(err)}
	}

	return id, s.pickFields(ptr, present), nil
}

// parseRaw unmarshals the body into a key map, drops reserved keys and
// rejects anything outside the schema.
func (s *Schema) parseRaw(body []byte) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &ValidationError{Reason: "invalid JSON body"}
	}
	for key := range raw {
		if reservedKeys[key] {
			delete(raw, key)
			continue
		}
		if _, ok := s.fields[key]; !ok {
			return nil, &ValidationError{Reason: fmt.Sprintf("unknown field %q", key)}
		}
	}
	return raw, nil
}

// decodeTyped funnels the filtered keys through the model struct so values
// get the model's Go types (time.Time, Media, int) rather than raw JSON ones.
func (s *Schema) decodeTyped(raw map[string]json.RawMessage) (any, map[string]bool, error) {
	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, nil, err
	}
	ptr := reflect.New(s.model).Interface()
	if err := json.Unmarshal(buf, ptr); err != nil {
		return nil, nil, &ValidationError{Reason: "malformed field value: " + err.Error()}
	}
	present := make(map[string]bool, len(raw))
	for key := range raw {
		present[key] = true
	}
	return ptr, present, nil
}

func (s *Schema) pickFields(ptr any, present map[string]bool) bson.M {
	v := reflect.ValueOf(ptr).Elem()
	doc := bson.M{}
	for key := range present {
		doc[key] = v.Field(s.fields[key].index).Interface()
	}
	return doc
}

// ValidationError marks a 400-class payload problem.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func (s *Schema) validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if ok := errors.As(err, &verrs); ok && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return fmt.Sprintf("missing required field %q", s.docKey(fe.Field()))
		}
		return fmt.Sprintf("invalid value for field %q", s.docKey(fe.Field()))
	}
	return err.Error()
}

// docKey maps a validator-reported Go field name back to the document key,
// so messages say ctaLabel rather than CTALabel. Nested fields fall back to
// a lowered first rune.
func (s *Schema) docKey(goName string) string {
	if key, ok := s.docKeys[goName]; ok {
		return key
	}
	if goName == "" {
		return goName
	}
	return strings.ToLower(goName[:1]) + goName[1:]
}
