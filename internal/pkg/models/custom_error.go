package models

type CustomError struct {
	Code    string
	Message string
	Fields  map[string]string
}

func (e CustomError) Error() string {
	return e.Message
}

func (e CustomError) ErrorCode() string {
	return e.Code
}

// Is matches by catalogue code, so a per-field copy still matches its
// catalogue entry under errors.Is.
func (e CustomError) Is(target error) bool {
	if t, ok := target.(*CustomError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithField returns a copy of the error carrying a per-field cause, so
// the catalogue values in consts stay immutable.
func (e CustomError) WithField(field, cause string) *CustomError {
	fields := make(map[string]string, len(e.Fields)+1)
	for k, v := range e.Fields {
		fields[k] = v
	}
	fields[field] = cause
	return &CustomError{
		Code:    e.Code,
		Message: e.Message,
		Fields:  fields,
	}
}
