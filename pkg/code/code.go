package code

import (
	"fmt"
	"net/http"
)

// Code is a registered business code. It doubles as the error type
// returned by the service layer: callers match with errors.Is against
// the registered values.
type Code struct {
	code       int
	status     bool
	httpStatus int
	msg        string
	data       interface{}
	details    []string

	haveData    bool
	haveDetails bool
}

var codes = map[int]string{}

func NewError(code int, httpStatus int, msg string) *Code {
	if _, ok := codes[code]; ok {
		panic(fmt.Sprintf("code %d already registered, pick another", code))
	}
	codes[code] = msg
	return &Code{code: code, status: false, httpStatus: httpStatus, msg: msg}
}

var sussCodes = map[int]string{}

func NewSuss(code int, msg string) *Code {
	if _, ok := sussCodes[code]; ok {
		panic(fmt.Sprintf("success code %d already registered, pick another", code))
	}
	sussCodes[code] = msg
	return &Code{code: code, status: true, httpStatus: http.StatusOK, msg: msg}
}

// Clone returns a copy of the code. Registered codes are shared package
// values, so every With* helper clones before writing.
func (e *Code) Clone() *Code {
	c := *e
	if e.details != nil {
		c.details = append([]string(nil), e.details...)
	}
	return &c
}

func (e *Code) Error() string {
	return e.msg
}

// Is reports whether target carries the same registered code, so clones
// produced by With* still match their registered value via errors.Is.
func (e *Code) Is(target error) bool {
	t, ok := target.(*Code)
	if !ok {
		return false
	}
	return e.code == t.code
}

func (e *Code) Code() int {
	return e.code
}

func (e *Code) Status() bool {
	return e.status
}

func (e *Code) Msg() string {
	return e.msg
}

func (e *Code) Data() interface{} {
	return e.data
}

func (e *Code) Details() []string {
	return e.details
}

func (e *Code) HaveData() bool {
	return e.haveData
}

func (e *Code) HaveDetails() bool {
	return e.haveDetails
}

func (e *Code) WithData(data interface{}) *Code {
	c := e.Clone()
	c.haveData = true
	c.data = data
	return c
}

func (e *Code) WithDetails(details ...string) *Code {
	c := e.Clone()
	c.haveDetails = true
	c.details = append(c.details, details...)
	return c
}

func (e *Code) WithMsg(msg string) *Code {
	c := e.Clone()
	c.msg = msg
	return c
}

func (e *Code) StatusCode() int {
	return e.httpStatus
}
