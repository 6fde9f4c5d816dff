package lemons

import (
	"bytes"
	"fmt"
	"strconv"
)

type ValueType int

const (
	ValueNumber ValueType = iota
	ValueOp
	ValueVar
	ValueList
	ValueError
)

// Value is the result of evaluating a parse tree.
type Value struct {
	t ValueType
	v interface{}
}

type ErrorKind int

const (
	ErrDivideByZero ErrorKind = iota
	ErrModuloByZero
	ErrBadOperator
	ErrInvalidNumber
	ErrUndefinedVariable
	ErrNegativeExponent
	ErrRecursiveVariable
	ErrInvalidOperand
)

var errorMessages = map[ErrorKind]string{
	ErrDivideByZero:      "Error: Division By Zero!",
	ErrModuloByZero:      "Error: Modulus By Zero!",
	ErrBadOperator:       "Error: Invalid Operator!",
	ErrInvalidNumber:     "Error: Invalid Number!",
	ErrUndefinedVariable: "Error: Undefined Variable!",
	ErrNegativeExponent:  "Error: Negative Exponent!",
	ErrRecursiveVariable: "Error: Recursive Variable!",
	ErrInvalidOperand:    "Error: Invalid Operand!",
}

func (k ErrorKind) Error() string {
	if s, ok := errorMessages[k]; ok {
		return s
	}
	return "Error: Unknown Error!"
}

func Number(n int64) Value {
	return Value{t: ValueNumber, v: n}
}

func OpValue(op Operator) Value {
	return Value{t: ValueOp, v: op}
}

// VarRef is what an assignment evaluates to: the name it bound.
func VarRef(name string) Value {
	return Value{t: ValueVar, v: name}
}

func List(vs ...Value) Value {
	return Value{t: ValueList, v: vs}
}

func Error(kind ErrorKind) Value {
	return Value{t: ValueError, v: kind}
}

func (v Value) Type() ValueType {
	return v.t
}

func (v Value) IsError() bool {
	return v.t == ValueError
}

// Num returns the integer held by a number value.
func (v Value) Num() (int64, bool) {
	n, ok := v.v.(int64)
	return n, ok && v.t == ValueNumber
}

func (v Value) Op() (Operator, bool) {
	op, ok := v.v.(Operator)
	return op, ok && v.t == ValueOp
}

// Name returns the variable name held by a variable reference.
func (v Value) Name() (string, bool) {
	s, ok := v.v.(string)
	return s, ok && v.t == ValueVar
}

func (v Value) Elems() ([]Value, bool) {
	vs, ok := v.v.([]Value)
	return vs, ok && v.t == ValueList
}

// Err returns the error kind of an error value, or nil.
func (v Value) Err() error {
	if k, ok := v.v.(ErrorKind); ok && v.t == ValueError {
		return k
	}
	return nil
}

func (v Value) String() string {
	switch v.t {
	case ValueNumber:
		return strconv.FormatInt(v.v.(int64), 10)
	case ValueOp:
		return v.v.(Operator).String()
	case ValueVar:
		return v.v.(string)
	case ValueList:
		var buf bytes.Buffer
		fmt.Fprint(&buf, "[")
		for i, e := range v.v.([]Value) {
			if i > 0 {
				fmt.Fprint(&buf, ", ")
			}
			fmt.Fprint(&buf, e)
		}
		fmt.Fprint(&buf, "]")
		return buf.String()
	case ValueError:
		return v.v.(ErrorKind).Error()
	}
	return fmt.Sprintf("<invalid value %v>", v.v)
}
