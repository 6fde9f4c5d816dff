package lemons

type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
)

type Fn func(x, y int64) Value

type OpInfo struct {
	symbol string
	fn     Fn
}

var ops map[Operator]OpInfo

var symbols map[string]Operator

func makeOp(symbol string, fn Fn) OpInfo {
	return OpInfo{symbol: symbol, fn: fn}
}

func init() {
	ops = make(map[Operator]OpInfo)
	ops[OpAdd] = makeOp("+", doAdd)
	ops[OpSub] = makeOp("-", doSub)
	ops[OpMul] = makeOp("*", doMul)
	ops[OpDiv] = makeOp("/", doDiv)
	ops[OpMod] = makeOp("%", doMod)
	ops[OpPow] = makeOp("^", doPow)

	symbols = make(map[string]Operator)
	for op, info := range ops {
		symbols[info.symbol] = op
	}
}

// LookupOperator maps an operator symbol to its code.
func LookupOperator(symbol string) (Operator, bool) {
	op, ok := symbols[symbol]
	return op, ok
}

func (op Operator) String() string {
	if info, ok := ops[op]; ok {
		return info.symbol
	}
	return "?"
}

// apply combines x and y. An error operand is returned unchanged, the left
// one first.
func apply(x Value, op Operator, y Value) Value {
	if x.IsError() {
		return x
	}
	if y.IsError() {
		return y
	}
	a, ok := x.Num()
	if !ok {
		return Error(ErrInvalidOperand)
	}
	b, ok := y.Num()
	if !ok {
		return Error(ErrInvalidOperand)
	}
	info, ok := ops[op]
	if !ok {
		return Error(ErrBadOperator)
	}
	return info.fn(a, b)
}

func doAdd(x, y int64) Value {
	return Number(x + y)
}

func doSub(x, y int64) Value {
	return Number(x - y)
}

func doMul(x, y int64) Value {
	return Number(x * y)
}

func doDiv(x, y int64) Value {
	if y == 0 {
		return Error(ErrDivideByZero)
	}
	return Number(x / y)
}

func doMod(x, y int64) Value {
	if y == 0 {
		return Error(ErrModuloByZero)
	}
	return Number(x % y)
}

// doPow raises x to y by squaring. x^0 is 1 for every x.
func doPow(x, y int64) Value {
	if y < 0 {
		return Error(ErrNegativeExponent)
	}
	ret := int64(1)
	for y > 0 {
		if y&1 == 1 {
			ret *= x
		}
		x *= x
		y >>= 1
	}
	return Number(ret)
}
