package z3

/*
#cgo LDFLAGS: -lz3
#include <z3.h>
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/benbjohnson/smtfuzz"
)

// Context wraps a reference-counted Z3 context.
//
// Every sort and term handed out by a Context holds one reference that is
// never released individually; all of them are freed together by Close.
// This keeps terms valid across push and pop for the lifetime of the context.
type Context struct {
	raw    C.Z3_context
	closed bool
}

// NewContext returns a new instance of Context.
func NewContext() *Context {
	config := C.Z3_mk_config()
	defer C.Z3_del_config(config)

	raw := C.Z3_mk_context_rc(config)
	C.Z3_set_error_handler(raw, nil)
	C.Z3_set_ast_print_mode(raw, C.Z3_PRINT_SMTLIB2_COMPLIANT)
	return &Context{raw: raw}
}

// Close deletes the underlying Z3 context. Closing twice is a no-op.
func (ctx *Context) Close() error {
	if ctx.closed {
		return nil
	}
	ctx.closed = true
	C.Z3_del_context(ctx.raw)
	return nil
}

// err returns the error for the last API call. Returns nil if last call was successful.
func (ctx *Context) err(op string) error {
	if code := C.Z3_get_error_code(ctx.raw); code != C.Z3_OK {
		return &Error{Code: int(code), Op: op, Message: C.GoString(C.Z3_get_error_msg(ctx.raw, code))}
	}
	return nil
}

// ast checks the last API call and takes a reference on a.
func (ctx *Context) ast(a C.Z3_ast, op string) (C.Z3_ast, error) {
	if err := ctx.err(op); err != nil {
		return nil, err
	} else if a == nil {
		return nil, &Error{Code: ErrorCodeException, Op: op, Message: "null ast"}
	}
	C.Z3_inc_ref(ctx.raw, a)
	return a, nil
}

// sort checks the last API call and takes a reference on s.
func (ctx *Context) sort(s C.Z3_sort, op string) (C.Z3_sort, error) {
	if err := ctx.err(op); err != nil {
		return nil, err
	} else if s == nil {
		return nil, &Error{Code: ErrorCodeException, Op: op, Message: "null sort"}
	}
	C.Z3_inc_ref(ctx.raw, C.Z3_sort_to_ast(ctx.raw, s))
	return s, nil
}

// symbol returns a string symbol for name.
func (ctx *Context) symbol(name string) C.Z3_symbol {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return C.Z3_mk_string_symbol(ctx.raw, cname)
}

func (ctx *Context) symbolString(sym C.Z3_symbol) string {
	return C.GoString(C.Z3_get_symbol_string(ctx.raw, sym))
}

func (ctx *Context) sortOf(a C.Z3_ast) C.Z3_sort {
	s := C.Z3_get_sort(ctx.raw, a)
	if err := ctx.err("Z3_get_sort"); err != nil {
		panic(err)
	}
	return s
}

func (ctx *Context) sortKind(s C.Z3_sort) C.Z3_sort_kind {
	return C.Z3_get_sort_kind(ctx.raw, s)
}

func (ctx *Context) isStringSort(s C.Z3_sort) bool {
	return bool(C.Z3_is_string_sort(ctx.raw, s))
}

// bvSortSize returns the size of s in bits. Panic if s is not a bit-vector sort.
func (ctx *Context) bvSortSize(s C.Z3_sort) uint32 {
	sz := uint32(C.Z3_get_bv_sort_size(ctx.raw, s))
	if err := ctx.err("Z3_get_bv_sort_size"); err != nil {
		panic(err)
	}
	return sz
}

func (ctx *Context) fpSortSizes(s C.Z3_sort) (ebits, sbits uint32) {
	ebits = uint32(C.Z3_fpa_get_ebits(ctx.raw, s))
	if err := ctx.err("Z3_fpa_get_ebits"); err != nil {
		panic(err)
	}
	sbits = uint32(C.Z3_fpa_get_sbits(ctx.raw, s))
	if err := ctx.err("Z3_fpa_get_sbits"); err != nil {
		panic(err)
	}
	return ebits, sbits
}

func (ctx *Context) astToString(a C.Z3_ast) string {
	return C.GoString(C.Z3_ast_to_string(ctx.raw, a))
}

func (ctx *Context) sortToString(s C.Z3_sort) string {
	return C.GoString(C.Z3_sort_to_string(ctx.raw, s))
}

func (ctx *Context) modelToString(m C.Z3_model) string {
	return C.GoString(C.Z3_model_to_string(ctx.raw, m))
}

// isConst returns true if a is an uninterpreted constant.
func (ctx *Context) isConst(a C.Z3_ast) bool {
	if !bool(C.Z3_is_app(ctx.raw, a)) {
		return false
	}
	app := C.Z3_to_app(ctx.raw, a)
	if C.Z3_get_app_num_args(ctx.raw, app) != 0 {
		return false
	}
	return C.Z3_get_decl_kind(ctx.raw, C.Z3_get_app_decl(ctx.raw, app)) == C.Z3_OP_UNINTERPRETED
}

// isLiteral returns true if a is a Boolean constant or its negation.
func (ctx *Context) isLiteral(a C.Z3_ast) bool {
	if ctx.sortKind(ctx.sortOf(a)) != C.Z3_BOOL_SORT {
		return false
	} else if ctx.isConst(a) {
		return true
	} else if !bool(C.Z3_is_app(ctx.raw, a)) {
		return false
	}

	app := C.Z3_to_app(ctx.raw, a)
	if C.Z3_get_decl_kind(ctx.raw, C.Z3_get_app_decl(ctx.raw, app)) != C.Z3_OP_NOT {
		return false
	}
	return ctx.isConst(C.Z3_get_app_arg(ctx.raw, app, 0))
}

// boolConst returns a fresh Boolean constant named name.
func (ctx *Context) boolConst(name string) (C.Z3_ast, error) {
	s, err := ctx.sort(C.Z3_mk_bool_sort(ctx.raw), "Z3_mk_bool_sort")
	if err != nil {
		return nil, err
	}
	return ctx.ast(C.Z3_mk_const(ctx.raw, ctx.symbol(name), s), "Z3_mk_const")
}

// Error represents an error from the Z3 API.
type Error struct {
	Code    int
	Op      string
	Message string
}

// Error returns the error as a string.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (%d)", e.Op, e.Message, e.Code)
}

// Is reports whether target is smtfuzz.ErrConfig. Z3 rejects only requests
// it cannot realize, which the harness treats as configuration errors.
func (e *Error) Is(target error) bool { return target == smtfuzz.ErrConfig }

// Possible error codes.
const (
	ErrorCodeOK = iota
	ErrorCodeSortError
	ErrorCodeIOB
	ErrorCodeInvalidArg
	ErrorCodeParserError
	ErrorCodeNoParser
	ErrorCodeInvalidPattern
	ErrorCodeMemoutFail
	ErrorCodeFileAccessError
	ErrorCodeInternalFatal
	ErrorCodeInvalidUsage
	ErrorCodeDecRefError
	ErrorCodeException
)
