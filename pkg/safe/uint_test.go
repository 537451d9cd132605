package safe

import (
	"math"
	"testing"
)

type uint32Args[T interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}] struct {
	v T
}

type uint32TestCase[T interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}] struct {
	name    string
	args    uint32Args[T]
	want    uint32
	wantErr bool
}

func runUint32Case[T interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}](t *testing.T, tc uint32TestCase[T]) {
	t.Helper()

	t.Run(tc.name, func(t *testing.T) {
		got, err := Uint32(tc.args.v)
		if (err != nil) != tc.wantErr {
			t.Errorf("Uint32() error = %v, wantErr %v", err, tc.wantErr)
			return
		}
		if got != tc.want {
			t.Errorf("Uint32() got = %v, want %v", got, tc.want)
		}
	})
}

func TestUint32(t *testing.T) {
	runUint32Case(t, uint32TestCase[int]{name: "int within range", args: uint32Args[int]{v: 42}, want: 42})
	runUint32Case(t, uint32TestCase[int]{name: "int negative", args: uint32Args[int]{v: -1}, wantErr: true})
	runUint32Case(t, uint32TestCase[int64]{name: "int64 overflow", args: uint32Args[int64]{v: int64(math.MaxUint32) + 1}, wantErr: true})
	runUint32Case(t, uint32TestCase[int64]{name: "int64 boundary ok", args: uint32Args[int64]{v: int64(math.MaxUint32)}, want: math.MaxUint32})
	runUint32Case(t, uint32TestCase[uint64]{name: "uint64 overflow", args: uint32Args[uint64]{v: math.MaxUint32 + 1}, wantErr: true})
	runUint32Case(t, uint32TestCase[uint32]{name: "uint32 max", args: uint32Args[uint32]{v: math.MaxUint32}, want: math.MaxUint32})
	runUint32Case(t, uint32TestCase[uint]{name: "uint small", args: uint32Args[uint]{v: 7}, want: 7})
	runUint32Case(t, uint32TestCase[int32]{name: "int32 negative", args: uint32Args[int32]{v: -5}, wantErr: true})
	runUint32Case(t, uint32TestCase[int32]{name: "int32 positive", args: uint32Args[int32]{v: 123}, want: 123})
	runUint32Case(t, uint32TestCase[uint64]{name: "uint64 boundary ok", args: uint32Args[uint64]{v: math.MaxUint32}, want: math.MaxUint32})
	runUint32Case(t, uint32TestCase[int64]{name: "zero", args: uint32Args[int64]{v: 0}, want: 0})
}
