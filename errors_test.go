package sel4ipc

import "testing"

func TestAssertPanicsOnFalse(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Assert(false, ...) must panic")
		}
		msg, ok := r.(string)
		if !ok || msg != "sel4ipc: queue invariant violated" {
			t.Fatalf("panic value = %v, want the prefixed assertion message", r)
		}
	}()
	Assert(false, "queue invariant violated")
}

func TestAssertNoPanicOnTrue(t *testing.T) {
	Assert(true, "this must never fire")
}

func TestFaultIsNull(t *testing.T) {
	if !(Fault{}).IsNull() {
		t.Fatal("a zero-value Fault must be Null")
	}
	f := Fault{Tag: FaultUserException, Number: 1}
	if f.IsNull() {
		t.Fatal("a Fault with a non-None tag must not report Null")
	}
}
