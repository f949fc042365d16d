package value

import "testing"

// FuzzInt4RoundTrip exercises the value decode symmetry property (spec
// §8 item 6): decode_be(to_be_bytes(v)) == v and the same for LE, for
// every int32-representable value.
func FuzzInt4RoundTrip(f *testing.F) {
	f.Add(int32(0))
	f.Add(int32(-1))
	f.Add(int32(1<<31 - 1))
	f.Add(int32(-1 << 31))

	f.Fuzz(func(t *testing.T, n int32) {
		v := Int4(n)
		if got := Int4FromBE(v.ToBE()); got != v {
			t.Fatalf("BE round-trip: got %d, want %d", got, v)
		}
		if got := Int4FromLE(v.ToLE()); got != v {
			t.Fatalf("LE round-trip: got %d, want %d", got, v)
		}
	})
}

// FuzzReal8RoundTrip covers the float half of the same property,
// including NaN/Inf bit patterns that a naive float comparison would
// mishandle -- compared by bit pattern via ToBE, not by value equality.
func FuzzReal8RoundTrip(f *testing.F) {
	f.Add(0.0)
	f.Add(-1.5)
	f.Add(3.14159265358979)

	f.Fuzz(func(t *testing.T, n float64) {
		v := Real8(n)
		if got := Real8FromBE(v.ToBE()); string(got.ToBE()) != string(v.ToBE()) {
			t.Fatalf("BE round-trip byte mismatch for %v", n)
		}
		if got := Real8FromLE(v.ToLE()); string(got.ToLE()) != string(v.ToLE()) {
			t.Fatalf("LE round-trip byte mismatch for %v", n)
		}
	})
}

// FuzzEpoch16RoundTrip confirms the two Real8 halves round-trip
// independently, never combined into one 16-byte word.
func FuzzEpoch16RoundTrip(f *testing.F) {
	f.Add(0.0, 0.0)
	f.Add(123.456, -789.012)

	f.Fuzz(func(t *testing.T, seconds, millis float64) {
		v := Epoch16{Seconds: Real8(seconds), Milliseconds: Real8(millis)}
		if got := Epoch16FromBE(v.ToBE()); string(got.ToBE()) != string(v.ToBE()) {
			t.Fatalf("BE round-trip byte mismatch: got %+v, want %+v", got, v)
		}
		if got := Epoch16FromLE(v.ToLE()); string(got.ToLE()) != string(v.ToLE()) {
			t.Fatalf("LE round-trip byte mismatch: got %+v, want %+v", got, v)
		}
	})
}
